package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type Condition string

const (
	ConditionGood        Condition = "good"
	ConditionBroken      Condition = "broken"
	ConditionUnderRepair Condition = "under_repair"
)

type ItemType string

const (
	ItemTypeEquipment ItemType = "equipment"
	ItemTypeRoom      ItemType = "room"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusReturned Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusReturned:
		return true
	}
	return false
}

// Date is a day-granular timestamp bound from "2006-01-02" JSON strings
// and stored in DATE columns.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) Scan(v any) error {
	switch t := v.(type) {
	case time.Time:
		d.Time = t
	case nil:
	default:
		return fmt.Errorf("unsupported date type %T", v)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Role  string `json:"role" db:"role"`
}

type Equipment struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Condition   Condition `json:"condition" db:"condition"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Available reports whether the equipment can appear in a borrow picklist.
func (e Equipment) Available() bool {
	return e.Condition == ConditionGood && e.Quantity > 0
}

type Room struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BorrowingRequest references its item polymorphically: ItemType selects
// the catalog ItemID points into. There is no foreign key behind the pair,
// so the reference may dangle after a catalog delete.
type BorrowingRequest struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ItemType  ItemType  `json:"itemType" db:"item_type"`
	ItemID    int64     `json:"itemId" db:"item_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	StartDate Date      `json:"startDate" db:"start_date"`
	EndDate   Date      `json:"endDate" db:"end_date"`
	Status    Status    `json:"status" db:"status"`
	Note      *string   `json:"note" db:"note"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BorrowingRequestDetail is the repository row with the item and owner
// summaries joined in. Item columns are null when the reference dangles.
type BorrowingRequestDetail struct {
	BorrowingRequest
	ItemName     *string `db:"item_name"`
	ItemCategory *string `db:"item_category"`
	ItemLocation *string `db:"item_location"`
	OwnerName    *string `db:"owner_name"`
}

type ItemSummary struct {
	Type     ItemType `json:"type"`
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Location string   `json:"location,omitempty"`
}

type OwnerSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BorrowingRequestResponse struct {
	BorrowingRequest
	Item  *ItemSummary  `json:"item"`
	Owner *OwnerSummary `json:"owner"`
}

type ListEquipment struct {
	Paging `json:",inline"`
	Items  []Equipment `json:"items"`
}

type ListRooms struct {
	Paging `json:",inline"`
	Items  []Room `json:"items"`
}

type ListBorrowingRequests struct {
	Paging `json:",inline"`
	Items  []BorrowingRequestResponse `json:"items"`
}
