package model

type EquipmentRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,min=1"`
	Condition   Condition `json:"condition" validate:"required,oneof=good broken under_repair"`
	Category    string    `json:"category" validate:"required,max=255"`
}

type RoomRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
}

// CreateBorrowingRequest is shape-validated only: availability of the
// referenced item and overlap with other approved requests are not
// checked on submit.
type CreateBorrowingRequest struct {
	ItemType  ItemType `json:"itemType" validate:"required,oneof=equipment room"`
	ItemID    int64    `json:"itemId" validate:"required,min=1"`
	Quantity  int      `json:"quantity" validate:"required_if=ItemType equipment,omitempty,min=1"`
	StartDate Date     `json:"startDate" validate:"required"`
	EndDate   Date     `json:"endDate" validate:"required"`
	Note      *string  `json:"note" validate:"omitempty,max=1000"`
}

type ChangeStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending approved rejected returned"`
}

type DashboardStats struct {
	TotalEquipment     int  `json:"totalEquipment"`
	AvailableEquipment int  `json:"availableEquipment"`
	TotalRooms         int  `json:"totalRooms"`
	TotalRequests      int  `json:"totalRequests"`
	PendingRequests    *int `json:"pendingRequests,omitempty"`
	MyRequests         *int `json:"myRequests,omitempty"`
	MyPendingRequests  *int `json:"myPendingRequests,omitempty"`
}

type Dashboard struct {
	Stats          DashboardStats             `json:"stats"`
	RecentRequests []BorrowingRequestResponse `json:"recentRequests"`
}

type Welcome struct {
	Stats             DashboardStats `json:"stats"`
	FeaturedEquipment []Equipment    `json:"featuredEquipment"`
	FeaturedRooms     []Room         `json:"featuredRooms"`
}
