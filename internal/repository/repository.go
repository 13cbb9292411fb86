package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sarpras/borrowing-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// Equipment catalog
	ListEquipment(ctx context.Context, page, size int) (model.ListEquipment, error)
	ListAvailableEquipment(ctx context.Context, limit int) ([]model.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (model.Equipment, error)
	CreateEquipment(ctx context.Context, req model.EquipmentRequest) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, req model.EquipmentRequest) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error

	// Room catalog
	ListRooms(ctx context.Context, page, size int) (model.ListRooms, error)
	ListAllRooms(ctx context.Context, limit int) ([]model.Room, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	CreateRoom(ctx context.Context, req model.RoomRequest) (model.Room, error)
	UpdateRoom(ctx context.Context, id int64, req model.RoomRequest) (model.Room, error)
	DeleteRoom(ctx context.Context, id int64) error

	// Borrowing requests
	CreateRequest(ctx context.Context, userID int64, req model.CreateBorrowingRequest, quantity int) (model.BorrowingRequest, error)
	GetRequest(ctx context.Context, id int64) (model.BorrowingRequestDetail, error)
	ListRequests(ctx context.Context, ownerID *int64, page, size int) ([]model.BorrowingRequestDetail, int, error)
	RecentRequests(ctx context.Context, ownerID *int64, limit int) ([]model.BorrowingRequestDetail, error)
	UpdateRequestStatus(ctx context.Context, id int64, status model.Status) (model.BorrowingRequest, error)
	DeleteRequest(ctx context.Context, id int64) error

	// Aggregates
	CountEquipment(ctx context.Context) (int, error)
	CountAvailableEquipment(ctx context.Context) (int, error)
	CountRooms(ctx context.Context) (int, error)
	CountRequests(ctx context.Context, ownerID *int64) (int, error)
	CountPendingRequests(ctx context.Context, ownerID *int64) (int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	equipmentTableName = `equipment`
	roomsTableName     = `rooms`
	requestsTableName  = `borrowing_requests`
	usersTableName     = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func paginate(q sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	return q
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}
