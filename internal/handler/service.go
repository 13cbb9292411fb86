package handler

import (
	"context"

	"github.com/sarpras/borrowing-service/internal/model"
	"github.com/sarpras/borrowing-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowingService interface {
	ListEquipment(ctx context.Context, page, size int) (model.ListEquipment, error)
	AvailableEquipment(ctx context.Context) ([]model.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (model.Equipment, error)
	CreateEquipment(ctx context.Context, actor auth.Actor, req model.EquipmentRequest) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, actor auth.Actor, id int64, req model.EquipmentRequest) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, actor auth.Actor, id int64) error

	ListRooms(ctx context.Context, page, size int) (model.ListRooms, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	CreateRoom(ctx context.Context, actor auth.Actor, req model.RoomRequest) (model.Room, error)
	UpdateRoom(ctx context.Context, actor auth.Actor, id int64, req model.RoomRequest) (model.Room, error)
	DeleteRoom(ctx context.Context, actor auth.Actor, id int64) error

	ListRequests(ctx context.Context, actor auth.Actor, page, size int) (model.ListBorrowingRequests, error)
	SubmitRequest(ctx context.Context, actor auth.Actor, req model.CreateBorrowingRequest) (model.BorrowingRequest, error)
	GetRequest(ctx context.Context, actor auth.Actor, id int64) (model.BorrowingRequestResponse, error)
	ChangeStatus(ctx context.Context, actor auth.Actor, id int64, status model.Status) (model.BorrowingRequest, error)
	DeleteRequest(ctx context.Context, actor auth.Actor, id int64) error

	Dashboard(ctx context.Context, actor auth.Actor) (model.Dashboard, error)
	Welcome(ctx context.Context) (model.Welcome, error)
}
