package service

import (
	"context"

	"github.com/sarpras/borrowing-service/internal/errs"
	"github.com/sarpras/borrowing-service/internal/model"
	"github.com/sarpras/borrowing-service/pkg/auth"
)

// Catalog reads are open to every authenticated role; writes are gated
// by CanManageCatalog.

func (s *Service) ListEquipment(ctx context.Context, page, size int) (model.ListEquipment, error) {
	return s.repo.ListEquipment(ctx, page, size)
}

func (s *Service) AvailableEquipment(ctx context.Context) ([]model.Equipment, error) {
	return s.repo.ListAvailableEquipment(ctx, 0)
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	return s.repo.GetEquipment(ctx, id)
}

func (s *Service) CreateEquipment(ctx context.Context, actor auth.Actor, req model.EquipmentRequest) (model.Equipment, error) {
	if !CanManageCatalog(actor) {
		return model.Equipment{}, errs.ErrForbidden
	}
	return s.repo.CreateEquipment(ctx, req)
}

func (s *Service) UpdateEquipment(ctx context.Context, actor auth.Actor, id int64, req model.EquipmentRequest) (model.Equipment, error) {
	if !CanManageCatalog(actor) {
		return model.Equipment{}, errs.ErrForbidden
	}
	return s.repo.UpdateEquipment(ctx, id, req)
}

// DeleteEquipment leaves historical requests pointing at the removed row
// dangling; there is no cascade over the polymorphic reference.
func (s *Service) DeleteEquipment(ctx context.Context, actor auth.Actor, id int64) error {
	if !CanManageCatalog(actor) {
		return errs.ErrForbidden
	}
	return s.repo.DeleteEquipment(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context, page, size int) (model.ListRooms, error) {
	return s.repo.ListRooms(ctx, page, size)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, actor auth.Actor, req model.RoomRequest) (model.Room, error) {
	if !CanManageCatalog(actor) {
		return model.Room{}, errs.ErrForbidden
	}
	return s.repo.CreateRoom(ctx, req)
}

func (s *Service) UpdateRoom(ctx context.Context, actor auth.Actor, id int64, req model.RoomRequest) (model.Room, error) {
	if !CanManageCatalog(actor) {
		return model.Room{}, errs.ErrForbidden
	}
	return s.repo.UpdateRoom(ctx, id, req)
}

func (s *Service) DeleteRoom(ctx context.Context, actor auth.Actor, id int64) error {
	if !CanManageCatalog(actor) {
		return errs.ErrForbidden
	}
	return s.repo.DeleteRoom(ctx, id)
}
