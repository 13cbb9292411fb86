package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sarpras/borrowing-service/internal/errs"
	"github.com/sarpras/borrowing-service/internal/model"
	"github.com/sarpras/borrowing-service/internal/repository"
	"github.com/sarpras/borrowing-service/pkg/auth"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events Publisher
}

func NewService(repo repository.Repository, events Publisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

// ResolveItem switches on the tag of the polymorphic item reference and
// looks the id up in the selected catalog.
func (s *Service) ResolveItem(ctx context.Context, itemType model.ItemType, itemID int64) (model.ItemSummary, error) {
	switch itemType {
	case model.ItemTypeEquipment:
		e, err := s.repo.GetEquipment(ctx, itemID)
		if err != nil {
			return model.ItemSummary{}, err
		}
		return model.ItemSummary{Type: model.ItemTypeEquipment, ID: e.ID, Name: e.Name, Category: e.Category}, nil
	case model.ItemTypeRoom:
		room, err := s.repo.GetRoom(ctx, itemID)
		if err != nil {
			return model.ItemSummary{}, err
		}
		return model.ItemSummary{Type: model.ItemTypeRoom, ID: room.ID, Name: room.Name, Location: room.Location}, nil
	default:
		return model.ItemSummary{}, errs.NewValidationError(map[string]string{
			"itemType": "must be equipment or room",
		})
	}
}

// SubmitRequest validates request shape only. It deliberately does not
// check the resolved item's stock or date-range overlap with other
// approved requests; stock bookkeeping is manual.
func (s *Service) SubmitRequest(ctx context.Context, actor auth.Actor, req model.CreateBorrowingRequest) (model.BorrowingRequest, error) {
	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		return model.BorrowingRequest{}, err
	}

	quantity := req.Quantity
	if req.ItemType == model.ItemTypeRoom {
		// room requests always carry quantity 1, whatever was submitted
		quantity = 1
	}

	res, err := s.repo.CreateRequest(ctx, actor.ID, req, quantity)
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	s.publish(newEvent(EventRequestCreated, res.ID, actor.Name, res.Status))
	return res, nil
}

func validateDates(start, end model.Date) error {
	fields := make(map[string]string)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if start.Time.Before(today) {
		fields["startDate"] = "must not be before today"
	}
	if !end.Time.After(start.Time) {
		fields["endDate"] = "must be after startDate"
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields)
	}
	return nil
}

func (s *Service) GetRequest(ctx context.Context, actor auth.Actor, id int64) (model.BorrowingRequestResponse, error) {
	d, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return model.BorrowingRequestResponse{}, err
	}
	if !CanViewAll(actor) && actor.ID != d.UserID {
		return model.BorrowingRequestResponse{}, errs.ErrForbidden
	}
	return toResponse(d), nil
}

func (s *Service) ListRequests(ctx context.Context, actor auth.Actor, page, size int) (model.ListBorrowingRequests, error) {
	var ownerID *int64
	if !CanViewAll(actor) {
		ownerID = &actor.ID
	}

	items, total, err := s.repo.ListRequests(ctx, ownerID, page, size)
	if err != nil {
		return model.ListBorrowingRequests{}, err
	}

	return model.ListBorrowingRequests{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: toResponses(items),
	}, nil
}

// ChangeStatus replaces the status field. Transitions are unconstrained:
// an admin may set any of the four statuses from any current one, and
// equipment quantity is never touched on approve or return.
func (s *Service) ChangeStatus(ctx context.Context, actor auth.Actor, id int64, status model.Status) (model.BorrowingRequest, error) {
	if !CanChangeStatus(actor) {
		return model.BorrowingRequest{}, errs.ErrForbidden
	}
	if !status.Valid() {
		return model.BorrowingRequest{}, errs.NewValidationError(map[string]string{
			"status": "must be one of pending, approved, rejected, returned",
		})
	}

	res, err := s.repo.UpdateRequestStatus(ctx, id, status)
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	s.publish(newEvent(EventStatusChanged, res.ID, actor.Name, res.Status))
	return res, nil
}

func (s *Service) DeleteRequest(ctx context.Context, actor auth.Actor, id int64) error {
	d, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if !CanDelete(actor, d.BorrowingRequest) {
		return errs.ErrForbidden
	}
	if err := s.repo.DeleteRequest(ctx, id); err != nil {
		return err
	}

	s.publish(newEvent(EventRequestDeleted, id, actor.Name, ""))
	return nil
}

func (s *Service) publish(ev Event) {
	if err := s.events.Publish(ev); err != nil {
		s.log.Warn("publish event", zap.String("type", ev.Type), zap.Error(err))
	}
}

func toResponse(d model.BorrowingRequestDetail) model.BorrowingRequestResponse {
	resp := model.BorrowingRequestResponse{BorrowingRequest: d.BorrowingRequest}
	if d.ItemName != nil {
		item := &model.ItemSummary{
			Type: d.ItemType,
			ID:   d.ItemID,
			Name: *d.ItemName,
		}
		switch d.ItemType {
		case model.ItemTypeEquipment:
			if d.ItemCategory != nil {
				item.Category = *d.ItemCategory
			}
		case model.ItemTypeRoom:
			if d.ItemLocation != nil {
				item.Location = *d.ItemLocation
			}
		}
		resp.Item = item
	}
	if d.OwnerName != nil {
		resp.Owner = &model.OwnerSummary{ID: d.UserID, Name: *d.OwnerName}
	}
	return resp
}

func toResponses(items []model.BorrowingRequestDetail) []model.BorrowingRequestResponse {
	out := make([]model.BorrowingRequestResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(items[i]))
	}
	return out
}
