package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sarpras/borrowing-service/internal/model"
	"github.com/sarpras/borrowing-service/pkg/auth"
)

const recentRequestsLimit = 5

func (s *Service) baseStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		n, err := s.repo.CountEquipment(ctx)
		stats.TotalEquipment = n
		return err
	})
	gg.Go(func() error {
		n, err := s.repo.CountAvailableEquipment(ctx)
		stats.AvailableEquipment = n
		return err
	})
	gg.Go(func() error {
		n, err := s.repo.CountRooms(ctx)
		stats.TotalRooms = n
		return err
	})
	gg.Go(func() error {
		n, err := s.repo.CountRequests(ctx, nil)
		stats.TotalRequests = n
		return err
	})

	if err := gg.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

// Dashboard assembles role-scoped aggregates: admins see pending counts
// and the latest requests across all users, borrowers their own.
func (s *Service) Dashboard(ctx context.Context, actor auth.Actor) (model.Dashboard, error) {
	stats, err := s.baseStats(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}

	var ownerID *int64
	if CanViewAll(actor) {
		pending, err := s.repo.CountPendingRequests(ctx, nil)
		if err != nil {
			return model.Dashboard{}, err
		}
		stats.PendingRequests = &pending
	} else {
		ownerID = &actor.ID
		mine, err := s.repo.CountRequests(ctx, ownerID)
		if err != nil {
			return model.Dashboard{}, err
		}
		minePending, err := s.repo.CountPendingRequests(ctx, ownerID)
		if err != nil {
			return model.Dashboard{}, err
		}
		stats.MyRequests = &mine
		stats.MyPendingRequests = &minePending
	}

	recent, err := s.repo.RecentRequests(ctx, ownerID, recentRequestsLimit)
	if err != nil {
		return model.Dashboard{}, err
	}

	return model.Dashboard{
		Stats:          stats,
		RecentRequests: toResponses(recent),
	}, nil
}

// Welcome is the public landing payload: overall stats plus a few
// featured catalog rows.
func (s *Service) Welcome(ctx context.Context) (model.Welcome, error) {
	stats, err := s.baseStats(ctx)
	if err != nil {
		return model.Welcome{}, err
	}

	var (
		featuredEquipment []model.Equipment
		featuredRooms     []model.Room
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		items, err := s.repo.ListAvailableEquipment(ctx, 3)
		featuredEquipment = items
		return err
	})
	gg.Go(func() error {
		items, err := s.repo.ListAllRooms(ctx, 3)
		featuredRooms = items
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Welcome{}, err
	}

	return model.Welcome{
		Stats:             stats,
		FeaturedEquipment: featuredEquipment,
		FeaturedRooms:     featuredRooms,
	}, nil
}
