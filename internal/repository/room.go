package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/borrowing-service/internal/errs"
	"github.com/sarpras/borrowing-service/internal/model"
)

var roomColumns = []string{"id", "name", "location", "created_at", "updated_at"}

func (r *repository) ListRooms(ctx context.Context, page, size int) (model.ListRooms, error) {
	q := qb.Select(roomColumns...).
		From(roomsTableName).
		OrderBy("created_at DESC", "id DESC")
	q = paginate(q, page, size)

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListRooms{}, err
	}

	var items []model.Room
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListRooms{}, err
	}

	total, err := r.CountRooms(ctx)
	if err != nil {
		return model.ListRooms{}, err
	}

	return model.ListRooms{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

// ListAllRooms serves the picklist; rooms carry no availability concept.
func (r *repository) ListAllRooms(ctx context.Context, limit int) ([]model.Room, error) {
	q := qb.Select(roomColumns...).
		From(roomsTableName).
		OrderBy("name ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Room
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	query, args, err := qb.Select(roomColumns...).
		From(roomsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Room{}, err
	}

	var room model.Room
	if err := r.db.GetContext(ctx, &room, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, errs.ErrNotFound
		}
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) CreateRoom(ctx context.Context, req model.RoomRequest) (model.Room, error) {
	q, args, err := qb.Insert(roomsTableName).
		Columns("name", "location").
		Values(req.Name, req.Location).
		Suffix("RETURNING " + joinColumns(roomColumns)).
		ToSql()
	if err != nil {
		return model.Room{}, err
	}

	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		r.log.Error("CreateRoom", zap.String("q", q), zap.Any("args", args))
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) UpdateRoom(ctx context.Context, id int64, req model.RoomRequest) (model.Room, error) {
	q, args, err := qb.Update(roomsTableName).
		Set("name", req.Name).
		Set("location", req.Location).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(roomColumns)).
		ToSql()
	if err != nil {
		return model.Room{}, err
	}

	var room model.Room
	if err := r.db.GetContext(ctx, &room, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, errs.ErrNotFound
		}
		return model.Room{}, err
	}
	return room, nil
}

func (r *repository) DeleteRoom(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(roomsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CountRooms(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(roomsTableName))
}
