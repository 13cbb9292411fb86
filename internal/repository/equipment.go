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

var equipmentColumns = []string{"id", "name", "description", "quantity", "condition", "category", "created_at", "updated_at"}

func (r *repository) ListEquipment(ctx context.Context, page, size int) (model.ListEquipment, error) {
	q := qb.Select(equipmentColumns...).
		From(equipmentTableName).
		OrderBy("created_at DESC", "id DESC")
	q = paginate(q, page, size)

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListEquipment{}, err
	}

	var items []model.Equipment
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListEquipment{}, err
	}

	total, err := r.CountEquipment(ctx)
	if err != nil {
		return model.ListEquipment{}, err
	}

	return model.ListEquipment{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

// ListAvailableEquipment returns picklist rows: condition good and stock left.
func (r *repository) ListAvailableEquipment(ctx context.Context, limit int) ([]model.Equipment, error) {
	q := qb.Select(equipmentColumns...).
		From(equipmentTableName).
		Where(sq.Eq{"condition": model.ConditionGood}).
		Where(sq.Gt{"quantity": 0}).
		OrderBy("name ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Equipment
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	query, args, err := qb.Select(equipmentColumns...).
		From(equipmentTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}

	var e model.Equipment
	if err := r.db.GetContext(ctx, &e, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		return model.Equipment{}, err
	}
	return e, nil
}

func (r *repository) CreateEquipment(ctx context.Context, req model.EquipmentRequest) (model.Equipment, error) {
	q, args, err := qb.Insert(equipmentTableName).
		Columns("name", "description", "quantity", "condition", "category").
		Values(req.Name, req.Description, req.Quantity, req.Condition, req.Category).
		Suffix("RETURNING " + joinColumns(equipmentColumns)).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}

	var e model.Equipment
	if err := r.db.GetContext(ctx, &e, q, args...); err != nil {
		r.log.Error("CreateEquipment", zap.String("q", q), zap.Any("args", args))
		return model.Equipment{}, err
	}
	return e, nil
}

func (r *repository) UpdateEquipment(ctx context.Context, id int64, req model.EquipmentRequest) (model.Equipment, error) {
	q, args, err := qb.Update(equipmentTableName).
		Set("name", req.Name).
		Set("description", req.Description).
		Set("quantity", req.Quantity).
		Set("condition", req.Condition).
		Set("category", req.Category).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(equipmentColumns)).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}

	var e model.Equipment
	if err := r.db.GetContext(ctx, &e, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		return model.Equipment{}, err
	}
	return e, nil
}

func (r *repository) DeleteEquipment(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(equipmentTableName).
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

func (r *repository) CountEquipment(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(equipmentTableName))
}

func (r *repository) CountAvailableEquipment(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(equipmentTableName).
		Where(sq.Eq{"condition": model.ConditionGood}).
		Where(sq.Gt{"quantity": 0}))
}
