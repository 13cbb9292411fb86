package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/borrowing-service/internal/errs"
	"github.com/sarpras/borrowing-service/internal/model"
)

var requestColumns = []string{
	"id", "user_id", "item_type", "item_id", "quantity",
	"start_date", "end_date", "status", "note", "created_at", "updated_at",
}

// detailSelect joins the item summary in. The item reference is a tagged
// union, so both catalogs are LEFT JOINed and the columns stay null when
// the reference no longer resolves.
func detailSelect() sq.SelectBuilder {
	return qb.Select(
		"br.id", "br.user_id", "br.item_type", "br.item_id", "br.quantity",
		"br.start_date", "br.end_date", "br.status", "br.note", "br.created_at", "br.updated_at",
		"CASE WHEN br.item_type = 'equipment' THEN e.name ELSE r.name END AS item_name",
		"e.category AS item_category",
		"r.location AS item_location",
		"u.name AS owner_name",
	).
		From(requestsTableName + " br").
		LeftJoin(equipmentTableName + " e ON br.item_type = 'equipment' AND e.id = br.item_id").
		LeftJoin(roomsTableName + " r ON br.item_type = 'room' AND r.id = br.item_id").
		LeftJoin(usersTableName + " u ON u.id = br.user_id")
}

func (r *repository) CreateRequest(ctx context.Context, userID int64, req model.CreateBorrowingRequest, quantity int) (model.BorrowingRequest, error) {
	q, args, err := qb.Insert(requestsTableName).
		Columns("user_id", "item_type", "item_id", "quantity", "start_date", "end_date", "status", "note").
		Values(userID, req.ItemType, req.ItemID, quantity, req.StartDate, req.EndDate, model.StatusPending, req.Note).
		Suffix("RETURNING " + joinColumns(requestColumns)).
		ToSql()
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	var res model.BorrowingRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.BorrowingRequest{}, errs.NewValidationError(map[string]string{
				"userId": "unknown user",
			})
		}
		r.log.Error("CreateRequest", zap.String("q", q), zap.Any("args", args))
		return model.BorrowingRequest{}, err
	}
	return res, nil
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.BorrowingRequestDetail, error) {
	query, args, err := detailSelect().
		Where(sq.Eq{"br.id": id}).
		ToSql()
	if err != nil {
		return model.BorrowingRequestDetail{}, err
	}

	var d model.BorrowingRequestDetail
	if err := r.db.GetContext(ctx, &d, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRequestDetail{}, errs.ErrNotFound
		}
		return model.BorrowingRequestDetail{}, err
	}
	return d, nil
}

func (r *repository) ListRequests(ctx context.Context, ownerID *int64, page, size int) ([]model.BorrowingRequestDetail, int, error) {
	q := detailSelect().OrderBy("br.created_at DESC", "br.id DESC")
	if ownerID != nil {
		q = q.Where(sq.Eq{"br.user_id": *ownerID})
	}
	q = paginate(q, page, size)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var items []model.BorrowingRequestDetail
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}

	total, err := r.CountRequests(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) RecentRequests(ctx context.Context, ownerID *int64, limit int) ([]model.BorrowingRequestDetail, error) {
	q := detailSelect().
		OrderBy("br.created_at DESC", "br.id DESC").
		Limit(uint64(limit))
	if ownerID != nil {
		q = q.Where(sq.Eq{"br.user_id": *ownerID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.BorrowingRequestDetail
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateRequestStatus replaces the status unconditionally: any status may
// be set from any other, and repeating the same status is a no-op update.
func (r *repository) UpdateRequestStatus(ctx context.Context, id int64, status model.Status) (model.BorrowingRequest, error) {
	q, args, err := qb.Update(requestsTableName).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(requestColumns)).
		ToSql()
	if err != nil {
		return model.BorrowingRequest{}, err
	}

	var res model.BorrowingRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRequest{}, errs.ErrNotFound
		}
		return model.BorrowingRequest{}, err
	}
	return res, nil
}

func (r *repository) DeleteRequest(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(requestsTableName).
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

func (r *repository) CountRequests(ctx context.Context, ownerID *int64) (int, error) {
	q := qb.Select("count(*)").From(requestsTableName)
	if ownerID != nil {
		q = q.Where(sq.Eq{"user_id": *ownerID})
	}
	return r.count(ctx, q)
}

func (r *repository) CountPendingRequests(ctx context.Context, ownerID *int64) (int, error) {
	q := qb.Select("count(*)").
		From(requestsTableName).
		Where(sq.Eq{"status": model.StatusPending})
	if ownerID != nil {
		q = q.Where(sq.Eq{"user_id": *ownerID})
	}
	return r.count(ctx, q)
}
