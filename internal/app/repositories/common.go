package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schoolapi/internal/db"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
	"github.com/yigit/schoolapi/internal/pkg/dberrors"
	"github.com/yigit/schoolapi/internal/pkg/logger"
)

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// baseRepository carries the table-level operations every entity shares
type baseRepository struct {
	db     *db.DB
	table  string
	entity string
}

func (r *baseRepository) notFound() error {
	return apperrors.NewResourceNotFoundError(strings.ToUpper(r.entity[:1]) + r.entity[1:] + " not found")
}

// Exists reports whether a row with the given id exists
func (r *baseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.db.Builder().Select("1").
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Int64("id", id).Msg("Error checking existence")
		return false, fmt.Errorf("error checking %s existence: %w", r.entity, err)
	}
	return true, nil
}

// Delete removes a row by id in its own transaction
func (r *baseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().Delete(r.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return r.deleteError(err, id)
		}
		return r.expectOneRow(result)
	})
}

func (r *baseRepository) expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return r.notFound()
	}
	return nil
}

// writeError classifies a failed insert or update
func (r *baseRepository) writeError(err error, op string) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, dberrors.Describe(err))
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewCustomError(apperrors.ErrRelatedNotFound, dberrors.Describe(err))
	case dberrors.IsClientDataError(err):
		return apperrors.NewCustomError(apperrors.ErrPersistence, dberrors.Describe(err))
	}
	logger.Error().Err(err).Str("table", r.table).Str("op", op).Msg("Error executing write query")
	return fmt.Errorf("error during %s %s: %w", op, r.entity, err)
}

// deleteError classifies a failed delete. A foreign key failure means the row is still referenced.
func (r *baseRepository) deleteError(err error, id int64) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.NewCustomError(apperrors.ErrResourceHasRelations,
			fmt.Sprintf("%s %d is still referenced by other records", r.entity, id))
	}
	if dberrors.IsClientDataError(err) {
		return apperrors.NewCustomError(apperrors.ErrPersistence, dberrors.Describe(err))
	}
	logger.Error().Err(err).Str("table", r.table).Int64("id", id).Msg("Error executing delete query")
	return fmt.Errorf("error deleting %s: %w", r.entity, err)
}

// insertReturningID runs an insert and returns the generated id
func (r *baseRepository) insertReturningID(ctx context.Context, q db.Querier, insert squirrel.InsertBuilder) (int64, error) {
	query, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, r.writeError(err, "create")
	}
	return id, nil
}

// updateByID runs an update and reports not found when no row matched
func (r *baseRepository) updateByID(ctx context.Context, q db.Querier, id int64, values map[string]interface{}) error {
	query, args, err := r.db.Builder().Update(r.table).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building update SQL")
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return r.writeError(err, "update")
	}
	return r.expectOneRow(result)
}

// queryRow selects a single row by id using the given columns
func (r *baseRepository) queryRow(ctx context.Context, q db.Querier, columns []string, id int64) (*sql.Row, error) {
	query, args, err := r.db.Builder().Select(columns...).
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building get by ID SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", r.entity, err)
	}
	return q.QueryRowContext(ctx, query, args...), nil
}

// scanError maps a single-row scan failure
func (r *baseRepository) scanError(err error, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return r.notFound()
	}
	logger.Error().Err(err).Str("table", r.table).Int64("id", id).Msg("Error scanning row")
	return fmt.Errorf("error getting %s by ID: %w", r.entity, err)
}

// queryAll selects every row ordered by id and hands each to scan
func (r *baseRepository) queryAll(ctx context.Context, columns []string, scan func(rowScanner) error) error {
	query, args, err := r.db.Builder().Select(columns...).
		From(r.table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building list SQL")
		return fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing list query")
		return fmt.Errorf("error querying %s: %w", r.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			logger.Error().Err(err).Str("table", r.table).Msg("Error scanning row during list")
			return fmt.Errorf("error scanning %s row: %w", r.entity, err)
		}
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error iterating rows")
		return fmt.Errorf("error iterating %s rows: %w", r.entity, err)
	}
	return nil
}
