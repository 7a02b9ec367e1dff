package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/db"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

var feeColumns = []string{"id", "student_id", "amount", "description", "due_date", "paid"}

// FeeRepository handles fee database operations
type FeeRepository struct {
	baseRepository
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(database *db.DB) *FeeRepository {
	return &FeeRepository{
		baseRepository: baseRepository{db: database, table: "fees", entity: "fee"},
	}
}

func scanFee(row rowScanner) (*models.Fee, error) {
	var (
		fee         models.Fee
		description sql.NullString
		dueDate     sql.NullTime
	)
	if err := row.Scan(&fee.ID, &fee.StudentID, &fee.Amount, &description, &dueDate, &fee.Paid); err != nil {
		return nil, err
	}
	fee.Description = helpers.StringPtr(description)
	fee.DueDate = helpers.TimePtr(dueDate)
	return &fee, nil
}

func feeValues(fee *models.Fee) map[string]interface{} {
	return map[string]interface{}{
		"student_id":  fee.StudentID,
		"amount":      fee.Amount,
		"description": helpers.GetNullString(fee.Description),
		"due_date":    helpers.GetNullTime(fee.DueDate),
		"paid":        fee.Paid,
	}
}

// List retrieves all fees ordered by id
func (r *FeeRepository) List(ctx context.Context) ([]*models.Fee, error) {
	fees := []*models.Fee{}
	err := r.queryAll(ctx, feeColumns, func(row rowScanner) error {
		fee, err := scanFee(row)
		if err != nil {
			return err
		}
		fees = append(fees, fee)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// GetByID retrieves a fee by ID
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	return r.get(ctx, r.db, id)
}

func (r *FeeRepository) get(ctx context.Context, q db.Querier, id int64) (*models.Fee, error) {
	row, err := r.queryRow(ctx, q, feeColumns, id)
	if err != nil {
		return nil, err
	}
	fee, err := scanFee(row)
	if err != nil {
		return nil, r.scanError(err, id)
	}
	return fee, nil
}

// Create inserts a fee and returns the stored row
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) (*models.Fee, error) {
	var created *models.Fee
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		id, err := r.insertReturningID(ctx, tx, r.db.Builder().Insert(r.table).SetMap(feeValues(fee)))
		if err != nil {
			return err
		}
		created, err = r.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites every field of an existing fee
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) (*models.Fee, error) {
	var updated *models.Fee
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.updateByID(ctx, tx, fee.ID, feeValues(fee)); err != nil {
			return err
		}
		var err error
		updated, err = r.get(ctx, tx, fee.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
