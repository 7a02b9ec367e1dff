package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/db"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

var enrollmentColumns = []string{"id", "student_id", "course_id", "enrollment_date", "grade", "status"}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	baseRepository
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(database *db.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		baseRepository: baseRepository{db: database, table: "enrollments", entity: "enrollment"},
	}
}

func scanEnrollment(row rowScanner) (*models.Enrollment, error) {
	var (
		enrollment     models.Enrollment
		enrollmentDate sql.NullTime
		grade          sql.NullString
		status         string
	)
	if err := row.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollmentDate, &grade, &status); err != nil {
		return nil, err
	}
	enrollment.EnrollmentDate = helpers.TimePtr(enrollmentDate)
	enrollment.Grade = helpers.StringPtr(grade)
	enrollment.Status = models.EnrollmentStatus(status)
	return &enrollment, nil
}

func enrollmentValues(enrollment *models.Enrollment) map[string]interface{} {
	return map[string]interface{}{
		"student_id":      enrollment.StudentID,
		"course_id":       enrollment.CourseID,
		"enrollment_date": helpers.GetNullTime(enrollment.EnrollmentDate),
		"grade":           helpers.GetNullString(enrollment.Grade),
		"status":          string(enrollment.Status),
	}
}

// List retrieves all enrollments ordered by id
func (r *EnrollmentRepository) List(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments := []*models.Enrollment{}
	err := r.queryAll(ctx, enrollmentColumns, func(row rowScanner) error {
		enrollment, err := scanEnrollment(row)
		if err != nil {
			return err
		}
		enrollments = append(enrollments, enrollment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return r.get(ctx, r.db, id)
}

func (r *EnrollmentRepository) get(ctx context.Context, q db.Querier, id int64) (*models.Enrollment, error) {
	row, err := r.queryRow(ctx, q, enrollmentColumns, id)
	if err != nil {
		return nil, err
	}
	enrollment, err := scanEnrollment(row)
	if err != nil {
		return nil, r.scanError(err, id)
	}
	return enrollment, nil
}

// Create inserts an enrollment and returns the stored row
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	var created *models.Enrollment
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		id, err := r.insertReturningID(ctx, tx, r.db.Builder().Insert(r.table).SetMap(enrollmentValues(enrollment)))
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

// Update overwrites every field of an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	var updated *models.Enrollment
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.updateByID(ctx, tx, enrollment.ID, enrollmentValues(enrollment)); err != nil {
			return err
		}
		var err error
		updated, err = r.get(ctx, tx, enrollment.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
