package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/db"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

var studentColumns = []string{"id", "first_name", "last_name", "student_id", "email", "date_of_birth", "enrollment_date"}

// StudentRepository handles student database operations
type StudentRepository struct {
	baseRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.DB) *StudentRepository {
	return &StudentRepository{
		baseRepository: baseRepository{db: database, table: "students", entity: "student"},
	}
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		student        models.Student
		dateOfBirth    sql.NullTime
		enrollmentDate sql.NullTime
	)
	if err := row.Scan(&student.ID, &student.FirstName, &student.LastName, &student.StudentID,
		&student.Email, &dateOfBirth, &enrollmentDate); err != nil {
		return nil, err
	}
	student.DateOfBirth = helpers.TimePtr(dateOfBirth)
	student.EnrollmentDate = helpers.TimePtr(enrollmentDate)
	return &student, nil
}

func studentValues(student *models.Student) map[string]interface{} {
	return map[string]interface{}{
		"first_name":      student.FirstName,
		"last_name":       student.LastName,
		"student_id":      student.StudentID,
		"email":           student.Email,
		"date_of_birth":   helpers.GetNullTime(student.DateOfBirth),
		"enrollment_date": helpers.GetNullTime(student.EnrollmentDate),
	}
}

// List retrieves all students ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	err := r.queryAll(ctx, studentColumns, func(row rowScanner) error {
		student, err := scanStudent(row)
		if err != nil {
			return err
		}
		students = append(students, student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.get(ctx, r.db, id)
}

func (r *StudentRepository) get(ctx context.Context, q db.Querier, id int64) (*models.Student, error) {
	row, err := r.queryRow(ctx, q, studentColumns, id)
	if err != nil {
		return nil, err
	}
	student, err := scanStudent(row)
	if err != nil {
		return nil, r.scanError(err, id)
	}
	return student, nil
}

// Create inserts a student and returns the stored row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	var created *models.Student
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		id, err := r.insertReturningID(ctx, tx, r.db.Builder().Insert(r.table).SetMap(studentValues(student)))
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

// Update overwrites every field of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	var updated *models.Student
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.updateByID(ctx, tx, student.ID, studentValues(student)); err != nil {
			return err
		}
		var err error
		updated, err = r.get(ctx, tx, student.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
