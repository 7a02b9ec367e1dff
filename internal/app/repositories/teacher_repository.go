package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/db"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

var teacherColumns = []string{"id", "first_name", "last_name", "phone", "department", "name", "credits", "hire_date"}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	baseRepository
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(database *db.DB) *TeacherRepository {
	return &TeacherRepository{
		baseRepository: baseRepository{db: database, table: "teachers", entity: "teacher"},
	}
}

func scanTeacher(row rowScanner) (*models.Teacher, error) {
	var (
		teacher    models.Teacher
		phone      sql.NullString
		department sql.NullString
		hireDate   sql.NullTime
	)
	if err := row.Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &phone, &department,
		&teacher.Name, &teacher.Credits, &hireDate); err != nil {
		return nil, err
	}
	teacher.Phone = helpers.StringPtr(phone)
	teacher.Department = helpers.StringPtr(department)
	teacher.HireDate = helpers.TimePtr(hireDate)
	return &teacher, nil
}

func teacherValues(teacher *models.Teacher) map[string]interface{} {
	return map[string]interface{}{
		"first_name": teacher.FirstName,
		"last_name":  teacher.LastName,
		"phone":      helpers.GetNullString(teacher.Phone),
		"department": helpers.GetNullString(teacher.Department),
		"name":       teacher.Name,
		"credits":    teacher.Credits,
		"hire_date":  helpers.GetNullTime(teacher.HireDate),
	}
}

// List retrieves all teachers ordered by id
func (r *TeacherRepository) List(ctx context.Context) ([]*models.Teacher, error) {
	teachers := []*models.Teacher{}
	err := r.queryAll(ctx, teacherColumns, func(row rowScanner) error {
		teacher, err := scanTeacher(row)
		if err != nil {
			return err
		}
		teachers = append(teachers, teacher)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.get(ctx, r.db, id)
}

func (r *TeacherRepository) get(ctx context.Context, q db.Querier, id int64) (*models.Teacher, error) {
	row, err := r.queryRow(ctx, q, teacherColumns, id)
	if err != nil {
		return nil, err
	}
	teacher, err := scanTeacher(row)
	if err != nil {
		return nil, r.scanError(err, id)
	}
	return teacher, nil
}

// Create inserts a teacher and returns the stored row
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	var created *models.Teacher
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		id, err := r.insertReturningID(ctx, tx, r.db.Builder().Insert(r.table).SetMap(teacherValues(teacher)))
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

// Update overwrites every field of an existing teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	var updated *models.Teacher
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.updateByID(ctx, tx, teacher.ID, teacherValues(teacher)); err != nil {
			return err
		}
		var err error
		updated, err = r.get(ctx, tx, teacher.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
