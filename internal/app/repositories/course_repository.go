package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/db"
)

var courseColumns = []string{"id", "code", "name", "credits", "teacher_id"}

// CourseRepository handles course database operations
type CourseRepository struct {
	baseRepository
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *db.DB) *CourseRepository {
	return &CourseRepository{
		baseRepository: baseRepository{db: database, table: "courses", entity: "course"},
	}
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var course models.Course
	if err := row.Scan(&course.ID, &course.Code, &course.Name, &course.Credits, &course.TeacherID); err != nil {
		return nil, err
	}
	return &course, nil
}

func courseValues(course *models.Course) map[string]interface{} {
	return map[string]interface{}{
		"code":       course.Code,
		"name":       course.Name,
		"credits":    course.Credits,
		"teacher_id": course.TeacherID,
	}
}

// List retrieves all courses ordered by id
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	courses := []*models.Course{}
	err := r.queryAll(ctx, courseColumns, func(row rowScanner) error {
		course, err := scanCourse(row)
		if err != nil {
			return err
		}
		courses = append(courses, course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.get(ctx, r.db, id)
}

func (r *CourseRepository) get(ctx context.Context, q db.Querier, id int64) (*models.Course, error) {
	row, err := r.queryRow(ctx, q, courseColumns, id)
	if err != nil {
		return nil, err
	}
	course, err := scanCourse(row)
	if err != nil {
		return nil, r.scanError(err, id)
	}
	return course, nil
}

// Create inserts a course and returns the stored row
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	var created *models.Course
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		id, err := r.insertReturningID(ctx, tx, r.db.Builder().Insert(r.table).SetMap(courseValues(course)))
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

// Update overwrites every field of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	var updated *models.Course
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.updateByID(ctx, tx, course.ID, courseValues(course)); err != nil {
			return err
		}
		var err error
		updated, err = r.get(ctx, tx, course.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
