package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo  Store[models.Course]
	teacherRepo existenceChecker
	opts        Options
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo Store[models.Course], teacherRepo existenceChecker, opts Options, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
		opts:        opts,
		logger:      logger,
	}
}

func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	return listOrNotFound(courses, err, s.opts, "Courses not found")
}

func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse stores a new course after checking its teacher exists
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := requireRelated(ctx, s.teacherRepo, "teacher", "teacher_id", course.TeacherID); err != nil {
		return nil, err
	}

	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("courseID", created.ID).Int64("teacherID", created.TeacherID).Msg("Course created")
	return created, nil
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, course *models.Course) (*models.Course, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := requireExisting(ctx, s.courseRepo, id, "Course not found"); err != nil {
		return nil, err
	}
	if err := requireRelated(ctx, s.teacherRepo, "teacher", "teacher_id", course.TeacherID); err != nil {
		return nil, err
	}

	course.ID = id
	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse removes a course. Courses with enrollments cannot be deleted.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
