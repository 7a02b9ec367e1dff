package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

// StudentService defines the interface for student operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, student *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo Store[models.Student]
	opts        Options
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo Store[models.Student], opts Options, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		opts:        opts,
		logger:      logger,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	return listOrNotFound(students, err, s.opts, "Students not found")
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent stores a new student. The enrollment date defaults to now.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.EnrollmentDate == nil {
		now := helpers.NowUTC()
		student.EnrollmentDate = &now
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("studentID", created.ID).Msg("Student created")
	return created, nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, student *models.Student) (*models.Student, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	student.ID = id
	return s.studentRepo.Update(ctx, student)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
