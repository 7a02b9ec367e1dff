package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

// TeacherService defines the interface for teacher operations
type TeacherService interface {
	ListTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id int64, teacher *models.Teacher) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// teacherServiceImpl implements TeacherService
type teacherServiceImpl struct {
	teacherRepo Store[models.Teacher]
	opts        Options
	logger      zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo Store[models.Teacher], opts Options, logger zerolog.Logger) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		opts:        opts,
		logger:      logger,
	}
}

// ListTeachers returns every teacher
func (s *teacherServiceImpl) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.List(ctx)
	return listOrNotFound(teachers, err, s.opts, "Teachers not found")
}

// GetTeacher retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.teacherRepo.GetByID(ctx, id)
}

// CreateTeacher stores a new teacher. The hire date defaults to now.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	if teacher.HireDate == nil {
		now := helpers.NowUTC()
		teacher.HireDate = &now
	}

	created, err := s.teacherRepo.Create(ctx, teacher)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("teacherID", created.ID).Msg("Teacher created")
	return created, nil
}

// UpdateTeacher overwrites every field of a teacher
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, teacher *models.Teacher) (*models.Teacher, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	teacher.ID = id
	return s.teacherRepo.Update(ctx, teacher)
}

// DeleteTeacher removes a teacher. Teachers still assigned to courses cannot be deleted.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("teacherID", id).Msg("Teacher deleted")
	return nil
}
