package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id int64, enrollment *models.Enrollment) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentServiceImpl struct {
	enrollmentRepo Store[models.Enrollment]
	studentRepo    existenceChecker
	courseRepo     existenceChecker
	opts           Options
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo Store[models.Enrollment],
	studentRepo existenceChecker,
	courseRepo existenceChecker,
	opts Options,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		opts:           opts,
		logger:         logger,
	}
}

func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.List(ctx)
	return listOrNotFound(enrollments, err, s.opts, "Enrollments not found")
}

func (s *enrollmentServiceImpl) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetByID(ctx, id)
}

// checkReferences makes sure the student and the course both exist
func (s *enrollmentServiceImpl) checkReferences(ctx context.Context, enrollment *models.Enrollment) error {
	if err := requireRelated(ctx, s.studentRepo, "student", "student_id", enrollment.StudentID); err != nil {
		return err
	}
	return requireRelated(ctx, s.courseRepo, "course", "course_id", enrollment.CourseID)
}

// CreateEnrollment enrolls a student in a course. The enrollment date defaults to now.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if err := s.checkReferences(ctx, enrollment); err != nil {
		return nil, err
	}
	if enrollment.Status == "" {
		enrollment.Status = models.DefaultEnrollmentStatus
	}
	if enrollment.EnrollmentDate == nil {
		now := helpers.NowUTC()
		enrollment.EnrollmentDate = &now
	}

	created, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("enrollmentID", created.ID).
		Int64("studentID", created.StudentID).
		Int64("courseID", created.CourseID).
		Msg("Enrollment created")
	return created, nil
}

func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id int64, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := requireExisting(ctx, s.enrollmentRepo, id, "Enrollment not found"); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, enrollment); err != nil {
		return nil, err
	}
	if enrollment.Status == "" {
		enrollment.Status = models.DefaultEnrollmentStatus
	}

	enrollment.ID = id
	return s.enrollmentRepo.Update(ctx, enrollment)
}

func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("enrollmentID", id).Msg("Enrollment deleted")
	return nil
}
