package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/app/repositories"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
)

// Store is the persistence contract the services need for one entity
type Store[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, item *T) (*T, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// Options tunes behaviour shared by every service
type Options struct {
	// EmptyListNotFound makes list operations fail with not found when there are no records
	EmptyListNotFound bool
}

// Services holds all the service instances
type Services struct {
	UserService       UserService
	TeacherService    TeacherService
	StudentService    StudentService
	CourseService     CourseService
	EnrollmentService EnrollmentService
	FeeService        FeeService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, opts Options, logger zerolog.Logger) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository, opts, logger),
		TeacherService:    NewTeacherService(repos.TeacherRepository, opts, logger),
		StudentService:    NewStudentService(repos.StudentRepository, opts, logger),
		CourseService:     NewCourseService(repos.CourseRepository, repos.TeacherRepository, opts, logger),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository, opts, logger),
		FeeService:        NewFeeService(repos.FeeRepository, repos.StudentRepository, opts, logger),
	}
}

// existenceChecker is the subset of a store used for referential pre-checks
type existenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

func validateID(id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "id must be a positive integer")
	}
	return nil
}

// requireRelated fails with a related-not-found error when the referenced row is missing
func requireRelated(ctx context.Context, store existenceChecker, entity, field string, id int64) error {
	if id <= 0 {
		return apperrors.NewRelatedNotFoundError(entity, field, id)
	}
	exists, err := store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", entity, err)
	}
	if !exists {
		return apperrors.NewRelatedNotFoundError(entity, field, id)
	}
	return nil
}

// requireExisting fails with not found when the row to update is missing
func requireExisting(ctx context.Context, store existenceChecker, id int64, message string) error {
	exists, err := store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewResourceNotFoundError(message)
	}
	return nil
}

// listOrNotFound applies the empty collection policy
func listOrNotFound[T any](items []*T, err error, opts Options, message string) ([]*T, error) {
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && opts.EmptyListNotFound {
		return nil, apperrors.NewResourceNotFoundError(message)
	}
	return items, nil
}

var (
	_ Store[models.User]       = (*repositories.UserRepository)(nil)
	_ Store[models.Teacher]    = (*repositories.TeacherRepository)(nil)
	_ Store[models.Student]    = (*repositories.StudentRepository)(nil)
	_ Store[models.Course]     = (*repositories.CourseRepository)(nil)
	_ Store[models.Enrollment] = (*repositories.EnrollmentRepository)(nil)
	_ Store[models.Fee]        = (*repositories.FeeRepository)(nil)
)
