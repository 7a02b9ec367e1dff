package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
)

// FeeService defines the interface for fee operations
type FeeService interface {
	ListFees(ctx context.Context) ([]*models.Fee, error)
	GetFee(ctx context.Context, id int64) (*models.Fee, error)
	CreateFee(ctx context.Context, fee *models.Fee) (*models.Fee, error)
	UpdateFee(ctx context.Context, id int64, fee *models.Fee) (*models.Fee, error)
	DeleteFee(ctx context.Context, id int64) error
}

type feeServiceImpl struct {
	feeRepo     Store[models.Fee]
	studentRepo existenceChecker
	opts        Options
	logger      zerolog.Logger
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo Store[models.Fee], studentRepo existenceChecker, opts Options, logger zerolog.Logger) FeeService {
	return &feeServiceImpl{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		opts:        opts,
		logger:      logger,
	}
}

func (s *feeServiceImpl) ListFees(ctx context.Context) ([]*models.Fee, error) {
	fees, err := s.feeRepo.List(ctx)
	return listOrNotFound(fees, err, s.opts, "Fees not found")
}

func (s *feeServiceImpl) GetFee(ctx context.Context, id int64) (*models.Fee, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.feeRepo.GetByID(ctx, id)
}

// CreateFee charges a fee to an existing student
func (s *feeServiceImpl) CreateFee(ctx context.Context, fee *models.Fee) (*models.Fee, error) {
	if err := requireRelated(ctx, s.studentRepo, "student", "student_id", fee.StudentID); err != nil {
		return nil, err
	}

	created, err := s.feeRepo.Create(ctx, fee)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("feeID", created.ID).Int64("studentID", created.StudentID).Msg("Fee created")
	return created, nil
}

func (s *feeServiceImpl) UpdateFee(ctx context.Context, id int64, fee *models.Fee) (*models.Fee, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := requireExisting(ctx, s.feeRepo, id, "Fee not found"); err != nil {
		return nil, err
	}
	if err := requireRelated(ctx, s.studentRepo, "student", "student_id", fee.StudentID); err != nil {
		return nil, err
	}

	fee.ID = id
	return s.feeRepo.Update(ctx, fee)
}

func (s *feeServiceImpl) DeleteFee(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.feeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("feeID", id).Msg("Fee deleted")
	return nil
}
