package dto

import (
	"time"

	"github.com/yigit/schoolapi/internal/app/models"
)

// FeeRequest is the field contract for creating and updating a fee
type FeeRequest struct {
	StudentID   *int64   `json:"student_id" form:"student_id" binding:"required" example:"1"`
	Amount      *float64 `json:"amount" form:"amount" binding:"required" example:"250.00"`
	Description *string  `json:"description" form:"description" example:"Lab fee"`
	DueDate     *string  `json:"due_date" form:"due_date" example:"2024-10-01"`
	Paid        *bool    `json:"paid" form:"paid" example:"false"`
}

// ToModel builds a fee record. Paid defaults to false.
func (r *FeeRequest) ToModel() (*models.Fee, error) {
	dueDate, err := parseOptionalDate("due_date", r.DueDate)
	if err != nil {
		return nil, err
	}

	fee := &models.Fee{
		StudentID:   *r.StudentID,
		Amount:      *r.Amount,
		Description: optionalString(r.Description),
		DueDate:     dueDate,
	}
	if r.Paid != nil {
		fee.Paid = *r.Paid
	}
	return fee, nil
}

// FeeResponse is the external representation of a fee
type FeeResponse struct {
	ID          int64      `json:"id" example:"1"`
	StudentID   int64      `json:"student_id" example:"1"`
	Amount      float64    `json:"amount" example:"250.00"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Paid        bool       `json:"paid" example:"false"`
}

// NewFeeResponse projects a fee record
func NewFeeResponse(fee *models.Fee) FeeResponse {
	return FeeResponse{
		ID:          fee.ID,
		StudentID:   fee.StudentID,
		Amount:      fee.Amount,
		Description: fee.Description,
		DueDate:     fee.DueDate,
		Paid:        fee.Paid,
	}
}

// NewFeeListResponse projects a list of fees
func NewFeeListResponse(fees []*models.Fee) []FeeResponse {
	out := make([]FeeResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, NewFeeResponse(f))
	}
	return out
}
