package dto

import (
	"time"

	"github.com/yigit/schoolapi/internal/app/models"
)

// EnrollmentRequest is the field contract for creating and updating an enrollment
type EnrollmentRequest struct {
	StudentID      *int64  `json:"student_id" form:"student_id" binding:"required" example:"1"`
	CourseID       *int64  `json:"course_id" form:"course_id" binding:"required" example:"1"`
	EnrollmentDate *string `json:"enrollment_date" form:"enrollment_date" example:"2024-09-01"`
	Grade          *string `json:"grade" form:"grade" example:"A"`
	Status         string  `json:"status" form:"status" binding:"omitempty,oneof=enrolled completed dropped active" example:"active"`
}

// ToModel builds an enrollment record. Status defaults to active.
func (r *EnrollmentRequest) ToModel() (*models.Enrollment, error) {
	enrollmentDate, err := parseOptionalDate("enrollment_date", r.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	status := models.EnrollmentStatus(r.Status)
	if status == "" {
		status = models.DefaultEnrollmentStatus
	}

	return &models.Enrollment{
		StudentID:      *r.StudentID,
		CourseID:       *r.CourseID,
		EnrollmentDate: enrollmentDate,
		Grade:          optionalString(r.Grade),
		Status:         status,
	}, nil
}

// EnrollmentResponse is the external representation of an enrollment
type EnrollmentResponse struct {
	ID             int64      `json:"id" example:"1"`
	StudentID      int64      `json:"student_id" example:"1"`
	CourseID       int64      `json:"course_id" example:"1"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	Grade          *string    `json:"grade"`
	Status         string     `json:"status" example:"active"`
}

// NewEnrollmentResponse projects an enrollment record
func NewEnrollmentResponse(enrollment *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:             enrollment.ID,
		StudentID:      enrollment.StudentID,
		CourseID:       enrollment.CourseID,
		EnrollmentDate: enrollment.EnrollmentDate,
		Grade:          enrollment.Grade,
		Status:         string(enrollment.Status),
	}
}

// NewEnrollmentListResponse projects a list of enrollments
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, NewEnrollmentResponse(e))
	}
	return out
}
