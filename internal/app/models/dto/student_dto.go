package dto

import (
	"time"

	"github.com/yigit/schoolapi/internal/app/models"
)

// StudentRequest is the field contract for creating and updating a student
type StudentRequest struct {
	FirstName      string  `json:"first_name" form:"first_name" binding:"required" example:"Ada"`
	LastName       string  `json:"last_name" form:"last_name" binding:"required" example:"Lovelace"`
	StudentID      string  `json:"student_id" form:"student_id" binding:"required" example:"S100"`
	Email          string  `json:"email" form:"email" binding:"required" example:"ada@example.com"`
	DateOfBirth    *string `json:"date_of_birth" form:"date_of_birth" example:"1815-12-10"`
	EnrollmentDate *string `json:"enrollment_date" form:"enrollment_date" example:"2024-09-01T09:00:00Z"`
}

// ToModel builds a student record
func (r *StudentRequest) ToModel() (*models.Student, error) {
	dateOfBirth, err := parseOptionalDate("date_of_birth", r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	enrollmentDate, err := parseOptionalDate("enrollment_date", r.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	return &models.Student{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		StudentID:      r.StudentID,
		Email:          r.Email,
		DateOfBirth:    dateOfBirth,
		EnrollmentDate: enrollmentDate,
	}, nil
}

// StudentResponse is the external representation of a student
type StudentResponse struct {
	ID             int64      `json:"id" example:"1"`
	FirstName      string     `json:"first_name" example:"Ada"`
	LastName       string     `json:"last_name" example:"Lovelace"`
	StudentID      string     `json:"student_id" example:"S100"`
	Email          string     `json:"email" example:"ada@example.com"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
}

// NewStudentResponse projects a student record
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:             student.ID,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		StudentID:      student.StudentID,
		Email:          student.Email,
		DateOfBirth:    student.DateOfBirth,
		EnrollmentDate: student.EnrollmentDate,
	}
}

// NewStudentListResponse projects a list of students
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
