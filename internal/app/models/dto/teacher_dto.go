package dto

import (
	"time"

	"github.com/yigit/schoolapi/internal/app/models"
)

// TeacherRequest is the field contract for creating and updating a teacher
type TeacherRequest struct {
	FirstName  string  `json:"first_name" form:"first_name" binding:"required" example:"Grace"`
	LastName   string  `json:"last_name" form:"last_name" binding:"required" example:"Hopper"`
	Name       string  `json:"name" form:"name" binding:"required" example:"G. Hopper"`
	Phone      *string `json:"phone" form:"phone" example:"555-0100"`
	Department *string `json:"department" form:"department" example:"Computer Science"`
	Credits    *int    `json:"credits" form:"credits" example:"3"`
	HireDate   *string `json:"hire_date" form:"hire_date" example:"2024-09-01"`
}

// ToModel builds a teacher record. Credits default to 0; an absent hire date stays nil.
func (r *TeacherRequest) ToModel() (*models.Teacher, error) {
	hireDate, err := parseOptionalDate("hire_date", r.HireDate)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Name:       r.Name,
		Phone:      optionalString(r.Phone),
		Department: optionalString(r.Department),
		HireDate:   hireDate,
	}
	if r.Credits != nil {
		teacher.Credits = *r.Credits
	}
	return teacher, nil
}

// TeacherResponse is the external representation of a teacher
type TeacherResponse struct {
	ID         int64      `json:"id" example:"1"`
	FirstName  string     `json:"first_name" example:"Grace"`
	LastName   string     `json:"last_name" example:"Hopper"`
	Name       string     `json:"name" example:"G. Hopper"`
	Phone      *string    `json:"phone"`
	Department *string    `json:"department"`
	Credits    int        `json:"credits" example:"3"`
	HireDate   *time.Time `json:"hire_date"`
}

// NewTeacherResponse projects a teacher record
func NewTeacherResponse(teacher *models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:         teacher.ID,
		FirstName:  teacher.FirstName,
		LastName:   teacher.LastName,
		Name:       teacher.Name,
		Phone:      teacher.Phone,
		Department: teacher.Department,
		Credits:    teacher.Credits,
		HireDate:   teacher.HireDate,
	}
}

// NewTeacherListResponse projects a list of teachers
func NewTeacherListResponse(teachers []*models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, NewTeacherResponse(t))
	}
	return out
}
