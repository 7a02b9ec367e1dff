package dto

import "github.com/yigit/schoolapi/internal/app/models"

// CourseRequest is the field contract for creating and updating a course
type CourseRequest struct {
	Code      string `json:"code" form:"code" binding:"required" example:"CS101"`
	Name      string `json:"name" form:"name" binding:"required" example:"Introduction to Programming"`
	Credits   *int   `json:"credits" form:"credits" example:"4"`
	TeacherID *int64 `json:"teacher_id" form:"teacher_id" binding:"required" example:"1"`
}

// ToModel builds a course record. Credits default to 0.
func (r *CourseRequest) ToModel() *models.Course {
	course := &models.Course{
		Code:      r.Code,
		Name:      r.Name,
		TeacherID: *r.TeacherID,
	}
	if r.Credits != nil {
		course.Credits = *r.Credits
	}
	return course
}

// CourseResponse is the external representation of a course
type CourseResponse struct {
	ID        int64  `json:"id" example:"1"`
	Code      string `json:"code" example:"CS101"`
	Name      string `json:"name" example:"Introduction to Programming"`
	Credits   int    `json:"credits" example:"4"`
	TeacherID int64  `json:"teacher_id" example:"1"`
}

// NewCourseResponse projects a course record
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:        course.ID,
		Code:      course.Code,
		Name:      course.Name,
		Credits:   course.Credits,
		TeacherID: course.TeacherID,
	}
}

// NewCourseListResponse projects a list of courses
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
