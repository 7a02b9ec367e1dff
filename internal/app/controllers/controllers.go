package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/app/services"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	UserController       *UserController
	TeacherController    *TeacherController
	StudentController    *StudentController
	CourseController     *CourseController
	EnrollmentController *EnrollmentController
	FeeController        *FeeController
}

// NewControllers creates one controller per resource
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		UserController:       NewUserController(svc.UserService),
		TeacherController:    NewTeacherController(svc.TeacherService),
		StudentController:    NewStudentController(svc.StudentService),
		CourseController:     NewCourseController(svc.CourseService),
		EnrollmentController: NewEnrollmentController(svc.EnrollmentService),
		FeeController:        NewFeeController(svc.FeeService),
	}
}

// parseID reads the positive integer id path parameter
func parseID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id", "id must be a positive integer")
	}
	return id, nil
}
