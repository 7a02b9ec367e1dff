package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/app/controllers"
	"github.com/yigit/schoolapi/internal/middleware"
)

// Options controls where the routes are mounted
type Options struct {
	BasePath       string
	MetricsPath    string
	MetricsHandler http.Handler // nil disables the metrics endpoint
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	healthController *controllers.HealthController,
	opts Options,
) {
	router.NoRoute(middleware.NoRoute())
	router.GET("/ping", healthController.Ping)
	if opts.MetricsHandler != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	api := router.Group(opts.BasePath)
	api.GET("/health", healthController.Health)

	users := api.Group("/users")
	{
		users.GET("", ctrls.UserController.ListUsers)
		users.POST("", ctrls.UserController.CreateUser)
		users.GET("/:id", ctrls.UserController.GetUser)
		users.PATCH("/:id", ctrls.UserController.UpdateUser)
		users.DELETE("/:id", ctrls.UserController.DeleteUser)
	}

	teachers := api.Group("/teachers")
	{
		teachers.GET("", ctrls.TeacherController.ListTeachers)
		teachers.POST("", ctrls.TeacherController.CreateTeacher)
		teachers.GET("/:id", ctrls.TeacherController.GetTeacher)
		teachers.PUT("/:id", ctrls.TeacherController.UpdateTeacher)
		teachers.PATCH("/:id", ctrls.TeacherController.UpdateTeacher)
		teachers.DELETE("/:id", ctrls.TeacherController.DeleteTeacher)
	}

	students := api.Group("/students")
	{
		students.GET("", ctrls.StudentController.ListStudents)
		students.POST("", ctrls.StudentController.CreateStudent)
		students.GET("/:id", ctrls.StudentController.GetStudent)
		students.PUT("/:id", ctrls.StudentController.UpdateStudent)
		students.DELETE("/:id", ctrls.StudentController.DeleteStudent)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", ctrls.CourseController.ListCourses)
		courses.POST("", ctrls.CourseController.CreateCourse)
		courses.GET("/:id", ctrls.CourseController.GetCourse)
		courses.PUT("/:id", ctrls.CourseController.UpdateCourse)
		courses.PATCH("/:id", ctrls.CourseController.UpdateCourse)
		courses.DELETE("/:id", ctrls.CourseController.DeleteCourse)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", ctrls.EnrollmentController.ListEnrollments)
		enrollments.POST("", ctrls.EnrollmentController.CreateEnrollment)
		enrollments.GET("/:id", ctrls.EnrollmentController.GetEnrollment)
		enrollments.PATCH("/:id", ctrls.EnrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", ctrls.EnrollmentController.DeleteEnrollment)
	}

	fees := api.Group("/fees")
	{
		fees.GET("", ctrls.FeeController.ListFees)
		fees.POST("", ctrls.FeeController.CreateFee)
		fees.GET("/:id", ctrls.FeeController.GetFee)
		fees.PUT("/:id", ctrls.FeeController.UpdateFee)
		fees.PATCH("/:id", ctrls.FeeController.UpdateFee)
		fees.DELETE("/:id", ctrls.FeeController.DeleteFee)
	}
}
