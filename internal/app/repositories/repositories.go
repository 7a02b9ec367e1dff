package repositories

import (
	"github.com/yigit/schoolapi/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TeacherRepository    *TeacherRepository
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	FeeRepository        *FeeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database),
		TeacherRepository:    NewTeacherRepository(database),
		StudentRepository:    NewStudentRepository(database),
		CourseRepository:     NewCourseRepository(database),
		EnrollmentRepository: NewEnrollmentRepository(database),
		FeeRepository:        NewFeeRepository(database),
	}
}
