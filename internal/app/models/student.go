package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64      `db:"id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	StudentID      string     `db:"student_id"` // school-issued identifier, unique
	Email          string     `db:"email"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	EnrollmentDate *time.Time `db:"enrollment_date"`
}
