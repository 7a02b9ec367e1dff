package models

import "time"

// Enrollment links a student to a course.
type Enrollment struct {
	ID             int64            `db:"id"`
	StudentID      int64            `db:"student_id"`
	CourseID       int64            `db:"course_id"`
	EnrollmentDate *time.Time       `db:"enrollment_date"`
	Grade          *string          `db:"grade"`
	Status         EnrollmentStatus `db:"status"`
}
