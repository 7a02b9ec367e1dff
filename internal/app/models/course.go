package models

// Course represents a course taught by a teacher.
type Course struct {
	ID        int64  `db:"id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	Credits   int    `db:"credits"`
	TeacherID int64  `db:"teacher_id"`
}
