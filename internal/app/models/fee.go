package models

import "time"

// Fee is an amount charged to a student
type Fee struct {
	ID          int64      `db:"id"`
	StudentID   int64      `db:"student_id"`
	Amount      float64    `db:"amount"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Paid        bool       `db:"paid"`
}
