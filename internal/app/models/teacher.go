package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID         int64      `db:"id"`
	FirstName  string     `db:"first_name"`
	LastName   string     `db:"last_name"`
	Phone      *string    `db:"phone"`
	Department *string    `db:"department"`
	Name       string     `db:"name"` // unique display name
	Credits    int        `db:"credits"`
	HireDate   *time.Time `db:"hire_date"`
}
