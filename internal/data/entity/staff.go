package entity

import "github.com/google/uuid"

type Staff struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Position   string    `db:"position"`
	Department string    `db:"department"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	JoinDate   string    `db:"join_date"`
	Status     string    `db:"status"` // Active by default
}
