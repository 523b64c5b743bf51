package entity

import "github.com/google/uuid"

type Contact struct {
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	City      string    `db:"city"`
	Street    string    `db:"street"`
	House     string    `db:"house"`
	Structure string    `db:"structure"`
	Building  string    `db:"building"`
	Apartment string    `db:"apartment"`
	Phone     string    `db:"phone"`
}
