package entity

import "github.com/google/uuid"

type Shop struct {
	ID     int64     `db:"id"`
	Name   string    `db:"name"`
	URL    string    `db:"url"`
	UserID uuid.UUID `db:"user_id"`
	State  bool      `db:"state"`
}

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
