package entity

import "github.com/google/uuid"

// ConfirmEmailToken is the single-use key mailed at registration.
type ConfirmEmailToken struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Key    string    `db:"key"`
}
