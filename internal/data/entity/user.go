package entity

type AccountType string

const (
	AccountCustomer AccountType = "customer"
	AccountShop     AccountType = "shop"
)

type User struct {
	Base
	Email        string      `db:"email"`
	FirstName    string      `db:"first_name"`
	LastName     string      `db:"last_name"`
	PasswordHash string      `db:"password"`
	Type         AccountType `db:"type"`
	Company      string      `db:"company"`
	Position     string      `db:"position"`
	IsActive     bool        `db:"is_active"`
}
