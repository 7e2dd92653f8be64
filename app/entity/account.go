package entity

import "time"

const (
	AccountRoleUser    = "user"
	AccountRoleManager = "manager"
)

type Account struct {
	ID uint64

	Email string
	Name  string
	Role  string

	CreatedAt time.Time
}

func ValidAccountRole(role string) bool {
	return role == AccountRoleUser || role == AccountRoleManager
}
