package entity

import "time"

// Roles válidos para User.
const (
	RoleUser    = "USER"
	RoleAuditor = "AUDITOR"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	City         string
	Province     string
	Role         string // USER, AUDITOR
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAuditor
}
