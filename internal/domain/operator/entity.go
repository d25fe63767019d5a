package operator

import (
	"time"
)

// Role is the access level of an account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RolePlanner  Role = "planner"
	RoleOperator Role = "operator"
)

// Operator is a staff account: field operators punch shifts, planners manage
// the board, admins manage master data and accounts.
type Operator struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Phone        *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
