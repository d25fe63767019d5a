package operator

import "errors"

// Operator domain errors
var (
	ErrOperatorNotFound = errors.New("operator not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrOperatorInactive = errors.New("operator account is deactivated")

	ErrPlannerAccessRequired = errors.New("planner access required")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
