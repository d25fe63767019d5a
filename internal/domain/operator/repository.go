package operator

import (
	"context"
)

// OperatorRepository defines data access methods for operator accounts.
type OperatorRepository interface {
	Create(ctx context.Context, operator Operator) (Operator, error)

	GetByID(ctx context.Context, id string) (Operator, error)

	GetByEmail(ctx context.Context, email string) (Operator, error)

	// GetByIDs retrieves several operators at once, keyed by ID. Missing
	// IDs are simply absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]Operator, error)

	// List retrieves active operators, optionally restricted to a role.
	List(ctx context.Context, role *Role) ([]Operator, error)

	Update(ctx context.Context, operator Operator) error

	Delete(ctx context.Context, id string) error
}
