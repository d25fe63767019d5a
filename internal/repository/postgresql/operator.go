package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
)

type operatorRepositoryImpl struct {
	db *database.DB
}

func NewOperatorRepository(db *database.DB) operator.OperatorRepository {
	return &operatorRepositoryImpl{db: db}
}

const operatorColumns = `id, full_name, email, password_hash, phone, role, is_active, created_at, updated_at`

func scanOperator(row pgx.Row) (operator.Operator, error) {
	var op operator.Operator
	err := row.Scan(
		&op.ID,
		&op.FullName,
		&op.Email,
		&op.PasswordHash,
		&op.Phone,
		&op.Role,
		&op.IsActive,
		&op.CreatedAt,
		&op.UpdatedAt,
	)
	return op, err
}

// Create implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) Create(ctx context.Context, newOperator operator.Operator) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operators (full_name, email, password_hash, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + operatorColumns

	created, err := scanOperator(q.QueryRow(ctx, query,
		newOperator.FullName,
		newOperator.Email,
		newOperator.PasswordHash,
		newOperator.Phone,
		newOperator.Role,
		newOperator.IsActive,
	))
	if err != nil {
		return operator.Operator{}, fmt.Errorf("create operator: %w", err)
	}

	return created, nil
}

// GetByID implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) GetByID(ctx context.Context, id string) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operatorColumns + ` FROM operators WHERE id = $1`

	found, err := scanOperator(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return operator.Operator{}, operator.ErrOperatorNotFound
		}
		return operator.Operator{}, fmt.Errorf("get operator by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) GetByEmail(ctx context.Context, email string) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operatorColumns + ` FROM operators WHERE email = $1`

	found, err := scanOperator(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return operator.Operator{}, operator.ErrOperatorNotFound
		}
		return operator.Operator{}, fmt.Errorf("get operator by email: %w", err)
	}

	return found, nil
}

// GetByIDs implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]operator.Operator, error) {
	result := make(map[string]operator.Operator, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operatorColumns + ` FROM operators WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get operators by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		result[op.ID] = op
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operators: %w", err)
	}

	return result, nil
}

// List implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) List(ctx context.Context, role *operator.Role) ([]operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operatorColumns + ` FROM operators WHERE is_active = true`
	args := []interface{}{}

	if role != nil {
		query += ` AND role = $1`
		args = append(args, *role)
	}

	query += ` ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()

	var operators []operator.Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		operators = append(operators, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operators: %w", err)
	}

	return operators, nil
}

// Update implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) Update(ctx context.Context, op operator.Operator) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE operators
		SET full_name = $1, email = $2, password_hash = $3, phone = $4,
			role = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		op.FullName,
		op.Email,
		op.PasswordHash,
		op.Phone,
		op.Role,
		op.IsActive,
		op.ID,
	)
	if err != nil {
		return fmt.Errorf("update operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return operator.ErrOperatorNotFound
	}

	return nil
}

// Delete implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Accounts are deactivated, not removed, so history stays intact.
	tag, err := q.Exec(ctx, `UPDATE operators SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return operator.ErrOperatorNotFound
	}

	return nil
}
