package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/master/brand"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
)

type brandRepositoryImpl struct {
	db *database.DB
}

func NewBrandRepository(db *database.DB) brand.BrandRepository {
	return &brandRepositoryImpl{db: db}
}

const brandColumns = `id, client_id, name, is_active, created_at, updated_at`

func scanBrand(row pgx.Row) (brand.Brand, error) {
	var b brand.Brand
	err := row.Scan(
		&b.ID,
		&b.ClientID,
		&b.Name,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// Create implements brand.BrandRepository.
func (r *brandRepositoryImpl) Create(ctx context.Context, newBrand brand.Brand) (brand.Brand, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM brands WHERE client_id = $1 AND LOWER(name) = LOWER($2))`,
		newBrand.ClientID, newBrand.Name,
	).Scan(&exists)
	if err != nil {
		return brand.Brand{}, fmt.Errorf("check brand name: %w", err)
	}
	if exists {
		return brand.Brand{}, brand.ErrBrandNameExists
	}

	query := `
		INSERT INTO brands (client_id, name, is_active)
		VALUES ($1, $2, true)
		RETURNING ` + brandColumns

	created, err := scanBrand(q.QueryRow(ctx, query, newBrand.ClientID, newBrand.Name))
	if err != nil {
		return brand.Brand{}, fmt.Errorf("create brand: %w", err)
	}

	return created, nil
}

// GetByID implements brand.BrandRepository.
func (r *brandRepositoryImpl) GetByID(ctx context.Context, id string) (brand.Brand, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanBrand(q.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return brand.Brand{}, brand.ErrBrandNotFound
		}
		return brand.Brand{}, fmt.Errorf("get brand by id: %w", err)
	}

	return found, nil
}

// ListByClient implements brand.BrandRepository.
func (r *brandRepositoryImpl) ListByClient(ctx context.Context, clientID string) ([]brand.Brand, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + brandColumns + ` FROM brands WHERE client_id = $1 AND is_active = true ORDER BY name ASC`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list brands by client: %w", err)
	}
	defer rows.Close()

	var brands []brand.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brands: %w", err)
	}

	return brands, nil
}

// Update implements brand.BrandRepository.
func (r *brandRepositoryImpl) Update(ctx context.Context, req brand.UpdateBrandRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE brands SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(`, name = $%d`, argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.IsActive != nil {
		query += fmt.Sprintf(`, is_active = $%d`, argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(` WHERE id = $%d`, argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return brand.ErrBrandNotFound
	}

	return nil
}

// Delete implements brand.BrandRepository.
func (r *brandRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE brands SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return brand.ErrBrandNotFound
	}

	return nil
}
