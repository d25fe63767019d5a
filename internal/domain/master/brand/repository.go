package brand

import "context"

type BrandRepository interface {
	Create(ctx context.Context, brand Brand) (Brand, error)
	GetByID(ctx context.Context, id string) (Brand, error)
	ListByClient(ctx context.Context, clientID string) ([]Brand, error)
	Update(ctx context.Context, req UpdateBrandRequest) error
	Delete(ctx context.Context, id string) error
}
