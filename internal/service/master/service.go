package master

import (
	"context"

	"github.com/turnario/turnario-backend-go/internal/domain/master/brand"
	"github.com/turnario/turnario-backend-go/internal/domain/master/client"
)

type MasterService interface {
	// Client operations
	CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error)
	GetClient(ctx context.Context, id string) (client.ClientResponse, error)
	ListClients(ctx context.Context, activeOnly bool) ([]client.ClientResponse, error)
	UpdateClient(ctx context.Context, req client.UpdateClientRequest) error
	DeleteClient(ctx context.Context, id string) error

	// Brand operations
	CreateBrand(ctx context.Context, req brand.CreateBrandRequest) (brand.BrandResponse, error)
	GetBrand(ctx context.Context, id string) (brand.BrandResponse, error)
	ListBrandsByClient(ctx context.Context, clientID string) ([]brand.BrandResponse, error)
	UpdateBrand(ctx context.Context, req brand.UpdateBrandRequest) error
	DeleteBrand(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	clientRepo client.ClientRepository
	brandRepo  brand.BrandRepository
}

func NewMasterService(
	clientRepo client.ClientRepository,
	brandRepo brand.BrandRepository,
) MasterService {
	return &masterServiceImpl{
		clientRepo: clientRepo,
		brandRepo:  brandRepo,
	}
}

// ==================== CLIENT OPERATIONS ====================

func (s *masterServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:      req.Name,
		VATNumber: req.VATNumber,
		IsActive:  true,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return toClientResponse(created), nil
}

func (s *masterServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	found, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toClientResponse(found), nil
}

func (s *masterServiceImpl) ListClients(ctx context.Context, activeOnly bool) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toClientResponse(c))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.clientRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteClient(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

// ==================== BRAND OPERATIONS ====================

func (s *masterServiceImpl) CreateBrand(ctx context.Context, req brand.CreateBrandRequest) (brand.BrandResponse, error) {
	if err := req.Validate(); err != nil {
		return brand.BrandResponse{}, err
	}

	// Brands hang off an existing client
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return brand.BrandResponse{}, err
	}

	created, err := s.brandRepo.Create(ctx, brand.Brand{
		ClientID: req.ClientID,
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		return brand.BrandResponse{}, err
	}

	return toBrandResponse(created), nil
}

func (s *masterServiceImpl) GetBrand(ctx context.Context, id string) (brand.BrandResponse, error) {
	found, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return brand.BrandResponse{}, err
	}
	return toBrandResponse(found), nil
}

func (s *masterServiceImpl) ListBrandsByClient(ctx context.Context, clientID string) ([]brand.BrandResponse, error) {
	brands, err := s.brandRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]brand.BrandResponse, 0, len(brands))
	for _, b := range brands {
		responses = append(responses, toBrandResponse(b))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateBrand(ctx context.Context, req brand.UpdateBrandRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.brandRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteBrand(ctx context.Context, id string) error {
	return s.brandRepo.Delete(ctx, id)
}

func toClientResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		VATNumber: c.VATNumber,
		IsActive:  c.IsActive,
	}
}

func toBrandResponse(b brand.Brand) brand.BrandResponse {
	return brand.BrandResponse{
		ID:       b.ID,
		ClientID: b.ClientID,
		Name:     b.Name,
		IsActive: b.IsActive,
	}
}
