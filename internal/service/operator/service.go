package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/domain/planning"
)

// OperatorService manages staff accounts. Creation and role changes are
// admin operations, deletion deactivates instead of removing.
type OperatorService interface {
	Create(ctx context.Context, req operator.CreateOperatorRequest) (operator.OperatorResponse, error)
	Get(ctx context.Context, id string) (operator.OperatorResponse, error)
	List(ctx context.Context, role *operator.Role) ([]operator.OperatorResponse, error)
	Update(ctx context.Context, req operator.UpdateOperatorRequest) (operator.OperatorResponse, error)
	Delete(ctx context.Context, id string) error
}

type OperatorServiceImpl struct {
	operatorRepo operator.OperatorRepository
}

func NewOperatorService(operatorRepo operator.OperatorRepository) OperatorService {
	return &OperatorServiceImpl{operatorRepo: operatorRepo}
}

// Create implements OperatorService.
func (s *OperatorServiceImpl) Create(ctx context.Context, req operator.CreateOperatorRequest) (operator.OperatorResponse, error) {
	if err := req.Validate(); err != nil {
		return operator.OperatorResponse{}, err
	}

	_, err := s.operatorRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return operator.OperatorResponse{}, operator.ErrEmailExists
	}
	if !errors.Is(err, operator.ErrOperatorNotFound) {
		return operator.OperatorResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return operator.OperatorResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.operatorRepo.Create(ctx, operator.Operator{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         operator.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return operator.OperatorResponse{}, err
	}

	return toOperatorResponse(created), nil
}

// Get implements OperatorService.
func (s *OperatorServiceImpl) Get(ctx context.Context, id string) (operator.OperatorResponse, error) {
	found, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		return operator.OperatorResponse{}, err
	}
	return toOperatorResponse(found), nil
}

// List implements OperatorService.
func (s *OperatorServiceImpl) List(ctx context.Context, role *operator.Role) ([]operator.OperatorResponse, error) {
	operators, err := s.operatorRepo.List(ctx, role)
	if err != nil {
		return nil, err
	}

	responses := make([]operator.OperatorResponse, 0, len(operators))
	for _, op := range operators {
		responses = append(responses, toOperatorResponse(op))
	}
	return responses, nil
}

// Update implements OperatorService.
func (s *OperatorServiceImpl) Update(ctx context.Context, req operator.UpdateOperatorRequest) (operator.OperatorResponse, error) {
	if err := req.Validate(); err != nil {
		return operator.OperatorResponse{}, err
	}

	op, err := s.operatorRepo.GetByID(ctx, req.ID)
	if err != nil {
		return operator.OperatorResponse{}, err
	}

	if req.Email != nil && *req.Email != op.Email {
		existing, err := s.operatorRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != op.ID {
			return operator.OperatorResponse{}, operator.ErrEmailExists
		}
		if err != nil && !errors.Is(err, operator.ErrOperatorNotFound) {
			return operator.OperatorResponse{}, fmt.Errorf("failed to check existing email: %w", err)
		}
		op.Email = *req.Email
	}
	if req.FullName != nil {
		op.FullName = *req.FullName
	}
	if req.Phone != nil {
		op.Phone = req.Phone
	}
	if req.Role != nil {
		op.Role = operator.Role(*req.Role)
	}
	if req.IsActive != nil {
		op.IsActive = *req.IsActive
	}

	if err := s.operatorRepo.Update(ctx, op); err != nil {
		return operator.OperatorResponse{}, err
	}

	updated, err := s.operatorRepo.GetByID(ctx, req.ID)
	if err != nil {
		return operator.OperatorResponse{}, err
	}
	return toOperatorResponse(updated), nil
}

// Delete implements OperatorService.
func (s *OperatorServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.operatorRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.operatorRepo.Delete(ctx, id)
}

func toOperatorResponse(op operator.Operator) operator.OperatorResponse {
	return operator.OperatorResponse{
		ID:          op.ID,
		FullName:    op.FullName,
		DisplayName: planning.DisplayName(op.FullName),
		Email:       op.Email,
		Phone:       op.Phone,
		Role:        string(op.Role),
		IsActive:    op.IsActive,
		CreatedAt:   op.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   op.UpdatedAt.Format(time.RFC3339),
	}
}
