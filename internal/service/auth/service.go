package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/turnario/turnario-backend-go/internal/domain/auth"
	"github.com/turnario/turnario-backend-go/internal/domain/operator"
	"github.com/turnario/turnario-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	operatorRepo operator.OperatorRepository
	jwtService   jwt.Service
}

func NewAuthService(operatorRepo operator.OperatorRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		jwtService:   jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issueTokens(op operator.Operator) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(op.ID, op.Email, op.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(op.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.OperatorID = op.ID
	tokenResponse.FullName = op.FullName
	tokenResponse.Role = string(op.Role)

	return tokenResponse, nil
}

// Register implements auth.AuthService.
// New accounts start with the operator role; planners and admins are promoted
// by an admin afterwards.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	_, err := a.operatorRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.TokenResponse{}, operator.ErrEmailExists
	}
	if !errors.Is(err, operator.ErrOperatorNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.operatorRepo.Create(ctx, operator.Operator{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         operator.RoleOperator,
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create operator: %w", err)
	}

	return a.issueTokens(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	op, err := a.operatorRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, operator.ErrOperatorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get operator by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !op.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountDeactivated
	}

	return a.issueTokens(op)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check revocation
	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get operator
	operatorID, ok := claims["user_id"].(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	op, err := a.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !op.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountDeactivated
	}

	// 5. Generate new access token, keep the refresh token as is
	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(op.ID, op.Email, op.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	tokenResponse.OperatorID = op.ID
	tokenResponse.FullName = op.FullName
	tokenResponse.Role = string(op.Role)

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if !a.jwtService.IsTokenRevoked(refreshToken) {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}
