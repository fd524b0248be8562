package services

import (
	"context"

	"github.com/quala/sucursales_api/internal/core/domain"
	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/internal/utils"
)

// CredentialValidatorSvc checks a username/password pair.
type CredentialValidatorSvc interface {
	// ValidateUser returns the user when the credentials match an active account, nil otherwise.
	ValidateUser(ctx context.Context, nombreUsuario, password string) (*domain.Usuario, error)
}

// TokenValidatorSvc validates bearer tokens issued by this service.
type TokenValidatorSvc interface {
	ValidateToken(tokenString string) (*utils.TokenClaims, error)
}

// AuthSvcFacade combines credential validation, token issuance and token validation.
type AuthSvcFacade interface {
	CredentialValidatorSvc
	TokenValidatorSvc

	// Login validates the credentials and issues a signed token.
	// It returns nil, nil when the credentials are rejected.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
