package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/core/domain"
	portsrepo "github.com/quala/sucursales_api/internal/core/ports/repositories"
	portssvc "github.com/quala/sucursales_api/internal/core/ports/services"
	"github.com/quala/sucursales_api/internal/dto"
	"github.com/quala/sucursales_api/internal/platform/config"
	"github.com/quala/sucursales_api/internal/utils"
)

// authService validates credentials and issues and verifies access tokens.
type authService struct {
	BaseService
	usuarioRepo portsrepo.UsuarioReader
	cfg         config.AuthConfig
	now         func() time.Time
}

// AuthServiceOption configures the auth service.
type AuthServiceOption func(*authService)

// WithAuthClock overrides the clock used for token issuance and verification.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates a new instance of authService.
func NewAuthService(usuarioRepo portsrepo.UsuarioReader, cfg config.AuthConfig, opts ...AuthServiceOption) portssvc.AuthSvcFacade {
	s := &authService{
		usuarioRepo: usuarioRepo,
		cfg:         cfg,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) jwtParams() utils.JWTParams {
	return utils.JWTParams{
		SigningKey: s.cfg.SigningKey,
		Issuer:     s.cfg.Issuer,
		Audience:   s.cfg.Audience,
		Now:        s.now,
	}
}

// ValidateUser returns the user when the username exists, the account is active
// and the password matches the stored hash. Any mismatch yields nil, nil.
func (s *authService) ValidateUser(ctx context.Context, nombreUsuario, password string) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.FindUsuarioByNombreUsuario(ctx, nombreUsuario)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login attempt for unknown usuario")
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to look up usuario")
		return nil, fmt.Errorf("failed to look up usuario: %w", err)
	}

	if !usuario.Activo {
		s.LogInfo(ctx, "Login attempt for inactive usuario", slog.Int("user_id", usuario.ID))
		return nil, nil
	}

	if !utils.CheckPasswordHash(password, usuario.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.Int("user_id", usuario.ID))
		return nil, nil
	}

	return usuario, nil
}

// Login validates the credentials and issues a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.ValidateUser(ctx, req.Usuario, req.Password)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}

	issuedAt := s.now().UTC()
	expiration := issuedAt.Add(s.cfg.Expiration())

	token, err := utils.GenerateJWT(s.jwtParams(), usuario.ID, usuario.NombreUsuario, usuario.Email, issuedAt, expiration)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.Int("user_id", usuario.ID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Usuario logged in", slog.Int("user_id", usuario.ID))
	return &dto.LoginResponse{
		Token:      token,
		Expiration: expiration,
		Usuario:    usuario.NombreUsuario,
	}, nil
}

// ValidateToken verifies signature, issuer, audience and lifetime of an access token.
func (s *authService) ValidateToken(tokenString string) (*utils.TokenClaims, error) {
	return utils.ParseAndValidateJWT(tokenString, s.jwtParams())
}
