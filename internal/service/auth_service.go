package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reagent-inventory/internal/auth"
	"github.com/spec-kit/reagent-inventory/internal/config"
	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/persistence"
	"github.com/spec-kit/reagent-inventory/internal/repository"
	apperrors "github.com/spec-kit/reagent-inventory/pkg/util"
)

// AuthService coordinates login, logout and identity resolution.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	revoked    *persistence.RevokedTokens
	bcryptCost int
}

// NewAuthService builds the service. revoked may be nil.
func NewAuthService(cfg config.Config, users repository.UserRepository, revoked *persistence.RevokedTokens) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		revoked:    revoked,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RevokedTokens exposes the blocklist for middleware wiring.
func (s *AuthService) RevokedTokens() *persistence.RevokedTokens {
	return s.revoked
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Credenciais inválidas")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Credenciais inválidas")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout revokes the token for its remaining lifetime. Unparseable or
// already-expired tokens are ignored: logout always succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	_ = s.revoked.Revoke(ctx, token, time.Until(claims.ExpiresAt.Time))
}

// CurrentUser resolves the identity behind a token. Invalid credential maps
// to 401; a valid credential whose user no longer exists maps to 404.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorized("Não autenticado")
	}
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Token inválido")
	}
	if s.revoked.IsRevoked(ctx, token) {
		return nil, apperrors.NewUnauthorized("Token inválido")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Usuário")
		}
		return nil, err
	}
	return user, nil
}
