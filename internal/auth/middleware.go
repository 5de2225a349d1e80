package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/repository"
	apperrors "github.com/spec-kit/reagent-inventory/pkg/util"
)

const principalKey = "auth_principal"

// TokenBlocklist answers whether a token has been revoked (logout).
type TokenBlocklist interface {
	IsRevoked(ctx context.Context, token string) bool
}

// Middleware validates bearer credentials and loads the acting user.
type Middleware struct {
	tokens    *TokenManager
	users     repository.UserRepository
	blocklist TokenBlocklist
}

// NewMiddleware constructs the auth middleware. blocklist may be nil.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, blocklist TokenBlocklist) *Middleware {
	return &Middleware{tokens: tokens, users: users, blocklist: blocklist}
}

// TokenFromRequest resolves the credential from the session cookie or the
// Authorization header, cookie first, matching the original client contract.
func TokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies("token"); cookie != "" {
		return cookie
	}
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}
	return strings.TrimSpace(header)
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := TokenFromRequest(c)
	if token == "" {
		return apperrors.NewUnauthorized("Usuário não autenticado")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("Token inválido")
	}
	if m.blocklist != nil && m.blocklist.IsRevoked(c.Context(), token) {
		return apperrors.NewUnauthorized("Token inválido")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("Usuário não encontrado")
		}
		return apperrors.ToDomainError(err)
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated user.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
