package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reagent-inventory/internal/api/dto"
	"github.com/spec-kit/reagent-inventory/internal/auth"
	"github.com/spec-kit/reagent-inventory/internal/service"
	apperrors "github.com/spec-kit/reagent-inventory/pkg/util"
)

const sessionCookie = "token"

// AuthHandler exposes login, logout and identity endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Payload inválido")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Email e senha são obrigatórios")
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.auth.TokenManager().TTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{
		Message: "Login realizado com sucesso",
		User:    dto.NewUserResponse(user),
		Token:   token,
	})
}

// Logout handles POST /auth/logout. Always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.Context(), auth.TokenFromRequest(c))

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logout realizado com sucesso"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.auth.CurrentUser(c.Context(), auth.TokenFromRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": dto.NewUserResponse(user)})
}
