package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reagent-inventory/internal/api/dto"
	"github.com/spec-kit/reagent-inventory/internal/auth"
	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/service"
	apperrors "github.com/spec-kit/reagent-inventory/pkg/util"
)

// ReagentsHandler manages reagent CRUD and dashboard endpoints.
type ReagentsHandler struct {
	service *service.ReagentService
}

// NewReagentsHandler constructs handler.
func NewReagentsHandler(reagentService *service.ReagentService) *ReagentsHandler {
	return &ReagentsHandler{service: reagentService}
}

// List GET /reagents.
func (h *ReagentsHandler) List(c *fiber.Ctx) error {
	input := service.ListInput{
		Page:   parseInt(c.Query("page"), 1),
		Limit:  parseInt(c.Query("limit"), 10),
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	items, pagination, err := h.service.List(c.Context(), input)
	if err != nil {
		return err
	}

	reagents := make([]dto.ReagentResponse, 0, len(items))
	for i := range items {
		reagents = append(reagents, dto.NewReagentResponse(&items[i]))
	}
	return c.JSON(dto.ListReagentsResponse{Reagents: reagents, Pagination: pagination})
}

// Stats GET /reagents/stats.
func (h *ReagentsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Sectors GET /reagents/sectors.
func (h *ReagentsHandler) Sectors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sectors": domain.SuggestedSectors})
}

// Get GET /reagents/:id.
func (h *ReagentsHandler) Get(c *fiber.Ctx) error {
	reagent, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReagentResponse(reagent))
}

// Create POST /reagents.
func (h *ReagentsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Usuário não autenticado")
	}

	var req dto.CreateReagentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Payload inválido")
	}
	expiration, err := parseDate(req.ExpirationDate)
	if err != nil {
		return apperrors.NewValidationError("Data de validade inválida")
	}

	reagent, err := h.service.Create(c.Context(), actor, service.CreateInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: expiration,
		Location:       req.Location,
		Shelf:          req.Shelf,
		Sector:         req.Sector,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewReagentResponse(reagent))
}

// Update PUT /reagents/:id.
func (h *ReagentsHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Usuário não autenticado")
	}

	var req dto.UpdateReagentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Payload inválido")
	}

	input := service.UpdateInput{
		Name:         req.Name,
		Brand:        req.Brand,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Location:     req.Location,
		Shelf:        req.Shelf,
		Sector:       req.Sector,
		Verification: req.Verification,
		Notes:        req.Notes,
	}
	if req.ExpirationDate != nil {
		expiration, err := parseDate(*req.ExpirationDate)
		if err != nil {
			return apperrors.NewValidationError("Data de validade inválida")
		}
		input.ExpirationDate = &expiration
	}

	reagent, err := h.service.Update(c.Context(), actor, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReagentResponse(reagent))
}

// Delete DELETE /reagents/:id.
func (h *ReagentsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Usuário não autenticado")
	}

	if err := h.service.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Reagente removido com sucesso"})
}

// parseInt falls back to def on empty or malformed values; queries never fail
// on bad paging input.
func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func parseDate(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", val)
}
