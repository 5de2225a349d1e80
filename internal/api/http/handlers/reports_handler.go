package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reagent-inventory/internal/service"
)

// ReportsHandler serves the PDF inventory report.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Inventory GET /reports/inventory.
func (h *ReportsHandler) Inventory(c *fiber.Ctx) error {
	pdf, err := h.service.InventoryPDF(c.Context(), service.ReportFilter{
		Status: c.Query("status"),
		Sector: c.Query("sector"),
	})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=inventario-chemstore.pdf`)
	return c.Send(pdf)
}
