package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/repository"
)

// ReportService renders the tabular inventory report as PDF.
type ReportService struct {
	reagents repository.ReagentRepository
}

// NewReportService constructs the service.
func NewReportService(reagents repository.ReagentRepository) *ReportService {
	return &ReportService{reagents: reagents}
}

// ReportFilter narrows the report set. Empty fields mean "all".
type ReportFilter struct {
	Status string
	Sector string
}

// InventoryPDF builds the report over the full filtered set, ordered by
// sector then name. Per-row labels and the aggregate counts come from the
// same classification at a single reference time, so they cannot drift.
// Any store failure aborts the whole document.
func (s *ReportService) InventoryPDF(ctx context.Context, filter ReportFilter) ([]byte, error) {
	now := time.Now()

	repoFilter := repository.ReagentFilter{Sector: filter.Sector, Now: now}
	if status := domain.ExpirationStatus(filter.Status); domain.ValidStatusFilter(status) {
		repoFilter.Status = status
	}

	reagents, err := s.reagents.ListForReport(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return renderInventoryPDF(reagents, filter, now)
}

func renderInventoryPDF(reagents []domain.Reagent, filter ReportFilter, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, tr("ChemStore - Relatório de Inventário"))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Data de geração: %s", now.Format("02/01/2006"))))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Filtro: %s", filterDescription(filter))))
	pdf.Ln(12)

	widths := []float64{35, 25, 20, 22, 45, 20, 23}
	headers := []string{"Reagente", "Marca", "Quantidade", "Validade", "Localização", "Status", "Responsável"}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for idx, reagent := range reagents {
		if idx%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		status := domain.ClassifyExpiration(reagent.ExpirationDate, now)
		owner := ""
		if reagent.Owner != nil {
			owner = reagent.Owner.Name
		}
		cells := []string{
			reagent.Name,
			reagent.Brand,
			fmt.Sprintf("%s %s", formatQuantity(reagent.Quantity), domain.FormatUnit(string(reagent.Unit))),
			reagent.ExpirationDate.Format("02/01/2006"),
			fmt.Sprintf("%s - %s (%s)", reagent.Location, reagent.Sector, reagent.Shelf),
			domain.StatusLabel(status),
			owner,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var valid, warning, expired int
	for _, reagent := range reagents {
		switch domain.ClassifyExpiration(reagent.ExpirationDate, now) {
		case domain.StatusValid:
			valid++
		case domain.StatusWarning:
			warning++
		case domain.StatusExpired:
			expired++
		}
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total de reagentes: %d", len(reagents))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Válidos: %d", valid)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Por vencer (%d dias): %d", domain.WarningWindowDays, warning)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Vencidos: %d", expired)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func filterDescription(filter ReportFilter) string {
	text := "Todos os reagentes"
	switch domain.ExpirationStatus(filter.Status) {
	case domain.StatusValid:
		text = "Reagentes Válidos"
	case domain.StatusWarning:
		text = "Reagentes Por vencer"
	case domain.StatusExpired:
		text = "Reagentes Vencidos"
	}
	if filter.Sector != "" {
		text += fmt.Sprintf(" - Setor: %s", filter.Sector)
	}
	return text
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
