package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/reagent-inventory/internal/service"
)

func TestInventoryPDF(t *testing.T) {
	t.Parallel()

	repo := newFakeReagentRepo()
	reagentSvc := service.NewReagentService(repo, nil)
	now := time.Now()

	for _, r := range []struct {
		name       string
		sector     string
		expiration time.Time
	}{
		{"Ácido Sulfúrico", "Ácidos", now.AddDate(0, 0, -30)},
		{"Ácido Clorídrico", "Ácidos", now.AddDate(0, 0, -2)},
		{"Etanol Absoluto", "Solventes", now.AddDate(0, 0, 120)},
	} {
		_, err := reagentSvc.Create(context.Background(), testOwner, service.CreateInput{
			Name: r.name, Brand: "Química Pura", Quantity: 5, Unit: "L",
			ExpirationDate: r.expiration, Location: "Lab", Shelf: "A-01", Sector: r.sector,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc := service.NewReportService(repo)
	pdf, err := svc.InventoryPDF(context.Background(), service.ReportFilter{Status: "expired", Sector: "Ácidos"})
	if err != nil {
		t.Fatalf("InventoryPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document (starts with %q)", pdf[:min(8, len(pdf))])
	}
}

func TestInventoryPDFEmptySet(t *testing.T) {
	t.Parallel()

	svc := service.NewReportService(newFakeReagentRepo())
	pdf, err := svc.InventoryPDF(context.Background(), service.ReportFilter{})
	if err != nil {
		t.Fatalf("InventoryPDF over empty inventory: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected a document even with zero rows")
	}
}

// Report generation is atomic: a store failure yields no document at all.
func TestInventoryPDFStoreFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeReagentRepo()
	repo.failWith = errors.New("connection refused")
	svc := service.NewReportService(repo)

	pdf, err := svc.InventoryPDF(context.Background(), service.ReportFilter{})
	if err == nil {
		t.Fatal("expected error when the store is unreachable")
	}
	if pdf != nil {
		t.Fatal("no partial document may be returned on failure")
	}
}
