package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/service"
	apperrors "github.com/spec-kit/reagent-inventory/pkg/util"
)

var (
	testOwner = &domain.User{ID: "owner-1", Name: "Usuário Padrão", Email: "user@chemstore.com", Role: domain.RoleUser}
	testOther = &domain.User{ID: "other-1", Name: "Outro", Email: "other@chemstore.com", Role: domain.RoleUser}
	testAdmin = &domain.User{ID: "admin-1", Name: "Administrador", Email: "admin@chemstore.com", Role: domain.RoleAdmin}
)

func seedReagent(t *testing.T, svc *service.ReagentService, actor *domain.User, name string, expiration time.Time) *service.ReagentWithStatus {
	t.Helper()
	created, err := svc.Create(context.Background(), actor, service.CreateInput{
		Name:           name,
		Brand:          "LabSolutions",
		Quantity:       10,
		Unit:           "L",
		ExpirationDate: expiration,
		Location:       "Laboratório Principal",
		Shelf:          "B-02",
		Sector:         "Solventes",
	})
	if err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return created
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.HTTPStatus
}

func TestCreateAnnotatesStatus(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	now := time.Now()

	cases := []struct {
		name       string
		expiration time.Time
		want       domain.ExpirationStatus
	}{
		{name: "ten days out is a warning", expiration: now.AddDate(0, 0, 10), want: domain.StatusWarning},
		{name: "forty days out is valid", expiration: now.AddDate(0, 0, 40), want: domain.StatusValid},
		{name: "yesterday is expired", expiration: now.AddDate(0, 0, -1), want: domain.StatusExpired},
	}
	for _, tc := range cases {
		created := seedReagent(t, svc, testOwner, "Ethanol "+tc.name, tc.expiration)
		if created.Status != tc.want {
			t.Fatalf("%s: status = %q, want %q", tc.name, created.Status, tc.want)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	base := service.CreateInput{
		Name: "Etanol", Brand: "LabSolutions", Quantity: 10, Unit: "L",
		ExpirationDate: time.Now().AddDate(0, 1, 0),
		Location:       "Lab", Shelf: "A-01", Sector: "Solventes",
	}

	cases := []struct {
		name   string
		mutate func(*service.CreateInput)
	}{
		{name: "missing name", mutate: func(in *service.CreateInput) { in.Name = " " }},
		{name: "missing brand", mutate: func(in *service.CreateInput) { in.Brand = "" }},
		{name: "missing expiration", mutate: func(in *service.CreateInput) { in.ExpirationDate = time.Time{} }},
		{name: "zero quantity", mutate: func(in *service.CreateInput) { in.Quantity = 0 }},
		{name: "negative quantity", mutate: func(in *service.CreateInput) { in.Quantity = -2 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			input := base
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), testOwner, input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if code := statusCode(t, err); code != 400 {
				t.Fatalf("status = %d, want 400", code)
			}
		})
	}
}

func TestCreateNormalizesUnitAndOwnership(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)

	created, err := svc.Create(context.Background(), testOwner, service.CreateInput{
		Name: "Etanol", Brand: "LabSolutions", Quantity: 10, Unit: " litros ",
		ExpirationDate: time.Now().AddDate(0, 2, 0),
		Location:       "Lab", Shelf: "A-01", Sector: "Solventes",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Unit != domain.UnitL {
		t.Fatalf("unit = %q, want %q", created.Unit, domain.UnitL)
	}
	if created.UserID != testOwner.ID {
		t.Fatalf("ownership not assigned to creator: %q", created.UserID)
	}
	if created.Verification != domain.VerificationPending {
		t.Fatalf("verification = %q, want PENDING", created.Verification)
	}
}

func TestListPagination(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	for i := 0; i < 25; i++ {
		seedReagent(t, svc, testOwner, "Reagente", time.Now().AddDate(0, 0, 60))
	}

	items, page, err := svc.List(context.Background(), service.ListInput{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 10 || page.Total != 25 || page.Pages != 3 || page.Page != 2 {
		t.Fatalf("unexpected page: items=%d meta=%+v", len(items), page)
	}

	// Beyond the last page: empty items, same metadata.
	items, page, err = svc.List(context.Background(), service.ListInput{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 || page.Total != 25 || page.Pages != 3 {
		t.Fatalf("expected empty page with metadata, got items=%d meta=%+v", len(items), page)
	}

	// Invalid paging input falls back to page=1, limit=10.
	items, page, err = svc.List(context.Background(), service.ListInput{Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 || len(items) != 10 {
		t.Fatalf("defaults not applied: items=%d meta=%+v", len(items), page)
	}
}

func TestListStatusFilter(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	now := time.Now()
	seedReagent(t, svc, testOwner, "Vencido", now.AddDate(0, 0, -5))
	seedReagent(t, svc, testOwner, "Por vencer", now.AddDate(0, 0, 5))
	seedReagent(t, svc, testOwner, "Válido", now.AddDate(0, 0, 90))

	cases := []struct {
		status string
		want   int
	}{
		{status: "expired", want: 1},
		{status: "warning", want: 1},
		{status: "valid", want: 1},
		{status: "", want: 3},
		{status: "bogus", want: 3}, // unrecognized filter ignored
	}
	for _, tc := range cases {
		items, page, err := svc.List(context.Background(), service.ListInput{Status: tc.status})
		if err != nil {
			t.Fatalf("List(%q): %v", tc.status, err)
		}
		if page.Total != tc.want {
			t.Fatalf("List(%q): total = %d, want %d", tc.status, page.Total, tc.want)
		}
		for _, item := range items {
			if tc.status != "" && tc.status != "bogus" && string(item.Status) != tc.status {
				t.Fatalf("List(%q) returned item with status %q", tc.status, item.Status)
			}
		}
	}
}

func TestListSearch(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	seedReagent(t, svc, testOwner, "Hidróxido de Sódio", time.Now().AddDate(0, 0, 90))
	seedReagent(t, svc, testOwner, "Etanol Absoluto", time.Now().AddDate(0, 0, 90))

	_, page, err := svc.List(context.Background(), service.ListInput{Search: "etanol"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("case-insensitive substring search: total = %d, want 1", page.Total)
	}

	// Search also covers brand, location and sector.
	_, page, err = svc.List(context.Background(), service.ListInput{Search: "solvent"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("sector search: total = %d, want 2", page.Total)
	}
}

func TestUpdatePermissions(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	created := seedReagent(t, svc, testOwner, "Etanol", time.Now().AddDate(0, 0, 90))
	newName := "Etanol Absoluto"

	if _, err := svc.Update(context.Background(), testOther, created.ID, service.UpdateInput{Name: &newName}); err == nil {
		t.Fatal("expected forbidden")
	} else if code := statusCode(t, err); code != 403 {
		t.Fatalf("status = %d, want 403", code)
	}

	if _, err := svc.Update(context.Background(), testAdmin, created.ID, service.UpdateInput{Name: &newName}); err != nil {
		t.Fatalf("admin update: %v", err)
	}

	if _, err := svc.Update(context.Background(), testOwner, "missing", service.UpdateInput{Name: &newName}); err == nil {
		t.Fatal("expected not found")
	} else if code := statusCode(t, err); code != 404 {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestUpdatePartialSemantics(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	created := seedReagent(t, svc, testOwner, "Etanol", time.Now().AddDate(0, 0, 90))

	qty := 42.5
	verification := "VERIFIED"
	updated, err := svc.Update(context.Background(), testOwner, created.ID, service.UpdateInput{
		Quantity:     &qty,
		Verification: &verification,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 42.5 || updated.Verification != domain.VerificationVerified {
		t.Fatalf("supplied fields not applied: %+v", updated.Reagent)
	}
	if updated.Name != created.Name || updated.Brand != created.Brand || updated.Sector != created.Sector {
		t.Fatalf("untouched fields changed: %+v", updated.Reagent)
	}

	badQty := -1.0
	if _, err := svc.Update(context.Background(), testOwner, created.ID, service.UpdateInput{Quantity: &badQty}); err == nil {
		t.Fatal("expected validation error for negative quantity")
	} else if code := statusCode(t, err); code != 400 {
		t.Fatalf("status = %d, want 400", code)
	}

	badVerification := "MAYBE"
	if _, err := svc.Update(context.Background(), testOwner, created.ID, service.UpdateInput{Verification: &badVerification}); err == nil {
		t.Fatal("expected validation error for unknown verification state")
	}
}

func TestDeletePermissionsAndIdempotence(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	created := seedReagent(t, svc, testOwner, "Etanol", time.Now().AddDate(0, 0, 90))

	if err := svc.Delete(context.Background(), testOther, created.ID); err == nil {
		t.Fatal("expected forbidden")
	} else if code := statusCode(t, err); code != 403 {
		t.Fatalf("status = %d, want 403", code)
	}

	if err := svc.Delete(context.Background(), testOwner, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// A repeated delete is a 404, never a second success.
	if err := svc.Delete(context.Background(), testOwner, created.ID); err == nil {
		t.Fatal("expected not found on repeated delete")
	} else if code := statusCode(t, err); code != 404 {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()
	svc := service.NewReagentService(newFakeReagentRepo(), nil)
	now := time.Now()
	seedReagent(t, svc, testOwner, "Vencido A", now.AddDate(0, 0, -10))
	seedReagent(t, svc, testOwner, "Vencido B", now.AddDate(0, 0, -1))
	seedReagent(t, svc, testOwner, "Por vencer", now.AddDate(0, 0, 15))
	seedReagent(t, svc, testOwner, "Válido", now.AddDate(0, 0, 120))

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	want := service.Stats{Total: 4, Valid: 1, Warning: 1, Expired: 2}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}
