package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/reagent-inventory/internal/auth"
	"github.com/spec-kit/reagent-inventory/internal/config"
	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/observability"
	"github.com/spec-kit/reagent-inventory/internal/persistence"
	"github.com/spec-kit/reagent-inventory/internal/repository"
)

// Seeds the provisioning accounts and a handful of sample reagents. This is
// the only way user accounts come into existence.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	users := repository.NewUserRepository(pg.PoolHandle())
	reagents := repository.NewReagentRepository(pg.PoolHandle())

	admin := ensureUser(ctx, logger, users, cfg.Auth.BcryptCost, "admin@chemstore.com", "Administrador", "admin123", domain.RoleAdmin)
	user := ensureUser(ctx, logger, users, cfg.Auth.BcryptCost, "user@chemstore.com", "Usuário Padrão", "user123", domain.RoleUser)

	_, total, err := reagents.List(ctx, repository.ReagentFilter{Limit: 1})
	if err != nil {
		logger.Fatal("failed to inspect inventory", zap.Error(err))
	}
	if total > 0 {
		logger.Info("inventory already seeded", zap.Int("total", total))
		return
	}

	for _, reagent := range sampleReagents(admin, user) {
		if err := reagents.Create(ctx, &reagent); err != nil {
			logger.Fatal("failed to seed reagent", zap.String("name", reagent.Name), zap.Error(err))
		}
	}
	logger.Info("seed complete")
}

func ensureUser(ctx context.Context, logger *zap.Logger, users repository.UserRepository, bcryptCost int, email, name, password string, role domain.UserRole) *domain.User {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing
	}
	if err != pgx.ErrNoRows {
		logger.Fatal("failed to look up user", zap.String("email", email), zap.Error(err))
	}

	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}
	user := &domain.User{Email: email, Name: name, PasswordHash: hash, Role: role}
	if err := users.Create(ctx, user); err != nil {
		logger.Fatal("failed to create user", zap.String("email", email), zap.Error(err))
	}
	logger.Info("user created", zap.String("email", email), zap.String("role", string(role)))
	return user
}

func sampleReagents(admin, user *domain.User) []domain.Reagent {
	notes := func(s string) *string { return &s }
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	return []domain.Reagent{
		{
			Name: "Ácido Sulfúrico", Brand: "Química Pura", Quantity: 25.5, Unit: domain.UnitL,
			ExpirationDate: date("2025-06-15"), Location: "Laboratório Principal", Shelf: "A-01",
			Sector: "Ácidos", Verification: domain.VerificationVerified, UserID: admin.ID,
			Notes: notes("Concentração 98%"),
		},
		{
			Name: "Etanol Absoluto", Brand: "LabSolutions", Quantity: 50.0, Unit: domain.UnitL,
			ExpirationDate: date("2025-03-20"), Location: "Laboratório Principal", Shelf: "B-02",
			Sector: "Solventes", Verification: domain.VerificationVerified, UserID: user.ID,
			Notes: notes("Grau analítico"),
		},
		{
			Name: "Hidróxido de Sódio", Brand: "Química Básica", Quantity: 10.0, Unit: domain.UnitKG,
			ExpirationDate: date("2025-02-10"), Location: "Laboratório Químico", Shelf: "C-03",
			Sector: "Bases", Verification: domain.VerificationPending, UserID: admin.ID,
			Notes: notes("Pérolas"),
		},
		{
			Name: "Cloreto de Sódio", Brand: "Sal Laboratorial", Quantity: 5.0, Unit: domain.UnitKG,
			ExpirationDate: date("2026-12-31"), Location: "Depósito", Shelf: "D-01",
			Sector: "Sais", Verification: domain.VerificationVerified, UserID: user.ID,
			Notes: notes("Grau PA"),
		},
		{
			Name: "Ácido Clorídrico", Brand: "Química Forte", Quantity: 15.0, Unit: domain.UnitL,
			ExpirationDate: date("2025-01-15"), Location: "Laboratório Principal", Shelf: "A-02",
			Sector: "Ácidos", Verification: domain.VerificationVerified, UserID: admin.ID,
			Notes: notes("Concentração 37%"),
		},
	}
}
