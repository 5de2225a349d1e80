package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/events"
	"github.com/spec-kit/reagent-inventory/internal/repository"
	apperrors "github.com/spec-kit/reagent-inventory/pkg/util"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ReagentService coordinates reagent workflows: filtered listing, CRUD with
// the ownership permission gate, and dashboard aggregation.
type ReagentService struct {
	reagents   repository.ReagentRepository
	dispatcher events.Dispatcher
}

// NewReagentService constructs the service. dispatcher may be nil.
func NewReagentService(reagents repository.ReagentRepository, dispatcher events.Dispatcher) *ReagentService {
	return &ReagentService{reagents: reagents, dispatcher: dispatcher}
}

// ReagentWithStatus pairs a record with its derived expiration status.
// Status is computed at read time and never persisted.
type ReagentWithStatus struct {
	domain.Reagent
	Status domain.ExpirationStatus
}

// ListInput carries the listing query. Page and Limit below 1 fall back to
// the defaults instead of failing.
type ListInput struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// Pagination describes the page metadata returned alongside items.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// CreateInput describes the creation payload.
type CreateInput struct {
	Name           string
	Brand          string
	Quantity       float64
	Unit           string
	ExpirationDate time.Time
	Location       string
	Shelf          string
	Sector         string
	Notes          *string
}

// UpdateInput is the partial-update payload. Nil fields stay unchanged.
type UpdateInput struct {
	Name           *string
	Brand          *string
	Quantity       *float64
	Unit           *string
	ExpirationDate *time.Time
	Location       *string
	Shelf          *string
	Sector         *string
	Verification   *string
	Notes          *string
}

// Stats aggregates status counts over the whole inventory.
type Stats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Warning int `json:"warning"`
	Expired int `json:"expired"`
}

// List returns one annotated page plus pagination metadata. An unrecognized
// status value is ignored, matching the original filter behavior; a page past
// the end yields empty items with correct metadata.
func (s *ReagentService) List(ctx context.Context, input ListInput) ([]ReagentWithStatus, Pagination, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	now := time.Now()
	filter := repository.ReagentFilter{
		Search: input.Search,
		Now:    now,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if status := domain.ExpirationStatus(input.Status); domain.ValidStatusFilter(status) {
		filter.Status = status
	}

	items, total, err := s.reagents.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	annotated := make([]ReagentWithStatus, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, ReagentWithStatus{
			Reagent: item,
			Status:  domain.ClassifyExpiration(item.ExpirationDate, now),
		})
	}

	pages := (total + limit - 1) / limit
	return annotated, Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

// Get fetches a single reagent with its derived status.
func (s *ReagentService) Get(ctx context.Context, id string) (*ReagentWithStatus, error) {
	reagent, err := s.reagents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Reagente")
		}
		return nil, err
	}
	return &ReagentWithStatus{
		Reagent: *reagent,
		Status:  domain.ClassifyExpiration(reagent.ExpirationDate, time.Now()),
	}, nil
}

// Create validates the payload and stores a reagent owned by the actor.
func (s *ReagentService) Create(ctx context.Context, actor *domain.User, input CreateInput) (*ReagentWithStatus, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Brand) == "" ||
		strings.TrimSpace(input.Unit) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		strings.TrimSpace(input.Shelf) == "" ||
		strings.TrimSpace(input.Sector) == "" ||
		input.ExpirationDate.IsZero() {
		return nil, apperrors.NewValidationError("Todos os campos obrigatórios devem ser preenchidos")
	}
	if input.Quantity <= 0 {
		return nil, apperrors.NewValidationError("Quantidade deve ser maior que zero")
	}

	reagent := &domain.Reagent{
		Name:           strings.TrimSpace(input.Name),
		Brand:          strings.TrimSpace(input.Brand),
		Quantity:       input.Quantity,
		Unit:           domain.NormalizeUnit(input.Unit),
		ExpirationDate: input.ExpirationDate,
		Location:       strings.TrimSpace(input.Location),
		Shelf:          strings.TrimSpace(input.Shelf),
		Sector:         strings.TrimSpace(input.Sector),
		Verification:   domain.VerificationPending,
		UserID:         actor.ID,
		Notes:          input.Notes,
	}

	if err := s.reagents.Create(ctx, reagent); err != nil {
		return nil, err
	}
	reagent.Owner = &domain.Owner{Name: actor.Name, Email: actor.Email}

	s.publish(ctx, events.Event{
		Type:      events.EventReagentCreated,
		ReagentID: reagent.ID,
		ActorID:   actor.ID,
		Payload: events.ReagentCreatedPayload{
			Name:     reagent.Name,
			Sector:   reagent.Sector,
			Quantity: reagent.Quantity,
			Unit:     reagent.Unit,
		},
	})

	return &ReagentWithStatus{
		Reagent: *reagent,
		Status:  domain.ClassifyExpiration(reagent.ExpirationDate, time.Now()),
	}, nil
}

// Update applies the supplied fields after the permission gate. The record is
// looked up before authorization, so a non-owner learns whether the id exists;
// this mirrors the original behavior deliberately.
func (s *ReagentService) Update(ctx context.Context, actor *domain.User, id string, input UpdateInput) (*ReagentWithStatus, error) {
	reagent, err := s.reagents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Reagente")
		}
		return nil, err
	}
	if !actor.CanMutate(reagent) {
		return nil, apperrors.NewForbidden("Você não tem permissão para editar este reagente")
	}

	if input.Quantity != nil && *input.Quantity <= 0 {
		return nil, apperrors.NewValidationError("Quantidade deve ser maior que zero")
	}
	if input.Verification != nil && !domain.ValidVerification(domain.VerificationStatus(*input.Verification)) {
		return nil, apperrors.NewValidationError("Status de verificação inválido")
	}

	if input.Name != nil {
		reagent.Name = strings.TrimSpace(*input.Name)
	}
	if input.Brand != nil {
		reagent.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Quantity != nil {
		reagent.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		reagent.Unit = domain.NormalizeUnit(*input.Unit)
	}
	if input.ExpirationDate != nil {
		reagent.ExpirationDate = *input.ExpirationDate
	}
	if input.Location != nil {
		reagent.Location = strings.TrimSpace(*input.Location)
	}
	if input.Shelf != nil {
		reagent.Shelf = strings.TrimSpace(*input.Shelf)
	}
	if input.Sector != nil {
		reagent.Sector = strings.TrimSpace(*input.Sector)
	}
	if input.Verification != nil {
		reagent.Verification = domain.VerificationStatus(*input.Verification)
	}
	if input.Notes != nil {
		reagent.Notes = input.Notes
	}

	if err := s.reagents.Update(ctx, reagent); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Reagente")
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventReagentUpdated,
		ReagentID: reagent.ID,
		ActorID:   actor.ID,
		Payload: events.ReagentUpdatedPayload{
			Name:         reagent.Name,
			Verification: reagent.Verification,
		},
	})

	return &ReagentWithStatus{
		Reagent: *reagent,
		Status:  domain.ClassifyExpiration(reagent.ExpirationDate, time.Now()),
	}, nil
}

// Delete removes the reagent after the permission gate. Deleting an absent
// id yields 404, so repeated deletes never report a second success.
func (s *ReagentService) Delete(ctx context.Context, actor *domain.User, id string) error {
	reagent, err := s.reagents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Reagente")
		}
		return err
	}
	if !actor.CanMutate(reagent) {
		return apperrors.NewForbidden("Você não tem permissão para deletar este reagente")
	}

	if err := s.reagents.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Reagente")
		}
		return err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventReagentDeleted,
		ReagentID: reagent.ID,
		ActorID:   actor.ID,
		Payload: events.ReagentDeletedPayload{
			Name:   reagent.Name,
			Sector: reagent.Sector,
		},
	})
	return nil
}

// DashboardStats classifies the whole inventory with a single reference time.
func (s *ReagentService) DashboardStats(ctx context.Context) (Stats, error) {
	items, err := s.reagents.ListForReport(ctx, repository.ReagentFilter{})
	if err != nil {
		return Stats{}, err
	}

	now := time.Now()
	stats := Stats{Total: len(items)}
	for _, item := range items {
		switch domain.ClassifyExpiration(item.ExpirationDate, now) {
		case domain.StatusValid:
			stats.Valid++
		case domain.StatusWarning:
			stats.Warning++
		case domain.StatusExpired:
			stats.Expired++
		}
	}
	return stats, nil
}

func (s *ReagentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
