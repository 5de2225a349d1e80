package dto

import (
	"time"

	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/service"
)

// CreateReagentRequest payload for POST /reagents. ExpirationDate accepts
// RFC3339 or plain yyyy-mm-dd.
type CreateReagentRequest struct {
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ExpirationDate string  `json:"expirationDate"`
	Location       string  `json:"location"`
	Shelf          string  `json:"shelf"`
	Sector         string  `json:"sector"`
	Notes          *string `json:"notes"`
}

// UpdateReagentRequest payload for PUT /reagents/:id. Absent fields stay
// unchanged; each present field overwrites its counterpart.
type UpdateReagentRequest struct {
	Name           *string  `json:"name"`
	Brand          *string  `json:"brand"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	ExpirationDate *string  `json:"expirationDate"`
	Location       *string  `json:"location"`
	Shelf          *string  `json:"shelf"`
	Sector         *string  `json:"sector"`
	Verification   *string  `json:"verification"`
	Notes          *string  `json:"notes"`
}

// OwnerResponse is the joined owner projection.
type OwnerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReagentResponse is a reagent with its derived expiration status.
type ReagentResponse struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Brand          string                    `json:"brand"`
	Quantity       float64                   `json:"quantity"`
	Unit           domain.UnitType           `json:"unit"`
	ExpirationDate time.Time                 `json:"expirationDate"`
	Location       string                    `json:"location"`
	Shelf          string                    `json:"shelf"`
	Sector         string                    `json:"sector"`
	Verification   domain.VerificationStatus `json:"verification"`
	UserID         string                    `json:"userId"`
	Notes          *string                   `json:"notes,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
	User           *OwnerResponse            `json:"user,omitempty"`
	Status         domain.ExpirationStatus   `json:"status"`
}

// ListReagentsResponse is the listing envelope.
type ListReagentsResponse struct {
	Reagents   []ReagentResponse  `json:"reagents"`
	Pagination service.Pagination `json:"pagination"`
}

// NewReagentResponse converts an annotated reagent.
func NewReagentResponse(r *service.ReagentWithStatus) ReagentResponse {
	resp := ReagentResponse{
		ID:             r.ID,
		Name:           r.Name,
		Brand:          r.Brand,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		ExpirationDate: r.ExpirationDate,
		Location:       r.Location,
		Shelf:          r.Shelf,
		Sector:         r.Sector,
		Verification:   r.Verification,
		UserID:         r.UserID,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Status:         r.Status,
	}
	if r.Owner != nil {
		resp.User = &OwnerResponse{Name: r.Owner.Name, Email: r.Owner.Email}
	}
	return resp
}
