package domain

import "time"

// UnitType enumerates the canonical measurement units for reagents.
type UnitType string

const (
	UnitKG       UnitType = "KG"
	UnitL        UnitType = "L"
	UnitG        UnitType = "G"
	UnitML       UnitType = "ML"
	UnitUnidades UnitType = "UNIDADES"
	UnitCaixa    UnitType = "CAIXA"
	UnitFrasco   UnitType = "FRASCO"
)

// VerificationStatus is the human-review state of a reagent record,
// independent of its expiration status.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// ValidVerification reports whether v is one of the accepted review states.
func ValidVerification(v VerificationStatus) bool {
	switch v {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// SuggestedSectors is the curated sector list offered for form suggestions.
// Sector remains free text; these are hints, not a constraint.
var SuggestedSectors = []string{
	"Ácidos",
	"Bases",
	"Solventes",
	"Sais",
	"Indicadores",
	"Padrões",
	"Reagentes Orgânicos",
	"Reagentes Inorgânicos",
	"Materiais de Consumo",
	"Equipamentos",
}

// Owner carries the joined owner fields returned on read paths.
type Owner struct {
	Name  string
	Email string
}

// Reagent is a tracked chemical inventory item. Quantity is always > 0.
// Expiration status is never stored here; it is derived per read via
// ClassifyExpiration.
type Reagent struct {
	ID             string
	Name           string
	Brand          string
	Quantity       float64
	Unit           UnitType
	ExpirationDate time.Time
	Location       string
	Shelf          string
	Sector         string
	Verification   VerificationStatus
	UserID         string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Owner is populated on reads that join the owning user.
	Owner *Owner
}
