package domain

import "time"

// ExpirationStatus is the derived expiration classification of a reagent.
type ExpirationStatus string

const (
	StatusValid   ExpirationStatus = "valid"
	StatusWarning ExpirationStatus = "warning"
	StatusExpired ExpirationStatus = "expired"
)

// WarningWindowDays is the look-ahead window for the warning status.
const WarningWindowDays = 30

// WarningHorizon returns the upper bound of the warning window relative to
// now. The bound is inclusive: a reagent expiring exactly at the horizon is
// still a warning.
func WarningHorizon(now time.Time) time.Time {
	return now.AddDate(0, 0, WarningWindowDays)
}

// ClassifyExpiration derives the expiration status of a date relative to now.
// The three outcomes partition the timeline: expired at or before now,
// warning inside the 30-day window (inclusive), valid beyond it.
func ClassifyExpiration(expirationDate, now time.Time) ExpirationStatus {
	if !expirationDate.After(now) {
		return StatusExpired
	}
	if !expirationDate.After(WarningHorizon(now)) {
		return StatusWarning
	}
	return StatusValid
}

// StatusLabel returns the printable pt-BR label used in reports.
func StatusLabel(s ExpirationStatus) string {
	switch s {
	case StatusExpired:
		return "Vencido"
	case StatusWarning:
		return "Por vencer"
	case StatusValid:
		return "Válido"
	}
	return string(s)
}

// ValidStatusFilter reports whether s is a recognized status filter value.
func ValidStatusFilter(s ExpirationStatus) bool {
	switch s {
	case StatusValid, StatusWarning, StatusExpired:
		return true
	}
	return false
}
