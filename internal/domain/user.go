package domain

import "time"

// UserRole distinguishes administrators from regular lab users.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User is an account able to authenticate and own reagents.
// Accounts are created at seed time only; there is no self-registration.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanMutate reports whether the user may update or delete the given reagent:
// admins may touch anything, everyone else only their own records.
func (u *User) CanMutate(r *Reagent) bool {
	if u == nil || r == nil {
		return false
	}
	return u.Role == RoleAdmin || u.ID == r.UserID
}
