package domain_test

import (
	"testing"

	"github.com/spec-kit/reagent-inventory/internal/domain"
)

func TestCanMutate(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: "u1", Role: domain.RoleUser}
	other := &domain.User{ID: "u2", Role: domain.RoleUser}
	admin := &domain.User{ID: "u3", Role: domain.RoleAdmin}
	reagent := &domain.Reagent{ID: "r1", UserID: "u1"}

	cases := []struct {
		name  string
		actor *domain.User
		want  bool
	}{
		{name: "owner", actor: owner, want: true},
		{name: "admin over someone else's reagent", actor: admin, want: true},
		{name: "non-owner non-admin", actor: other, want: false},
		{name: "nil actor", actor: nil, want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.actor.CanMutate(reagent); got != tc.want {
				t.Fatalf("CanMutate = %v, want %v", got, tc.want)
			}
		})
	}

	if owner.CanMutate(nil) {
		t.Fatal("CanMutate(nil reagent) should be false")
	}
}
