package service_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reagent-inventory/internal/domain"
	"github.com/spec-kit/reagent-inventory/internal/repository"
)

// fakeReagentRepo mirrors the SQL repository's filter semantics in memory so
// service behavior can be exercised without a database.
type fakeReagentRepo struct {
	seq      int
	reagents map[string]domain.Reagent
	failWith error
}

func newFakeReagentRepo() *fakeReagentRepo {
	return &fakeReagentRepo{reagents: make(map[string]domain.Reagent)}
}

func (f *fakeReagentRepo) Create(_ context.Context, reagent *domain.Reagent) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	reagent.ID = fmt.Sprintf("reagent-%d", f.seq)
	reagent.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	reagent.UpdatedAt = reagent.CreatedAt
	f.reagents[reagent.ID] = *reagent
	return nil
}

func (f *fakeReagentRepo) Update(_ context.Context, reagent *domain.Reagent) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.reagents[reagent.ID]; !ok {
		return pgx.ErrNoRows
	}
	reagent.UpdatedAt = time.Now()
	f.reagents[reagent.ID] = *reagent
	return nil
}

func (f *fakeReagentRepo) GetByID(_ context.Context, id string) (*domain.Reagent, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	reagent, ok := f.reagents[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &reagent, nil
}

func (f *fakeReagentRepo) Delete(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.reagents[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.reagents, id)
	return nil
}

func (f *fakeReagentRepo) List(ctx context.Context, filter repository.ReagentFilter) ([]domain.Reagent, int, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	matched := f.filtered(filter)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	offset := filter.Offset
	if offset > total {
		offset = total
	}
	end := offset + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeReagentRepo) ListForReport(_ context.Context, filter repository.ReagentFilter) ([]domain.Reagent, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	matched := f.filtered(filter)
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Sector != matched[j].Sector {
			return matched[i].Sector < matched[j].Sector
		}
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

func (f *fakeReagentRepo) filtered(filter repository.ReagentFilter) []domain.Reagent {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	var result []domain.Reagent
	for _, reagent := range f.reagents {
		if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
			haystacks := []string{reagent.Name, reagent.Brand, reagent.Location, reagent.Sector}
			found := false
			for _, h := range haystacks {
				if strings.Contains(strings.ToLower(h), s) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filter.Status != "" && domain.ClassifyExpiration(reagent.ExpirationDate, now) != filter.Status {
			continue
		}
		if filter.Sector != "" && reagent.Sector != filter.Sector {
			continue
		}
		result = append(result, reagent)
	}
	return result
}
