package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/reagent-inventory/internal/domain"
)

// ReagentFilter captures listing and report parameters. Fields compose with
// AND; Search alone fans out as an OR over name/brand/location/sector.
type ReagentFilter struct {
	Search string
	Status domain.ExpirationStatus
	Sector string
	// Now anchors the status date predicate. Zero means time.Now().
	Now    time.Time
	Limit  int
	Offset int
}

// ReagentRepository encapsulates reagent persistence.
type ReagentRepository interface {
	Create(ctx context.Context, reagent *domain.Reagent) error
	Update(ctx context.Context, reagent *domain.Reagent) error
	GetByID(ctx context.Context, id string) (*domain.Reagent, error)
	Delete(ctx context.Context, id string) error
	// List returns one page ordered by creation time descending, plus the
	// post-filter total used for pagination metadata.
	List(ctx context.Context, filter ReagentFilter) ([]domain.Reagent, int, error)
	// ListForReport returns the full filtered set ordered by sector then name.
	ListForReport(ctx context.Context, filter ReagentFilter) ([]domain.Reagent, error)
}

type reagentRepository struct {
	pool *pgxpool.Pool
}

// NewReagentRepository instantiates repository.
func NewReagentRepository(pool *pgxpool.Pool) ReagentRepository {
	return &reagentRepository{pool: pool}
}

const reagentColumns = `r.id, r.name, r.brand, r.quantity, r.unit, r.expiration_date,
               r.location, r.shelf, r.sector, r.verification, r.user_id, r.notes,
               r.created_at, r.updated_at, u.name, u.email`

func (r *reagentRepository) Create(ctx context.Context, reagent *domain.Reagent) error {
	const query = `
        INSERT INTO reagents (name, brand, quantity, unit, expiration_date, location, shelf, sector, verification, user_id, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		reagent.Name,
		reagent.Brand,
		reagent.Quantity,
		reagent.Unit,
		reagent.ExpirationDate,
		reagent.Location,
		reagent.Shelf,
		reagent.Sector,
		reagent.Verification,
		reagent.UserID,
		reagent.Notes,
	).Scan(&reagent.ID, &reagent.CreatedAt, &reagent.UpdatedAt)
}

func (r *reagentRepository) Update(ctx context.Context, reagent *domain.Reagent) error {
	const query = `
        UPDATE reagents SET name=$1, brand=$2, quantity=$3, unit=$4, expiration_date=$5,
            location=$6, shelf=$7, sector=$8, verification=$9, notes=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		reagent.Name,
		reagent.Brand,
		reagent.Quantity,
		reagent.Unit,
		reagent.ExpirationDate,
		reagent.Location,
		reagent.Shelf,
		reagent.Sector,
		reagent.Verification,
		reagent.Notes,
		reagent.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reagentRepository) GetByID(ctx context.Context, id string) (*domain.Reagent, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM reagents r JOIN users u ON u.id = r.user_id
        WHERE r.id=$1`, reagentColumns)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result, err := scanReagents(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &result[0], nil
}

func (r *reagentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reagents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reagentRepository) List(ctx context.Context, filter ReagentFilter) ([]domain.Reagent, int, error) {
	clauses, args := buildReagentClauses(filter)
	where := strings.Join(clauses, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM reagents r WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM reagents r JOIN users u ON u.id = r.user_id
        WHERE %s
        ORDER BY r.created_at DESC
        LIMIT %d OFFSET %d`, reagentColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanReagents(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *reagentRepository) ListForReport(ctx context.Context, filter ReagentFilter) ([]domain.Reagent, error) {
	clauses, args := buildReagentClauses(filter)

	query := fmt.Sprintf(`
        SELECT %s
        FROM reagents r JOIN users u ON u.id = r.user_id
        WHERE %s
        ORDER BY r.sector ASC, r.name ASC`, reagentColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReagents(rows)
}

// buildReagentClauses translates the filter into WHERE clauses. The status
// predicate uses the same boundaries as domain.ClassifyExpiration so that
// filtered sets and per-row labels never drift apart.
func buildReagentClauses(filter ReagentFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if strings.TrimSpace(filter.Search) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(filter.Search))+"%")
		ph := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(r.name) LIKE %[1]s OR LOWER(r.brand) LIKE %[1]s OR LOWER(r.location) LIKE %[1]s OR LOWER(r.sector) LIKE %[1]s)", ph))
	}

	if filter.Status != "" {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		horizon := domain.WarningHorizon(now)
		switch filter.Status {
		case domain.StatusExpired:
			args = append(args, now)
			clauses = append(clauses, fmt.Sprintf("r.expiration_date <= $%d", len(args)))
		case domain.StatusWarning:
			args = append(args, now)
			clauses = append(clauses, fmt.Sprintf("r.expiration_date > $%d", len(args)))
			args = append(args, horizon)
			clauses = append(clauses, fmt.Sprintf("r.expiration_date <= $%d", len(args)))
		case domain.StatusValid:
			args = append(args, horizon)
			clauses = append(clauses, fmt.Sprintf("r.expiration_date > $%d", len(args)))
		}
	}

	if filter.Sector != "" {
		args = append(args, filter.Sector)
		clauses = append(clauses, fmt.Sprintf("r.sector = $%d", len(args)))
	}

	return clauses, args
}

func scanReagents(rows pgx.Rows) ([]domain.Reagent, error) {
	var result []domain.Reagent
	for rows.Next() {
		var reagent domain.Reagent
		var owner domain.Owner
		if err := rows.Scan(
			&reagent.ID,
			&reagent.Name,
			&reagent.Brand,
			&reagent.Quantity,
			&reagent.Unit,
			&reagent.ExpirationDate,
			&reagent.Location,
			&reagent.Shelf,
			&reagent.Sector,
			&reagent.Verification,
			&reagent.UserID,
			&reagent.Notes,
			&reagent.CreatedAt,
			&reagent.UpdatedAt,
			&owner.Name,
			&owner.Email,
		); err != nil {
			return nil, err
		}
		reagent.Owner = &owner
		result = append(result, reagent)
	}
	return result, rows.Err()
}
