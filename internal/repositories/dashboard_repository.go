package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dimension is a categorical axis requests can be grouped or filtered by.
type Dimension string

const (
	DimensionCity   Dimension = "city"
	DimensionStatus Dimension = "status"
	DimensionType   Dimension = "type"
)

// AggregationFilter narrows the requests considered by a dashboard query.
// Start and End are both inclusive. Nil name filters impose no constraint.
type AggregationFilter struct {
	Start       time.Time
	End         time.Time
	Status      *string
	RequestType *string
	City        *string
}

// Querier is satisfied by pgx.Tx and *pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

//go:generate mockgen -source=dashboard_repository.go -destination=../mocks/mock_dashboard_repository.go -package=mocks

type DashboardRepository interface {
	// ReadOnly runs fn inside a single read-only transaction that is always released.
	ReadOnly(ctx context.Context, fn func(q Querier) error) error
	DimensionExists(ctx context.Context, q Querier, dim Dimension, name string) (bool, error)
	CountBy(ctx context.Context, q Querier, dim Dimension, filter AggregationFilter) (map[string]int64, error)
	CompletionTimes(ctx context.Context, q Querier, filter AggregationFilter) (map[string]float64, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func (r *dashboardRepository) ReadOnly(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("dashboard: begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type dimensionSpec struct {
	table  string
	alias  string
	column string
	fk     string
}

var dimensions = map[Dimension]dimensionSpec{
	DimensionCity:   {table: "cities", alias: "c", column: "city_name", fk: "city_id"},
	DimensionStatus: {table: "request_status", alias: "s", column: "status_name", fk: "status_id"},
	DimensionType:   {table: "request_types", alias: "t", column: "type_name", fk: "request_type_id"},
}

func (d Dimension) spec() (dimensionSpec, error) {
	spec, ok := dimensions[d]
	if !ok {
		return dimensionSpec{}, fmt.Errorf("dashboard: unknown dimension %q", string(d))
	}
	return spec, nil
}

func (r *dashboardRepository) DimensionExists(ctx context.Context, q Querier, dim Dimension, name string) (bool, error) {
	spec, err := dim.spec()
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, spec.table, spec.column)
	var exists bool
	if err := q.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("dashboard: check %s %q: %w", dim, name, err)
	}
	return exists, nil
}

// queryBuilder accumulates joins, predicates and positional arguments.
type queryBuilder struct {
	joins  []string
	where  []string
	args   []any
	joined map[Dimension]bool
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{joined: map[Dimension]bool{}}
}

func (b *queryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) join(dim Dimension) dimensionSpec {
	spec := dimensions[dim]
	if !b.joined[dim] {
		b.joins = append(b.joins, fmt.Sprintf("JOIN %s %s ON %s.id = r.%s", spec.table, spec.alias, spec.alias, spec.fk))
		b.joined[dim] = true
	}
	return spec
}

func (b *queryBuilder) applyFilter(filter AggregationFilter) {
	b.where = append(b.where, fmt.Sprintf("r.created_at BETWEEN %s AND %s", b.arg(filter.Start), b.arg(filter.End)))

	named := []struct {
		dim   Dimension
		value *string
	}{
		{DimensionStatus, filter.Status},
		{DimensionType, filter.RequestType},
		{DimensionCity, filter.City},
	}
	for _, f := range named {
		if f.value == nil {
			continue
		}
		spec := b.join(f.dim)
		b.where = append(b.where, fmt.Sprintf("%s.%s = %s", spec.alias, spec.column, b.arg(*f.value)))
	}
}

func (b *queryBuilder) tail() string {
	var sb strings.Builder
	for _, j := range b.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	return sb.String()
}

// buildCountQuery groups matching requests by the name of dim.
func buildCountQuery(dim Dimension, filter AggregationFilter) (string, []any, error) {
	if _, err := dim.spec(); err != nil {
		return "", nil, err
	}
	b := newQueryBuilder()
	spec := b.join(dim)
	b.applyFilter(filter)

	query := fmt.Sprintf("SELECT %s.%s, COUNT(*) FROM requests r%s GROUP BY %s.%s",
		spec.alias, spec.column, b.tail(), spec.alias, spec.column)
	return query, b.args, nil
}

// buildCompletionQuery measures seconds from creation to the earliest
// completed process row whose status is Completed.
func buildCompletionQuery(filter AggregationFilter) (string, []any) {
	b := newQueryBuilder()
	b.joins = append(b.joins,
		"JOIN request_process rp ON rp.request_id = r.id",
		"JOIN request_status ps ON ps.id = rp.status_id",
	)
	b.applyFilter(filter)
	b.where = append(b.where, "ps.status_name = 'Completed'", "rp.completed_at IS NOT NULL")

	query := "SELECT r.id, EXTRACT(EPOCH FROM (MIN(rp.completed_at) - r.created_at))::float8 FROM requests r" +
		b.tail() + " GROUP BY r.id, r.created_at"
	return query, b.args
}

func (r *dashboardRepository) CountBy(ctx context.Context, q Querier, dim Dimension, filter AggregationFilter) (map[string]int64, error) {
	query, args, err := buildCountQuery(dim, filter)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count by %s: %w", dim, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("dashboard: scan %s count: %w", dim, err)
		}
		counts[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard: count by %s: %w", dim, err)
	}
	return counts, nil
}

func (r *dashboardRepository) CompletionTimes(ctx context.Context, q Querier, filter AggregationFilter) (map[string]float64, error) {
	query, args := buildCompletionQuery(filter)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard: completion times: %w", err)
	}
	defer rows.Close()

	times := make(map[string]float64)
	for rows.Next() {
		var (
			id      string
			seconds float64
		)
		if err := rows.Scan(&id, &seconds); err != nil {
			return nil, fmt.Errorf("dashboard: scan completion time: %w", err)
		}
		times[strings.TrimSpace(id)] = seconds
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard: completion times: %w", err)
	}
	return times, nil
}
