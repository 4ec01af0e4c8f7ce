package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

var itemColumns = []string{
	"id",
	"title",
	"link",
	"description",
	"category",
	"country_focus",
	"source",
	"published_at",
	"engagement_score",
	"credibility_score",
}

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) ListLatestItems(
	ctx context.Context,
	filters domain.ItemFilters,
	page, pageSize int,
) ([]domain.Item, error) {
	sb := sqlbuilder.Select(itemColumns...)
	sb.From("items")

	conds := buildItemsConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	limit, offset := paginationToLimitOffset(page, pageSize)
	sb.OrderBy("published_at DESC", "id")
	sb.Offset(offset)
	sb.Limit(limit)

	return r.queryItems(ctx, sb)
}

// ListCandidateItems returns the newest items matching the filters. Items
// without a publication time sort last.
func (r *Repository) ListCandidateItems(
	ctx context.Context,
	filters domain.ItemFilters,
	limit int,
) ([]domain.Item, error) {
	if limit <= 0 {
		return []domain.Item{}, nil
	}

	sb := sqlbuilder.Select(itemColumns...)
	sb.From("items")

	conds := buildItemsConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("published_at IS NULL", "published_at DESC", "id")
	sb.Limit(limit)

	return r.queryItems(ctx, sb)
}

func (r *Repository) GetItem(ctx context.Context, id string) (domain.Item, error) {
	sb := sqlbuilder.Select(itemColumns...)
	sb.From("items")
	sb.Where(sb.Equal("id", id))

	items, err := r.queryItems(ctx, sb)
	if err != nil {
		return domain.Item{}, err
	}
	if len(items) == 0 {
		return domain.Item{}, fmt.Errorf("item [%s]: %w", id, datasources.ErrNotFound)
	}
	return items[0], nil
}

func (r *Repository) FetchItemsByID(ctx context.Context, ids []string) ([]domain.Item, error) {
	if len(ids) == 0 {
		return []domain.Item{}, nil
	}

	sb := sqlbuilder.Select(itemColumns...)
	sb.From("items")
	sb.Where(sb.In("id", toArgs(ids)...))

	items, err := r.queryItems(ctx, sb)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]domain.Item, 0, len(items))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *Repository) TotalMatchingItems(
	ctx context.Context,
	filters domain.ItemFilters,
) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("items")

	conds := buildItemsConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting matching items: %w", err)
	}
	return count, nil
}

// UpsertItem stores an item, replacing any existing item with the same ID.
func (r *Repository) UpsertItem(ctx context.Context, item domain.Item) error {
	if item.ID == "" {
		return errors.New("item has no ID")
	}

	var publishedAt sql.NullTime
	if !item.PublishedAt.IsZero() {
		publishedAt = sql.NullTime{Time: item.PublishedAt, Valid: true}
	}

	ib := sqlbuilder.InsertInto("items")
	ib.Cols(itemColumns...)
	ib.Values(
		item.ID,
		item.Title,
		item.Link,
		item.Description,
		string(item.NormalizedCategory()),
		joinList(item.CountryFocus),
		item.Source,
		publishedAt,
		nullFloat(item.EngagementScore),
		nullFloat(item.CredibilityScore),
	)
	ib.SQL("ON DUPLICATE KEY UPDATE " +
		"title = VALUES(title), link = VALUES(link), description = VALUES(description), " +
		"category = VALUES(category), country_focus = VALUES(country_focus), source = VALUES(source), " +
		"published_at = VALUES(published_at), engagement_score = VALUES(engagement_score), " +
		"credibility_score = VALUES(credibility_score)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting item [%s]: %w", item.ID, err)
	}
	return nil
}

func (r *Repository) queryItems(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Item, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running items query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Item{}
	for rows.Next() {
		var (
			item        domain.Item
			title       sql.NullString
			link        sql.NullString
			description sql.NullString
			countries   sql.NullString
			publishedAt sql.NullTime
			engagement  sql.NullFloat64
			credibility sql.NullFloat64
		)
		if err := rows.Scan(
			&item.ID,
			&title,
			&link,
			&description,
			&item.Category,
			&countries,
			&item.Source,
			&publishedAt,
			&engagement,
			&credibility,
		); err != nil {
			return nil, fmt.Errorf("scanning items: %w", err)
		}

		item.Title = title.String
		item.Link = link.String
		item.Description = description.String
		item.CountryFocus = splitList(countries.String)
		if publishedAt.Valid {
			item.PublishedAt = publishedAt.Time
		}
		if engagement.Valid {
			item.EngagementScore = &engagement.Float64
		}
		if credibility.Valid {
			item.CredibilityScore = &credibility.Float64
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return items, nil
}

func buildItemsConditions(sb *sqlbuilder.SelectBuilder, filters domain.ItemFilters) []string {
	var conds []string

	if len(filters.Categories) > 0 {
		conds = append(conds, sb.In("category", toArgs(filters.Categories)...))
	}

	if len(filters.Countries) > 0 {
		countryConds := make([]string, 0, len(filters.Countries))
		for _, country := range filters.Countries {
			countryConds = append(countryConds, "FIND_IN_SET("+sb.Args.Add(country)+", country_focus) > 0")
		}
		conds = append(conds, sb.Or(countryConds...))
	}

	if len(filters.OnlySources) > 0 {
		conds = append(conds, sb.In("source", toArgs(filters.OnlySources)...))
	}

	if len(filters.ExceptSources) > 0 {
		conds = append(conds, sb.NotIn("source", toArgs(filters.ExceptSources)...))
	}

	if !filters.PublishedFrom.IsZero() {
		conds = append(conds, sb.GreaterEqualThan("published_at", filters.PublishedFrom))
	}

	return conds
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}

// Lists are stored comma separated so FIND_IN_SET can match them.
func joinList(values []string) string {
	return strings.Join(values, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// paginationToLimitOffset converts page/pageSize to limit/offset, treating
// pages as 1-based and clamping to the int32 range.
func paginationToLimitOffset(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}

	off := (page - 1) * pageSize
	if off > math.MaxInt32 || off < 0 {
		off = math.MaxInt32
	}
	return pageSize, off
}
