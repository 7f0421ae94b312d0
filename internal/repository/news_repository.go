package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news-api/internal/domain"
)

type NewsRepository interface {
	Insert(ctx context.Context, news *domain.News) error
	FindAll(ctx context.Context, pagination domain.Pagination) (*domain.PaginatedResult, error)
	FindByID(ctx context.Context, id int) (*domain.News, error)
	FindWithFilters(ctx context.Context, filters domain.Filters, pagination domain.Pagination) (*domain.PaginatedResult, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type newsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &newsRepository{db: db}
}

const newsColumns = `id, title, link, description, pub_date, image, categories,
	ingestion_date, source, keywords, unique_id, created_at, updated_at`

// Insert stores one record. A uniqueness violation on link or unique_id is
// reported as domain.ErrDuplicateEntry so callers can count it instead of
// treating it as a fault.
func (r *newsRepository) Insert(ctx context.Context, news *domain.News) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO news (title, link, description, pub_date, image, categories,
			ingestion_date, source, keywords, unique_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		news.Title,
		news.Link,
		news.Description,
		news.PubDate,
		news.Image,
		pq.Array(news.Categories),
		news.IngestionDate,
		string(news.Source),
		pq.Array(news.Keywords),
		news.UniqueID,
	).Scan(&news.ID, &news.CreatedAt, &news.UpdatedAt)

	if err != nil {
		if isDuplicateError(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *newsRepository) FindAll(ctx context.Context, pagination domain.Pagination) (*domain.PaginatedResult, error) {
	return r.findPage(ctx, "", nil, pagination)
}

func (r *newsRepository) FindByID(ctx context.Context, id int) (*domain.News, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+newsColumns+" FROM news WHERE id = $1", id)

	news, err := scanNews(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	return news, nil
}

func (r *newsRepository) FindWithFilters(ctx context.Context, filters domain.Filters, pagination domain.Pagination) (*domain.PaginatedResult, error) {
	where, args := buildFilterClause(filters)
	return r.findPage(ctx, where, args, pagination)
}

func (r *newsRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM news WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *newsRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM news"); err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT source, COUNT(*), MAX(pub_date)
		FROM news
		GROUP BY source
		ORDER BY COUNT(*) DESC, source`)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	defer rows.Close()

	bySource := make([]domain.SourceStat, 0, 4)
	for rows.Next() {
		var stat domain.SourceStat
		if err := rows.Scan(&stat.Source, &stat.Count, &stat.Latest); err != nil {
			return nil, fmt.Errorf("failed to scan source stat: %w", err)
		}
		bySource = append(bySource, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stats: %w", err)
	}

	return &domain.Stats{Total: total, BySource: bySource}, nil
}

// findPage runs the shared count + page query; where must be either empty or
// a leading " WHERE ..." fragment with $1..$n placeholders matching args.
func (r *newsRepository) findPage(ctx context.Context, where string, args []interface{}, pagination domain.Pagination) (*domain.PaginatedResult, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM news"+where, args...); err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM news%s ORDER BY pub_date DESC LIMIT $%d OFFSET $%d",
		newsColumns, where, len(args)+1, len(args)+2,
	)
	pageArgs := append(append([]interface{}{}, args...), pagination.Limit, pagination.Offset())

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	defer rows.Close()

	results := make([]domain.News, 0, pagination.Limit)
	for rows.Next() {
		news, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		results = append(results, *news)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news: %w", err)
	}

	return &domain.PaginatedResult{
		Results:    results,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages(total, pagination.Limit),
	}, nil
}

// buildFilterClause composes a conjunctive WHERE fragment from the set
// filters. Free-text search goes through the spanish full-text index;
// category is a case-insensitive substring match over the flattened list.
func buildFilterClause(filters domain.Filters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filters.Search != "" {
		args = append(args, filters.Search)
		conditions = append(conditions, fmt.Sprintf(
			"to_tsvector('spanish', title || ' ' || description) @@ plainto_tsquery('spanish', $%d)",
			len(args)))
	}
	if filters.Category != "" {
		args = append(args, "%"+filters.Category+"%")
		conditions = append(conditions, fmt.Sprintf(
			"array_to_string(categories, ', ') ILIKE $%d", len(args)))
	}
	if filters.Source != "" {
		args = append(args, string(filters.Source))
		conditions = append(conditions, fmt.Sprintf("source = $%d", len(args)))
	}
	if !filters.From.IsZero() {
		args = append(args, filters.From)
		conditions = append(conditions, fmt.Sprintf("pub_date >= $%d", len(args)))
	}
	if !filters.To.IsZero() {
		args = append(args, filters.To)
		conditions = append(conditions, fmt.Sprintf("pub_date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNews(row rowScanner) (*domain.News, error) {
	var news domain.News
	err := row.Scan(
		&news.ID,
		&news.Title,
		&news.Link,
		&news.Description,
		&news.PubDate,
		&news.Image,
		pq.Array(&news.Categories),
		&news.IngestionDate,
		&news.Source,
		pq.Array(&news.Keywords),
		&news.UniqueID,
		&news.CreatedAt,
		&news.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func isDuplicateError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint"))
}
