package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// ContentRepository persists the ingested content catalog so the library
// can be rebuilt on startup
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// contentRow is the flat DB representation, genres and keywords as JSON
type contentRow struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Type         string    `db:"type"`
	Genres       string    `db:"genres"`
	Duration     int       `db:"duration"`
	ReleaseYear  int       `db:"release_year"`
	Rating       float64   `db:"rating"`
	Popularity   float64   `db:"popularity"`
	Description  string    `db:"description"`
	Keywords     string    `db:"keywords"`
	LaunchTarget string    `db:"launch_target"`
	AddedAt      time.Time `db:"added_at"`
}

// Upsert stores a content item, refreshing rating and popularity on conflict
func (r *ContentRepository) Upsert(ctx context.Context, item *domain.ContentItem) error {
	genres, err := json.Marshal(item.Genres)
	if err != nil {
		return fmt.Errorf("marshal genres: %w", err)
	}
	keywords, err := json.Marshal(item.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	query := `
		INSERT INTO content (id, title, type, genres, duration, release_year, rating, popularity,
		                     description, keywords, launch_target, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET rating = excluded.rating, popularity = excluded.popularity
	`
	addedAt := item.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now()
	}
	_, err = r.db.ExecContext(ctx, query,
		item.ID, item.Title, string(item.Type), string(genres), item.Duration, item.ReleaseYear,
		item.Rating, item.Popularity, item.Description, string(keywords), item.LaunchTarget, addedAt)
	if err != nil {
		return fmt.Errorf("upsert content %s: %w", item.ID, err)
	}
	return nil
}

// All returns the full stored catalog in insertion order
func (r *ContentRepository) All(ctx context.Context) ([]domain.ContentItem, error) {
	var rows []contentRow
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM content ORDER BY added_at, id")
	if err != nil {
		return nil, fmt.Errorf("select content: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		item := domain.ContentItem{
			ID:           row.ID,
			Title:        row.Title,
			Type:         domain.ContentType(row.Type),
			Duration:     row.Duration,
			ReleaseYear:  row.ReleaseYear,
			Rating:       row.Rating,
			Popularity:   row.Popularity,
			Description:  row.Description,
			LaunchTarget: row.LaunchTarget,
			AddedAt:      row.AddedAt,
		}
		if err := json.Unmarshal([]byte(row.Genres), &item.Genres); err != nil {
			return nil, fmt.Errorf("unmarshal genres for %s: %w", row.ID, err)
		}
		if err := json.Unmarshal([]byte(row.Keywords), &item.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords for %s: %w", row.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Count returns the number of stored content items
func (r *ContentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM content"); err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return count, nil
}
