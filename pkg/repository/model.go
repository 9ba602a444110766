package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// ModelRepository persists versioned model snapshots
type ModelRepository struct {
	db *sqlx.DB
}

// NewModelRepository creates a new model repository
func NewModelRepository(db *sqlx.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// keepSnapshots bounds snapshot history per device
const keepSnapshots = 5

// Save stores a snapshot and prunes old ones beyond the retention window.
// Writes race the content upserts on the same database, lock errors are
// retried with backoff.
func (r *ModelRepository) Save(ctx context.Context, snap *domain.ModelSnapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal model snapshot: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx,
			"INSERT INTO model_snapshots (version, document) VALUES (?, ?)", snap.Version, string(doc)); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert model snapshot: %w", err)}
		}

		_, err := r.db.ExecContext(ctx, `
			DELETE FROM model_snapshots WHERE id NOT IN (
				SELECT id FROM model_snapshots ORDER BY created_at DESC, id DESC LIMIT ?
			)`, keepSnapshots)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("prune model snapshots: %w", err)}
		}
		return nil
	})
}

// Load returns the latest usable snapshot. A missing, corrupt or
// unknown-version snapshot yields (nil, nil): the caller starts from a
// fresh model, this is recoverable and never fatal.
func (r *ModelRepository) Load(ctx context.Context) (*domain.ModelSnapshot, error) {
	var doc string
	err := r.db.GetContext(ctx, &doc,
		"SELECT document FROM model_snapshots ORDER BY created_at DESC, id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load model snapshot: %w", err)
	}

	var snap domain.ModelSnapshot
	if err := json.Unmarshal([]byte(doc), &snap); err != nil {
		lgr.Printf("[WARN] corrupt model snapshot, starting fresh: %v", err)
		return nil, nil
	}
	if snap.Version != domain.ModelVersion {
		lgr.Printf("[WARN] unknown model version %q, starting fresh", snap.Version)
		return nil, nil
	}
	return &snap, nil
}
