// Package library holds the in-memory content catalog consumed by the
// learner. Content is ingested from an external source and never fetched
// by the learning core itself.
package library

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// Library is an explicit instance owned by its learner, not a process-wide
// singleton, so multiple learners never share catalog state.
type Library struct {
	items map[string]*domain.ContentItem
	order []string // insertion order for stable iteration
	now   func() time.Time
}

// New creates an empty content library
func New() *Library {
	return &Library{items: make(map[string]*domain.ContentItem), now: time.Now}
}

// Add ingests a single content item. Items without an id get a generated
// one. Re-ingesting an existing id refreshes popularity and rating only,
// the rest of the item stays immutable.
func (l *Library) Add(item domain.ContentItem) (*domain.ContentItem, error) {
	if item.Type.Index() < 0 {
		return nil, fmt.Errorf("content %q: unknown type %q", item.Title, item.Type)
	}
	for _, g := range item.Genres {
		if g.Index() < 0 {
			return nil, fmt.Errorf("content %q: unknown genre %q", item.Title, g)
		}
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	if existing, ok := l.items[item.ID]; ok {
		existing.Popularity = item.Popularity
		existing.Rating = item.Rating
		return existing, nil
	}

	if item.AddedAt.IsZero() {
		item.AddedAt = l.now()
	}
	stored := item
	l.items[stored.ID] = &stored
	l.order = append(l.order, stored.ID)
	return &stored, nil
}

// AddBatch ingests multiple items, stopping at the first invalid one
func (l *Library) AddBatch(items []domain.ContentItem) ([]*domain.ContentItem, error) {
	added := make([]*domain.ContentItem, 0, len(items))
	for _, item := range items {
		stored, err := l.Add(item)
		if err != nil {
			return added, err
		}
		added = append(added, stored)
	}
	return added, nil
}

// Get returns the item with the given id
func (l *Library) Get(id string) (*domain.ContentItem, bool) {
	item, ok := l.items[id]
	return item, ok
}

// All returns all items in insertion order
func (l *Library) All() []*domain.ContentItem {
	out := make([]*domain.ContentItem, 0, len(l.items))
	for _, id := range l.order {
		out = append(out, l.items[id])
	}
	return out
}

// ByPopularity returns all items sorted by popularity descending,
// insertion order breaking ties
func (l *Library) ByPopularity() []*domain.ContentItem {
	out := l.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PopularityOrDefault() > out[j].PopularityOrDefault()
	})
	return out
}

// Len returns the number of items in the library
func (l *Library) Len() int { return len(l.items) }
