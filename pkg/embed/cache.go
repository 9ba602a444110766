package embed

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded LRU of content id → embedding. Each learner owns its
// own instance so tests and multiple learners never share state.
type Cache struct {
	lru *lru.Cache[string, []float32]
}

// NewCache creates an embedding cache with the given capacity
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("create embedding cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Get returns the cached embedding for a content id
func (c *Cache) Get(contentID string) ([]float32, bool) { return c.lru.Get(contentID) }

// Add stores an embedding, evicting the least recently used entry when full
func (c *Cache) Add(contentID string, vec []float32) { c.lru.Add(contentID, vec) }

// Len returns the number of cached embeddings
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops all cached embeddings
func (c *Cache) Purge() { c.lru.Purge() }
