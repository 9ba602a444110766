package domain

import (
	"fmt"
	"time"
)

// ModelVersion identifies the persisted model document format. Loading a
// document with any other version falls back to a fresh model.
const ModelVersion = "1.0"

// QTableAction is a single action cell in a persisted Q-table row
type QTableAction struct {
	Action Action  `json:"action"`
	QValue float64 `json:"qValue"`
	Visits int     `json:"visits"`
}

// QTableEntry is a persisted Q-table row for one canonical state
type QTableEntry struct {
	State   string         `json:"state"`
	Actions []QTableAction `json:"actions"`
}

// ModelStats carries the learner counters persisted with the model
type ModelStats struct {
	TotalReward     float64 `json:"totalReward"`
	EpisodeCount    int     `json:"episodeCount"`
	ExplorationRate float64 `json:"explorationRate"`
}

// Model is the learned-state portion of a persisted snapshot
type Model struct {
	QTable      []QTableEntry    `json:"qTable"`
	Patterns    []ViewingPattern `json:"patterns"`
	Preferences UserPreference   `json:"preferences"`
	Config      LearningConfig   `json:"config"`
	Stats       ModelStats       `json:"stats"`
}

// ModelSnapshot is the versioned JSON document produced by exportModel
// and consumed by importModel
type ModelSnapshot struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Model     Model     `json:"model"`
}

// LearningConfig holds the tunable parameters of the learning engine.
// All fields have validated defaults; out-of-range values are rejected
// at construction rather than silently coerced.
type LearningConfig struct {
	LearningRate        float64 `json:"learningRate" yaml:"learning_rate"`
	DiscountFactor      float64 `json:"discountFactor" yaml:"discount_factor"`
	ExplorationRate     float64 `json:"explorationRate" yaml:"exploration_rate"`
	ExplorationMin      float64 `json:"explorationMin" yaml:"exploration_min"`
	ExplorationDecay    float64 `json:"explorationDecay" yaml:"exploration_decay"`
	BatchSize           int     `json:"batchSize" yaml:"batch_size"`
	MemorySize          int     `json:"memorySize" yaml:"memory_size"` // shared cap for sessions and replay buffer
	EmbeddingDim        int     `json:"embeddingDim" yaml:"embedding_dim"`
	SimilarityThreshold float64 `json:"similarityThreshold" yaml:"similarity_threshold"`
	MinSessionMinutes   int     `json:"minSessionMinutes" yaml:"min_session_minutes"`
	CacheSize           int     `json:"cacheSize" yaml:"cache_size"`       // embedding LRU capacity
	MaxPatterns         int     `json:"maxPatterns" yaml:"max_patterns"`   // pattern store capacity
}

// DefaultLearningConfig returns the validated default parameter set
func DefaultLearningConfig() LearningConfig {
	return LearningConfig{
		LearningRate:        0.1,
		DiscountFactor:      0.9,
		ExplorationRate:     0.3,
		ExplorationMin:      0.05,
		ExplorationDecay:    0.995,
		BatchSize:           32,
		MemorySize:          1000,
		EmbeddingDim:        64,
		SimilarityThreshold: 0.7,
		MinSessionMinutes:   5,
		CacheSize:           500,
		MaxPatterns:         10000,
	}
}

// Validate rejects out-of-range learning parameters
func (c *LearningConfig) Validate() error {
	if c.LearningRate < 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate %v outside [0,1]", c.LearningRate)
	}
	if c.DiscountFactor < 0 || c.DiscountFactor > 1 {
		return fmt.Errorf("discount factor %v outside [0,1]", c.DiscountFactor)
	}
	if c.ExplorationRate < 0 || c.ExplorationRate > 1 {
		return fmt.Errorf("exploration rate %v outside [0,1]", c.ExplorationRate)
	}
	if c.ExplorationMin < 0 || c.ExplorationMin > 1 {
		return fmt.Errorf("exploration min %v outside [0,1]", c.ExplorationMin)
	}
	if c.ExplorationDecay <= 0 || c.ExplorationDecay > 1 {
		return fmt.Errorf("exploration decay %v outside (0,1]", c.ExplorationDecay)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.MemorySize <= 0 {
		return fmt.Errorf("memory size must be positive, got %d", c.MemorySize)
	}
	if c.EmbeddingDim <= 0 {
		return fmt.Errorf("embedding dim must be positive, got %d", c.EmbeddingDim)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold %v outside [0,1]", c.SimilarityThreshold)
	}
	if c.MinSessionMinutes < 0 {
		return fmt.Errorf("min session minutes must be non-negative, got %d", c.MinSessionMinutes)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	if c.MaxPatterns <= 0 {
		return fmt.Errorf("max patterns must be positive, got %d", c.MaxPatterns)
	}
	return nil
}
