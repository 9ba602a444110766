package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLearningConfig_Valid(t *testing.T) {
	cfg := DefaultLearningConfig()
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 0.1, cfg.LearningRate, 1e-9)
	assert.InDelta(t, 0.9, cfg.DiscountFactor, 1e-9)
	assert.InDelta(t, 0.3, cfg.ExplorationRate, 1e-9)
	assert.Equal(t, 64, cfg.EmbeddingDim)
	assert.Equal(t, 1000, cfg.MemorySize)
}

func TestLearningConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *LearningConfig)
		errMsg string
	}{
		{name: "learning rate above one", mutate: func(c *LearningConfig) { c.LearningRate = 1.1 }, errMsg: "learning rate"},
		{name: "negative learning rate", mutate: func(c *LearningConfig) { c.LearningRate = -0.1 }, errMsg: "learning rate"},
		{name: "discount factor above one", mutate: func(c *LearningConfig) { c.DiscountFactor = 2 }, errMsg: "discount factor"},
		{name: "exploration rate above one", mutate: func(c *LearningConfig) { c.ExplorationRate = 1.5 }, errMsg: "exploration rate"},
		{name: "negative exploration min", mutate: func(c *LearningConfig) { c.ExplorationMin = -0.1 }, errMsg: "exploration min"},
		{name: "zero exploration decay", mutate: func(c *LearningConfig) { c.ExplorationDecay = 0 }, errMsg: "exploration decay"},
		{name: "zero batch size", mutate: func(c *LearningConfig) { c.BatchSize = 0 }, errMsg: "batch size"},
		{name: "negative memory size", mutate: func(c *LearningConfig) { c.MemorySize = -1 }, errMsg: "memory size"},
		{name: "zero embedding dim", mutate: func(c *LearningConfig) { c.EmbeddingDim = 0 }, errMsg: "embedding dim"},
		{name: "similarity threshold above one", mutate: func(c *LearningConfig) { c.SimilarityThreshold = 1.1 }, errMsg: "similarity threshold"},
		{name: "negative min session minutes", mutate: func(c *LearningConfig) { c.MinSessionMinutes = -1 }, errMsg: "min session minutes"},
		{name: "zero cache size", mutate: func(c *LearningConfig) { c.CacheSize = 0 }, errMsg: "cache size"},
		{name: "zero max patterns", mutate: func(c *LearningConfig) { c.MaxPatterns = 0 }, errMsg: "max patterns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLearningConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestModelSnapshot_JSONShape(t *testing.T) {
	snap := ModelSnapshot{
		Version:   ModelVersion,
		Timestamp: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		Model: Model{
			QTable: []QTableEntry{
				{State: "evening|weekday|comedy|movie|0.9", Actions: []QTableAction{
					{Action: ActionFavoriteGenre, QValue: 0.42, Visits: 7},
				}},
			},
			Config: DefaultLearningConfig(),
			Stats:  ModelStats{TotalReward: 3.2, EpisodeCount: 5, ExplorationRate: 0.28},
		},
	}

	data, err := json.Marshal(&snap)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"version":"1.0"`)
	assert.Contains(t, s, `"qTable"`)
	assert.Contains(t, s, `"qValue":0.42`)
	assert.Contains(t, s, `"totalReward":3.2`)
	assert.Contains(t, s, `"learningRate":0.1`)

	var back ModelSnapshot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, snap.Version, back.Version)
	assert.Equal(t, snap.Model.QTable, back.Model.QTable)
	assert.Equal(t, snap.Model.Stats, back.Model.Stats)
}
