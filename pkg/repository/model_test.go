package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

func testSnapshot(reward float64) *domain.ModelSnapshot {
	return &domain.ModelSnapshot{
		Version:   domain.ModelVersion,
		Timestamp: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		Model: domain.Model{
			QTable: []domain.QTableEntry{
				{State: "evening|weekday|comedy|movie|0.9", Actions: []domain.QTableAction{
					{Action: domain.ActionFavoriteGenre, QValue: 0.42, Visits: 7},
				}},
			},
			Config: domain.DefaultLearningConfig(),
			Stats:  domain.ModelStats{TotalReward: reward, EpisodeCount: 5, ExplorationRate: 0.28},
		},
	}
}

func TestModelRepository_SaveLoad(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	snap := testSnapshot(3.2)
	require.NoError(t, repos.Model.Save(ctx, snap))

	loaded, err := repos.Model.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.Version, loaded.Version)
	assert.Equal(t, snap.Model.QTable, loaded.Model.QTable)
	assert.Equal(t, snap.Model.Stats, loaded.Model.Stats)
	assert.Equal(t, snap.Model.Config, loaded.Model.Config)
}

func TestModelRepository_Load_Empty(t *testing.T) {
	repos := setupTestRepos(t)

	loaded, err := repos.Model.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded, "no snapshot means fresh start, not an error")
}

func TestModelRepository_Load_LatestWins(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, repos.Model.Save(ctx, testSnapshot(float64(i))))
	}

	loaded, err := repos.Model.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.InDelta(t, 3.0, loaded.Model.Stats.TotalReward, 1e-9)
}

func TestModelRepository_Save_PrunesHistory(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	for i := 0; i < keepSnapshots+4; i++ {
		require.NoError(t, repos.Model.Save(ctx, testSnapshot(float64(i))))
	}

	var count int
	require.NoError(t, repos.DB.Get(&count, "SELECT COUNT(*) FROM model_snapshots"))
	assert.Equal(t, keepSnapshots, count)

	// the latest snapshot survives pruning
	loaded, err := repos.Model.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.InDelta(t, float64(keepSnapshots+3), loaded.Model.Stats.TotalReward, 1e-9)
}

func TestModelRepository_Load_CorruptDocument(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	_, err := repos.DB.ExecContext(ctx,
		"INSERT INTO model_snapshots (version, document) VALUES (?, ?)", domain.ModelVersion, "{not json")
	require.NoError(t, err)

	loaded, err := repos.Model.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "corrupt snapshot falls back to fresh model")
}

func TestModelRepository_Load_UnknownVersion(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	doc := fmt.Sprintf(`{"version":%q,"timestamp":"2025-06-02T12:00:00Z","model":{}}`, "9.9")
	_, err := repos.DB.ExecContext(ctx,
		"INSERT INTO model_snapshots (version, document) VALUES (?, ?)", "9.9", doc)
	require.NoError(t, err)

	loaded, err := repos.Model.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "unknown version falls back to fresh model")
}
