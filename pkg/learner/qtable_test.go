package learner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

func TestQTable_Update(t *testing.T) {
	qt := newQTable(0.1, 0.9)
	now := time.Now()

	qt.update("s1", domain.ActionPopular, 1.0, "s2", now)
	// fresh state, no next row: Q = 0 + 0.1*(1 + 0 - 0) = 0.1
	assert.InDelta(t, 0.1, qt.get("s1", domain.ActionPopular), 1e-9)
	assert.Equal(t, 1, qt.visitCount("s1", domain.ActionPopular))

	qt.update("s1", domain.ActionPopular, 1.0, "s2", now)
	// Q = 0.1 + 0.1*(1 - 0.1) = 0.19
	assert.InDelta(t, 0.19, qt.get("s1", domain.ActionPopular), 1e-9)
	assert.Equal(t, 2, qt.visitCount("s1", domain.ActionPopular))
}

func TestQTable_UpdateBootstrapsFromNextState(t *testing.T) {
	qt := newQTable(0.5, 0.9)
	now := time.Now()

	// seed next state with a known best value
	qt.update("s2", domain.ActionTrending, 1.0, "missing", now) // Q(s2,trending) = 0.5
	require.InDelta(t, 0.5, qt.get("s2", domain.ActionTrending), 1e-9)

	qt.update("s1", domain.ActionPopular, 0.0, "s2", now)
	// Q = 0 + 0.5*(0 + 0.9*0.5 - 0) = 0.225
	assert.InDelta(t, 0.225, qt.get("s1", domain.ActionPopular), 1e-9)
}

func TestQTable_Get_UnseenReturnsZero(t *testing.T) {
	qt := newQTable(0.1, 0.9)
	assert.Zero(t, qt.get("nope", domain.ActionPopular))
	assert.Zero(t, qt.visitCount("nope", domain.ActionPopular))
}

func TestQTable_Best(t *testing.T) {
	qt := newQTable(1.0, 0) // alpha 1 makes Q equal the last reward
	now := time.Now()

	qt.update("s1", domain.ActionTrending, 0.5, "x", now)
	qt.update("s1", domain.ActionNewRelease, 0.9, "x", now)
	qt.update("s1", domain.ActionPopular, 0.3, "x", now)

	assert.Equal(t, domain.ActionNewRelease, qt.best("s1"))
}

func TestQTable_Best_UnseenState(t *testing.T) {
	qt := newQTable(0.1, 0.9)
	assert.Equal(t, domain.Actions[0], qt.best("unseen"))
}

func TestQTable_Best_TieBreaksByEnumerationOrder(t *testing.T) {
	qt := newQTable(1.0, 0)
	now := time.Now()

	// explore_type and similar_to_last end up with equal Q-values
	qt.update("s1", domain.ActionExploreType, 0.8, "x", now)
	qt.update("s1", domain.ActionSimilarToLast, 0.8, "x", now)

	assert.Equal(t, domain.ActionSimilarToLast, qt.best("s1"))
}

func TestQTable_ExportLoad(t *testing.T) {
	qt := newQTable(0.1, 0.9)
	now := time.Now()

	qt.update("b|state", domain.ActionPopular, 0.8, "x", now)
	qt.update("a|state", domain.ActionTrending, 0.6, "x", now)
	qt.update("a|state", domain.ActionTrending, 0.6, "x", now)

	entries := qt.export()
	require.Len(t, entries, 2)
	assert.Equal(t, "a|state", entries[0].State, "export sorts states")
	assert.Equal(t, "b|state", entries[1].State)
	require.Len(t, entries[0].Actions, 1, "untouched actions are skipped")
	assert.Equal(t, domain.ActionTrending, entries[0].Actions[0].Action)
	assert.Equal(t, 2, entries[0].Actions[0].Visits)

	restored := newQTable(0.1, 0.9)
	restored.load(entries, now)
	assert.Equal(t, qt.len(), restored.len())
	assert.InDelta(t, qt.get("a|state", domain.ActionTrending), restored.get("a|state", domain.ActionTrending), 1e-9)
	assert.Equal(t, qt.visitCount("b|state", domain.ActionPopular), restored.visitCount("b|state", domain.ActionPopular))
}

func TestQTable_LoadSkipsUnknownActions(t *testing.T) {
	qt := newQTable(0.1, 0.9)
	qt.load([]domain.QTableEntry{
		{State: "s1", Actions: []domain.QTableAction{
			{Action: "bogus_action", QValue: 0.9, Visits: 3},
			{Action: domain.ActionPopular, QValue: 0.5, Visits: 1},
		}},
	}, time.Now())

	assert.Equal(t, 1, qt.len())
	assert.InDelta(t, 0.5, qt.get("s1", domain.ActionPopular), 1e-9)
}
