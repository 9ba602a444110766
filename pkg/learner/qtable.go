package learner

import (
	"sort"
	"time"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// qRow holds Q-values and visit counts for all actions of one state.
// Fixed-size arrays indexed by the closed action enumeration avoid nested
// dynamic maps and enforce the action set at compile time.
type qRow struct {
	values  [domain.NumActions]float64
	visits  [domain.NumActions]int
	updated [domain.NumActions]time.Time
}

// qTable is a sparse map of canonical state key to per-action values,
// updated with the TD(0) control rule
type qTable struct {
	rows  map[string]*qRow
	alpha float64 // learning rate
	gamma float64 // discount factor
}

func newQTable(alpha, gamma float64) *qTable {
	return &qTable{rows: make(map[string]*qRow), alpha: alpha, gamma: gamma}
}

// get returns the stored Q-value, 0 for unseen state-action pairs
func (q *qTable) get(stateKey string, action domain.Action) float64 {
	row, ok := q.rows[stateKey]
	if !ok {
		return 0
	}
	return row.values[action.Index()]
}

// visits returns the visit count for a state-action pair
func (q *qTable) visitCount(stateKey string, action domain.Action) int {
	row, ok := q.rows[stateKey]
	if !ok {
		return 0
	}
	return row.visits[action.Index()]
}

// update applies the TD(0) rule Q ← Q + α·(r + γ·maxNextQ − Q) and bumps
// the visit count and timestamp
func (q *qTable) update(stateKey string, action domain.Action, reward float64, nextStateKey string, now time.Time) {
	row, ok := q.rows[stateKey]
	if !ok {
		row = &qRow{}
		q.rows[stateKey] = row
	}

	maxNextQ := 0.0
	if next, ok := q.rows[nextStateKey]; ok {
		maxNextQ = next.values[0]
		for _, v := range next.values[1:] {
			if v > maxNextQ {
				maxNextQ = v
			}
		}
	}

	i := action.Index()
	row.values[i] += q.alpha * (reward + q.gamma*maxNextQ - row.values[i])
	row.visits[i]++
	row.updated[i] = now
}

// best returns the action with the highest Q-value for the state, ties
// broken by enumeration order. Unseen states yield the first action.
func (q *qTable) best(stateKey string) domain.Action {
	row, ok := q.rows[stateKey]
	if !ok {
		return domain.Actions[0]
	}
	bestIdx := 0
	for i := 1; i < domain.NumActions; i++ {
		if row.values[i] > row.values[bestIdx] {
			bestIdx = i
		}
	}
	return domain.Actions[bestIdx]
}

// len returns the number of distinct states in the table
func (q *qTable) len() int { return len(q.rows) }

// export serializes the table into persisted entries, states sorted for
// deterministic output
func (q *qTable) export() []domain.QTableEntry {
	keys := make([]string, 0, len(q.rows))
	for k := range q.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]domain.QTableEntry, 0, len(keys))
	for _, k := range keys {
		row := q.rows[k]
		actions := make([]domain.QTableAction, 0, domain.NumActions)
		for i, a := range domain.Actions {
			if row.values[i] == 0 && row.visits[i] == 0 {
				continue
			}
			actions = append(actions, domain.QTableAction{Action: a, QValue: row.values[i], Visits: row.visits[i]})
		}
		entries = append(entries, domain.QTableEntry{State: k, Actions: actions})
	}
	return entries
}

// load replaces the table content from persisted entries, skipping
// unknown actions
func (q *qTable) load(entries []domain.QTableEntry, now time.Time) {
	q.rows = make(map[string]*qRow, len(entries))
	for _, e := range entries {
		row := &qRow{}
		for _, a := range e.Actions {
			i := a.Action.Index()
			if i < 0 {
				continue
			}
			row.values[i] = a.QValue
			row.visits[i] = a.Visits
			row.updated[i] = now
		}
		q.rows[e.State] = row
	}
}
