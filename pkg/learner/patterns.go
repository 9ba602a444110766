package learner

import (
	"sort"
	"time"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// successThreshold marks an occurrence as successful for the running
// success rate
const successThreshold = 0.7

// patternStore consolidates high-reward (state, action) occurrences into
// reusable pattern records. Running averages give equal weight to all
// historical occurrences rather than decaying old ones.
type patternStore struct {
	patterns map[string]*domain.ViewingPattern
	cap      int
}

func newPatternStore(capacity int) *patternStore {
	return &patternStore{patterns: make(map[string]*domain.ViewingPattern), cap: capacity}
}

// record creates or updates the pattern for a (state, action) pair
func (s *patternStore) record(stateKey string, action domain.Action, reward float64, stateVec []float32, now time.Time) {
	key := stateKey + "|" + string(action)
	success := 0.0
	if reward > successThreshold {
		success = 1
	}

	p, ok := s.patterns[key]
	if !ok {
		s.patterns[key] = &domain.ViewingPattern{
			Key:         key,
			Action:      action,
			Reward:      reward,
			SuccessRate: success,
			Occurrences: 1,
			Embedding:   stateVec,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if len(s.patterns) > s.cap {
			s.evict()
		}
		return
	}

	n := float64(p.Occurrences + 1)
	p.Reward = (p.Reward*(n-1) + reward) / n
	p.SuccessRate = (p.SuccessRate*(n-1) + success) / n
	p.Occurrences++
	p.UpdatedAt = now
}

// evict drops the pattern with the fewest occurrences, oldest first on
// ties, keeping the store within its capacity
func (s *patternStore) evict() {
	var victim string
	var victimP *domain.ViewingPattern
	for key, p := range s.patterns {
		if victimP == nil || p.Occurrences < victimP.Occurrences ||
			(p.Occurrences == victimP.Occurrences && p.UpdatedAt.Before(victimP.UpdatedAt)) {
			victim, victimP = key, p
		}
	}
	delete(s.patterns, victim)
}

// all returns all patterns sorted by key for deterministic export
func (s *patternStore) all() []domain.ViewingPattern {
	keys := make([]string, 0, len(s.patterns))
	for k := range s.patterns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]domain.ViewingPattern, 0, len(keys))
	for _, k := range keys {
		out = append(out, *s.patterns[k])
	}
	return out
}

// load replaces the store content from persisted patterns
func (s *patternStore) load(patterns []domain.ViewingPattern) {
	s.patterns = make(map[string]*domain.ViewingPattern, len(patterns))
	for _, p := range patterns {
		stored := p
		s.patterns[p.Key] = &stored
	}
}

// len returns the number of stored patterns
func (s *patternStore) len() int { return len(s.patterns) }
