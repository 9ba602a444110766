// Package learner implements the on-device preference-learning and
// recommendation engine: a tabular Q-learning agent that picks a
// recommendation strategy from viewing context, ranks candidate content,
// and learns from viewing outcomes.
package learner

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/agenticsorg/tvbrain/pkg/domain"
	"github.com/agenticsorg/tvbrain/pkg/embed"
	"github.com/agenticsorg/tvbrain/pkg/library"
)

// Learner owns all learned state: the Q-table, replay buffer, pattern
// store, user preference and session history, plus its content library and
// embedding cache. One learner instance per device; methods serialize
// through a mutex so one request runs to completion before the next.
type Learner struct {
	mu       sync.Mutex
	cfg      domain.LearningConfig
	lib      *library.Library
	embedder *embed.Embedder
	qt       *qTable
	pol      *policy
	buffer   *replayBuffer
	patterns *patternStore
	pref     domain.UserPreference
	sessions []domain.ViewingSession

	totalReward float64
	episodes    int

	rng *rand.Rand
	now func() time.Time
}

// New creates a learner with the given config, rejecting invalid values
func New(cfg domain.LearningConfig) (*Learner, error) {
	return NewWithSeed(cfg, time.Now().UnixNano())
}

// NewWithSeed creates a learner with deterministic randomness, used by
// tests and model round-trip verification
func NewWithSeed(cfg domain.LearningConfig, seed int64) (*Learner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid learning config: %w", err)
	}

	embedder, err := embed.NewEmbedder(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible exploration, not crypto
	return &Learner{
		cfg:      cfg,
		lib:      library.New(),
		embedder: embedder,
		qt:       newQTable(cfg.LearningRate, cfg.DiscountFactor),
		pol:      newPolicy(cfg.ExplorationRate, cfg.ExplorationMin, cfg.ExplorationDecay, rng),
		buffer:   newReplayBuffer(cfg.MemorySize),
		patterns: newPatternStore(cfg.MaxPatterns),
		rng:      rng,
		now:      time.Now,
	}, nil
}

// AddContent ingests a single content item into the library
func (l *Learner) AddContent(item domain.ContentItem) (*domain.ContentItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lib.Add(item)
}

// AddContents ingests a batch of content items
func (l *Learner) AddContents(items []domain.ContentItem) ([]*domain.ContentItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lib.AddBatch(items)
}

// ContentCount returns the number of items in the library
func (l *Learner) ContentCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lib.Len()
}

// RecordSession feeds a finished viewing session into the learning loop:
// reward the outcome, apply the TD update, store the experience, and when
// the reward is high enough fold the session into preferences and
// patterns. Sessions below the minimum duration are dropped silently.
func (l *Learner) RecordSession(session domain.ViewingSession, actionTaken domain.Action) error {
	if actionTaken.Index() < 0 {
		return fmt.Errorf("unknown action %q", actionTaken)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// upstream filters short sessions already, re-check defensively
	if session.WatchDuration < l.cfg.MinSessionMinutes {
		lgr.Printf("[DEBUG] dropped session %s, watched %dm below minimum %dm",
			session.ID, session.WatchDuration, l.cfg.MinSessionMinutes)
		return nil
	}

	session.CompletionRate = clamp(session.CompletionRate, 0, 1)
	now := l.now()
	if session.TimeBucket == "" {
		ts := session.StartedAt
		if ts.IsZero() {
			ts = now
		}
		session.TimeBucket = domain.BucketForHour(ts.Hour())
		session.Day = domain.DayTypeFor(ts)
	}

	state := extractState(l.sessions, l.lib, now)

	l.sessions = append(l.sessions, session)
	if len(l.sessions) > l.cfg.MemorySize {
		l.sessions = l.sessions[len(l.sessions)-l.cfg.MemorySize:]
	}
	nextState := extractState(l.sessions, l.lib, now)

	content, _ := l.lib.Get(session.ContentID)
	reward := sessionReward(&session, content)

	l.buffer.add(domain.ExperienceTuple{
		State:     state,
		Action:    actionTaken,
		Reward:    reward,
		NextState: nextState,
		Timestamp: now,
	})
	l.qt.update(state.Key(), actionTaken, reward, nextState.Key(), now)

	if reward > preferenceThreshold {
		updatePreferences(&l.pref, content, &session, now)
	}
	if reward > successThreshold {
		l.patterns.record(state.Key(), actionTaken, reward, embed.StateVector(&state), now)
	}

	l.pol.decayRate()
	l.totalReward += reward
	l.episodes++

	lgr.Printf("[DEBUG] recorded session %s: action=%s reward=%.3f exploration=%.3f",
		session.ID, actionTaken, reward, l.pol.explorationRate())
	return nil
}

// GetRecommendations selects a strategy for the current context, generates
// candidates and returns the top count scored recommendations
func (l *Learner) GetRecommendations(count int) []domain.Recommendation {
	l.mu.Lock()
	defer l.mu.Unlock()

	if count <= 0 {
		return nil
	}

	now := l.now()
	state := extractState(l.sessions, l.lib, now)
	stateKey := state.Key()
	action := l.pol.selectAction(stateKey, l.qt)

	items := l.candidates(action, &state, now)
	if len(items) == 0 {
		return []domain.Recommendation{}
	}

	prefVec := l.preferenceVector()
	recs := make([]domain.Recommendation, 0, len(items))
	confidence := l.confidence(stateKey, action)
	reason := reasonFor(action)
	for _, item := range items {
		recs = append(recs, domain.Recommendation{
			Content:    item,
			Action:     action,
			Score:      l.scoreItem(item, &state, action, prefVec),
			Confidence: confidence,
			Reason:     reason,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	if len(recs) > count {
		recs = recs[:count]
	}
	return recs
}

// ProcessFeedback folds out-of-band feedback on a recommendation into a
// reward and applies a Q-update with no state transition, since feedback
// arrives outside a live session
func (l *Learner) ProcessFeedback(fb domain.Feedback) error {
	if fb.Action.Index() < 0 {
		return fmt.Errorf("unknown action %q", fb.Action)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	completion := 0.0
	if fb.Selected {
		completion = clamp(fb.CompletionRate, 0, 1)
	}
	synthetic := domain.ViewingSession{
		CompletionRate: completion,
		UserRating:     fb.UserRating,
		WatchDuration:  int(completion * defaultExpectedMinutes),
	}
	reward := sessionReward(&synthetic, nil)

	now := l.now()
	state := extractState(l.sessions, l.lib, now)
	key := state.Key()
	l.qt.update(key, fb.Action, reward, key, now)
	l.totalReward += reward

	lgr.Printf("[DEBUG] processed feedback: action=%s selected=%v reward=%.3f", fb.Action, fb.Selected, reward)
	return nil
}

// Replay re-applies the Q-update to a random batch of stored experiences,
// a consolidation pass independent of the per-session updates. Returns the
// number of re-applied updates, 0 when the buffer is under-filled.
func (l *Learner) Replay() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	batch := l.buffer.sample(l.cfg.BatchSize, l.rng)
	now := l.now()
	for i := range batch {
		l.qt.update(batch[i].State.Key(), batch[i].Action, batch[i].Reward, batch[i].NextState.Key(), now)
	}
	return len(batch)
}

// GetStats reports learner progress counters
func (l *Learner) GetStats() domain.LearningStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return domain.LearningStats{
		TotalReward:     l.totalReward,
		EpisodeCount:    l.episodes,
		ExplorationRate: l.pol.explorationRate(),
		StateCount:      l.qt.len(),
		PatternCount:    l.patterns.len(),
		SessionCount:    len(l.sessions),
		BufferSize:      l.buffer.len(),
		ContentCount:    l.lib.Len(),
	}
}

// GetPreferences returns a copy of the learned user preference
func (l *Learner) GetPreferences() domain.UserPreference {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.copyPreference()
}

// ExportModel serializes the learned model into a versioned snapshot
func (l *Learner) ExportModel() *domain.ModelSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &domain.ModelSnapshot{
		Version:   domain.ModelVersion,
		Timestamp: l.now(),
		Model: domain.Model{
			QTable:      l.qt.export(),
			Patterns:    l.patterns.all(),
			Preferences: l.copyPreference(),
			Config:      l.cfg,
			Stats: domain.ModelStats{
				TotalReward:     l.totalReward,
				EpisodeCount:    l.episodes,
				ExplorationRate: l.pol.explorationRate(),
			},
		},
	}
}

// ImportModel restores learned state from a snapshot. Unknown versions and
// invalid configs are rejected; the caller decides whether to fall back to
// a fresh model.
func (l *Learner) ImportModel(snap *domain.ModelSnapshot) error {
	if snap == nil {
		return fmt.Errorf("nil model snapshot")
	}
	if snap.Version != domain.ModelVersion {
		return fmt.Errorf("unsupported model version %q, want %q", snap.Version, domain.ModelVersion)
	}
	if err := snap.Model.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config in model snapshot: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.cfg = snap.Model.Config
	l.qt = newQTable(l.cfg.LearningRate, l.cfg.DiscountFactor)
	l.qt.load(snap.Model.QTable, now)
	l.patterns = newPatternStore(l.cfg.MaxPatterns)
	l.patterns.load(snap.Model.Patterns)
	l.buffer = newReplayBuffer(l.cfg.MemorySize)
	l.pref = snap.Model.Preferences
	l.pol = newPolicy(snap.Model.Stats.ExplorationRate, l.cfg.ExplorationMin, l.cfg.ExplorationDecay, l.rng)
	l.totalReward = snap.Model.Stats.TotalReward
	l.episodes = snap.Model.Stats.EpisodeCount

	lgr.Printf("[INFO] imported model: %d states, %d patterns, %d episodes",
		l.qt.len(), l.patterns.len(), l.episodes)
	return nil
}

// copyPreference deep-copies the preference so callers cannot mutate
// learner-owned slices. Caller holds the lock.
func (l *Learner) copyPreference() domain.UserPreference {
	out := l.pref
	out.FavoriteGenres = append([]domain.Genre(nil), l.pref.FavoriteGenres...)
	out.FavoriteTypes = append([]domain.ContentType(nil), l.pref.FavoriteTypes...)
	out.WatchedIDs = append([]string(nil), l.pref.WatchedIDs...)
	if l.pref.TimeSlotTypes != nil {
		out.TimeSlotTypes = make(map[domain.TimeOfDay][]domain.ContentType, len(l.pref.TimeSlotTypes))
		for k, v := range l.pref.TimeSlotTypes {
			out.TimeSlotTypes[k] = append([]domain.ContentType(nil), v...)
		}
	}
	return out
}
