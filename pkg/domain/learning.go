package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Action represents a recommendation strategy selected by the policy
type Action string

// closed set of learning actions, the policy never invents new ones
const (
	ActionSimilarToLast    Action = "similar_to_last"
	ActionPopular          Action = "recommend_popular"
	ActionTrending         Action = "recommend_trending"
	ActionFavoriteGenre    Action = "genre_based"
	ActionNewRelease       Action = "new_release"
	ActionContinueWatching Action = "continue_watching"
	ActionTimeBased        Action = "time_based"
	ActionExploreGenre     Action = "explore_genre"
	ActionExploreType      Action = "explore_type"
)

// Actions lists all learning actions in enumeration order, used both for
// epsilon-greedy tie-breaking and to index fixed-size Q-value rows
var Actions = []Action{
	ActionSimilarToLast, ActionPopular, ActionTrending, ActionFavoriteGenre,
	ActionNewRelease, ActionContinueWatching, ActionTimeBased,
	ActionExploreGenre, ActionExploreType,
}

// NumActions is the size of the closed action set
const NumActions = 9

// ParseAction validates a raw string against the closed action set
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// Index returns the position of the action in the enumeration, -1 if unknown
func (a Action) Index() int {
	for i, aa := range Actions {
		if aa == a {
			return i
		}
	}
	return -1
}

// Explore reports whether the action is one of the exploration strategies
func (a Action) Explore() bool {
	return a == ActionExploreGenre || a == ActionExploreType
}

// LearningState is a canonical snapshot of viewing context derived from
// session history. Two states are equal for table lookup iff their Key()
// serializations match; the dedup bounds Q-table growth.
type LearningState struct {
	TimeBucket    TimeOfDay     `json:"time_bucket"`
	Day           DayType       `json:"day"`
	RecentGenres  []Genre       `json:"recent_genres,omitempty"` // up to 5 most-recent distinct
	RecentTypes   []ContentType `json:"recent_types,omitempty"`  // up to 3 most-recent distinct
	SessionCount  int           `json:"session_count"`
	AvgCompletion float64       `json:"avg_completion"`
	LastContentID string        `json:"last_content_id,omitempty"`
}

// Key returns the canonical serialization of the state used as a Q-table
// lookup key. Genre and type lists are sorted, completion is bucketed to
// one decimal, so equivalent contexts collapse to the same key.
func (s *LearningState) Key() string {
	genres := make([]string, len(s.RecentGenres))
	for i, g := range s.RecentGenres {
		genres[i] = string(g)
	}
	sort.Strings(genres)

	types := make([]string, len(s.RecentTypes))
	for i, t := range s.RecentTypes {
		types[i] = string(t)
	}
	sort.Strings(types)

	completion := math.Round(s.AvgCompletion*10) / 10
	return fmt.Sprintf("%s|%s|%s|%s|%.1f",
		s.TimeBucket, s.Day, strings.Join(genres, ","), strings.Join(types, ","), completion)
}

// ExperienceTuple is a single (state, action, reward, next state)
// transition stored in the replay buffer
type ExperienceTuple struct {
	State     LearningState `json:"state"`
	Action    Action        `json:"action"`
	Reward    float64       `json:"reward"`
	NextState LearningState `json:"next_state"`
	Timestamp time.Time     `json:"timestamp,omitempty"`
}

// ViewingPattern is a consolidated record of high-reward (state, action)
// occurrences with equal-weight running averages
type ViewingPattern struct {
	Key         string    `json:"key"` // "stateKey|action"
	Action      Action    `json:"action"`
	Reward      float64   `json:"reward"`       // running average
	SuccessRate float64   `json:"success_rate"` // fraction of occurrences with reward > 0.7
	Occurrences int       `json:"occurrences"`
	Embedding   []float32 `json:"embedding,omitempty"` // state embedding snapshot
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserPreference accumulates learned user tastes, mutated only after
// sessions scoring above the preference reward threshold
type UserPreference struct {
	FavoriteGenres []Genre                     `json:"favorite_genres,omitempty"` // max 10, FIFO eviction
	FavoriteTypes  []ContentType               `json:"favorite_types,omitempty"`  // max 5, FIFO eviction
	MinDuration    int                         `json:"min_duration,omitempty"`    // minutes
	MaxDuration    int                         `json:"max_duration,omitempty"`
	TimeSlotTypes  map[TimeOfDay][]ContentType `json:"time_slot_types,omitempty"`
	WatchedIDs     []string                    `json:"watched_ids,omitempty"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// Watched reports whether the content id has been seen before
func (p *UserPreference) Watched(contentID string) bool {
	for _, id := range p.WatchedIDs {
		if id == contentID {
			return true
		}
	}
	return false
}

// TopGenre returns the most recently favored genre, false when none recorded
func (p *UserPreference) TopGenre() (Genre, bool) {
	if len(p.FavoriteGenres) == 0 {
		return "", false
	}
	return p.FavoriteGenres[len(p.FavoriteGenres)-1], true
}

// Recommendation is a single ranked suggestion returned to the host application
type Recommendation struct {
	Content    *ContentItem `json:"content"`
	Action     Action       `json:"action"`
	Score      float64      `json:"score"`
	Confidence float64      `json:"confidence"`
	Reason     string       `json:"reason"`
}

// LearningStats summarizes learner progress for the host application
type LearningStats struct {
	TotalReward     float64 `json:"total_reward"`
	EpisodeCount    int     `json:"episode_count"`
	ExplorationRate float64 `json:"exploration_rate"`
	StateCount      int     `json:"state_count"`
	PatternCount    int     `json:"pattern_count"`
	SessionCount    int     `json:"session_count"`
	BufferSize      int     `json:"buffer_size"`
	ContentCount    int     `json:"content_count"`
}
