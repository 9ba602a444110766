package learner

import (
	"fmt"

	"github.com/agenticsorg/tvbrain/pkg/domain"
	"github.com/agenticsorg/tvbrain/pkg/embed"
)

// scoreItem produces a [0,1] relevance score for a candidate: weighted
// preference similarity, genre overlap, quality and popularity, plus small
// contextual and exploration bonuses
func (l *Learner) scoreItem(item *domain.ContentItem, state *domain.LearningState, action domain.Action, prefVec []float32) float64 {
	score := 0.4 * embed.Cosine(prefVec, l.embedder.Embed(item))

	if len(item.Genres) > 0 {
		overlap := 0
		for _, g := range item.Genres {
			if containsGenre(l.pref.FavoriteGenres, g) {
				overlap++
			}
		}
		score += 0.2 * float64(overlap) / float64(len(item.Genres))
	}

	score += 0.15 * item.RatingOrDefault() / 10
	score += 0.1 * item.PopularityOrDefault() / 100

	if state.TimeBucket == domain.TimeNight && item.HasGenre(domain.GenreThriller) {
		score += 0.05
	}
	if state.Day == domain.Weekend && item.Type == domain.ContentMovie {
		score += 0.05
	}
	if action.Explore() {
		score += 0.1
	}

	return clamp(score, 0, 1)
}

// preferenceVector averages the embeddings of recently watched content,
// zero vector (and zero similarity) with no history
func (l *Learner) preferenceVector() []float32 {
	vec := make([]float32, embed.Dim)
	window := l.sessions
	if len(window) > stateWindow {
		window = window[len(window)-stateWindow:]
	}
	count := 0
	for i := range window {
		item, ok := l.lib.Get(window[i].ContentID)
		if !ok {
			continue
		}
		for j, v := range l.embedder.Embed(item) {
			vec[j] += v
		}
		count++
	}
	if count > 0 {
		inv := 1 / float32(count)
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}

// confidence combines visit-count saturation with the normalized Q-value
// for the (state, action) pair that produced the recommendation
func (l *Learner) confidence(stateKey string, action domain.Action) float64 {
	visits := float64(l.qt.visitCount(stateKey, action))
	saturation := visits / 10
	if saturation > 1 {
		saturation = 1
	}
	normalizedQ := (l.qt.get(stateKey, action) + 1) / 2
	return (saturation + normalizedQ) / 2
}

// reasonFor maps an action to the human-readable explanation attached to
// its recommendations
func reasonFor(action domain.Action) string {
	switch action {
	case domain.ActionSimilarToLast:
		return "because you watched something similar"
	case domain.ActionPopular:
		return "popular right now"
	case domain.ActionTrending:
		return "trending this year"
	case domain.ActionFavoriteGenre:
		return "from your favorite genre"
	case domain.ActionNewRelease:
		return "new release"
	case domain.ActionContinueWatching:
		return "continue watching"
	case domain.ActionTimeBased:
		return "fits this time of day"
	case domain.ActionExploreGenre:
		return "try a new genre"
	case domain.ActionExploreType:
		return "try something different"
	default:
		return fmt.Sprintf("recommended by %s", action)
	}
}
