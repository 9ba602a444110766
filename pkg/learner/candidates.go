package learner

import (
	"sort"
	"time"

	"github.com/agenticsorg/tvbrain/pkg/domain"
	"github.com/agenticsorg/tvbrain/pkg/embed"
)

// maxCandidates caps every candidate list before ranking
const maxCandidates = 20

// continue-watching picks sessions abandoned mid-way
const (
	continueMinCompletion = 0.1
	continueMaxCompletion = 0.9
)

// candidates pulls a content subset for the selected action, always
// excluding already-watched ids. Unknown or signal-free branches fall
// back to the unwatched pool.
func (l *Learner) candidates(action domain.Action, state *domain.LearningState, now time.Time) []*domain.ContentItem {
	unwatched := l.unwatched()

	switch action {
	case domain.ActionSimilarToLast:
		return l.similarToLast(state, unwatched)

	case domain.ActionPopular:
		sort.SliceStable(unwatched, func(i, j int) bool {
			return unwatched[i].PopularityOrDefault() > unwatched[j].PopularityOrDefault()
		})
		return capList(unwatched)

	case domain.ActionTrending:
		recent := filterItems(unwatched, func(c *domain.ContentItem) bool {
			return c.ReleaseYear >= now.Year()-1
		})
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].PopularityOrDefault() > recent[j].PopularityOrDefault()
		})
		return capList(recent)

	case domain.ActionFavoriteGenre:
		top, ok := l.pref.TopGenre()
		if !ok {
			return capList(unwatched)
		}
		matched := filterItems(unwatched, func(c *domain.ContentItem) bool { return c.HasGenre(top) })
		if len(matched) == 0 {
			return capList(unwatched)
		}
		return capList(matched)

	case domain.ActionNewRelease:
		fresh := filterItems(unwatched, func(c *domain.ContentItem) bool {
			return c.ReleaseYear == now.Year()
		})
		sort.SliceStable(fresh, func(i, j int) bool {
			return fresh[i].RatingOrDefault() > fresh[j].RatingOrDefault()
		})
		return capList(fresh)

	case domain.ActionContinueWatching:
		return l.partiallyWatched()

	case domain.ActionTimeBased:
		slot := l.pref.TimeSlotTypes[state.TimeBucket]
		if len(slot) == 0 {
			return capList(unwatched)
		}
		matched := filterItems(unwatched, func(c *domain.ContentItem) bool {
			return containsType(slot, c.Type)
		})
		if len(matched) == 0 {
			return capList(unwatched)
		}
		return capList(matched)

	case domain.ActionExploreGenre:
		return capList(filterItems(unwatched, func(c *domain.ContentItem) bool {
			for _, g := range c.Genres {
				if containsGenre(l.pref.FavoriteGenres, g) {
					return false
				}
			}
			return true
		}))

	case domain.ActionExploreType:
		return capList(filterItems(unwatched, func(c *domain.ContentItem) bool {
			return !containsType(l.pref.FavoriteTypes, c.Type)
		}))

	default:
		return capList(unwatched)
	}
}

// similarToLast runs a batch cosine nearest-neighbor search against the
// last watched item's embedding
func (l *Learner) similarToLast(state *domain.LearningState, unwatched []*domain.ContentItem) []*domain.ContentItem {
	last, ok := l.lib.Get(state.LastContentID)
	if !ok || len(unwatched) == 0 {
		return capList(unwatched)
	}

	query := l.embedder.Embed(last)
	vectors := make([][]float32, len(unwatched))
	for i, c := range unwatched {
		vectors[i] = l.embedder.Embed(c)
	}

	matches := embed.NewSimilarityIndex(vectors).TopK(query, maxCandidates)
	out := make([]*domain.ContentItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, unwatched[m.Index])
	}
	return out
}

// partiallyWatched returns content of sessions abandoned between 10% and
// 90% completion, newest first, deduplicated
func (l *Learner) partiallyWatched() []*domain.ContentItem {
	seen := make(map[string]bool)
	var out []*domain.ContentItem
	for i := len(l.sessions) - 1; i >= 0; i-- {
		s := l.sessions[i]
		if s.CompletionRate <= continueMinCompletion || s.CompletionRate >= continueMaxCompletion {
			continue
		}
		if seen[s.ContentID] || l.pref.Watched(s.ContentID) {
			continue
		}
		if item, ok := l.lib.Get(s.ContentID); ok {
			seen[s.ContentID] = true
			out = append(out, item)
		}
	}
	return capList(out)
}

// unwatched returns all library items not in the watched-id list
func (l *Learner) unwatched() []*domain.ContentItem {
	return filterItems(l.lib.All(), func(c *domain.ContentItem) bool {
		return !l.pref.Watched(c.ID)
	})
}

func filterItems(items []*domain.ContentItem, keep func(*domain.ContentItem) bool) []*domain.ContentItem {
	out := make([]*domain.ContentItem, 0, len(items))
	for _, c := range items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func capList(items []*domain.ContentItem) []*domain.ContentItem {
	if len(items) > maxCandidates {
		return items[:maxCandidates]
	}
	return items
}
