package learner

import (
	"time"

	"github.com/agenticsorg/tvbrain/pkg/domain"
	"github.com/agenticsorg/tvbrain/pkg/library"
)

// stateWindow is the number of trailing sessions considered for recent
// genres, types and the rolling completion rate
const stateWindow = 10

const (
	maxRecentGenres = 5
	maxRecentTypes  = 3
)

// extractState derives a canonical learning state from the session history
// and wall-clock time. Pure given its inputs: no hidden state beyond the
// session log and the catalog lookup.
func extractState(sessions []domain.ViewingSession, lib *library.Library, now time.Time) domain.LearningState {
	state := domain.LearningState{
		TimeBucket:    domain.BucketForHour(now.Hour()),
		Day:           domain.DayTypeFor(now),
		SessionCount:  len(sessions),
		AvgCompletion: 0.5, // neutral prior with no history
	}

	if len(sessions) == 0 {
		return state
	}

	window := sessions
	if len(window) > stateWindow {
		window = window[len(window)-stateWindow:]
	}

	total := 0.0
	for _, s := range window {
		total += s.CompletionRate
	}
	state.AvgCompletion = total / float64(len(window))
	state.LastContentID = sessions[len(sessions)-1].ContentID

	// most-recent-first distinct genres and types from the window
	seenGenre := make(map[domain.Genre]bool)
	seenType := make(map[domain.ContentType]bool)
	for i := len(window) - 1; i >= 0; i-- {
		item, ok := lib.Get(window[i].ContentID)
		if !ok {
			continue
		}
		if !seenType[item.Type] && len(state.RecentTypes) < maxRecentTypes {
			seenType[item.Type] = true
			state.RecentTypes = append(state.RecentTypes, item.Type)
		}
		for _, g := range item.Genres {
			if !seenGenre[g] && len(state.RecentGenres) < maxRecentGenres {
				seenGenre[g] = true
				state.RecentGenres = append(state.RecentGenres, g)
			}
		}
	}

	return state
}
