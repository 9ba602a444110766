package learner

import (
	"time"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

const (
	maxFavoriteGenres = 10
	maxFavoriteTypes  = 5
)

// preferenceThreshold gates preference updates; only sessions rewarding
// above it shape user tastes
const preferenceThreshold = 0.6

// updatePreferences folds a high-reward session into the user preference:
// new genres and types join the bounded favorite lists with FIFO eviction,
// and the content type is recorded as preferred for the session's time
// bucket. Caller guarantees reward > preferenceThreshold.
func updatePreferences(pref *domain.UserPreference, content *domain.ContentItem, session *domain.ViewingSession, now time.Time) {
	if content == nil {
		return
	}

	for _, g := range content.Genres {
		if !containsGenre(pref.FavoriteGenres, g) {
			pref.FavoriteGenres = append(pref.FavoriteGenres, g)
			if len(pref.FavoriteGenres) > maxFavoriteGenres {
				pref.FavoriteGenres = pref.FavoriteGenres[1:]
			}
		}
	}

	if !containsType(pref.FavoriteTypes, content.Type) {
		pref.FavoriteTypes = append(pref.FavoriteTypes, content.Type)
		if len(pref.FavoriteTypes) > maxFavoriteTypes {
			pref.FavoriteTypes = pref.FavoriteTypes[1:]
		}
	}

	if session.TimeBucket != "" {
		if pref.TimeSlotTypes == nil {
			pref.TimeSlotTypes = make(map[domain.TimeOfDay][]domain.ContentType)
		}
		slot := pref.TimeSlotTypes[session.TimeBucket]
		if !containsType(slot, content.Type) {
			pref.TimeSlotTypes[session.TimeBucket] = append(slot, content.Type)
		}
	}

	if content.Duration > 0 {
		if pref.MinDuration == 0 || content.Duration < pref.MinDuration {
			pref.MinDuration = content.Duration
		}
		if content.Duration > pref.MaxDuration {
			pref.MaxDuration = content.Duration
		}
	}

	if !pref.Watched(content.ID) {
		pref.WatchedIDs = append(pref.WatchedIDs, content.ID)
	}
	pref.UpdatedAt = now
}

func containsGenre(list []domain.Genre, g domain.Genre) bool {
	for _, x := range list {
		if x == g {
			return true
		}
	}
	return false
}

func containsType(list []domain.ContentType, t domain.ContentType) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}
