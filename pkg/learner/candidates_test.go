package learner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

func ids(items []*domain.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestCandidates_Popular(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "low", Title: "low", Type: domain.ContentMovie, Popularity: 10},
		{ID: "high", Title: "high", Type: domain.ContentMovie, Popularity: 90},
		{ID: "mid", Title: "mid", Type: domain.ContentMovie, Popularity: 50},
	})
	require.NoError(t, err)

	state := domain.LearningState{}
	got := l.candidates(domain.ActionPopular, &state, testNow)
	assert.Equal(t, []string{"high", "mid", "low"}, ids(got))
}

func TestCandidates_Trending(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "old", Title: "old", Type: domain.ContentMovie, ReleaseYear: 2015, Popularity: 99},
		{ID: "thisyear", Title: "this year", Type: domain.ContentMovie, ReleaseYear: testNow.Year(), Popularity: 40},
		{ID: "lastyear", Title: "last year", Type: domain.ContentMovie, ReleaseYear: testNow.Year() - 1, Popularity: 60},
	})
	require.NoError(t, err)

	state := domain.LearningState{}
	got := l.candidates(domain.ActionTrending, &state, testNow)
	assert.Equal(t, []string{"lastyear", "thisyear"}, ids(got), "recent releases by popularity, old excluded")
}

func TestCandidates_NewRelease(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "fresh-low", Title: "a", Type: domain.ContentMovie, ReleaseYear: testNow.Year(), Rating: 6},
		{ID: "lastyear", Title: "b", Type: domain.ContentMovie, ReleaseYear: testNow.Year() - 1, Rating: 9},
		{ID: "fresh-high", Title: "c", Type: domain.ContentMovie, ReleaseYear: testNow.Year(), Rating: 8},
	})
	require.NoError(t, err)

	state := domain.LearningState{}
	got := l.candidates(domain.ActionNewRelease, &state, testNow)
	assert.Equal(t, []string{"fresh-high", "fresh-low"}, ids(got), "current-year releases by rating")
}

func TestCandidates_FavoriteGenre(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "c1", Title: "a", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreComedy}},
		{ID: "h1", Title: "b", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreHorror}},
	})
	require.NoError(t, err)

	state := domain.LearningState{}

	// no favorites yet, whole pool qualifies
	got := l.candidates(domain.ActionFavoriteGenre, &state, testNow)
	assert.Len(t, got, 2)

	l.pref.FavoriteGenres = []domain.Genre{domain.GenreComedy}
	got = l.candidates(domain.ActionFavoriteGenre, &state, testNow)
	assert.Equal(t, []string{"c1"}, ids(got))

	// favorite genre with no matching unwatched content falls back
	l.pref.FavoriteGenres = []domain.Genre{domain.GenreSciFi}
	got = l.candidates(domain.ActionFavoriteGenre, &state, testNow)
	assert.Len(t, got, 2)
}

func TestCandidates_ContinueWatching(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "abandoned", Title: "a", Type: domain.ContentShow},
		{ID: "finished", Title: "b", Type: domain.ContentShow},
		{ID: "barely", Title: "c", Type: domain.ContentShow},
		{ID: "recent", Title: "d", Type: domain.ContentShow},
	})
	require.NoError(t, err)
	l.sessions = []domain.ViewingSession{
		{ContentID: "abandoned", CompletionRate: 0.5},
		{ContentID: "finished", CompletionRate: 0.95},
		{ContentID: "barely", CompletionRate: 0.05},
		{ContentID: "recent", CompletionRate: 0.4},
		{ContentID: "recent", CompletionRate: 0.6},
	}

	state := domain.LearningState{}
	got := l.candidates(domain.ActionContinueWatching, &state, testNow)
	assert.Equal(t, []string{"recent", "abandoned"}, ids(got), "mid-way sessions newest first, deduplicated")
}

func TestCandidates_TimeBased(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "mv", Title: "a", Type: domain.ContentMovie},
		{ID: "nw", Title: "b", Type: domain.ContentNews},
	})
	require.NoError(t, err)
	l.pref.TimeSlotTypes = map[domain.TimeOfDay][]domain.ContentType{
		domain.TimeMorning: {domain.ContentNews},
	}

	morning := domain.LearningState{TimeBucket: domain.TimeMorning}
	got := l.candidates(domain.ActionTimeBased, &morning, testNow)
	assert.Equal(t, []string{"nw"}, ids(got))

	evening := domain.LearningState{TimeBucket: domain.TimeEvening}
	got = l.candidates(domain.ActionTimeBased, &evening, testNow)
	assert.Len(t, got, 2, "no slot preference falls back to the pool")
}

func TestCandidates_ExploreGenre(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "known", Title: "a", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreComedy}},
		{ID: "mixed", Title: "b", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreComedy, domain.GenreSciFi}},
		{ID: "new", Title: "c", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreHorror}},
	})
	require.NoError(t, err)
	l.pref.FavoriteGenres = []domain.Genre{domain.GenreComedy}

	state := domain.LearningState{}
	got := l.candidates(domain.ActionExploreGenre, &state, testNow)
	assert.Equal(t, []string{"new"}, ids(got), "any favorite genre disqualifies an item")
}

func TestCandidates_ExploreType(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "mv", Title: "a", Type: domain.ContentMovie},
		{ID: "doc", Title: "b", Type: domain.ContentDocumentary},
	})
	require.NoError(t, err)
	l.pref.FavoriteTypes = []domain.ContentType{domain.ContentMovie}

	state := domain.LearningState{}
	got := l.candidates(domain.ActionExploreType, &state, testNow)
	assert.Equal(t, []string{"doc"}, ids(got))
}

func TestCandidates_SimilarToLast(t *testing.T) {
	l := makeLearner(t, nil)
	_, err := l.AddContents([]domain.ContentItem{
		{ID: "last", Title: "watched", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreComedy}, Duration: 100},
		{ID: "close", Title: "similar", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreComedy}, Duration: 100},
		{ID: "far", Title: "different", Type: domain.ContentSports, Duration: 100},
	})
	require.NoError(t, err)
	l.pref.WatchedIDs = []string{"last"}

	state := domain.LearningState{LastContentID: "last"}
	got := l.candidates(domain.ActionSimilarToLast, &state, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "close", got[0].ID, "nearest neighbor first")
	assert.NotContains(t, ids(got), "last", "watched item excluded from its own neighborhood")
}

func TestCandidates_AlwaysExcludeWatched(t *testing.T) {
	l := makeLearner(t, nil)
	items := make([]domain.ContentItem, 0, 4)
	for i := 0; i < 4; i++ {
		items = append(items, domain.ContentItem{
			ID: fmt.Sprintf("c%d", i), Title: fmt.Sprintf("c%d", i),
			Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreAction},
		})
	}
	_, err := l.AddContents(items)
	require.NoError(t, err)
	l.pref.WatchedIDs = []string{"c0", "c2"}

	state := domain.LearningState{}
	for _, action := range domain.Actions {
		got := l.candidates(action, &state, testNow)
		for _, c := range got {
			assert.NotContains(t, l.pref.WatchedIDs, c.ID, "action %s leaked a watched id", action)
		}
	}
}

func TestCandidates_CapsAtTwenty(t *testing.T) {
	l := makeLearner(t, nil)
	items := make([]domain.ContentItem, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, domain.ContentItem{
			ID: fmt.Sprintf("c%d", i), Title: fmt.Sprintf("c%d", i), Type: domain.ContentMovie,
		})
	}
	_, err := l.AddContents(items)
	require.NoError(t, err)

	state := domain.LearningState{}
	for _, action := range []domain.Action{domain.ActionPopular, domain.ActionExploreGenre, domain.ActionTimeBased} {
		assert.Len(t, l.candidates(action, &state, testNow), maxCandidates)
	}
}
