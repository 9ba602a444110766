package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, expected: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, expected: 0},
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}, expected: 0},
		{name: "empty", a: nil, b: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-6)
		})
	}
}

func TestSimilarityIndex_TopK(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},     // aligned with query
		{0, 1, 0},     // orthogonal
		{0.9, 0.1, 0}, // close
		{-1, 0, 0},    // opposite
	}
	idx := NewSimilarityIndex(vectors)

	matches := idx.TopK([]float32{1, 0, 0}, 2)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Index)
	assert.InDelta(t, 1.0, matches[0].Similarity, 1e-6)
	assert.Equal(t, 2, matches[1].Index)
	assert.Greater(t, matches[1].Similarity, 0.9)
}

func TestSimilarityIndex_TopK_KLargerThanCandidates(t *testing.T) {
	idx := NewSimilarityIndex([][]float32{{1, 0}, {0, 1}})
	matches := idx.TopK([]float32{1, 0}, 10)
	assert.Len(t, matches, 2)
}

func TestSimilarityIndex_TopK_SkipsZeroNormCandidates(t *testing.T) {
	idx := NewSimilarityIndex([][]float32{{0, 0}, {1, 0}})
	matches := idx.TopK([]float32{1, 0}, 10)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Index)
}

func TestSimilarityIndex_TopK_Degenerate(t *testing.T) {
	assert.Nil(t, NewSimilarityIndex(nil).TopK([]float32{1}, 3), "empty index")

	idx := NewSimilarityIndex([][]float32{{1, 0}})
	assert.Nil(t, idx.TopK([]float32{1, 0, 0}, 3), "dimension mismatch")
	assert.Nil(t, idx.TopK([]float32{0, 0}, 3), "zero-norm query")
	assert.Nil(t, idx.TopK([]float32{1, 0}, 0), "non-positive k")
}

func TestSimilarityIndex_RanksContentEmbeddings(t *testing.T) {
	e, err := NewEmbedder(10)
	require.NoError(t, err)

	comedy := e.Embed(&domain.ContentItem{ID: "c1", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreComedy}})
	romance := e.Embed(&domain.ContentItem{ID: "c2", Type: domain.ContentMovie, Genres: []domain.Genre{domain.GenreRomance}})
	sports := e.Embed(&domain.ContentItem{ID: "c3", Type: domain.ContentSports})

	idx := NewSimilarityIndex([][]float32{romance, sports})
	matches := idx.TopK(comedy, 2)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Index, "related genre outranks unrelated type")
}

func TestStateVector(t *testing.T) {
	state := &domain.LearningState{
		TimeBucket:    domain.TimeEvening,
		Day:           domain.Weekday,
		RecentGenres:  []domain.Genre{domain.GenreCrime},
		RecentTypes:   []domain.ContentType{domain.ContentShow},
		AvgCompletion: 0.8,
	}

	vec := StateVector(state)
	require.Len(t, vec, Dim)
	assert.Positive(t, vec[genreOffset+domain.GenreCrime.Index()])
	assert.Positive(t, vec[genreOffset+domain.GenreThriller.Index()], "affinity spreads to related genres")
	assert.Positive(t, vec[typeOffset+domain.ContentShow.Index()])
	assert.Positive(t, vec[ratingIdx], "completion rate occupies the rating slot")

	// unit norm
	sum := 0.0
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, sum, 1e-5)
}

func TestStateVector_Empty(t *testing.T) {
	vec := StateVector(&domain.LearningState{})
	require.Len(t, vec, Dim)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}
