package embed

import (
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/viterin/vek/vek32"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// Dim is the fixed embedding dimension. The vector layout allocates
// disjoint sub-ranges per feature family:
//
//	[0,14)   genre features weighted by the genre-similarity table
//	[14,22)  one-hot content type
//	[22]     normalized popularity
//	[23]     normalized rating
//	[24]     recency, linear decay over a 50-year window
//	[25,30)  duration bucket flags (<=30/60/120/180/240 min)
//	[30,64)  hashed bag-of-keywords
const Dim = 64

const (
	genreOffset    = 0
	typeOffset     = 14
	popularityIdx  = 22
	ratingIdx      = 23
	recencyIdx     = 24
	durationOffset = 25
	keywordOffset  = 30
)

var durationBuckets = []int{30, 60, 120, 180, 240}

// genreAffinity holds the fixed genre-similarity table. Each genre maps to
// related genres with a weight in (0,1); self-similarity is always 1.
var genreAffinity = map[domain.Genre]map[domain.Genre]float32{
	domain.GenreAction:      {domain.GenreAdventure: 0.7, domain.GenreThriller: 0.6, domain.GenreCrime: 0.4, domain.GenreSciFi: 0.4},
	domain.GenreAdventure:   {domain.GenreAction: 0.7, domain.GenreFantasy: 0.6, domain.GenreFamily: 0.4},
	domain.GenreAnimation:   {domain.GenreFamily: 0.7, domain.GenreComedy: 0.4, domain.GenreFantasy: 0.4},
	domain.GenreComedy:      {domain.GenreRomance: 0.5, domain.GenreFamily: 0.4, domain.GenreAnimation: 0.4},
	domain.GenreCrime:       {domain.GenreThriller: 0.7, domain.GenreMystery: 0.6, domain.GenreDrama: 0.4, domain.GenreAction: 0.4},
	domain.GenreDocumentary: {domain.GenreDrama: 0.3},
	domain.GenreDrama:       {domain.GenreRomance: 0.5, domain.GenreCrime: 0.4, domain.GenreMystery: 0.3, domain.GenreDocumentary: 0.3},
	domain.GenreFamily:      {domain.GenreAnimation: 0.7, domain.GenreComedy: 0.4, domain.GenreAdventure: 0.4},
	domain.GenreFantasy:     {domain.GenreAdventure: 0.6, domain.GenreSciFi: 0.5, domain.GenreAnimation: 0.4},
	domain.GenreHorror:      {domain.GenreThriller: 0.6, domain.GenreMystery: 0.4},
	domain.GenreMystery:     {domain.GenreCrime: 0.6, domain.GenreThriller: 0.6, domain.GenreHorror: 0.4, domain.GenreDrama: 0.3},
	domain.GenreRomance:     {domain.GenreDrama: 0.5, domain.GenreComedy: 0.5},
	domain.GenreSciFi:       {domain.GenreFantasy: 0.5, domain.GenreAction: 0.4, domain.GenreThriller: 0.3},
	domain.GenreThriller:    {domain.GenreCrime: 0.7, domain.GenreMystery: 0.6, domain.GenreHorror: 0.6, domain.GenreAction: 0.6},
}

// Embedder converts content metadata into fixed-length unit-normalized
// vectors. The embedding is deterministic and side-effect-free, so results
// are cached per content id in a bounded LRU.
type Embedder struct {
	cache *Cache
	now   func() time.Time
}

// NewEmbedder creates an embedder with an LRU cache of the given capacity
func NewEmbedder(cacheSize int) (*Embedder, error) {
	cache, err := NewCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Embedder{cache: cache, now: time.Now}, nil
}

// Embed returns the 64-dim unit-normalized embedding of a content item,
// served from cache when available
func (e *Embedder) Embed(item *domain.ContentItem) []float32 {
	if vec, ok := e.cache.Get(item.ID); ok {
		return vec
	}
	vec := e.compute(item)
	e.cache.Add(item.ID, vec)
	return vec
}

// CacheLen returns the number of cached embeddings
func (e *Embedder) CacheLen() int { return e.cache.Len() }

func (e *Embedder) compute(item *domain.ContentItem) []float32 {
	vec := make([]float32, Dim)

	// genre block: average of per-genre affinity rows
	if len(item.Genres) > 0 {
		for _, g := range item.Genres {
			idx := g.Index()
			if idx < 0 {
				continue
			}
			vec[genreOffset+idx] += 1
			for other, w := range genreAffinity[g] {
				if oi := other.Index(); oi >= 0 {
					vec[genreOffset+oi] += w
				}
			}
		}
		inv := 1 / float32(len(item.Genres))
		for i := genreOffset; i < typeOffset; i++ {
			vec[i] *= inv
		}
	}

	// one-hot content type
	if ti := item.Type.Index(); ti >= 0 {
		vec[typeOffset+ti] = 1
	}

	vec[popularityIdx] = float32(item.PopularityOrDefault() / 100)
	vec[ratingIdx] = float32(item.RatingOrDefault() / 10)

	// recency decays linearly to zero over 50 years
	if item.ReleaseYear > 0 {
		age := e.now().Year() - item.ReleaseYear
		if age < 0 {
			age = 0
		}
		if age < 50 {
			vec[recencyIdx] = 1 - float32(age)/50
		}
	}

	// duration bucket flags
	if item.Duration > 0 {
		for i, limit := range durationBuckets {
			if item.Duration <= limit {
				vec[durationOffset+i] = 1
				break
			}
		}
	}

	// hashed bag-of-keywords over the remaining dimensions
	keywordDims := Dim - keywordOffset
	for _, kw := range item.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(kw)) //nolint:errcheck // fnv write never fails
		vec[keywordOffset+int(h.Sum32())%keywordDims] += 0.5
	}

	normalize(vec)
	return vec
}

// normalize scales the vector to unit L2 norm, leaving zero vectors untouched
func normalize(vec []float32) {
	norm := math.Sqrt(float64(vek32.Dot(vec, vec)))
	if norm == 0 {
		return
	}
	vek32.MulNumber_Inplace(vec, 1/float32(norm))
}
