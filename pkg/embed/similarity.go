package embed

import (
	"math"
	"sort"

	"github.com/viterin/vek/vek32"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Cosine returns the cosine similarity of two vectors, 0 when either has
// zero norm or lengths mismatch
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	aNorm := vek32.Dot(a, a)
	bNorm := vek32.Dot(b, b)
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	dot := vek32.Dot(a, b)
	return float64(dot) / (math.Sqrt(float64(aNorm)) * math.Sqrt(float64(bNorm)))
}

// Match pairs a candidate index with its similarity to a query
type Match struct {
	Index      int
	Similarity float64
}

// SimilarityIndex scores one query against many candidates in a single
// matrix-vector product over a flat row-major buffer
type SimilarityIndex struct {
	flat  []float32
	norms []float64
	dim   int
	n     int
}

// NewSimilarityIndex builds an index over the candidate vectors. All
// vectors must share the same dimension.
func NewSimilarityIndex(vectors [][]float32) *SimilarityIndex {
	n := len(vectors)
	if n == 0 {
		return &SimilarityIndex{}
	}
	dim := len(vectors[0])
	flat := make([]float32, n*dim)
	norms := make([]float64, n)
	for i, v := range vectors {
		copy(flat[i*dim:], v)
		vec := blas32.Vector{N: dim, Inc: 1, Data: v}
		norms[i] = math.Sqrt(float64(blas32.Dot(vec, vec)))
	}
	return &SimilarityIndex{flat: flat, norms: norms, dim: dim, n: n}
}

// TopK returns the k most cosine-similar candidates to the query, sorted
// by descending similarity with index order breaking ties
func (idx *SimilarityIndex) TopK(query []float32, k int) []Match {
	if idx.n == 0 || len(query) != idx.dim || k <= 0 {
		return nil
	}
	queryVec := blas32.Vector{N: idx.dim, Inc: 1, Data: query}
	queryNorm := math.Sqrt(float64(blas32.Dot(queryVec, queryVec)))
	if queryNorm == 0 {
		return nil
	}

	dots := make([]float32, idx.n)
	mat := blas32.General{Rows: idx.n, Cols: idx.dim, Stride: idx.dim, Data: idx.flat}
	out := blas32.Vector{N: idx.n, Inc: 1, Data: dots}
	blas32.Gemv(blas.NoTrans, 1, mat, queryVec, 0, out)

	matches := make([]Match, 0, idx.n)
	for i, dot := range dots {
		if idx.norms[i] == 0 {
			continue
		}
		matches = append(matches, Match{Index: i, Similarity: float64(dot) / (idx.norms[i] * queryNorm)})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
