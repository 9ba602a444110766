package embed

import "github.com/agenticsorg/tvbrain/pkg/domain"

// StateVector embeds a learning state into the same 64-dim space as
// content: the genre block averages affinity rows over recent genres, the
// type block is multi-hot over recent types, and the rating slot carries
// the rolling completion rate. Deterministic, used for pattern snapshots.
func StateVector(state *domain.LearningState) []float32 {
	vec := make([]float32, Dim)

	if len(state.RecentGenres) > 0 {
		for _, g := range state.RecentGenres {
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
		inv := 1 / float32(len(state.RecentGenres))
		for i := genreOffset; i < typeOffset; i++ {
			vec[i] *= inv
		}
	}

	for _, t := range state.RecentTypes {
		if ti := t.Index(); ti >= 0 {
			vec[typeOffset+ti] = 1
		}
	}

	vec[ratingIdx] = float32(state.AvgCompletion)

	normalize(vec)
	return vec
}
