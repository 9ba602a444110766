package learner

import (
	"math/rand"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// replayBuffer is a bounded FIFO store of experience tuples sampled for
// batch re-training. Capacity is fixed at construction; memory stays
// constant regardless of runtime duration.
type replayBuffer struct {
	tuples []domain.ExperienceTuple
	cap    int
}

func newReplayBuffer(capacity int) *replayBuffer {
	return &replayBuffer{cap: capacity}
}

// add appends a tuple, evicting the oldest when over capacity
func (b *replayBuffer) add(t domain.ExperienceTuple) {
	b.tuples = append(b.tuples, t)
	if len(b.tuples) > b.cap {
		b.tuples = b.tuples[len(b.tuples)-b.cap:]
	}
}

// sample draws n tuples uniformly at random with replacement. Returns nil
// when the buffer holds fewer than n tuples; an under-filled buffer is a
// no-op for replay, not an error.
func (b *replayBuffer) sample(n int, rng *rand.Rand) []domain.ExperienceTuple {
	if len(b.tuples) < n {
		return nil
	}
	out := make([]domain.ExperienceTuple, n)
	for i := range out {
		out[i] = b.tuples[rng.Intn(len(b.tuples))]
	}
	return out
}

// len returns the current number of stored tuples
func (b *replayBuffer) len() int { return len(b.tuples) }
