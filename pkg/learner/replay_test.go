package learner

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

func TestReplayBuffer_AddEvictsOldest(t *testing.T) {
	b := newReplayBuffer(3)
	for i := 0; i < 5; i++ {
		b.add(domain.ExperienceTuple{Action: domain.ActionPopular, Reward: float64(i)})
	}

	assert.Equal(t, 3, b.len())
	assert.Equal(t, 2.0, b.tuples[0].Reward, "oldest two evicted")
	assert.Equal(t, 4.0, b.tuples[2].Reward)
}

func TestReplayBuffer_Sample(t *testing.T) {
	b := newReplayBuffer(100)
	for i := 0; i < 10; i++ {
		b.add(domain.ExperienceTuple{State: domain.LearningState{LastContentID: fmt.Sprintf("c%d", i)}})
	}

	rng := rand.New(rand.NewSource(7)) //nolint:gosec // test rng
	batch := b.sample(5, rng)
	require.Len(t, batch, 5)
	for _, tuple := range batch {
		assert.NotEmpty(t, tuple.State.LastContentID)
	}
}

func TestReplayBuffer_Sample_UnderFilled(t *testing.T) {
	b := newReplayBuffer(100)
	b.add(domain.ExperienceTuple{})
	b.add(domain.ExperienceTuple{})

	rng := rand.New(rand.NewSource(7)) //nolint:gosec // test rng
	assert.Nil(t, b.sample(3, rng), "fewer tuples than batch size yields nil")
	assert.Len(t, b.sample(2, rng), 2, "exact fill is enough")
}
