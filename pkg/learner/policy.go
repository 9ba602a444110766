package learner

import (
	"math/rand"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// policy implements epsilon-greedy action selection over the fixed action
// set with a decaying exploration rate
type policy struct {
	rate  float64 // current exploration rate
	floor float64
	decay float64
	rng   *rand.Rand
}

func newPolicy(rate, floor, decay float64, rng *rand.Rand) *policy {
	return &policy{rate: rate, floor: floor, decay: decay, rng: rng}
}

// selectAction explores with probability rate, otherwise exploits the
// best-known action for the state
func (p *policy) selectAction(stateKey string, q *qTable) domain.Action {
	if p.rng.Float64() < p.rate {
		return domain.Actions[p.rng.Intn(domain.NumActions)]
	}
	return q.best(stateKey)
}

// decayRate multiplies the exploration rate by the decay factor, never
// dropping below the floor. Called after every recorded session, so the
// rate is monotonically non-increasing.
func (p *policy) decayRate() {
	p.rate *= p.decay
	if p.rate < p.floor {
		p.rate = p.floor
	}
}

// explorationRate returns the current exploration rate
func (p *policy) explorationRate() float64 { return p.rate }

// setRate restores the exploration rate from a persisted model, clamped
// to the configured floor
func (p *policy) setRate(rate float64) {
	if rate < p.floor {
		rate = p.floor
	}
	p.rate = rate
}
