package learner

import "github.com/agenticsorg/tvbrain/pkg/domain"

// defaultExpectedMinutes is assumed when the content duration is unknown
const defaultExpectedMinutes = 90

// sessionReward converts a completed viewing session into a scalar reward
// in [0,1]. Completion dominates, an explicit rating is preferred over
// implicit inference, and rewind/fast-forward act as light engagement and
// boredom signals.
func sessionReward(session *domain.ViewingSession, content *domain.ContentItem) float64 {
	reward := 0.5 * session.CompletionRate

	if session.Rated() {
		reward += session.UserRating / 5 * 0.3
	} else {
		reward += session.CompletionRate * 0.15
	}

	expected := defaultExpectedMinutes
	if content != nil && content.Duration > 0 {
		expected = content.Duration
	}
	ratio := float64(session.WatchDuration) / float64(expected)
	if ratio > 1 {
		ratio = 1
	}
	reward += 0.1 * ratio

	engagement := 0.02*float64(session.RewindCount) - 0.02*float64(session.FastForwards)
	reward += clamp(engagement, -0.1, 0.1)

	return clamp(reward, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
