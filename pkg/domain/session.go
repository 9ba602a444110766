package domain

import "time"

// TimeOfDay represents a coarse time bucket used for state extraction
type TimeOfDay string

// time-of-day buckets
const (
	TimeMorning   TimeOfDay = "morning"   // 5:00-11:59
	TimeAfternoon TimeOfDay = "afternoon" // 12:00-16:59
	TimeEvening   TimeOfDay = "evening"   // 17:00-20:59
	TimeNight     TimeOfDay = "night"     // 21:00-4:59
)

// TimeBuckets lists all time-of-day buckets in enumeration order
var TimeBuckets = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeNight}

// BucketForHour maps an hour of day (0-23) to its time bucket
func BucketForHour(hour int) TimeOfDay {
	switch {
	case hour < 5 || hour >= 21:
		return TimeNight
	case hour < 12:
		return TimeMorning
	case hour < 17:
		return TimeAfternoon
	default:
		return TimeEvening
	}
}

// DayType distinguishes weekdays from weekends
type DayType string

// day types
const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

// DayTypeFor maps a calendar day to weekday or weekend
func DayTypeFor(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// ViewingSession represents a single viewing of a content item. It is
// created when playback starts, the implicit signal counters mutate while
// active, and duration/completion are finalized when it ends.
type ViewingSession struct {
	ID             string    `json:"id"`
	ContentID      string    `json:"content_id"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at,omitempty"`
	WatchDuration  int       `json:"watch_duration"`            // minutes
	CompletionRate float64   `json:"completion_rate"`           // 0-1, clamped
	UserRating     float64   `json:"user_rating,omitempty"`     // explicit 1-5, 0 if not rated
	PauseCount     int       `json:"pause_count,omitempty"`
	RewindCount    int       `json:"rewind_count,omitempty"`
	FastForwards   int       `json:"fast_forwards,omitempty"`
	VolumeChanges  int       `json:"volume_changes,omitempty"`
	TimeBucket     TimeOfDay `json:"time_bucket,omitempty"`
	Day            DayType   `json:"day,omitempty"`
}

// Rated reports whether the session carries an explicit user rating
func (s *ViewingSession) Rated() bool { return s.UserRating > 0 }

// Feedback carries out-of-band user feedback on a recommendation,
// folded into a reward without a real state transition
type Feedback struct {
	Action         Action    `json:"action"`
	Selected       bool      `json:"selected"`
	CompletionRate float64   `json:"completion_rate,omitempty"`
	UserRating     float64   `json:"user_rating,omitempty"`
	Timestamp      time.Time `json:"timestamp,omitempty"`
}
