// Package motivation holds the encouragement copy shown next to progress:
// banded progress messages, quotes, daily affirmations and productivity tips.
package motivation

// Band is a completion-rate range with its own progress message.
type Band int

const (
	BandNotStarted Band = iota // rate == 0
	BandStarted                // 0 < rate < 25
	BandOnTheWay               // 25 <= rate < 50
	BandPastHalfway            // 50 <= rate < 75
	BandAlmostDone             // 75 <= rate < 100
	BandComplete               // rate == 100
)

var bandNames = [...]string{
	BandNotStarted:  "not_started",
	BandStarted:     "started",
	BandOnTheWay:    "on_the_way",
	BandPastHalfway: "past_halfway",
	BandAlmostDone:  "almost_done",
	BandComplete:    "complete",
}

var bandMessages = [...]string{
	BandNotStarted:  "Let's get started on your tasks!",
	BandStarted:     "You're making progress! Keep going!",
	BandOnTheWay:    "You're on your way! Keep up the good work!",
	BandPastHalfway: "More than halfway there! You're doing great!",
	BandAlmostDone:  "Almost there! Just a few more tasks to go!",
	BandComplete:    "Congratulations! You've completed all your tasks!",
}

// BandFor maps a completion rate in percent to its band. Rates outside
// 0..100 are clamped.
func BandFor(rate int) Band {
	switch {
	case rate <= 0:
		return BandNotStarted
	case rate < 25:
		return BandStarted
	case rate < 50:
		return BandOnTheWay
	case rate < 75:
		return BandPastHalfway
	case rate < 100:
		return BandAlmostDone
	default:
		return BandComplete
	}
}

// Message returns the encouragement message for the band.
func (b Band) Message() string {
	if b < BandNotStarted || b > BandComplete {
		return ""
	}
	return bandMessages[b]
}

func (b Band) String() string {
	if b < BandNotStarted || b > BandComplete {
		return "unknown"
	}
	return bandNames[b]
}

// MarshalText encodes the band by name.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// ProgressMessage is shorthand for BandFor(rate).Message().
func ProgressMessage(rate int) string {
	return BandFor(rate).Message()
}
