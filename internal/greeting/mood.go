// Package greeting contains the greeting domain: the mood enumeration,
// business-rule validation, and the message crafter.
package greeting

// Mood represents the caller's self-reported emotional state.
type Mood string

// The closed set of accepted moods.
const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodTired   Mood = "tired"
	MoodExcited Mood = "excited"
	MoodSad     Mood = "sad"
)

// Moods lists every accepted mood value.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodTired, MoodExcited, MoodSad}

// IsValid reports whether m is a member of the mood enumeration.
func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodTired, MoodExcited, MoodSad:
		return true
	}
	return false
}

// String returns the mood's literal label.
func (m Mood) String() string {
	return string(m)
}
