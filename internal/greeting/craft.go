package greeting

import (
	"fmt"
	"strings"
)

// Tone labels attached to crafted messages.
const (
	ToneFriendly   = "friendly"
	ToneGentle     = "gentle"
	ToneEnergetic  = "energetic"
	ToneSupportive = "supportive"
)

// dayPartGreetings maps a day-part hint to per-language greeting bases.
var dayPartGreetings = map[string]map[string]string{
	"morning":   {"en": "Good morning", "hi": "सुप्रभात"},
	"afternoon": {"en": "Good afternoon", "hi": "नमस्ते"},
	"evening":   {"en": "Good evening", "hi": "शुभ संध्या"},
}

// defaultGreetings is used when no day-part hint applies.
var defaultGreetings = map[string]string{
	"en": "Hello",
	"hi": "नमस्ते",
}

// Craft builds a personalized greeting for the given name, mood, language
// code and optional time-of-day hint. It returns the composed message, a
// tone label, and zero or one advice tips.
//
// The greeting base falls back in order: day-part table for the language,
// default table for the language, then the literal "Hello". Unknown
// time-of-day hints are ignored rather than rejected. The function is total:
// it never fails, regardless of input.
func Craft(name string, mood Mood, language string, timeOfDay string) (message, tone string, tips []string) {
	base := baseGreeting(language, timeOfDay)

	tone = ToneFriendly
	tips = []string{}
	switch mood {
	case MoodTired:
		tone = ToneGentle
		tips = append(tips, "Take a short break and hydrate.")
	case MoodExcited:
		tone = ToneEnergetic
		tips = append(tips, "Channel that energy into your top task for 25 minutes.")
	case MoodSad:
		tone = ToneSupportive
		tips = append(tips, "A short walk or a call with a friend can help.")
	}

	message = fmt.Sprintf("%s, %s! Hope you're doing %s.", base, name, mood)
	return message, tone, tips
}

// baseGreeting picks the greeting prefix for a language and day-part hint.
// A day-part entry missing the language falls back to the default table,
// and an unknown language falls back to the literal "Hello". The last
// fallback is unreachable once the language has been validated upstream,
// but keeps the lookup total.
func baseGreeting(language, timeOfDay string) string {
	if timeOfDay != "" {
		if perLanguage, ok := dayPartGreetings[strings.ToLower(timeOfDay)]; ok {
			if base, ok := perLanguage[language]; ok {
				return base
			}
		}
	}
	if base, ok := defaultGreetings[language]; ok {
		return base
	}
	return "Hello"
}
