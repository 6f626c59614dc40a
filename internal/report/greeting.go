package report

import "time"

// Time-of-day salutations, selected by local hour.
const (
	GreetingMorning = "Доброе утро"
	GreetingMidday  = "Добрый день"
	GreetingEvening = "Добрый вечер"
	GreetingNight   = "Доброй ночи"
)

// Greeting returns the salutation for the given local time. Bands are
// closed-open: [05,12) morning, [12,18) midday, [18,23) evening; the
// night band wraps around midnight.
func Greeting(at time.Time) string {
	switch h := at.Hour(); {
	case h >= 5 && h < 12:
		return GreetingMorning
	case h >= 12 && h < 18:
		return GreetingMidday
	case h >= 18 && h < 23:
		return GreetingEvening
	default:
		return GreetingNight
	}
}
