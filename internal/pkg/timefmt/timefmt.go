package timefmt

import (
	"fmt"
	"math"
	"time"
	"unicode"
)

// FormatMinutes renders a minute total as "7h 30m" / "45m". The total is
// rounded first so 7h 59.6m never shows up as "7h 60m".
func FormatMinutes(minutes float64) string {
	if minutes <= 0 {
		return "0m"
	}
	total := int(math.Round(minutes))
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// ClockHHMM returns the HH:MM of t in UTC.
func ClockHHMM(t time.Time) string {
	return t.UTC().Format("15:04")
}

// MinuteOfDay returns whole minutes since UTC midnight. All shift arithmetic
// is UTC based; local-time extraction would shift the windows.
func MinuteOfDay(t time.Time) int {
	u := t.UTC()
	return u.Hour()*60 + u.Minute()
}

// DateKey returns the UTC calendar date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

var weekdaysPTBR = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// WeekdayPTBR returns the pt-BR weekday name of t in UTC.
func WeekdayPTBR(t time.Time) string {
	return weekdaysPTBR[int(t.UTC().Weekday())]
}

// DayLabelPTBR renders the report row label, ex: "Segunda-feira - 06/01/2026".
func DayLabelPTBR(t time.Time) string {
	weekday := []rune(WeekdayPTBR(t))
	capitalized := string(unicode.ToUpper(weekday[0])) + string(weekday[1:])
	return fmt.Sprintf("%s - %s", capitalized, t.UTC().Format("02/01/2006"))
}
