// Package format renders timestamps according to the display_date and
// display_time config keys.
package format

import (
	"strings"
	"time"
)

// Getter reads a config value; domain.ConfigProvider.Get satisfies it.
type Getter func(key string) (string, bool)

// Layout holds Go time layouts resolved from configuration.
type Layout struct {
	Date      string
	DateShort string
	Time      string
	TimeFull  string
}

// DefaultLayout is used when no configuration is available.
var DefaultLayout = NewLayout(nil)

// NewLayout resolves the date and time layouts from get. A nil getter or
// missing keys select "Jan 02" and 24h.
func NewLayout(get Getter) Layout {
	displayDate := lookup(get, "display_date", "Jan 02")
	displayTime := lookup(get, "display_time", "24h")

	return Layout{
		Date:      dateLayout(displayDate),
		DateShort: dateLayoutShort(displayDate),
		Time:      timeLayout(displayTime, false),
		TimeFull:  timeLayout(displayTime, true),
	}
}

func lookup(get Getter, key, fallback string) string {
	if get == nil {
		return fallback
	}
	if v, _ := get(key); v != "" {
		return v
	}
	return fallback
}

// DateTime formats date and time, e.g. "23/01/2024 15:04" or "01/23/2024 3:04 PM".
func (l Layout) DateTime(t time.Time) string {
	return t.Format(l.Date) + " " + t.Format(l.Time)
}

// DateTimeShort formats date without year and time, e.g. "23/01 15:04".
func (l Layout) DateTimeShort(t time.Time) string {
	return t.Format(l.DateShort) + " " + t.Format(l.Time)
}

// Full formats date and time with seconds, e.g. "23/01/2024 15:04:05".
func (l Layout) Full(t time.Time) string {
	return t.Format(l.Date) + " " + t.Format(l.TimeFull)
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// A custom Go layout such as "Jan 02".
		return displayDate
	}
}

func dateLayoutShort(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	}

	short := displayDate
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

func timeLayout(displayTime string, seconds bool) string {
	switch {
	case displayTime == "12h" && seconds:
		return "3:04:05 PM"
	case displayTime == "12h":
		return "3:04 PM"
	case seconds:
		return "15:04:05"
	default:
		return "15:04"
	}
}
