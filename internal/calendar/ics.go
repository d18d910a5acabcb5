package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/bin-days/internal/config"
	"github.com/pfrederiksen/bin-days/internal/schedule"
)

// Collection is one dated collection of an area.
type Collection struct {
	Area string
	Date time.Time
	Raw  string // date text as published
}

// Collections resolves every date of areas to a calendar day.
// Dates that cannot be resolved are skipped. Duplicates are dropped.
func Collections(areas []schedule.Area, now time.Time) []Collection {
	out := make([]Collection, 0)
	seen := make(map[string]bool)
	for _, area := range areas {
		for _, m := range area.Months {
			for _, raw := range m.Dates {
				day, ok := ParseDay(m.Month, raw, now)
				if !ok {
					continue
				}
				key := area.Label + "|" + day.Format("2006-01-02")
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, Collection{Area: area.Label, Date: day, Raw: raw})
			}
		}
	}
	return out
}

// Generate generates an iCalendar (.ics) feed with one all-day event per collection
func Generate(v config.Variant, areas []schedule.Area, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//bin-days//bin-days//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(v.Title)))

	stamp := formatICSTime(now)
	for _, c := range Collections(areas, now) {
		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@bin-days\r\n", eventID(v.Slug, c)))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(c.Date)))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(c.Date.AddDate(0, 0, 1))))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(fmt.Sprintf("%s - %s", v.Title, c.Area))))
		description := fmt.Sprintf("Published as: %s\nSource: %s", c.Raw, v.URL)
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(c.Area)))
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", v.URL))
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// eventID is stable across refreshes of the same schedule
func eventID(slug string, c Collection) string {
	h := sha1.New()
	h.Write([]byte(slug + "|" + c.Area + "|" + c.Date.Format("2006-01-02")))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
