package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dayPattern  = regexp.MustCompile(`(?:^|[^0-9])([0-9]{1,2})(?:st|nd|rd|th)?(?:[^0-9]|$)`)
	yearPattern = regexp.MustCompile(`(?:^|[^0-9])(20[0-9]{2})(?:[^0-9]|$)`)
	wordPattern = regexp.MustCompile(`[A-Za-z]+`)
)

// ParseDay resolves a published date such as "3", "Fri 3rd" or "3 Jan" under
// a month header such as "January" or "January 2026" into a calendar day.
// Without an explicit year, the month is placed in the year that falls
// within the schedule window around now (see scheduleYear).
// Returns false if no valid day can be determined.
func ParseDay(monthHeader, dateText string, now time.Time) (time.Time, bool) {
	day := parseDayNumber(dateText)
	if day == 0 {
		return time.Time{}, false
	}

	month := parseMonth(monthHeader)
	if month == 0 {
		month = parseMonth(dateText)
	}
	if month == 0 {
		return time.Time{}, false
	}

	year := parseYear(monthHeader)
	if year == 0 {
		year = parseYear(dateText)
	}
	if year == 0 {
		year = scheduleYear(month, now)
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// e.g. 31 in a 30-day month
		return time.Time{}, false
	}
	return t, true
}

func parseDayNumber(s string) int {
	for _, m := range dayPattern.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= 31 {
			return n
		}
	}
	return 0
}

func parseYear(s string) int {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// parseMonth finds the first word that is a month name or an abbreviation
// of at least three letters.
func parseMonth(s string) time.Month {
	for _, w := range wordPattern.FindAllString(s, -1) {
		if len(w) < 3 {
			continue
		}
		w = strings.ToLower(w)
		for m := time.January; m <= time.December; m++ {
			if strings.HasPrefix(strings.ToLower(m.String()), w) {
				return m
			}
		}
	}
	return 0
}

// lookBehindMonths is how far before now a published month may lie and still
// belong to the current schedule.
const lookBehindMonths = 2

// scheduleYear places month in the twelve-month window that starts
// lookBehindMonths before now. Months further behind roll into next year;
// December seen in January still belongs to last year.
func scheduleYear(month time.Month, now time.Time) int {
	year := now.Year()
	diff := int(month) - int(now.Month())
	switch {
	case diff < -lookBehindMonths:
		year++
	case diff > 11-lookBehindMonths:
		year--
	}
	return year
}
