package schedule

import "strings"

// MonthDates is the list of collection dates published for one month.
type MonthDates struct {
	Month string   `json:"month"`
	Dates []string `json:"dates"`
}

// Area is the schedule of one target area.
type Area struct {
	Label  string       `json:"area"`
	Months []MonthDates `json:"months"`
}

// SplitDates splits a comma-separated cell into trimmed, non-empty dates.
func SplitDates(cell string) []string {
	parts := strings.Split(cell, ",")
	dates := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		dates = append(dates, p)
	}
	return dates
}

// BuildArea pairs months with cells by position, stopping at the shorter of
// the two, and splits each cell into its dates.
func BuildArea(label string, months, cells []string) Area {
	n := min(len(months), len(cells))
	area := Area{
		Label:  label,
		Months: make([]MonthDates, 0, n),
	}
	for i := 0; i < n; i++ {
		area.Months = append(area.Months, MonthDates{
			Month: months[i],
			Dates: SplitDates(cells[i]),
		})
	}
	return area
}
