package calendar

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name   string
		header string
		date   string
		now    time.Time
		want   string // yyyy-mm-dd, empty for no result
	}{
		{"plain day", "January", "3", refTime, "2026-01-03"},
		{"ordinal", "February", "Fri 13th", refTime, "2026-02-13"},
		{"day and month", "Dates", "17 Mar", refTime, "2026-03-17"},
		{"header wins over text", "April", "3 Jan", refTime, "2026-04-03"},
		{"abbreviated header", "Sept", "9", refTime, "2026-09-09"},
		{"explicit year in header", "December 2025", "22", refTime, "2025-12-22"},
		{"explicit year in text", "March", "4/2027", refTime, "2027-03-04"},
		{"rolls into next year", "January", "6", time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), "2026-01-06"},
		{"rolls into previous year", "December", "30", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), "2025-12-30"},
		{"late in year stays ahead", "October", "14", refTime, "2026-10-14"},
		{"two months behind stays", "March", "5", time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), "2026-03-05"},
		{"three months behind rolls forward", "February", "5", time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), "2027-02-05"},
		{"day out of range", "April", "31", refTime, ""},
		{"no day", "January", "TBC", refTime, ""},
		{"no month", "Week 1", "4", refTime, ""},
		{"zero day", "January", "0", refTime, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDay(tt.header, tt.date, tt.now)
			if tt.want == "" {
				if ok {
					t.Errorf("ParseDay(%q, %q) = %v, want no result", tt.header, tt.date, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ParseDay(%q, %q) returned no result, want %s", tt.header, tt.date, tt.want)
			}
			if s := got.Format("2006-01-02"); s != tt.want {
				t.Errorf("ParseDay(%q, %q) = %s, want %s", tt.header, tt.date, s, tt.want)
			}
		})
	}
}
