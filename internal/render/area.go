package render

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/bin-days/internal/schedule"
)

// Area renders one area heading followed by a block per month.
func Area(area schedule.Area) string {
	blocks := make([]string, 0, len(area.Months))
	for _, m := range area.Months {
		blocks = append(blocks, fmt.Sprintf("<h3>%s</h3>\n<ul>%s</ul>", m.Month, dateItems(m.Dates)))
	}
	return fmt.Sprintf("<h2>%s</h2>\n%s", area.Label, strings.Join(blocks, ""))
}

// Sections renders every area, one after another.
func Sections(areas []schedule.Area) string {
	sections := make([]string, 0, len(areas))
	for _, a := range areas {
		sections = append(sections, Area(a))
	}
	return strings.Join(sections, "\n")
}

func dateItems(dates []string) string {
	if len(dates) == 0 {
		return "<li>-</li>"
	}
	items := make([]string, len(dates))
	for i, d := range dates {
		items[i] = fmt.Sprintf(`<li><i class="fas fa-calendar-day"></i> %s</li>`, d)
	}
	return strings.Join(items, "\n")
}
