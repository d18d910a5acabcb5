package schedule

import "strings"

// Match is the result of scanning a document for target rows.
type Match struct {
	// Cells maps a target, exactly as requested, to the cells that follow
	// the area name in its row.
	Cells map[string][]string
	// Months are the header labels of the first table in which any target
	// matched, without the leading row-label column.
	Months []string
}

// Found reports whether anything matched.
func (m Match) Found() bool {
	return len(m.Months) > 0
}

// MatchRows scans every table of doc for rows whose first data cell contains
// one of targets, ignoring case.
//
// Tables without header cells are skipped. A later matching row for the same
// target replaces an earlier one, while Months stay locked to the first table
// that produced a match. Scanning stops after the first table at which every
// target has been seen.
func MatchRows(doc Document, targets []string) Match {
	m := Match{Cells: make(map[string][]string)}

	lowered := make([]string, len(targets))
	for i, t := range targets {
		lowered[i] = strings.ToLower(t)
	}

	for _, table := range doc.Tables() {
		headers := table.HeaderCells()
		if len(headers) == 0 {
			continue
		}
		tableMonths := headers[1:]

		for _, row := range table.Rows() {
			cells := row.DataCells()
			if len(cells) == 0 {
				continue
			}
			areaText := strings.ToLower(cells[0])

			for i, target := range targets {
				if !strings.Contains(areaText, lowered[i]) {
					continue
				}
				m.Cells[target] = append([]string(nil), cells[1:]...)
				if len(m.Months) == 0 {
					m.Months = append([]string(nil), tableMonths...)
				}
			}
		}

		if allFound(m.Cells, lowered) {
			break
		}
	}

	return m
}

// allFound reports whether every lowered target has a key in cells,
// compared case-insensitively.
func allFound(cells map[string][]string, lowered []string) bool {
	keys := make(map[string]bool, len(cells))
	for k := range cells {
		keys[strings.ToLower(k)] = true
	}
	for _, t := range lowered {
		if !keys[t] {
			return false
		}
	}
	return true
}
