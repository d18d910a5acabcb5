package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/bin-days/internal/config"
	"github.com/pfrederiksen/bin-days/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time       `json:"checked_at"`
	Variant   string          `json:"variant"`
	Title     string          `json:"title"`
	SourceURL string          `json:"source_url"`
	Outcome   string          `json:"outcome"`
	Error     string          `json:"error,omitempty"`
	Areas     []schedule.Area `json:"areas"`
	label     string
}

func newOutputResult(v config.Variant, res schedule.Result) *OutputResult {
	out := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Variant:   v.Slug,
		Title:     v.Title,
		SourceURL: v.URL,
		Outcome:   res.Kind.String(),
		Areas:     res.Areas,
		label:     v.Label(),
	}
	if out.Areas == nil {
		out.Areas = []schedule.Area{}
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintln(w, result.Title)

	switch result.Outcome {
	case schedule.KindFetchError.String():
		fmt.Fprintf(w, "Error fetching data: %s\n", result.Error)
		return nil
	case schedule.KindNoDataFound.String():
		fmt.Fprintln(w, "Could not find bin collection information on the page.")
		return nil
	case schedule.KindPartialNoData.String():
		fmt.Fprintf(w, "No bin collection dates found for %s. Try refreshing later.\n", result.label)
		return nil
	}

	for _, area := range result.Areas {
		fmt.Fprintf(w, "\n%s:\n", area.Label)
		for _, m := range area.Months {
			fmt.Fprintf(w, "  %s:", m.Month)
			if len(m.Dates) == 0 {
				fmt.Fprint(w, " -")
			}
			for i, d := range m.Dates {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, " %s", d)
			}
			fmt.Fprintln(w)
		}
	}

	return nil
}
