package schedule

import (
	"context"

	"github.com/pfrederiksen/bin-days/internal/config"
)

// Kind classifies the outcome of a Lookup.
type Kind int

const (
	// KindSuccess means at least one area section was produced.
	KindSuccess Kind = iota
	// KindFetchError means the upstream page could not be fetched.
	KindFetchError
	// KindNoDataFound means no table matched any target.
	KindNoDataFound
	// KindPartialNoData means months were found but no target produced cells.
	KindPartialNoData
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFetchError:
		return "fetch_error"
	case KindNoDataFound:
		return "no_data_found"
	case KindPartialNoData:
		return "partial_no_data"
	default:
		return "unknown"
	}
}

// Result is the outcome of looking up one variant.
type Result struct {
	Kind  Kind
	Err   error // set for KindFetchError
	Areas []Area
}

// Fetcher retrieves and parses a schedule page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

// Lookup fetches the variant's page and collects its target areas.
func Lookup(ctx context.Context, f Fetcher, v config.Variant) Result {
	doc, err := f.Fetch(ctx, v.URL)
	if err != nil {
		return Result{Kind: KindFetchError, Err: err}
	}
	return Resolve(doc, v.Targets)
}

// Resolve matches targets against doc and builds the areas in target order.
// Targets without cells are omitted.
func Resolve(doc Document, targets []string) Result {
	m := MatchRows(doc, targets)
	if !m.Found() {
		return Result{Kind: KindNoDataFound}
	}

	areas := make([]Area, 0, len(targets))
	for _, target := range targets {
		cells := m.Cells[target]
		if len(cells) == 0 {
			continue
		}
		areas = append(areas, BuildArea(target, m.Months, cells))
	}

	if len(areas) == 0 {
		return Result{Kind: KindPartialNoData}
	}
	return Result{Kind: KindSuccess, Areas: areas}
}
