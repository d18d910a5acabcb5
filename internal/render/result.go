package render

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/bin-days/internal/config"
	"github.com/pfrederiksen/bin-days/internal/schedule"
)

// Result renders the response body for a variant lookup.
// Fetch errors produce a bare fragment without the page shell.
func Result(v config.Variant, res schedule.Result) string {
	switch res.Kind {
	case schedule.KindFetchError:
		return FetchError(res.Err)
	case schedule.KindNoDataFound:
		return Page(v.Title, v.Icon, v.Theme, "<p>Could not find bin collection information on the page.</p>")
	case schedule.KindPartialNoData:
		return Page(v.Title, v.Icon, v.Theme,
			fmt.Sprintf("<p>No bin collection dates found for %s. Try refreshing later.</p>", v.Label()))
	default:
		return Page(v.Title, v.Icon, v.Theme, Sections(res.Areas))
	}
}

// FetchError renders the plain fragment shown when the page cannot be fetched.
func FetchError(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("<p>Error fetching data: %s</p>", msg)
}

// Index renders the landing page linking every variant.
func Index(variants []config.Variant) string {
	items := make([]string, len(variants))
	for i, v := range variants {
		items[i] = fmt.Sprintf(`<li><a href="/%s"><i class="fas %s"></i> %s</a> · <a href="/%s.ics">calendar</a></li>`,
			v.Slug, v.Icon, v.Title, v.Slug)
	}
	body := fmt.Sprintf("<ul>%s</ul>", strings.Join(items, "\n"))
	return Page("Bin Collection Dates", "fa-recycle", IndexTheme, body)
}
