package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/bin-days/internal/schedule"
	"golang.org/x/net/html"
)

// page adapts a goquery document to schedule.Document.
// Header and data cells are looked up among all descendants, so cells of
// nested tables count toward the enclosing table too.
type page struct {
	doc *goquery.Document
}

func (p *page) Tables() []schedule.Table {
	tables := make([]schedule.Table, 0)
	p.doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		tables = append(tables, &table{sel: sel})
	})
	return tables
}

type table struct {
	sel *goquery.Selection
}

func (t *table) HeaderCells() []string {
	return t.sel.Find("th").Map(cellText)
}

func (t *table) Rows() []schedule.Row {
	rows := make([]schedule.Row, 0)
	t.sel.Find("tr").Each(func(_ int, sel *goquery.Selection) {
		rows = append(rows, &row{sel: sel})
	})
	return rows
}

type row struct {
	sel *goquery.Selection
}

func (r *row) DataCells() []string {
	return r.sel.Find("td").Map(cellText)
}

func cellText(_ int, sel *goquery.Selection) string {
	return strippedText(sel)
}

// strippedText concatenates every text node under sel, each trimmed.
// "<td>3 Jan,<br> 17 Jan</td>" yields "3 Jan,17 Jan".
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}
