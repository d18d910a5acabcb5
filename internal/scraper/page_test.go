package scraper

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_Tables(t *testing.T) {
	html := `
	<table id="one">
	  <thead><tr><th>Area</th><th> January </th><th>February</th></tr></thead>
	  <tbody>
	    <tr><td>Upper Shader</td><td>3 Jan,<br> 17 Jan</td><td><span>14</span>, 28</td></tr>
	    <tr><td>Lower Shader</td><td></td><td>7</td></tr>
	  </tbody>
	</table>
	<table id="two">
	  <tr><td>No headers here</td></tr>
	</table>`

	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tables := doc.Tables()
	if len(tables) != 2 {
		t.Fatalf("Tables() = %d, want 2", len(tables))
	}

	if got, want := tables[0].HeaderCells(), []string{"Area", "January", "February"}; !reflect.DeepEqual(got, want) {
		t.Errorf("HeaderCells() = %q, want %q", got, want)
	}
	if got := tables[1].HeaderCells(); len(got) != 0 {
		t.Errorf("second table HeaderCells() = %q, want none", got)
	}

	rows := tables[0].Rows()
	if len(rows) != 3 {
		t.Fatalf("Rows() = %d, want 3", len(rows))
	}
	if got := rows[0].DataCells(); len(got) != 0 {
		t.Errorf("header row DataCells() = %q, want none", got)
	}
	if got, want := rows[1].DataCells(), []string{"Upper Shader", "3 Jan,17 Jan", "14, 28"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DataCells() = %q, want %q", got, want)
	}
	if got := rows[2].DataCells(); got[0] != "Lower Shader" || got[1] != "" {
		t.Errorf("DataCells() = %q", got)
	}
}

func TestParse_EntitiesDecoded(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<table><tr><th>A</th></tr><tr><td>Tong &amp; Back</td></tr></table>`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.Tables()[0].Rows()[1].DataCells()[0]; got != "Tong & Back" {
		t.Errorf("cell = %q, want %q", got, "Tong & Back")
	}
}

func TestStrippedText_IgnoresComments(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<table><tr><td> 3 <!-- hidden --> </td></tr></table>`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := doc.Tables()[0].Rows()[0].DataCells()[0]; got != "3" {
		t.Errorf("cell = %q, want 3", got)
	}
}
