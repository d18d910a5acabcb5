package schedule

// fakeDoc is an in-memory Document for tests.
type fakeDoc []fakeTable

type fakeTable struct {
	headers []string
	rows    [][]string
}

type fakeRow []string

func (d fakeDoc) Tables() []Table {
	out := make([]Table, len(d))
	for i := range d {
		out[i] = d[i]
	}
	return out
}

func (t fakeTable) HeaderCells() []string { return t.headers }

func (t fakeTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = fakeRow(r)
	}
	return out
}

func (r fakeRow) DataCells() []string { return r }
