package schedule

// Document is a parsed schedule page.
type Document interface {
	// Tables returns every table in document order.
	Tables() []Table
}

// Table is one table of a Document.
type Table interface {
	// HeaderCells returns the text of every header cell, in order.
	HeaderCells() []string
	// Rows returns every row, in order.
	Rows() []Row
}

// Row is one row of a Table.
type Row interface {
	// DataCells returns the text of every data cell, in order.
	// Header cells are not included.
	DataCells() []string
}
