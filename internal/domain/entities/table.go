package entities

// Row is the rendered representation of one event inside a section. A
// reference row points at the section that carries the event's full row.
type Row struct {
	Cells     []string
	Reference bool
}

// Table is one assembled subtable: a section title plus the rows of every
// event that matched the section's filters.
type Table struct {
	Title string
	Rows  []Row
}

// Empty reports whether the table collected any rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}
