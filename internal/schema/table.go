package schema

// Table is an in-memory dataset with its derived category column. The
// category slice is parallel to Records; the implicit time index of a row
// is its position. Records are read-only after load.
type Table struct {
	Records    []Record
	Categories []string
}

// NewTable derives the category column for the given records.
func NewTable(records []Record) *Table {
	categories := make([]string, len(records))
	for i, r := range records {
		categories[i] = CategoryOf(r.AttackType)
	}
	return &Table{Records: records, Categories: categories}
}

// Rows reports the number of records.
func (t *Table) Rows() int { return len(t.Records) }

// Cols reports the column count including the derived category column.
func (t *Table) Cols() int { return ColumnCount + 1 }

// CategoryCounts returns the frequency of each derived category value.
func (t *Table) CategoryCounts() map[string]int {
	counts := make(map[string]int, 2)
	for _, c := range t.Categories {
		counts[c]++
	}
	return counts
}
