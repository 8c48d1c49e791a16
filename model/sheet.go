package model

import (
	"sort"

	"github.com/tsawler/ods/value"
)

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row int
	Col int
}

// Less orders positions row-major: first by row, then by column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Cell is a single occupied grid position: an optional typed value, an
// optional style-name reference, and an optional opaque formula.
type Cell struct {
	Value   value.Value
	Style   string
	Formula string
}

// IsEmpty reports whether the cell carries no value, style, or formula.
// Such a cell is indistinguishable from an absent one on disk.
func (c *Cell) IsEmpty() bool {
	return c == nil || (c.Value.IsEmpty() && c.Style == "" && c.Formula == "")
}

// Column holds column-level metadata: a column style and the default style
// applied to cells in the column.
type Column struct {
	Style            string
	DefaultCellStyle string
}

// Row holds row-level metadata.
type Row struct {
	Style string
}

// Sheet is a named, sparse spreadsheet grid.
type Sheet struct {
	Name  string
	Style string

	columns map[int]*Column
	rows    map[int]*Row
	cells   map[Position]*Cell
}

// NewSheet returns an empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:    name,
		columns: make(map[int]*Column),
		rows:    make(map[int]*Row),
		cells:   make(map[Position]*Cell),
	}
}

// SetCell stores a cell at the given position, replacing any existing one.
func (s *Sheet) SetCell(row, col int, c *Cell) {
	s.cells[Position{row, col}] = c
}

// Cell returns the cell at the given position, or nil if unoccupied.
func (s *Sheet) Cell(row, col int) *Cell {
	return s.cells[Position{row, col}]
}

// CellByRef returns the cell at an A1-style reference, or nil.
func (s *Sheet) CellByRef(ref string) *Cell {
	col, row, err := ParseCellRef(ref)
	if err != nil {
		return nil
	}
	return s.Cell(row, col)
}

// SetValue stores a value at the given position, creating the cell if needed.
func (s *Sheet) SetValue(row, col int, v value.Value) {
	c := s.ensureCell(row, col)
	c.Value = v
}

// SetFormula stores an opaque formula string at the given position.
func (s *Sheet) SetFormula(row, col int, formula string) {
	c := s.ensureCell(row, col)
	c.Formula = formula
}

// SetCellStyle sets the style-name reference at the given position.
func (s *Sheet) SetCellStyle(row, col int, style string) {
	c := s.ensureCell(row, col)
	c.Style = style
}

func (s *Sheet) ensureCell(row, col int) *Cell {
	pos := Position{row, col}
	c := s.cells[pos]
	if c == nil {
		c = &Cell{}
		s.cells[pos] = c
	}
	return c
}

// CellCount returns the number of occupied positions.
func (s *Sheet) CellCount() int { return len(s.cells) }

// Positions returns all occupied positions in row-major order.
func (s *Sheet) Positions() []Position {
	out := make([]Position, 0, len(s.cells))
	for pos := range s.cells {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// SetRowStyle records a row-level style for the given row index.
func (s *Sheet) SetRowStyle(row int, style string) {
	r := s.rows[row]
	if r == nil {
		r = &Row{}
		s.rows[row] = r
	}
	r.Style = style
}

// RowStyle returns the row-level style for the given row index, or "".
func (s *Sheet) RowStyle(row int) string {
	if r := s.rows[row]; r != nil {
		return r.Style
	}
	return ""
}

// SetColumn stores column metadata for the given column index.
func (s *Sheet) SetColumn(col int, c *Column) {
	s.columns[col] = c
}

// Column returns the column metadata for the given index, or nil.
func (s *Sheet) Column(col int) *Column {
	return s.columns[col]
}

// ColumnIndexes returns the indexes of all declared columns in order.
func (s *Sheet) ColumnIndexes() []int {
	out := make([]int, 0, len(s.columns))
	for i := range s.columns {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// UsedExtent returns the exclusive bounding box of all occupied cells as
// (rows, cols): the smallest grid containing every occupied position. A
// sheet with no cells has extent (0, 0).
func (s *Sheet) UsedExtent() (rows, cols int) {
	for pos := range s.cells {
		if pos.Row >= rows {
			rows = pos.Row + 1
		}
		if pos.Col >= cols {
			cols = pos.Col + 1
		}
	}
	return rows, cols
}
