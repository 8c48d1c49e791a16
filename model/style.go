package model

import "github.com/tsawler/ods/format"

// Family identifies what a style applies to.
type Family int

const (
	FamilyNone Family = iota
	FamilyTable
	FamilyTableColumn
	FamilyTableRow
	FamilyTableCell
)

// String returns the style:family wire value.
func (f Family) String() string {
	switch f {
	case FamilyTable:
		return "table"
	case FamilyTableColumn:
		return "table-column"
	case FamilyTableRow:
		return "table-row"
	case FamilyTableCell:
		return "table-cell"
	default:
		return ""
	}
}

// FamilyFromWire maps a style:family attribute to a Family.
func FamilyFromWire(s string) Family {
	switch s {
	case "table":
		return FamilyTable
	case "table-column":
		return FamilyTableColumn
	case "table-row":
		return FamilyTableRow
	case "table-cell":
		return FamilyTableCell
	default:
		return FamilyNone
	}
}

// PropertyMap is an opaque bag of wire attributes. The codec round-trips
// these without interpreting them.
type PropertyMap map[string]string

// Style is a named cosmetic style. Its per-category property maps are
// consumed only by reference; the codec never interprets their contents.
type Style struct {
	Name        string
	DisplayName string
	Family      Family
	Parent      string
	// DataStyle names the value format rendering this style's cell values.
	DataStyle string
	Origin    format.Origin

	table     PropertyMap
	column    PropertyMap
	row       PropertyMap
	cell      PropertyMap
	paragraph PropertyMap
	text      PropertyMap
}

// NewStyle returns a named style of the given family.
func NewStyle(name string, family Family) *Style {
	return &Style{Name: name, Family: family}
}

// TableProps returns the table-properties bag, creating it if needed.
func (s *Style) TableProps() PropertyMap { return ensure(&s.table) }

// ColumnProps returns the table-column-properties bag, creating it if needed.
func (s *Style) ColumnProps() PropertyMap { return ensure(&s.column) }

// RowProps returns the table-row-properties bag, creating it if needed.
func (s *Style) RowProps() PropertyMap { return ensure(&s.row) }

// CellProps returns the table-cell-properties bag, creating it if needed.
func (s *Style) CellProps() PropertyMap { return ensure(&s.cell) }

// ParagraphProps returns the paragraph-properties bag, creating it if needed.
func (s *Style) ParagraphProps() PropertyMap { return ensure(&s.paragraph) }

// TextProps returns the text-properties bag, creating it if needed.
func (s *Style) TextProps() PropertyMap { return ensure(&s.text) }

// HasTableProps reports whether the table-properties bag is non-empty,
// and likewise for the other accessors below.
func (s *Style) HasTableProps() bool     { return len(s.table) > 0 }
func (s *Style) HasColumnProps() bool    { return len(s.column) > 0 }
func (s *Style) HasRowProps() bool       { return len(s.row) > 0 }
func (s *Style) HasCellProps() bool      { return len(s.cell) > 0 }
func (s *Style) HasParagraphProps() bool { return len(s.paragraph) > 0 }
func (s *Style) HasTextProps() bool      { return len(s.text) > 0 }

func ensure(m *PropertyMap) PropertyMap {
	if *m == nil {
		*m = make(PropertyMap)
	}
	return *m
}

// FontDecl is a named font-face declaration, carried as an opaque
// property bag.
type FontDecl struct {
	Name   string
	Origin format.Origin
	Props  PropertyMap
}

// NewFontDecl returns a named font declaration.
func NewFontDecl(name string) *FontDecl {
	return &FontDecl{Name: name, Props: make(PropertyMap)}
}
