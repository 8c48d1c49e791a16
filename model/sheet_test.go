package model

import (
	"testing"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/value"
)

func TestSheetSparseStorage(t *testing.T) {
	s := NewSheet("Test")

	s.SetValue(0, 0, value.Text("corner"))
	s.SetValue(1000, 500, value.Number(42))

	if got := s.CellCount(); got != 2 {
		t.Errorf("CellCount() = %d, want 2", got)
	}
	if c := s.Cell(0, 0); c == nil {
		t.Fatal("Cell(0, 0) = nil, want cell")
	}
	if c := s.Cell(500, 250); c != nil {
		t.Errorf("Cell(500, 250) = %v, want nil", c)
	}

	rows, cols := s.UsedExtent()
	if rows != 1001 || cols != 501 {
		t.Errorf("UsedExtent() = (%d, %d), want (1001, 501)", rows, cols)
	}
}

func TestSheetPositionsRowMajor(t *testing.T) {
	s := NewSheet("Test")
	s.SetValue(2, 0, value.Number(1))
	s.SetValue(0, 3, value.Number(2))
	s.SetValue(0, 1, value.Number(3))
	s.SetValue(1, 2, value.Number(4))

	want := []Position{{0, 1}, {0, 3}, {1, 2}, {2, 0}}
	got := s.Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSheetCellByRef(t *testing.T) {
	s := NewSheet("Test")
	s.SetValue(9, 2, value.Text("hello"))

	c := s.CellByRef("C10")
	if c == nil {
		t.Fatal(`CellByRef("C10") = nil, want cell`)
	}
	got, err := c.Value.AsText()
	if err != nil {
		t.Fatalf("AsText() error: %v", err)
	}
	if got != "hello" {
		t.Errorf(`CellByRef("C10") value = %q, want "hello"`, got)
	}

	if c := s.CellByRef("not-a-ref"); c != nil {
		t.Errorf("CellByRef(invalid) = %v, want nil", c)
	}
}

func TestCellIsEmpty(t *testing.T) {
	var nilCell *Cell
	if !nilCell.IsEmpty() {
		t.Error("nil cell IsEmpty() = false, want true")
	}
	if !(&Cell{}).IsEmpty() {
		t.Error("zero cell IsEmpty() = false, want true")
	}
	if (&Cell{Style: "ce1"}).IsEmpty() {
		t.Error("styled cell IsEmpty() = true, want false")
	}
	if (&Cell{Formula: "of:=SUM(A1:A2)"}).IsEmpty() {
		t.Error("formula cell IsEmpty() = true, want false")
	}
	if (&Cell{Value: value.Number(0)}).IsEmpty() {
		t.Error("valued cell IsEmpty() = true, want false")
	}
}

func TestSheetRowAndColumnMetadata(t *testing.T) {
	s := NewSheet("Test")

	s.SetRowStyle(3, "ro2")
	if got := s.RowStyle(3); got != "ro2" {
		t.Errorf("RowStyle(3) = %q, want %q", got, "ro2")
	}
	if got := s.RowStyle(4); got != "" {
		t.Errorf("RowStyle(4) = %q, want empty", got)
	}

	s.SetColumn(2, &Column{Style: "co1", DefaultCellStyle: "ce1"})
	s.SetColumn(0, &Column{Style: "co2"})
	if c := s.Column(2); c == nil || c.DefaultCellStyle != "ce1" {
		t.Errorf("Column(2) = %+v, want DefaultCellStyle ce1", c)
	}

	idx := s.ColumnIndexes()
	if len(idx) != 2 || idx[0] != 0 || idx[1] != 2 {
		t.Errorf("ColumnIndexes() = %v, want [0 2]", idx)
	}
}

func TestWorkbookRegistries(t *testing.T) {
	w := NewWorkbook()

	st := NewStyle("ce1", FamilyTableCell)
	st.DataStyle = "N2"
	w.AddStyle(st)

	if got := w.Style("ce1"); got != st {
		t.Errorf("Style(ce1) = %v, want registered style", got)
	}
	if got := w.Style("missing"); got != nil {
		t.Errorf("Style(missing) = %v, want nil", got)
	}

	w.SetDefaultStyle(value.TypeNumber, "ce1")
	if got := w.DefaultStyle(value.TypeNumber); got != "ce1" {
		t.Errorf("DefaultStyle(number) = %q, want ce1", got)
	}
	if got := w.DefaultStyle(value.TypeBoolean); got != "" {
		t.Errorf("DefaultStyle(boolean) = %q, want empty", got)
	}
}

func TestWorkbookValueFormatFor(t *testing.T) {
	w := NewWorkbook()

	st := NewStyle("ce1", FamilyTableCell)
	st.DataStyle = "N2"
	w.AddStyle(st)

	if f := w.ValueFormatFor("ce1"); f != nil {
		t.Errorf("ValueFormatFor before format registered = %v, want nil", f)
	}

	f := format.New("N2", value.TypeNumber)
	w.AddFormat(f)

	if got := w.ValueFormatFor("ce1"); got != f {
		t.Errorf("ValueFormatFor(ce1) = %v, want N2 format", got)
	}
	if got := w.ValueFormatFor("missing"); got != nil {
		t.Errorf("ValueFormatFor(missing) = %v, want nil", got)
	}
}

func TestFamilyWireRoundTrip(t *testing.T) {
	for _, f := range []Family{FamilyTable, FamilyTableColumn, FamilyTableRow, FamilyTableCell} {
		if got := FamilyFromWire(f.String()); got != f {
			t.Errorf("FamilyFromWire(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if got := FamilyFromWire("paragraph"); got != FamilyNone {
		t.Errorf("FamilyFromWire(paragraph) = %v, want FamilyNone", got)
	}
}
