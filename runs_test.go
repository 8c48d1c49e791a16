package ods

import (
	"testing"

	"github.com/tsawler/ods/model"
)

func TestGridRunsSingleCellAtOrigin(t *testing.T) {
	runs := gridRuns([]model.Position{{Row: 0, Col: 0}}, 1, 1)
	if len(runs) != 1 {
		t.Fatalf("gridRuns() returned %d runs, want 1", len(runs))
	}
	r := runs[0]
	if !r.openRow || r.closeRow || r.emptyRows != 0 || r.leadingGap != 0 || r.trailingGap != 0 {
		t.Errorf("run = %+v, want plain openRow", r)
	}
}

func TestGridRunsSameRowGap(t *testing.T) {
	runs := gridRuns([]model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, 1, 3)
	if len(runs) != 2 {
		t.Fatalf("gridRuns() returned %d runs, want 2", len(runs))
	}
	// The gap between the cells is carried by the first cell's trailing
	// filler, one less than the column delta.
	if runs[0].trailingGap != 1 {
		t.Errorf("runs[0].trailingGap = %d, want 1", runs[0].trailingGap)
	}
	if runs[1].openRow || runs[1].closeRow || runs[1].leadingGap != 0 {
		t.Errorf("runs[1] = %+v, want continuation in open row", runs[1])
	}
	if runs[1].trailingGap != 0 {
		t.Errorf("runs[1].trailingGap = %d, want 0", runs[1].trailingGap)
	}
}

func TestGridRunsLeadingGapOnRowOpen(t *testing.T) {
	runs := gridRuns([]model.Position{{Row: 0, Col: 3}}, 1, 5)
	r := runs[0]
	if r.leadingGap != 3 {
		t.Errorf("leadingGap = %d, want 3", r.leadingGap)
	}
	if r.trailingGap != 1 {
		t.Errorf("trailingGap = %d, want 1", r.trailingGap)
	}
}

func TestGridRunsEmptyRowsAtTop(t *testing.T) {
	// No occupied row precedes the gap, so all skipped rows are empty.
	runs := gridRuns([]model.Position{{Row: 2, Col: 1}}, 3, 2)
	r := runs[0]
	if r.closeRow {
		t.Error("closeRow = true for first cell, want false")
	}
	if r.emptyRows != 2 {
		t.Errorf("emptyRows = %d, want 2", r.emptyRows)
	}
	if !r.openRow || r.leadingGap != 1 {
		t.Errorf("run = %+v, want openRow with leadingGap 1", r)
	}
}

func TestGridRunsFirstCellOnSecondRow(t *testing.T) {
	// A single skipped row at the top still needs an empty-row block, or
	// the cell shifts up a row on re-read.
	runs := gridRuns([]model.Position{{Row: 1, Col: 0}}, 2, 1)
	r := runs[0]
	if r.emptyRows != 1 {
		t.Errorf("emptyRows = %d, want 1", r.emptyRows)
	}
	if r.closeRow {
		t.Error("closeRow = true for first cell, want false")
	}
	if !r.openRow {
		t.Error("openRow = false, want true")
	}
}

func TestGridRunsEmptyRowsBetween(t *testing.T) {
	runs := gridRuns([]model.Position{{Row: 0, Col: 0}, {Row: 3, Col: 0}}, 4, 1)
	r := runs[1]
	if !r.closeRow {
		t.Error("closeRow = false, want true")
	}
	// The last occupied row is not part of the empty block.
	if r.emptyRows != 2 {
		t.Errorf("emptyRows = %d, want 2", r.emptyRows)
	}
	if !r.openRow {
		t.Error("openRow = false, want true")
	}
}

func TestGridRunsGapSizeIndependence(t *testing.T) {
	small := gridRuns([]model.Position{{Row: 0, Col: 0}, {Row: 5, Col: 0}}, 6, 1)
	large := gridRuns([]model.Position{{Row: 0, Col: 0}, {Row: 50, Col: 0}}, 51, 1)

	if small[1].emptyRows != 4 || large[1].emptyRows != 49 {
		t.Errorf("emptyRows = %d/%d, want 4/49", small[1].emptyRows, large[1].emptyRows)
	}
	// Only the repeat count differs; the event structure does not.
	s, l := small[1], large[1]
	s.emptyRows, l.emptyRows = 0, 0
	s.pos, l.pos = model.Position{}, model.Position{}
	if s != l {
		t.Errorf("run structure differs across gap sizes: %+v vs %+v", small[1], large[1])
	}
}

func TestGridRunsAdjacentRows(t *testing.T) {
	runs := gridRuns([]model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, 2, 1)
	r := runs[1]
	if !r.closeRow || !r.openRow {
		t.Errorf("run = %+v, want close and reopen", r)
	}
	if r.emptyRows != 0 {
		t.Errorf("emptyRows = %d, want 0", r.emptyRows)
	}
}

func TestGridRunsLastRowLastColumn(t *testing.T) {
	runs := gridRuns([]model.Position{{Row: 1, Col: 1}}, 2, 2)
	r := runs[0]
	// The final cell closes out the extent exactly, so no trailing filler.
	if r.trailingGap != 0 {
		t.Errorf("trailingGap = %d, want 0", r.trailingGap)
	}
	if r.emptyRows != 1 {
		t.Errorf("emptyRows = %d, want 1", r.emptyRows)
	}
	if r.leadingGap != 1 {
		t.Errorf("leadingGap = %d, want 1", r.leadingGap)
	}
}

func TestGridRunsEmpty(t *testing.T) {
	if runs := gridRuns(nil, 0, 0); len(runs) != 0 {
		t.Errorf("gridRuns(nil) = %v, want empty", runs)
	}
}
