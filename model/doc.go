// Package model provides the in-memory representation of an ODS workbook.
//
// This package defines the user-facing data structures the codec reads into
// and writes from: a [Workbook] owning ordered [Sheet]s, style and format
// registries, and sparse per-sheet grids of [Cell]s.
//
// # Sparse grids
//
// A sheet never stores empty positions. Columns, rows, and cells live in
// sparse mappings keyed by index; a missing key means "default/empty", which
// is distinct from a present-but-empty cell. This mirrors the on-disk format,
// where runs of empty cells are collapsed into repeat counts, and keeps a
// mostly-empty million-row sheet cheap to hold in memory.
//
//	sheet := model.NewSheet("Sales")
//	sheet.SetValue(0, 0, value.Text("Region"))
//	sheet.SetValue(1, 0, value.Currency("EUR", 1234.5))
//
// # Styles
//
// Cosmetic styling is carried as opaque property bags ([Style], [FontDecl])
// identified by name. The codec round-trips them without interpreting their
// contents.
package model
