package model

import (
	"sort"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/value"
)

// Workbook is a complete spreadsheet document: an ordered sequence of
// sheets plus the styles, value formats, and font declarations they
// reference. A Workbook owns all contained entities exclusively.
type Workbook struct {
	Sheets []*Sheet

	// Path is the file the workbook was read from, if any. A write to the
	// same path preserves document members the codec does not regenerate.
	Path string

	styles        map[string]*Style
	formats       map[string]*format.ValueFormat
	fonts         map[string]*FontDecl
	defaultStyles map[value.Type]string
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{
		styles:        make(map[string]*Style),
		formats:       make(map[string]*format.ValueFormat),
		fonts:         make(map[string]*FontDecl),
		defaultStyles: make(map[value.Type]string),
	}
}

// AddSheet appends a sheet to the workbook.
func (w *Workbook) AddSheet(s *Sheet) {
	w.Sheets = append(w.Sheets, s)
}

// AddStyle registers a style by name.
func (w *Workbook) AddStyle(s *Style) {
	w.styles[s.Name] = s
}

// Style returns the style with the given name, or nil.
func (w *Workbook) Style(name string) *Style {
	return w.styles[name]
}

// StyleNames returns all registered style names in sorted order.
func (w *Workbook) StyleNames() []string {
	return sortedKeys(w.styles)
}

// AddFormat registers a value format by name.
func (w *Workbook) AddFormat(f *format.ValueFormat) {
	w.formats[f.Name] = f
}

// Format returns the value format with the given name, or nil.
func (w *Workbook) Format(name string) *format.ValueFormat {
	return w.formats[name]
}

// FormatNames returns all registered format names in sorted order.
func (w *Workbook) FormatNames() []string {
	return sortedKeys(w.formats)
}

// AddFont registers a font declaration by name.
func (w *Workbook) AddFont(f *FontDecl) {
	w.fonts[f.Name] = f
}

// Font returns the font declaration with the given name, or nil.
func (w *Workbook) Font(name string) *FontDecl {
	return w.fonts[name]
}

// FontNames returns all registered font names in sorted order.
func (w *Workbook) FontNames() []string {
	return sortedKeys(w.fonts)
}

// SetDefaultStyle records the style applied to cells of the given value
// type when they carry no explicit style reference.
func (w *Workbook) SetDefaultStyle(t value.Type, styleName string) {
	w.defaultStyles[t] = styleName
}

// DefaultStyle returns the default style name for a value type, or "".
func (w *Workbook) DefaultStyle(t value.Type) string {
	return w.defaultStyles[t]
}

// ValueFormatFor resolves the value format referenced by a style's data
// style, or nil if the style or its format is unknown.
func (w *Workbook) ValueFormatFor(styleName string) *format.ValueFormat {
	s := w.styles[styleName]
	if s == nil || s.DataStyle == "" {
		return nil
	}
	return w.formats[s.DataStyle]
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
