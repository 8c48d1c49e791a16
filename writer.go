package ods

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/model"
	"github.com/tsawler/ods/xmlw"
)

// Write serializes the workbook to an ODS file at path, cleaning up the
// temporary assembly directory afterwards.
//
// When path is the file the workbook was read from, the original is first
// renamed to a .bak sibling and its members not regenerated here (images,
// settings, ...) are carried over. The backup stays in place if the write
// fails.
func Write(book *model.Workbook, path string) error {
	return WriteClean(book, path, true)
}

// WriteClean is Write with control over temp-artifact cleanup: with clean
// set false the per-member temp directory survives for inspection.
func WriteClean(book *model.Workbook, path string, clean bool) error {
	var src string
	if book.Path != "" {
		src = book.Path
		if sameFile(path, book.Path) {
			bak := replaceExt(book.Path, ".bak")
			if err := os.Rename(book.Path, bak); err != nil {
				return wrapError(KindIO, "renaming original to backup", err)
			}
			src = bak
		}
	}

	tz, err := newTempZip(path)
	if err != nil {
		return wrapError(KindIO, "creating temp assembly dir", err)
	}

	written := make(map[string]bool)
	// content.xml is always regenerated; the copy pass must not shadow it.
	written["content.xml"] = true

	if src != "" {
		if err := copyMembers(src, tz, written); err != nil {
			return err
		}
	}

	if err := writeMimetype(tz, written); err != nil {
		return err
	}
	if err := writeManifest(tz, written); err != nil {
		return err
	}
	if err := writeManifestRDF(tz, written); err != nil {
		return err
	}
	if err := writeMeta(tz, written); err != nil {
		return err
	}
	if err := writeStylesDoc(tz, written); err != nil {
		return err
	}

	w, err := tz.Start("content.xml", false)
	if err != nil {
		return wrapError(KindIO, "starting content.xml member", err)
	}
	if err := writeContent(w, book); err != nil {
		return err
	}

	if err := tz.Zip(); err != nil {
		return wrapError(KindContainer, "assembling ZIP archive", err)
	}
	if clean {
		if err := tz.Clean(); err != nil {
			return wrapError(KindIO, "removing temp assembly dir", err)
		}
	}

	return nil
}

func sameFile(a, b string) bool {
	if a == b {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func replaceExt(path, ext string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/' && path[i] != '\\'; i-- {
		if path[i] == '.' {
			return path[:i] + ext
		}
	}
	return path + ext
}

// writeContent emits content.xml: font declarations, automatic styles and
// value formats, then every sheet.
func writeContent(w io.Writer, book *model.Workbook) error {
	x := xmlw.NewIndent(w)
	x.Decl()

	x.Start("office:document-content", contentNamespaces()...)
	x.Empty("office:scripts")

	x.Start("office:font-face-decls")
	writeFontDecls(x, book, format.OriginContent)
	x.End("office:font-face-decls")

	x.Start("office:automatic-styles")
	writeStyles(x, book, format.OriginContent)
	writeValueStyles(x, book, format.OriginContent)
	x.End("office:automatic-styles")

	x.Start("office:body")
	x.Start("office:spreadsheet")
	for _, sheet := range book.Sheets {
		writeSheet(x, book, sheet)
	}
	x.End("office:spreadsheet")
	x.End("office:body")

	x.End("office:document-content")

	if err := x.Flush(); err != nil {
		return wrapError(KindIO, "writing content.xml", err)
	}
	return nil
}

// gridRun is the emission plan for one occupied cell: which structural
// events surround it so the sparse grid round-trips through repeat counts.
type gridRun struct {
	pos      model.Position
	closeRow bool // close the currently open row first
	// emptyRows fully-empty rows collapse into one repeated row element
	// spanning the full column extent.
	emptyRows int
	openRow   bool
	// leadingGap empty columns open this row before the cell.
	leadingGap int
	// trailingGap empty columns follow the cell within its row.
	trailingGap int
}

// gridRuns plans the structural events for a sheet's occupied positions,
// given the exclusive row/column extent. Gaps are measured with a forward
// look at the next occupied cell and a backward look at the last emitted
// one, so the size of a gap never changes what is emitted around it.
func gridRuns(positions []model.Position, rows, cols int) []gridRun {
	runs := make([]gridRun, 0, len(positions))

	lastR, lastC := 0, 0
	for i, pos := range positions {
		first := i == 0

		nextR, nextC := rows, cols
		if i+1 < len(positions) {
			nextR, nextC = positions[i+1].Row, positions[i+1].Col
		}

		forwardDR := nextR - pos.Row
		// Column deltas only matter within a row; on a row change the gap
		// runs out to the used column extent.
		forwardDC := nextC - pos.Col
		if forwardDR >= 1 {
			forwardDC = cols - pos.Col
		}

		backwardDR := pos.Row - lastR
		backwardDC := pos.Col - lastC
		if backwardDR >= 1 {
			backwardDC = pos.Col
		}

		var run gridRun
		run.pos = pos
		run.closeRow = backwardDR > 0 && !first

		// Rows between the last emitted row and this one are entirely
		// empty. At the top of the sheet no occupied row precedes the gap,
		// so every skipped row counts.
		if first {
			run.emptyRows = backwardDR
		} else if backwardDR > 1 {
			run.emptyRows = backwardDR - 1
		}

		run.openRow = backwardDR > 0 || first
		if run.openRow && backwardDC > 0 {
			run.leadingGap = backwardDC
		}
		if forwardDC > 1 {
			run.trailingGap = forwardDC - 1
		}

		runs = append(runs, run)
		lastR, lastC = pos.Row, pos.Col
	}

	return runs
}

func writeSheet(x *xmlw.Writer, book *model.Workbook, sheet *model.Sheet) {
	attrs := []xmlw.Attr{{Key: "table:name", Value: sheet.Name}}
	if sheet.Style != "" {
		attrs = append(attrs, xmlw.Attr{Key: "table:style-name", Value: sheet.Style})
	}
	x.Start("table:table", attrs...)

	rows, cols := sheet.UsedExtent()
	writeColumns(x, sheet, cols)

	runs := gridRuns(sheet.Positions(), rows, cols)
	for _, run := range runs {
		if run.closeRow {
			x.End("table:table-row")
		}
		if run.emptyRows > 0 {
			writeEmptyRows(x, run.emptyRows, cols)
		}
		if run.openRow {
			writeRowStart(x, sheet, run.pos.Row, run.leadingGap)
		}
		writeCell(x, book, sheet.Cell(run.pos.Row, run.pos.Col))
		if run.trailingGap > 0 {
			x.Empty("table:table-cell", xmlw.Attr{
				Key: "table:number-columns-repeated", Value: strconv.Itoa(run.trailingGap),
			})
		}
	}
	if len(runs) > 0 {
		x.End("table:table-row")
	}

	x.End("table:table")
}

// writeEmptyRows emits one row element covering count fully-empty rows.
func writeEmptyRows(x *xmlw.Writer, count, cols int) {
	var attrs []xmlw.Attr
	if count > 1 {
		attrs = append(attrs, xmlw.Attr{
			Key: "table:number-rows-repeated", Value: strconv.Itoa(count),
		})
	}
	x.Start("table:table-row", attrs...)
	x.Empty("table:table-cell", xmlw.Attr{
		Key: "table:number-columns-repeated", Value: strconv.Itoa(cols),
	})
	x.End("table:table-row")
}

func writeRowStart(x *xmlw.Writer, sheet *model.Sheet, row, leadingGap int) {
	var attrs []xmlw.Attr
	if style := sheet.RowStyle(row); style != "" {
		attrs = append(attrs, xmlw.Attr{Key: "table:style-name", Value: style})
	}
	x.Start("table:table-row", attrs...)

	if leadingGap > 0 {
		x.Empty("table:table-cell", xmlw.Attr{
			Key: "table:number-columns-repeated", Value: strconv.Itoa(leadingGap),
		})
	}
}

// writeColumns emits the declared table-column elements, collapsing uniform
// runs between declared indexes into repeat counts.
func writeColumns(x *xmlw.Writer, sheet *model.Sheet, cols int) {
	indexes := sheet.ColumnIndexes()
	for i, c := range indexes {
		next := cols
		if i+1 < len(indexes) {
			next = indexes[i+1]
		}
		dc := next - c

		column := sheet.Column(c)
		var attrs []xmlw.Attr
		if dc > 1 {
			attrs = append(attrs, xmlw.Attr{
				Key: "table:number-columns-repeated", Value: strconv.Itoa(dc),
			})
		}
		if column.Style != "" {
			attrs = append(attrs, xmlw.Attr{Key: "table:style-name", Value: column.Style})
		}
		if column.DefaultCellStyle != "" {
			attrs = append(attrs, xmlw.Attr{
				Key: "table:default-cell-style-name", Value: column.DefaultCellStyle,
			})
		}
		x.Empty("table:table-column", attrs...)
	}
}

func writeCell(x *xmlw.Writer, book *model.Workbook, cell *model.Cell) {
	var attrs []xmlw.Attr

	if cell.Formula != "" {
		attrs = append(attrs, xmlw.Attr{Key: "table:formula", Value: cell.Formula})
	}

	styleName := cell.Style
	if styleName == "" && !cell.Value.IsEmpty() {
		styleName = book.DefaultStyle(cell.Value.Type())
	}
	if styleName != "" {
		attrs = append(attrs, xmlw.Attr{Key: "table:style-name", Value: styleName})
	}

	wireType, valueAttrs, display := cell.Value.Encode()
	if wireType != "" {
		attrs = append(attrs, xmlw.Attr{Key: "office:value-type", Value: wireType})
		for _, a := range valueAttrs {
			attrs = append(attrs, xmlw.Attr{Key: a.Name, Value: a.Value})
		}
	}

	if cell.Value.IsEmpty() {
		x.Empty("table:table-cell", attrs...)
		return
	}

	// Display text prefers the style's value format; the encoding fallback
	// covers unresolvable styles.
	if f := book.ValueFormatFor(styleName); f != nil {
		display = format.Render(f, cell.Value)
	}

	x.Start("table:table-cell", attrs...)
	x.Start("text:p")
	x.Text(display)
	x.End("text:p")
	x.End("table:table-cell")
}

// originMatches reports whether a definition with the given origin belongs
// in the member being written. Built-in defaults have no member of their
// own and ride along in content.xml.
func originMatches(o, target format.Origin) bool {
	return o == target || (target == format.OriginContent && o == format.OriginDefault)
}

// writeFontDecls emits font declarations of the given origin as
// style:font-face elements with their opaque attributes.
func writeFontDecls(x *xmlw.Writer, book *model.Workbook, origin format.Origin) {
	for _, name := range book.FontNames() {
		font := book.Font(name)
		if !originMatches(font.Origin, origin) {
			continue
		}
		attrs := []xmlw.Attr{{Key: "style:name", Value: font.Name}}
		attrs = append(attrs, sortedAttrs(font.Props)...)
		x.Empty("style:font-face", attrs...)
	}
}

func writeStyles(x *xmlw.Writer, book *model.Workbook, origin format.Origin) {
	for _, name := range book.StyleNames() {
		s := book.Style(name)
		if !originMatches(s.Origin, origin) {
			continue
		}

		attrs := []xmlw.Attr{
			{Key: "style:name", Value: s.Name},
			{Key: "style:family", Value: s.Family.String()},
		}
		if s.DisplayName != "" {
			attrs = append(attrs, xmlw.Attr{Key: "style:display-name", Value: s.DisplayName})
		}
		if s.Parent != "" {
			attrs = append(attrs, xmlw.Attr{Key: "style:parent-style-name", Value: s.Parent})
		}
		if s.DataStyle != "" {
			attrs = append(attrs, xmlw.Attr{Key: "style:data-style-name", Value: s.DataStyle})
		}
		x.Start("style:style", attrs...)

		if s.HasCellProps() {
			x.Empty("style:table-cell-properties", sortedAttrs(s.CellProps())...)
		}
		if s.HasColumnProps() {
			x.Empty("style:table-column-properties", sortedAttrs(s.ColumnProps())...)
		}
		if s.HasRowProps() {
			x.Empty("style:table-row-properties", sortedAttrs(s.RowProps())...)
		}
		if s.HasTableProps() {
			x.Empty("style:table-properties", sortedAttrs(s.TableProps())...)
		}
		if s.HasParagraphProps() {
			x.Empty("style:paragraph-properties", sortedAttrs(s.ParagraphProps())...)
		}
		if s.HasTextProps() {
			x.Empty("style:text-properties", sortedAttrs(s.TextProps())...)
		}

		x.End("style:style")
	}
}

func writeValueStyles(x *xmlw.Writer, book *model.Workbook, origin format.Origin) {
	for _, name := range book.FormatNames() {
		f := book.Format(name)
		if !originMatches(f.Origin, origin) {
			continue
		}

		attrs := []xmlw.Attr{{Key: "style:name", Value: f.Name}}
		if !f.TruncateOnOverflow {
			attrs = append(attrs, xmlw.Attr{Key: "number:truncate-on-overflow", Value: "false"})
		}
		attrs = append(attrs, sortedAttrs(f.Props())...)

		tag := valueStyleTag(f.Type)
		x.Start(tag, attrs...)

		for _, p := range f.Parts {
			pt := partTag(p.Kind)
			if pt == "" {
				continue
			}
			if p.Kind == format.PartText || p.Kind == format.PartCurrencySymbol {
				x.Start(pt, sortedAttrs(p.Props())...)
				x.Text(p.Content)
				x.End(pt)
			} else {
				x.Empty(pt, sortedAttrs(p.Props())...)
			}
		}

		x.End(tag)
	}
}

// sortedAttrs renders a property bag as attributes in key order, keeping
// output deterministic.
func sortedAttrs(props map[string]string) []xmlw.Attr {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]xmlw.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, xmlw.Attr{Key: k, Value: props[k]})
	}
	return attrs
}
