package ods

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/model"
	"github.com/tsawler/ods/value"
)

// Read opens an ODS file and decodes content.xml into a workbook. The
// returned workbook remembers its path, so a later Write to the same path
// preserves the document members Read does not decode.
func Read(path string) (*model.Workbook, error) {
	if err := sniffContainer(path); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, wrapError(KindContainer, "opening ZIP archive", err)
	}
	defer zr.Close()

	var content *zip.File
	for _, f := range zr.File {
		if f.Name == "content.xml" {
			content = f
			break
		}
	}
	if content == nil {
		return nil, newError(KindContainer, "missing content.xml member")
	}

	rc, err := content.Open()
	if err != nil {
		return nil, wrapError(KindContainer, "opening content.xml member", err)
	}
	defer rc.Close()

	book, err := readContent(rc)
	if err != nil {
		return nil, err
	}
	book.Path = path

	return book, nil
}

// readContent decodes a content.xml stream into a workbook. It is a single
// forward pass: elements it does not recognize are skipped, never errors.
func readContent(r io.Reader) (*model.Workbook, error) {
	dec := xml.NewDecoder(r)
	book := model.NewWorkbook()

	var sheet *model.Sheet

	// Cell cursor within the current sheet. Rows carry a repeat count;
	// in practice only empty rows ever repeat, but the style still has to
	// cover the whole range.
	row, col, tcol := 0, 0, 0
	rowRepeat := 1
	rowStyle := ""

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapError(KindXML, "decoding content.xml", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isElem(t.Name, nsTable, "table"):
				sheet = model.NewSheet("")
				row, col, tcol = 0, 0, 0
				for _, a := range t.Attr {
					switch {
					case isElem(a.Name, nsTable, "name"):
						sheet.Name = a.Value
					case isElem(a.Name, nsTable, "style-name"):
						sheet.Style = a.Value
					}
				}

			case isElem(t.Name, nsTable, "table-column") && sheet != nil:
				tcol, err = readColumn(t, sheet, tcol)
				if err != nil {
					return nil, err
				}

			case isElem(t.Name, nsTable, "table-row"):
				rowRepeat, rowStyle, err = readRowAttrs(t)
				if err != nil {
					return nil, err
				}

			case isElem(t.Name, nsTable, "table-cell") && sheet != nil:
				col, err = readCell(dec, t, sheet, row, col)
				if err != nil {
					return nil, err
				}

			case isElem(t.Name, nsOffice, "font-face-decls"):
				if err := readFonts(dec, book); err != nil {
					return nil, err
				}

			case isElem(t.Name, nsOffice, "automatic-styles"):
				if err := readStyles(dec, book, t.Name); err != nil {
					return nil, err
				}
			}

		case xml.EndElement:
			switch {
			case isElem(t.Name, nsTable, "table"):
				if sheet != nil {
					book.AddSheet(sheet)
					sheet = nil
				}
				row, col = 0, 0

			case isElem(t.Name, nsTable, "table-row"):
				// A row style applies to every row the repeat covers.
				if rowStyle != "" && sheet != nil {
					for r := row; r < row+rowRepeat; r++ {
						sheet.SetRowStyle(r, rowStyle)
					}
				}
				row += rowRepeat
				col = 0
				rowRepeat = 1
				rowStyle = ""
			}
		}
	}

	return book, nil
}

func readRowAttrs(t xml.StartElement) (repeat int, style string, err error) {
	repeat = 1
	for _, a := range t.Attr {
		switch {
		case isElem(a.Name, nsTable, "number-rows-repeated"):
			repeat, err = strconv.Atoi(a.Value)
			if err != nil {
				return 0, "", wrapError(KindNumeric, "parsing row repeat count", err)
			}
		case isElem(a.Name, nsTable, "style-name"):
			style = a.Value
		}
	}
	return repeat, style, nil
}

// readColumn materializes one table-column declaration per covered index.
// Columns are never kept sparse: repeats expand eagerly.
func readColumn(t xml.StartElement, sheet *model.Sheet, tcol int) (int, error) {
	var column model.Column
	repeat := 1

	for _, a := range t.Attr {
		switch {
		case isElem(a.Name, nsTable, "style-name"):
			column.Style = a.Value
		case isElem(a.Name, nsTable, "number-columns-repeated"):
			n, err := strconv.Atoi(a.Value)
			if err != nil {
				return 0, wrapError(KindNumeric, "parsing column repeat count", err)
			}
			repeat = n
		case isElem(a.Name, nsTable, "default-cell-style-name"):
			column.DefaultCellStyle = a.Value
		}
	}

	for ; repeat > 0; repeat-- {
		c := column
		sheet.SetColumn(tcol, &c)
		tcol++
	}

	return tcol, nil
}

// readCell consumes one table-cell element, including its content, and
// returns the column cursor after the cell. A cell without a value type,
// style, or formula only advances the cursor; repeated cells that do carry
// one materialize at every covered position.
func readCell(dec *xml.Decoder, start xml.StartElement, sheet *model.Sheet, row, col int) (int, error) {
	repeat := 1
	var (
		haveType bool
		cellType value.Type
		valAttr  string
		currency string
		style    string
		formula  string
	)

	for _, a := range start.Attr {
		switch {
		case isElem(a.Name, nsTable, "number-columns-repeated"):
			n, err := strconv.Atoi(a.Value)
			if err != nil {
				return 0, wrapError(KindNumeric, "parsing cell repeat count", err)
			}
			repeat = n

		case isElem(a.Name, nsOffice, "value-type"):
			t, err := value.TypeFromWire(a.Value)
			if err != nil {
				return 0, wrapError(KindFormat, "decoding cell value-type", err)
			}
			haveType, cellType = true, t

		case isElem(a.Name, nsOffice, "value"),
			isElem(a.Name, nsOffice, "date-value"),
			isElem(a.Name, nsOffice, "time-value"),
			isElem(a.Name, nsOffice, "boolean-value"):
			valAttr = a.Value

		case isElem(a.Name, nsOffice, "currency"):
			currency = a.Value

		case isElem(a.Name, nsTable, "formula"):
			formula = a.Value

		case isElem(a.Name, nsTable, "style-name"):
			style = a.Value
		}
	}

	content, err := collectCellText(dec)
	if err != nil {
		return 0, wrapError(KindXML, "decoding table-cell", err)
	}

	if !haveType && style == "" && formula == "" {
		// Nothing worth keeping. Empty filler cells only move the cursor;
		// materializing them would defeat the sparse model.
		return col + repeat, nil
	}

	var v value.Value
	if haveType {
		v, err = value.Parse(cellType, valAttr, content, currency)
		if err != nil {
			return 0, wrapError(classifyValue(err), "decoding cell value", err)
		}
	}

	for ; repeat > 0; repeat-- {
		sheet.SetCell(row, col, &model.Cell{Value: v, Style: style, Formula: formula})
		col++
	}

	return col, nil
}

// collectCellText consumes tokens up to the cell's end tag and returns the
// character data found inside its text:p subtrees. Whitespace between the
// cell tag and its paragraphs is serializer indentation, not content, so
// text outside a paragraph is discarded and paragraph text kept verbatim.
func collectCellText(dec *xml.Decoder) (string, error) {
	var content strings.Builder
	depth := 0
	paraDepth := -1
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.CharData:
			if paraDepth >= 0 {
				content.Write(el)
			}
		case xml.StartElement:
			if paraDepth < 0 && isElem(el.Name, nsText, "p") {
				paraDepth = depth
			}
			depth++
		case xml.EndElement:
			if depth == 0 {
				return content.String(), nil
			}
			depth--
			if depth == paraDepth {
				paraDepth = -1
			}
		}
	}
}

// readFonts consumes an office:font-face-decls element. Every style:font-face
// becomes an opaque font declaration keyed by style:name.
func readFonts(dec *xml.Decoder, book *model.Workbook) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return wrapError(KindXML, "decoding font-face-decls", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !isElem(t.Name, nsStyle, "font-face") {
				continue
			}
			font := model.NewFontDecl("")
			font.Origin = format.OriginContent
			for _, a := range t.Attr {
				if isElem(a.Name, nsStyle, "name") {
					font.Name = a.Value
				} else {
					font.Props[wireKey(a.Name)] = a.Value
				}
			}
			book.AddFont(font)

		case xml.EndElement:
			if isElem(t.Name, nsOffice, "font-face-decls") {
				return nil
			}
		}
	}
}

// readStyles consumes an automatic-styles (or office styles) element,
// collecting style:style definitions and number:*-style value formats.
func readStyles(dec *xml.Decoder, book *model.Workbook, end xml.Name) error {
	origin := format.OriginContent
	if isElem(end, nsOffice, "styles") {
		origin = format.OriginStyles
	}

	var style *model.Style
	var vf *format.ValueFormat
	var part *format.Part

	for {
		tok, err := dec.Token()
		if err != nil {
			return wrapError(KindXML, "decoding styles", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isElem(t.Name, nsStyle, "style"):
				style = readStyleAttrs(t)
				style.Origin = origin

			case t.Name.Space == nsStyle && style != nil && strings.HasSuffix(t.Name.Local, "-properties"):
				copyStyleProps(t, style)

			case t.Name.Space == nsNumber && strings.HasSuffix(t.Name.Local, "-style"):
				vt, ok := valueStyleElements[t.Name.Local]
				if !ok {
					continue
				}
				vf = readValueStyleAttrs(t, vt)
				vf.Origin = origin

			case t.Name.Space == nsNumber && vf != nil:
				kind, ok := partElements[t.Name.Local]
				if !ok {
					continue
				}
				part = readPart(t, kind)

			case isElem(t.Name, nsStyle, "text") && vf != nil:
				part = readPart(t, format.PartStyleText)

			case isElem(t.Name, nsStyle, "map") && vf != nil:
				part = readPart(t, format.PartStyleMap)
			}

		case xml.CharData:
			// Literal text and currency symbols keep their element content.
			if part != nil && (part.Kind == format.PartText || part.Kind == format.PartCurrencySymbol) {
				part.Content += string(t)
			}

		case xml.EndElement:
			switch {
			case t.Name == end:
				return nil

			case isElem(t.Name, nsStyle, "style"):
				if style != nil {
					book.AddStyle(style)
					style = nil
				}

			case t.Name.Space == nsNumber && strings.HasSuffix(t.Name.Local, "-style"):
				if vf != nil {
					book.AddFormat(vf)
					vf = nil
				}

			case part != nil && (t.Name.Space == nsNumber ||
				isElem(t.Name, nsStyle, "text") || isElem(t.Name, nsStyle, "map")):
				if vf != nil {
					vf.AppendPart(part)
				}
				part = nil
			}
		}
	}
}

func readStyleAttrs(t xml.StartElement) *model.Style {
	s := &model.Style{}
	for _, a := range t.Attr {
		switch {
		case isElem(a.Name, nsStyle, "name"):
			s.Name = a.Value
		case isElem(a.Name, nsStyle, "family"):
			s.Family = model.FamilyFromWire(a.Value)
		case isElem(a.Name, nsStyle, "display-name"):
			s.DisplayName = a.Value
		case isElem(a.Name, nsStyle, "parent-style-name"):
			s.Parent = a.Value
		case isElem(a.Name, nsStyle, "data-style-name"):
			s.DataStyle = a.Value
		}
	}
	return s
}

// copyStyleProps routes a style:*-properties element into the matching
// opaque property bag.
func copyStyleProps(t xml.StartElement, s *model.Style) {
	var bag model.PropertyMap
	switch t.Name.Local {
	case "table-properties":
		bag = s.TableProps()
	case "table-column-properties":
		bag = s.ColumnProps()
	case "table-row-properties":
		bag = s.RowProps()
	case "table-cell-properties":
		bag = s.CellProps()
	case "paragraph-properties":
		bag = s.ParagraphProps()
	case "text-properties":
		bag = s.TextProps()
	default:
		return
	}
	for _, a := range t.Attr {
		bag[wireKey(a.Name)] = a.Value
	}
}

func readValueStyleAttrs(t xml.StartElement, vt value.Type) *format.ValueFormat {
	f := format.New("", vt)
	for _, a := range t.Attr {
		switch {
		case isElem(a.Name, nsStyle, "name"):
			f.Name = a.Value
		case isElem(a.Name, nsNumber, "truncate-on-overflow"):
			f.TruncateOnOverflow = a.Value != "false"
		default:
			f.SetProp(wireKey(a.Name), a.Value)
		}
	}
	return f
}

func readPart(t xml.StartElement, kind format.PartKind) *format.Part {
	p := format.NewPart(kind)
	for _, a := range t.Attr {
		p.SetProp(wireKey(a.Name), a.Value)
	}
	return p
}
