// Package format models ODS value formats: named, ordered sequences of
// rendering directives that convert a typed cell value into display text.
//
// A [ValueFormat] corresponds to a number:*-style element in content.xml and
// holds an ordered list of [Part]s (number:day, number:text, ...). Part
// properties are kept as a generic attribute map mirroring the wire form,
// with typed accessors for the properties the renderer interprets.
package format

import (
	"strconv"

	"github.com/tsawler/ods/value"
	"golang.org/x/text/language"
)

// Origin records where a format or style definition came from.
type Origin int

const (
	// OriginDefault marks a built-in default (e.g. from the locale registry).
	OriginDefault Origin = iota
	// OriginContent marks a definition loaded from content.xml.
	OriginContent
	// OriginStyles marks a definition loaded from styles.xml.
	OriginStyles
)

// PartKind identifies a format directive.
type PartKind int

const (
	PartBoolean PartKind = iota
	PartNumber
	PartScientific
	PartCurrencySymbol
	PartDay
	PartMonth
	PartYear
	PartEra
	PartDayOfWeek
	PartWeekOfYear
	PartQuarter
	PartHours
	PartMinutes
	PartSeconds
	PartFraction
	PartAmPm
	PartEmbeddedText
	PartText
	PartTextContent
	PartStyleText
	PartStyleMap
)

// String returns the string representation of the part kind.
func (k PartKind) String() string {
	switch k {
	case PartBoolean:
		return "boolean"
	case PartNumber:
		return "number"
	case PartScientific:
		return "scientific"
	case PartCurrencySymbol:
		return "currency-symbol"
	case PartDay:
		return "day"
	case PartMonth:
		return "month"
	case PartYear:
		return "year"
	case PartEra:
		return "era"
	case PartDayOfWeek:
		return "day-of-week"
	case PartWeekOfYear:
		return "week-of-year"
	case PartQuarter:
		return "quarter"
	case PartHours:
		return "hours"
	case PartMinutes:
		return "minutes"
	case PartSeconds:
		return "seconds"
	case PartFraction:
		return "fraction"
	case PartAmPm:
		return "am-pm"
	case PartEmbeddedText:
		return "embedded-text"
	case PartText:
		return "text"
	case PartTextContent:
		return "text-content"
	case PartStyleText:
		return "style-text"
	case PartStyleMap:
		return "style-map"
	default:
		return "unknown"
	}
}

// Property keys interpreted by the renderer. Unrecognized keys are carried
// verbatim so unknown attributes survive a round trip.
const (
	propDecimalPlaces    = "number:decimal-places"
	propMinDecimalPlaces = "number:min-decimal-places"
	propGrouping         = "number:grouping"
	propStyle            = "number:style"
	propDecimalSep       = "loext:decimal-separator"
	propGroupSep         = "loext:group-separator"
)

// Part is a single format directive. Order within a ValueFormat is
// significant: parts render and concatenate left to right.
type Part struct {
	Kind    PartKind
	Content string // literal text and currency-symbol parts only
	props   map[string]string
}

// NewPart returns a part of the given kind.
func NewPart(kind PartKind) *Part {
	return &Part{Kind: kind}
}

// SetProp stores a wire attribute on the part.
func (p *Part) SetProp(key, val string) {
	if p.props == nil {
		p.props = make(map[string]string)
	}
	p.props[key] = val
}

// Prop returns the wire attribute with the given key, or "".
func (p *Part) Prop(key string) string { return p.props[key] }

// Props returns the part's attribute map. It may be nil.
func (p *Part) Props() map[string]string { return p.props }

// DecimalPlaces returns the configured decimal-place count, or -1 when the
// part does not constrain it.
func (p *Part) DecimalPlaces() int {
	n, err := strconv.Atoi(p.props[propDecimalPlaces])
	if err != nil {
		return -1
	}
	return n
}

// MinDecimalPlaces returns the minimum decimal-place count, or -1.
func (p *Part) MinDecimalPlaces() int {
	n, err := strconv.Atoi(p.props[propMinDecimalPlaces])
	if err != nil {
		return -1
	}
	return n
}

// Grouping reports whether thousands grouping is enabled.
func (p *Part) Grouping() bool { return p.props[propGrouping] == "true" }

// Long reports whether the part uses the long (zero-padded) style.
func (p *Part) Long() bool { return p.props[propStyle] == "long" }

// DecimalSeparator returns the decimal separator, defaulting to ".".
func (p *Part) DecimalSeparator() string {
	if s := p.props[propDecimalSep]; s != "" {
		return s
	}
	return "."
}

// GroupSeparator returns the thousands separator, defaulting to ",".
func (p *Part) GroupSeparator() string {
	if s := p.props[propGroupSep]; s != "" {
		return s
	}
	return ","
}

// ValueFormat is a named, ordered sequence of format parts targeting one
// value type.
type ValueFormat struct {
	Name   string
	Type   value.Type
	Origin Origin
	Locale language.Tag

	// TruncateOnOverflow distinguishes wrapping time-of-day formats (true)
	// from accumulating duration formats (false). Defaults to true.
	TruncateOnOverflow bool

	Parts []*Part

	props map[string]string
}

// New returns an empty format for the given value type.
func New(name string, t value.Type) *ValueFormat {
	return &ValueFormat{Name: name, Type: t, TruncateOnOverflow: true}
}

// NewLocalized returns an empty format owned by a locale.
func NewLocalized(name string, tag language.Tag, t value.Type) *ValueFormat {
	f := New(name, t)
	f.Locale = tag
	return f
}

// SetProp stores a wire attribute of the enclosing number:*-style element.
func (f *ValueFormat) SetProp(key, val string) {
	if f.props == nil {
		f.props = make(map[string]string)
	}
	f.props[key] = val
}

// Prop returns a wire attribute of the enclosing style element, or "".
func (f *ValueFormat) Prop(key string) string { return f.props[key] }

// Props returns the format's attribute map. It may be nil.
func (f *ValueFormat) Props() map[string]string { return f.props }

// AppendPart appends a part to the format.
func (f *ValueFormat) AppendPart(p *Part) *ValueFormat {
	f.Parts = append(f.Parts, p)
	return f
}

// Literal appends a literal text part.
func (f *ValueFormat) Literal(s string) *ValueFormat {
	p := NewPart(PartText)
	p.Content = s
	return f.AppendPart(p)
}

// Boolean appends a boolean part.
func (f *ValueFormat) Boolean() *ValueFormat {
	return f.AppendPart(NewPart(PartBoolean))
}

// TextContent appends a text-content part.
func (f *ValueFormat) TextContent() *ValueFormat {
	return f.AppendPart(NewPart(PartTextContent))
}

// AmPm appends a 12-hour-cycle indicator part.
func (f *ValueFormat) AmPm() *ValueFormat {
	return f.AppendPart(NewPart(PartAmPm))
}

// CurrencySymbol appends a currency-symbol part with the given symbol.
func (f *ValueFormat) CurrencySymbol(symbol string) *ValueFormat {
	p := NewPart(PartCurrencySymbol)
	p.Content = symbol
	return f.AppendPart(p)
}

// PartBuilder configures a pending part; Push attaches it to its format.
type PartBuilder struct {
	f *ValueFormat
	p *Part
}

// Part starts a builder for a part of the given kind.
func (f *ValueFormat) Part(kind PartKind) *PartBuilder {
	return &PartBuilder{f: f, p: NewPart(kind)}
}

// Number starts a builder for a number part.
func (f *ValueFormat) Number() *PartBuilder { return f.Part(PartNumber) }

// Scientific starts a builder for a scientific-number part.
func (f *ValueFormat) Scientific() *PartBuilder { return f.Part(PartScientific) }

// Day starts a builder for a day part.
func (f *ValueFormat) Day() *PartBuilder { return f.Part(PartDay) }

// Month starts a builder for a month part.
func (f *ValueFormat) Month() *PartBuilder { return f.Part(PartMonth) }

// Year starts a builder for a year part.
func (f *ValueFormat) Year() *PartBuilder { return f.Part(PartYear) }

// Hours starts a builder for an hours part.
func (f *ValueFormat) Hours() *PartBuilder { return f.Part(PartHours) }

// Minutes starts a builder for a minutes part.
func (f *ValueFormat) Minutes() *PartBuilder { return f.Part(PartMinutes) }

// Seconds starts a builder for a seconds part.
func (f *ValueFormat) Seconds() *PartBuilder { return f.Part(PartSeconds) }

// DecimalPlaces sets the decimal-place count.
func (b *PartBuilder) DecimalPlaces(n int) *PartBuilder {
	b.p.SetProp(propDecimalPlaces, strconv.Itoa(n))
	return b
}

// MinDecimalPlaces sets the minimum decimal-place count kept when trimming.
func (b *PartBuilder) MinDecimalPlaces(n int) *PartBuilder {
	b.p.SetProp(propMinDecimalPlaces, strconv.Itoa(n))
	return b
}

// Grouping enables thousands grouping.
func (b *PartBuilder) Grouping() *PartBuilder {
	b.p.SetProp(propGrouping, "true")
	return b
}

// Long selects the long (zero-padded) style.
func (b *PartBuilder) Long() *PartBuilder {
	b.p.SetProp(propStyle, "long")
	return b
}

// Short selects the short (unpadded) style.
func (b *PartBuilder) Short() *PartBuilder {
	b.p.SetProp(propStyle, "short")
	return b
}

// Separators overrides the decimal and thousands separators.
func (b *PartBuilder) Separators(decimal, group string) *PartBuilder {
	b.p.SetProp(propDecimalSep, decimal)
	b.p.SetProp(propGroupSep, group)
	return b
}

// Push attaches the part to its format and returns the format.
func (b *PartBuilder) Push() *ValueFormat {
	return b.f.AppendPart(b.p)
}
