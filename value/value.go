// Package value defines the typed cell-value model for ODS spreadsheets.
//
// A cell value is one of seven semantic kinds: text, number, percentage,
// currency, boolean, date-time, or time duration. Each kind has its own wire
// encoding in content.xml (a value-type marker plus typed attributes) and its
// own fallback textual rendering. This package converts between the in-memory
// [Value] and those wire forms; locale-aware display rendering lives in the
// format package.
package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type identifies the semantic kind of a cell value.
type Type int

const (
	// TypeEmpty indicates the absence of a value.
	TypeEmpty Type = iota
	// TypeText indicates a text value.
	TypeText
	// TypeNumber indicates a plain numeric value.
	TypeNumber
	// TypePercentage indicates a percentage, stored as a fraction (0.25 = 25%).
	TypePercentage
	// TypeCurrency indicates a monetary amount with a currency code.
	TypeCurrency
	// TypeBoolean indicates a boolean value.
	TypeBoolean
	// TypeDateTime indicates a calendar timestamp.
	TypeDateTime
	// TypeDuration indicates a signed time duration.
	TypeDuration
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeText:
		return "text"
	case TypeNumber:
		return "number"
	case TypePercentage:
		return "percentage"
	case TypeCurrency:
		return "currency"
	case TypeBoolean:
		return "boolean"
	case TypeDateTime:
		return "datetime"
	case TypeDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Wire returns the office:value-type marker for the type, or "" for TypeEmpty.
func (t Type) Wire() string {
	switch t {
	case TypeText:
		return "string"
	case TypeNumber:
		return "float"
	case TypePercentage:
		return "percentage"
	case TypeCurrency:
		return "currency"
	case TypeBoolean:
		return "boolean"
	case TypeDateTime:
		return "date"
	case TypeDuration:
		return "time"
	default:
		return ""
	}
}

// TypeFromWire maps an office:value-type marker to a Type.
func TypeFromWire(s string) (Type, error) {
	switch s {
	case "string":
		return TypeText, nil
	case "float":
		return TypeNumber, nil
	case "percentage":
		return TypePercentage, nil
	case "currency":
		return TypeCurrency, nil
	case "boolean":
		return TypeBoolean, nil
	case "date":
		return TypeDateTime, nil
	case "time":
		return TypeDuration, nil
	default:
		return TypeEmpty, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Errors reported while converting wire forms to values.
var (
	ErrUnknownType     = errors.New("unknown cell value-type")
	ErrMissingValue    = errors.New("cell declares a value-type but carries no value attribute")
	ErrMissingCurrency = errors.New("cell of type currency carries no currency code")
	ErrDurationRange   = errors.New("time duration out of range")
	ErrWrongType       = errors.New("value has a different type")
)

// Value is a tagged union holding exactly one of the seven value kinds.
// The zero Value has TypeEmpty and represents an absent cell value.
type Value struct {
	typ  Type
	text string
	num  float64
	cur  string
	b    bool
	ts   time.Time
	dur  time.Duration
}

// Text returns a text value.
func Text(s string) Value { return Value{typ: TypeText, text: s} }

// Number returns a plain numeric value.
func Number(f float64) Value { return Value{typ: TypeNumber, num: f} }

// Percentage returns a percentage value. The argument is the fraction,
// so Percentage(0.25) displays as 25%.
func Percentage(f float64) Value { return Value{typ: TypePercentage, num: f} }

// Currency returns a monetary value with its currency code (e.g. "EUR").
func Currency(code string, amount float64) Value {
	return Value{typ: TypeCurrency, cur: code, num: amount}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value { return Value{typ: TypeBoolean, b: b} }

// DateTime returns a calendar timestamp value.
func DateTime(t time.Time) Value { return Value{typ: TypeDateTime, ts: t} }

// Duration returns a time-duration value.
func Duration(d time.Duration) Value { return Value{typ: TypeDuration, dur: d} }

// Type returns the value's kind.
func (v Value) Type() Type { return v.typ }

// IsEmpty reports whether the value is absent.
func (v Value) IsEmpty() bool { return v.typ == TypeEmpty }

// AsText returns the text content. It fails for non-text values.
func (v Value) AsText() (string, error) {
	if v.typ != TypeText {
		return "", fmt.Errorf("%w: have %s, want text", ErrWrongType, v.typ)
	}
	return v.text, nil
}

// AsFloat returns the numeric magnitude of a number, percentage, or
// currency value.
func (v Value) AsFloat() (float64, error) {
	switch v.typ {
	case TypeNumber, TypePercentage, TypeCurrency:
		return v.num, nil
	}
	return 0, fmt.Errorf("%w: have %s, want numeric", ErrWrongType, v.typ)
}

// AsBool returns the boolean content. It fails for non-boolean values.
func (v Value) AsBool() (bool, error) {
	if v.typ != TypeBoolean {
		return false, fmt.Errorf("%w: have %s, want boolean", ErrWrongType, v.typ)
	}
	return v.b, nil
}

// AsTime returns the timestamp content. It fails for non-datetime values.
func (v Value) AsTime() (time.Time, error) {
	if v.typ != TypeDateTime {
		return time.Time{}, fmt.Errorf("%w: have %s, want datetime", ErrWrongType, v.typ)
	}
	return v.ts, nil
}

// AsDuration returns the duration content. It fails for non-duration values.
func (v Value) AsDuration() (time.Duration, error) {
	if v.typ != TypeDuration {
		return 0, fmt.Errorf("%w: have %s, want duration", ErrWrongType, v.typ)
	}
	return v.dur, nil
}

// CurrencyCode returns the currency code of a currency value, or "".
func (v Value) CurrencyCode() string { return v.cur }

// String returns the built-in minimal textual representation of the value,
// used as display text when no value format is resolvable.
func (v Value) String() string {
	switch v.typ {
	case TypeText:
		return v.text
	case TypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypePercentage:
		return strconv.FormatFloat(v.num*100, 'f', -1, 64)
	case TypeCurrency:
		return v.cur + " " + strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	case TypeDateTime:
		return v.ts.Format("02.01.2006")
	case TypeDuration:
		h, m, s, ns := splitDuration(v.dur)
		return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ns/int64(time.Millisecond))
	default:
		return ""
	}
}

// Parse converts the wire tuple of a table-cell into a Value. valueAttr is
// the typed value attribute (office:value, office:date-value, ...), content
// the element's text content, and currency the office:currency attribute.
//
// A declared type with no value attribute is a format error, never a
// silently-defaulted value.
func Parse(t Type, valueAttr, content, currency string) (Value, error) {
	switch t {
	case TypeText:
		return Text(content), nil
	case TypeNumber:
		f, err := parseFloat(t, valueAttr)
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil
	case TypePercentage:
		f, err := parseFloat(t, valueAttr)
		if err != nil {
			return Value{}, err
		}
		return Percentage(f), nil
	case TypeCurrency:
		f, err := parseFloat(t, valueAttr)
		if err != nil {
			return Value{}, err
		}
		if currency == "" {
			return Value{}, ErrMissingCurrency
		}
		return Currency(currency, f), nil
	case TypeBoolean:
		if valueAttr == "" {
			return Value{}, fmt.Errorf("%w (type %s)", ErrMissingValue, t)
		}
		return Boolean(valueAttr == "true"), nil
	case TypeDateTime:
		ts, err := parseDateTime(valueAttr)
		if err != nil {
			return Value{}, err
		}
		return DateTime(ts), nil
	case TypeDuration:
		d, err := parseDuration(valueAttr)
		if err != nil {
			return Value{}, err
		}
		return Duration(d), nil
	default:
		return Value{}, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
}

func parseFloat(t Type, s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w (type %s)", ErrMissingValue, t)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s value: %w", t, err)
	}
	return f, nil
}

// parseDateTime decodes office:date-value. A 10-character value is a plain
// date (time defaults to midnight); anything else is a full timestamp.
// Length dispatch, not format probing, selects which.
func parseDateTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w (type datetime)", ErrMissingValue)
	}
	if len(s) == 10 {
		ts, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date value: %w", err)
		}
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02T15:04:05.999999999", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing datetime value: %w", err)
	}
	return ts, nil
}

// parseDuration decodes the PT{h}H{m}M{s}.{frac}S subset of ISO-8601 used by
// office:time-value with a single left-to-right digit-accumulation scan:
// digits accumulate into hours until an H marker, then minutes until M, then
// seconds until a dot, then a fractional accumulator until S. The fraction is
// right-padded to nanosecond precision. An optional leading sign negates the
// whole interval. The grammar is a small fixed subset (no days/months/years),
// so a general ISO-8601 parser is not warranted.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("%w (type duration)", ErrMissingValue)
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}

	var hours, mins, secs, nanos int64
	var nanoDigits int
	var haveHours, haveMins, haveSecs bool

	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			d := int64(c - '0')
			switch {
			case !haveHours:
				hours = hours*10 + d
			case !haveMins:
				mins = mins*10 + d
			case !haveSecs:
				secs = secs*10 + d
			default:
				nanos = nanos*10 + d
				nanoDigits++
			}
		case c == 'H':
			haveHours = true
		case c == 'M':
			haveMins = true
		case c == '.':
			haveSecs = true
		default:
			// P, T, S, and anything unrecognized carry no digits.
		}
	}

	for nanoDigits < 9 {
		nanos *= 10
		nanoDigits++
	}

	total := hours*3600 + mins*60 + secs
	if total > int64(maxDuration/time.Second) {
		return 0, fmt.Errorf("%w: %s", ErrDurationRange, s)
	}
	d := time.Duration(total)*time.Second + time.Duration(nanos)
	if neg {
		d = -d
	}
	return d, nil
}

const maxDuration = time.Duration(1<<63 - 1)

// WireAttr is a typed cell attribute produced by Encode.
type WireAttr struct {
	Name  string
	Value string
}

// Encode derives the wire value-type marker, the typed cell attributes, and
// the fallback display text for the value. It is the inverse of Parse.
// An empty value yields no marker and no attributes.
func (v Value) Encode() (wireType string, attrs []WireAttr, display string) {
	switch v.typ {
	case TypeEmpty:
		return "", nil, ""
	case TypeText:
		return "string", nil, v.text
	case TypeNumber:
		return "float", []WireAttr{
			{"office:value", strconv.FormatFloat(v.num, 'f', -1, 64)},
		}, v.String()
	case TypePercentage:
		return "percentage", []WireAttr{
			{"office:value", strconv.FormatFloat(v.num, 'f', -1, 64)},
		}, v.String()
	case TypeCurrency:
		return "currency", []WireAttr{
			{"office:currency", v.cur},
			{"office:value", strconv.FormatFloat(v.num, 'f', -1, 64)},
		}, v.String()
	case TypeBoolean:
		return "boolean", []WireAttr{
			{"office:boolean-value", strconv.FormatBool(v.b)},
		}, v.String()
	case TypeDateTime:
		return "date", []WireAttr{
			{"office:date-value", v.ts.Format("2006-01-02T15:04:05.999999999")},
		}, v.String()
	case TypeDuration:
		return "time", []WireAttr{
			{"office:time-value", formatDuration(v.dur)},
		}, v.String()
	default:
		return "", nil, ""
	}
}

// formatDuration encodes a duration as PT{h}H{m}M{s}.{frac}S. The fraction
// is always written with nine digits so nanosecond precision survives the
// right-padding rule applied on decode.
func formatDuration(d time.Duration) string {
	var sb strings.Builder
	if d < 0 {
		sb.WriteString("-")
		d = -d
	}
	h, m, s, ns := splitDuration(d)
	fmt.Fprintf(&sb, "PT%dH%dM%d.%09dS", h, m, s, ns)
	return sb.String()
}

func splitDuration(d time.Duration) (h, m, s, ns int64) {
	h = int64(d / time.Hour)
	m = int64(d/time.Minute) % 60
	s = int64(d/time.Second) % 60
	ns = int64(d % time.Second)
	return h, m, s, ns
}
