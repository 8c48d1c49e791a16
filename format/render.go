package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/ods/value"
)

// Render converts a value into display text by concatenating the rendering
// of each format part in sequence. It is deterministic and pure.
//
// A format whose value type does not match the supplied value is a caller
// contract violation: the caller resolves the correct format via the cell's
// style or the locale default before rendering. In that case Render falls
// back to the value's plain string representation and never coerces types.
func Render(f *ValueFormat, v value.Value) string {
	if f == nil || !matches(f.Type, v.Type()) {
		return v.String()
	}

	// Hours render on a 12-hour cycle only when an am-pm part is present.
	twelveHour := false
	for _, p := range f.Parts {
		if p.Kind == PartAmPm {
			twelveHour = true
		}
	}

	var sb strings.Builder
	for _, p := range f.Parts {
		sb.WriteString(renderPart(f, p, v, twelveHour))
	}
	return sb.String()
}

func matches(ft, vt value.Type) bool {
	if ft == vt {
		return true
	}
	// Time-of-day formats target datetime values; duration formats may be
	// applied to datetime-typed styles read back from a document.
	return (ft == value.TypeDateTime && vt == value.TypeDuration) ||
		(ft == value.TypeDuration && vt == value.TypeDateTime)
}

func renderPart(f *ValueFormat, p *Part, v value.Value, twelveHour bool) string {
	switch p.Kind {
	case PartText, PartStyleText, PartCurrencySymbol:
		return p.Content

	case PartTextContent:
		s, err := v.AsText()
		if err != nil {
			return v.String()
		}
		return s

	case PartBoolean:
		b, err := v.AsBool()
		if err != nil {
			return ""
		}
		return strconv.FormatBool(b)

	case PartNumber:
		return renderNumber(p, magnitude(v))

	case PartScientific:
		places := p.DecimalPlaces()
		if places < 0 {
			places = 2
		}
		return strconv.FormatFloat(magnitude(v), 'E', places, 64)

	case PartDay:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		return pad2(ts.Day(), p.Long())

	case PartMonth:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		return pad2(int(ts.Month()), p.Long())

	case PartYear:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		if p.Long() {
			return fmt.Sprintf("%04d", ts.Year())
		}
		return fmt.Sprintf("%02d", ts.Year()%100)

	case PartHours:
		return renderHours(f, p, v, twelveHour)

	case PartMinutes:
		if d, err := v.AsDuration(); err == nil {
			return pad2(int(d/time.Minute)%60, p.Long())
		}
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		return pad2(ts.Minute(), p.Long())

	case PartSeconds:
		if d, err := v.AsDuration(); err == nil {
			return pad2(int(d/time.Second)%60, p.Long())
		}
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		return pad2(ts.Second(), p.Long())

	case PartAmPm:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		if ts.Hour() < 12 {
			return "AM"
		}
		return "PM"

	case PartWeekOfYear:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		_, week := ts.ISOWeek()
		return strconv.Itoa(week)

	case PartQuarter:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		return strconv.Itoa((int(ts.Month())-1)/3 + 1)

	case PartDayOfWeek:
		ts, err := v.AsTime()
		if err != nil {
			return ""
		}
		return ts.Weekday().String()

	default:
		// Era, Fraction, EmbeddedText, StyleMap carry no renderable content.
		return ""
	}
}

// renderHours renders the hours field. Duration formats with
// TruncateOnOverflow disabled accumulate past 24 instead of wrapping.
func renderHours(f *ValueFormat, p *Part, v value.Value, twelveHour bool) string {
	if d, err := v.AsDuration(); err == nil {
		h := int(d / time.Hour)
		if f.TruncateOnOverflow {
			h %= 24
		}
		return pad2(h, p.Long())
	}
	ts, err := v.AsTime()
	if err != nil {
		return ""
	}
	h := ts.Hour()
	if twelveHour {
		h %= 12
		if h == 0 {
			h = 12
		}
	}
	return pad2(h, p.Long())
}

// magnitude is the numeric quantity a number part renders. Percentages are
// stored as fractions and display scaled by 100.
func magnitude(v value.Value) float64 {
	f, err := v.AsFloat()
	if err != nil {
		return 0
	}
	if v.Type() == value.TypePercentage {
		return f * 100
	}
	return f
}

func renderNumber(p *Part, x float64) string {
	places := p.DecimalPlaces()
	s := strconv.FormatFloat(x, 'f', places, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	// Trim trailing zeros down to the minimum decimal count, if one is set.
	if min := p.MinDecimalPlaces(); min >= 0 && min < len(fracPart) {
		trimmed := strings.TrimRight(fracPart, "0")
		if len(trimmed) < min {
			trimmed = fracPart[:min]
		}
		fracPart = trimmed
	}

	if p.Grouping() {
		intPart = group(intPart, p.GroupSeparator())
	}

	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}
	sb.WriteString(intPart)
	if fracPart != "" {
		sb.WriteString(p.DecimalSeparator())
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// group inserts the separator every three digits, right to left.
func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

func pad2(n int, long bool) string {
	if long {
		return fmt.Sprintf("%02d", n)
	}
	return strconv.Itoa(n)
}
