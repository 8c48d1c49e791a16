package ods

import (
	"encoding/xml"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/value"
)

// Namespace URIs used by ODS document members. The parser matches elements
// and attributes by resolved URI, never by prefix.
const (
	nsOffice   = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsTable    = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsText     = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsStyle    = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	nsNumber   = "urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"
	nsMeta     = "urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
	nsManifest = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	nsFo       = "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
	nsSvg      = "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
	nsOf       = "urn:oasis:names:tc:opendocument:xmlns:of:1.2"
	nsDr3d     = "urn:oasis:names:tc:opendocument:xmlns:dr3d:1.0"
	nsChart    = "urn:oasis:names:tc:opendocument:xmlns:chart:1.0"
	nsForm     = "urn:oasis:names:tc:opendocument:xmlns:form:1.0"
	nsScript   = "urn:oasis:names:tc:opendocument:xmlns:script:1.0"
	nsPresent  = "urn:oasis:names:tc:opendocument:xmlns:presentation:1.0"
	nsDraw     = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	nsCalcext  = "urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0"
	nsLoext    = "urn:org:documentfoundation:names:experimental:office:xmlns:loext:1.0"
	nsField    = "urn:openoffice:names:experimental:ooo-ms-interop:xmlns:field:1.0"
	nsXlink    = "http://www.w3.org/1999/xlink"
	nsDc       = "http://purl.org/dc/elements/1.1/"
)

// The document media type, also the content of the mimetype member.
const mimetypeSpreadsheet = "application/vnd.oasis.opendocument.spreadsheet"

// prefixForURI maps resolved namespace URIs back to the conventional wire
// prefixes, so attributes collected into opaque property bags keep the keys
// they had on disk.
var prefixForURI = map[string]string{
	nsOffice:  "office",
	nsTable:   "table",
	nsText:    "text",
	nsStyle:   "style",
	nsNumber:  "number",
	nsMeta:    "meta",
	nsFo:      "fo",
	nsSvg:     "svg",
	nsOf:      "of",
	nsDr3d:    "dr3d",
	nsChart:   "chart",
	nsForm:    "form",
	nsScript:  "script",
	nsPresent: "presentation",
	nsDraw:    "draw",
	nsCalcext: "calcext",
	nsLoext:   "loext",
	nsField:   "field",
	nsXlink:   "xlink",
	nsDc:      "dc",
}

// wireKey renders an attribute or element name in prefix:local form. Names
// from unmapped namespaces keep just their local part.
func wireKey(name xml.Name) string {
	if p, ok := prefixForURI[name.Space]; ok {
		return p + ":" + name.Local
	}
	return name.Local
}

func isElem(name xml.Name, space, local string) bool {
	return name.Space == space && name.Local == local
}

// partElements maps the local names of number:* part elements to part kinds.
// style:text and style:map live in the style namespace and are matched
// separately.
var partElements = map[string]format.PartKind{
	"boolean":           format.PartBoolean,
	"number":            format.PartNumber,
	"scientific-number": format.PartScientific,
	"currency-symbol":   format.PartCurrencySymbol,
	"day":               format.PartDay,
	"month":             format.PartMonth,
	"year":              format.PartYear,
	"era":               format.PartEra,
	"day-of-week":       format.PartDayOfWeek,
	"week-of-year":      format.PartWeekOfYear,
	"quarter":           format.PartQuarter,
	"hours":             format.PartHours,
	"minutes":           format.PartMinutes,
	"seconds":           format.PartSeconds,
	"fraction":          format.PartFraction,
	"am-pm":             format.PartAmPm,
	"embedded-text":     format.PartEmbeddedText,
	"text":              format.PartText,
	"text-content":      format.PartTextContent,
}

// partTag returns the wire element name for a part kind.
func partTag(k format.PartKind) string {
	switch k {
	case format.PartBoolean:
		return "number:boolean"
	case format.PartNumber:
		return "number:number"
	case format.PartScientific:
		return "number:scientific-number"
	case format.PartCurrencySymbol:
		return "number:currency-symbol"
	case format.PartDay:
		return "number:day"
	case format.PartMonth:
		return "number:month"
	case format.PartYear:
		return "number:year"
	case format.PartEra:
		return "number:era"
	case format.PartDayOfWeek:
		return "number:day-of-week"
	case format.PartWeekOfYear:
		return "number:week-of-year"
	case format.PartQuarter:
		return "number:quarter"
	case format.PartHours:
		return "number:hours"
	case format.PartMinutes:
		return "number:minutes"
	case format.PartSeconds:
		return "number:seconds"
	case format.PartFraction:
		return "number:fraction"
	case format.PartAmPm:
		return "number:am-pm"
	case format.PartEmbeddedText:
		return "number:embedded-text"
	case format.PartText:
		return "number:text"
	case format.PartTextContent:
		return "number:text-content"
	case format.PartStyleText:
		return "style:text"
	case format.PartStyleMap:
		return "style:map"
	default:
		return ""
	}
}

// valueStyleElements maps the local names of number:*-style format elements
// to the value type they target.
var valueStyleElements = map[string]value.Type{
	"boolean-style":    value.TypeBoolean,
	"number-style":     value.TypeNumber,
	"text-style":       value.TypeText,
	"time-style":       value.TypeDuration,
	"percentage-style": value.TypePercentage,
	"currency-style":   value.TypeCurrency,
	"date-style":       value.TypeDateTime,
}

// valueStyleTag returns the wire element name of the format style targeting
// the given value type.
func valueStyleTag(t value.Type) string {
	switch t {
	case value.TypeBoolean:
		return "number:boolean-style"
	case value.TypeNumber:
		return "number:number-style"
	case value.TypeText:
		return "number:text-style"
	case value.TypeDuration:
		return "number:time-style"
	case value.TypePercentage:
		return "number:percentage-style"
	case value.TypeCurrency:
		return "number:currency-style"
	case value.TypeDateTime:
		return "number:date-style"
	default:
		return "number:number-style"
	}
}
