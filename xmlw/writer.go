// Package xmlw implements a minimal streaming writer for namespace-prefixed
// XML, used to emit the ODS document members.
//
// The standard library's encoding/xml encoder rewrites prefixed names like
// "table:table-cell" into synthetic namespace declarations, which office
// applications do not accept, so the writer emits prefixed names verbatim.
// Elements are written as events (Start, Empty, Text, End); the writer keeps
// no element stack beyond the nesting depth used for indentation.
package xmlw

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
)

// Attr is a single attribute on an element.
type Attr struct {
	Key   string
	Value string
}

// Writer writes XML events to an underlying stream.
//
// Errors are sticky: after the first write error all further calls are
// no-ops, and the error is reported by Flush or Err.
type Writer struct {
	w        *bufio.Writer
	indent   bool
	depth    int
	wroteAny bool
	inText   bool
	err      error
}

// New returns a Writer that emits XML without indentation.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// NewIndent returns a Writer that indents one space per nesting level.
func NewIndent(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), indent: true}
}

// Decl writes the XML declaration.
func (x *Writer) Decl() {
	x.writeString(`<?xml version="1.0" encoding="UTF-8"?>`)
	x.writeString("\n")
	x.wroteAny = false
}

// Start writes an opening tag with the given attributes.
func (x *Writer) Start(name string, attrs ...Attr) {
	x.newline()
	x.writeString("<")
	x.writeString(name)
	x.writeAttrs(attrs)
	x.writeString(">")
	x.depth++
	x.inText = false
}

// Empty writes a self-closing tag with the given attributes.
func (x *Writer) Empty(name string, attrs ...Attr) {
	x.newline()
	x.writeString("<")
	x.writeString(name)
	x.writeAttrs(attrs)
	x.writeString("/>")
	x.inText = false
}

// Text writes escaped character data. It attaches directly to the enclosing
// element with no added whitespace, so content survives a round trip.
func (x *Writer) Text(s string) {
	x.writeString(escape(s))
	x.inText = true
}

// End writes a closing tag.
func (x *Writer) End(name string) {
	x.depth--
	if !x.inText {
		x.newline()
	}
	x.writeString("</")
	x.writeString(name)
	x.writeString(">")
	x.inText = false
}

// Err returns the first error encountered, if any.
func (x *Writer) Err() error {
	return x.err
}

// Flush writes any buffered output and returns the first error encountered.
func (x *Writer) Flush() error {
	if x.err != nil {
		return x.err
	}
	return x.w.Flush()
}

func (x *Writer) newline() {
	if !x.indent {
		return
	}
	if x.wroteAny {
		x.writeString("\n")
		for i := 0; i < x.depth; i++ {
			x.writeString(" ")
		}
	}
}

func (x *Writer) writeAttrs(attrs []Attr) {
	for _, a := range attrs {
		x.writeString(" ")
		x.writeString(a.Key)
		x.writeString(`="`)
		x.writeString(escape(a.Value))
		x.writeString(`"`)
	}
}

func (x *Writer) writeString(s string) {
	if x.err != nil {
		return
	}
	x.wroteAny = true
	_, x.err = x.w.WriteString(s)
}

// escape escapes text for use in element content or attribute values.
func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
