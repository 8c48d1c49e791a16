package xmlw

import (
	"strings"
	"testing"
)

func TestWriterBasicDocument(t *testing.T) {
	var sb strings.Builder
	x := New(&sb)

	x.Decl()
	x.Start("a:root", Attr{Key: "a:version", Value: "1.2"})
	x.Empty("a:leaf", Attr{Key: "a:n", Value: "1"})
	x.Start("a:item")
	x.Text("content")
	x.End("a:item")
	x.End("a:root")

	if err := x.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<a:root a:version="1.2"><a:leaf a:n="1"/><a:item>content</a:item></a:root>`
	if got := sb.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriterIndentation(t *testing.T) {
	var sb strings.Builder
	x := NewIndent(&sb)

	x.Decl()
	x.Start("a:root")
	x.Start("a:item")
	x.Text("v")
	x.End("a:item")
	x.Empty("a:leaf")
	x.End("a:root")

	if err := x.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		"<a:root>\n <a:item>v</a:item>\n <a:leaf/>\n</a:root>"
	if got := sb.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriterTextStaysAttached(t *testing.T) {
	// Indentation must never leak whitespace into element content.
	var sb strings.Builder
	x := NewIndent(&sb)

	x.Start("t:p")
	x.Text("EUR 12.50")
	x.End("t:p")

	if err := x.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if got := sb.String(); got != "<t:p>EUR 12.50</t:p>" {
		t.Errorf("output = %q", got)
	}
}

func TestWriterEscaping(t *testing.T) {
	var sb strings.Builder
	x := New(&sb)

	x.Start("a:b", Attr{Key: "a:v", Value: `5 < 6 & "x"`})
	x.Text("a < b & c")
	x.End("a:b")

	if err := x.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	got := sb.String()
	if strings.Contains(got, `5 < 6`) || strings.Contains(got, "a < b") {
		t.Errorf("output %q contains unescaped markup", got)
	}
	if !strings.Contains(got, "&amp;") || !strings.Contains(got, "&lt;") {
		t.Errorf("output %q lacks escapes", got)
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	return 0, errFail
}

var errFail = &writeErr{}

type writeErr struct{}

func (*writeErr) Error() string { return "sink failed" }

func TestWriterStickyError(t *testing.T) {
	x := New(&failWriter{})

	// Overflow the internal buffer so the error surfaces.
	big := strings.Repeat("y", 1<<16)
	x.Start("a:root")
	x.Text(big)
	x.End("a:root")

	if err := x.Flush(); err == nil {
		t.Error("Flush() = nil, want error")
	}
	if x.Err() == nil {
		t.Error("Err() = nil after failed flush")
	}
}
