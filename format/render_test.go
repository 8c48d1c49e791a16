package format

import (
	"testing"
	"time"

	"github.com/tsawler/ods/value"
)

func TestRenderNumber(t *testing.T) {
	tests := []struct {
		name  string
		build func() *ValueFormat
		v     value.Value
		want  string
	}{
		{
			"two decimals",
			func() *ValueFormat {
				return New("n", value.TypeNumber).Number().DecimalPlaces(2).Push()
			},
			value.Number(1.5), "1.50",
		},
		{
			"grouping",
			func() *ValueFormat {
				return New("n", value.TypeNumber).Number().DecimalPlaces(2).Grouping().Push()
			},
			value.Number(1234567.891), "1,234,567.89",
		},
		{
			"min decimals trims zeros",
			func() *ValueFormat {
				return New("n", value.TypeNumber).Number().DecimalPlaces(4).MinDecimalPlaces(2).Push()
			},
			value.Number(1.5), "1.50",
		},
		{
			"negative grouped",
			func() *ValueFormat {
				return New("n", value.TypeNumber).Number().DecimalPlaces(0).Grouping().Push()
			},
			value.Number(-1234567), "-1,234,567",
		},
		{
			"custom separators",
			func() *ValueFormat {
				return New("n", value.TypeNumber).Number().DecimalPlaces(2).Grouping().Separators(",", ".").Push()
			},
			value.Number(1234.5), "1.234,50",
		},
		{
			"percentage scales by 100",
			func() *ValueFormat {
				f := New("p", value.TypePercentage).Number().DecimalPlaces(2).Push()
				return f.Literal("%")
			},
			value.Percentage(0.25), "25.00%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.build(), tt.v); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDateTime(t *testing.T) {
	ts := time.Date(2023, 5, 1, 13, 45, 7, 0, time.UTC)

	tests := []struct {
		name  string
		build func() *ValueFormat
		want  string
	}{
		{
			"long date",
			func() *ValueFormat {
				f := New("d", value.TypeDateTime)
				f.Day().Long().Push()
				f.Literal(".")
				f.Month().Long().Push()
				f.Literal(".")
				f.Year().Long().Push()
				return f
			},
			"01.05.2023",
		},
		{
			"short date",
			func() *ValueFormat {
				f := New("d", value.TypeDateTime)
				f.Month().Short().Push()
				f.Literal("/")
				f.Day().Short().Push()
				f.Literal("/")
				f.Year().Short().Push()
				return f
			},
			"5/1/23",
		},
		{
			"time of day",
			func() *ValueFormat {
				f := New("t", value.TypeDateTime)
				f.Hours().Long().Push()
				f.Literal(":")
				f.Minutes().Long().Push()
				f.Literal(":")
				f.Seconds().Long().Push()
				return f
			},
			"13:45:07",
		},
		{
			"twelve hour with am-pm",
			func() *ValueFormat {
				f := New("t", value.TypeDateTime)
				f.Hours().Short().Push()
				f.Literal(":")
				f.Minutes().Long().Push()
				f.Literal(" ")
				f.AmPm()
				return f
			},
			"1:45 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.build(), value.DateTime(ts)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDuration(t *testing.T) {
	build := func(truncate bool) *ValueFormat {
		f := New("i", value.TypeDuration)
		f.TruncateOnOverflow = truncate
		f.Hours().Long().Push()
		f.Literal(":")
		f.Minutes().Long().Push()
		f.Literal(":")
		f.Seconds().Long().Push()
		return f
	}

	d := value.Duration(26*time.Hour + 5*time.Minute + 9*time.Second)

	// Duration formats accumulate hours past 24.
	if got := Render(build(false), d); got != "26:05:09" {
		t.Errorf("Render(accumulating) = %q, want %q", got, "26:05:09")
	}
	// Time-of-day formats wrap modulo the day length.
	if got := Render(build(true), d); got != "02:05:09" {
		t.Errorf("Render(wrapping) = %q, want %q", got, "02:05:09")
	}
}

func TestRenderBoolean(t *testing.T) {
	f := New("b", value.TypeBoolean).Boolean()
	if got := Render(f, value.Boolean(true)); got != "true" {
		t.Errorf("Render(true) = %q, want %q", got, "true")
	}
	if got := Render(f, value.Boolean(false)); got != "false" {
		t.Errorf("Render(false) = %q, want %q", got, "false")
	}
}

func TestRenderScientific(t *testing.T) {
	f := New("s", value.TypeNumber).Scientific().DecimalPlaces(2).Push()
	if got := Render(f, value.Number(12345.0)); got != "1.23E+04" {
		t.Errorf("Render(scientific) = %q, want %q", got, "1.23E+04")
	}
}

func TestRenderTypeMismatchFallsBack(t *testing.T) {
	f := New("n", value.TypeNumber).Number().DecimalPlaces(2).Push()
	// The renderer never coerces; a mismatched value renders as its
	// plain string representation.
	if got := Render(f, value.Text("abc")); got != "abc" {
		t.Errorf("Render(mismatch) = %q, want %q", got, "abc")
	}
	if got := Render(nil, value.Number(1.5)); got != "1.5" {
		t.Errorf("Render(nil format) = %q, want %q", got, "1.5")
	}
}

func TestPartProps(t *testing.T) {
	p := NewPart(PartNumber)
	p.SetProp("number:decimal-places", "3")
	p.SetProp("number:grouping", "true")
	p.SetProp("custom:attr", "kept")

	if got := p.DecimalPlaces(); got != 3 {
		t.Errorf("DecimalPlaces() = %d, want 3", got)
	}
	if !p.Grouping() {
		t.Error("Grouping() = false, want true")
	}
	if got := p.Prop("custom:attr"); got != "kept" {
		t.Errorf(`Prop("custom:attr") = %q, want "kept"`, got)
	}
	if got := p.MinDecimalPlaces(); got != -1 {
		t.Errorf("MinDecimalPlaces() unset = %d, want -1", got)
	}
}
