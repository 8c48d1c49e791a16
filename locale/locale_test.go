package locale

import (
	"testing"
	"time"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/model"
	"github.com/tsawler/ods/value"
	"golang.org/x/text/language"
)

func TestForRegisteredLocales(t *testing.T) {
	if _, ok := For(language.AmericanEnglish); !ok {
		t.Error("For(en-US) not registered")
	}
	if _, ok := For(language.MustParse("de-AT")); !ok {
		t.Error("For(de-AT) not registered")
	}
	if _, ok := For(language.Japanese); ok {
		t.Error("For(ja) = registered, want missing")
	}
}

func TestEnUSRendering(t *testing.T) {
	p, _ := For(language.AmericanEnglish)

	tests := []struct {
		name string
		f    *format.ValueFormat
		v    value.Value
		want string
	}{
		{"currency", p.CurrencyFormat(), value.Currency("USD", 1234.5), "$ 1,234.50"},
		{"number", p.NumberFormat(), value.Number(1234.5), "1234.50"},
		{"percentage", p.PercentageFormat(), value.Percentage(0.125), "12.50%"},
		{"date", p.DateFormat(), value.DateTime(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)), "05/01/2023"},
		{"time of day", p.TimeOfDayFormat(), value.DateTime(time.Date(2023, 5, 1, 13, 45, 7, 0, time.UTC)), "01:45:07 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.Render(tt.f, tt.v); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeATRendering(t *testing.T) {
	p, _ := For(language.MustParse("de-AT"))

	tests := []struct {
		name string
		f    *format.ValueFormat
		v    value.Value
		want string
	}{
		{"currency", p.CurrencyFormat(), value.Currency("EUR", 1234.5), "1.234,50 €"},
		{"number", p.NumberFormat(), value.Number(1234.5), "1234,50"},
		{"date", p.DateFormat(), value.DateTime(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)), "01.05.2023"},
		{"datetime", p.DateTimeFormat(), value.DateTime(time.Date(2023, 5, 1, 13, 45, 7, 0, time.UTC)), "01.05.2023 13:45:07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.Render(tt.f, tt.v); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeIntervalAccumulates(t *testing.T) {
	p, _ := For(language.AmericanEnglish)
	f := p.TimeIntervalFormat()
	if f.TruncateOnOverflow {
		t.Error("TimeIntervalFormat().TruncateOnOverflow = true, want false")
	}
	d := value.Duration(26*time.Hour + 30*time.Minute)
	if got := format.Render(f, d); got != "26:30:00" {
		t.Errorf("Render(interval) = %q, want %q", got, "26:30:00")
	}
}

func TestInstallDefaults(t *testing.T) {
	book := model.NewWorkbook()
	if err := InstallDefaults(book, language.AmericanEnglish); err != nil {
		t.Fatalf("InstallDefaults() error: %v", err)
	}

	for _, name := range []string{
		FormatBoolean, FormatNumber, FormatPercentage, FormatCurrency,
		FormatDate, FormatDateTime, FormatTimeOfDay, FormatTimeInterval,
	} {
		if book.Format(name) == nil {
			t.Errorf("Format(%q) = nil after install", name)
		}
	}

	s := book.Style(StyleCurrency)
	if s == nil {
		t.Fatalf("Style(%q) = nil after install", StyleCurrency)
	}
	if s.DataStyle != FormatCurrency {
		t.Errorf("currency style DataStyle = %q, want %q", s.DataStyle, FormatCurrency)
	}

	if got := book.DefaultStyle(value.TypeCurrency); got != StyleCurrency {
		t.Errorf("DefaultStyle(currency) = %q, want %q", got, StyleCurrency)
	}
	if got := book.DefaultStyle(value.TypeText); got != "" {
		t.Errorf("DefaultStyle(text) = %q, want empty", got)
	}

	if f := book.ValueFormatFor(StyleNumber); f == nil || f.Name != FormatNumber {
		t.Errorf("ValueFormatFor(%q) = %v, want %q format", StyleNumber, f, FormatNumber)
	}
}

func TestInstallDefaultsUnknownLocale(t *testing.T) {
	book := model.NewWorkbook()
	if err := InstallDefaults(book, language.Japanese); err == nil {
		t.Error("InstallDefaults(ja) = nil error, want error")
	}
}
