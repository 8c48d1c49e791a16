// Package locale provides per-locale default value formats.
//
// A [Provider] supplies the eight default formats a locale defines: boolean,
// number, percentage, currency, date, date-time, time-of-day, and
// time-interval. Providers register themselves in a process-wide registry
// keyed by BCP 47 tag; [InstallDefaults] wires a provider's formats and
// matching default cell styles into a workbook.
package locale

import (
	"fmt"
	"sync"

	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/model"
	"github.com/tsawler/ods/value"
	"golang.org/x/text/language"
)

// Provider supplies the default value formats for one locale. Each call
// returns a fresh format the caller owns; providers are self-contained and
// never inherit from one another.
type Provider interface {
	Tag() language.Tag

	BooleanFormat() *format.ValueFormat
	NumberFormat() *format.ValueFormat
	PercentageFormat() *format.ValueFormat
	CurrencyFormat() *format.ValueFormat
	DateFormat() *format.ValueFormat
	DateTimeFormat() *format.ValueFormat
	TimeOfDayFormat() *format.ValueFormat
	TimeIntervalFormat() *format.ValueFormat
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Provider)
)

// Register adds a provider to the registry, replacing any provider already
// registered for the same tag.
func Register(p Provider) {
	mu.Lock()
	defer mu.Unlock()
	registry[p.Tag().String()] = p
}

// For returns the provider registered for the given tag.
func For(tag language.Tag) (Provider, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[tag.String()]
	return p, ok
}

// Names of the default formats and cell styles InstallDefaults creates.
const (
	FormatBoolean      = "fmt-boolean"
	FormatNumber       = "fmt-number"
	FormatPercentage   = "fmt-percent"
	FormatCurrency     = "fmt-currency"
	FormatDate         = "fmt-date"
	FormatDateTime     = "fmt-datetime"
	FormatTimeOfDay    = "fmt-time"
	FormatTimeInterval = "fmt-interval"

	StyleBoolean      = "ce-boolean"
	StyleNumber       = "ce-number"
	StylePercentage   = "ce-percent"
	StyleCurrency     = "ce-currency"
	StyleDate         = "ce-date"
	StyleDateTime     = "ce-datetime"
	StyleTimeOfDay    = "ce-time"
	StyleTimeInterval = "ce-interval"
)

// InstallDefaults registers the locale's eight default value formats in the
// workbook, wraps each in a table-cell style, and records the per-type
// default styles applied to unstyled cells.
func InstallDefaults(book *model.Workbook, tag language.Tag) error {
	p, ok := For(tag)
	if !ok {
		return fmt.Errorf("no locale provider registered for %q", tag)
	}

	install := func(styleName string, f *format.ValueFormat) {
		book.AddFormat(f)
		s := model.NewStyle(styleName, model.FamilyTableCell)
		s.DataStyle = f.Name
		s.Origin = format.OriginDefault
		book.AddStyle(s)
	}

	install(StyleBoolean, p.BooleanFormat())
	install(StyleNumber, p.NumberFormat())
	install(StylePercentage, p.PercentageFormat())
	install(StyleCurrency, p.CurrencyFormat())
	install(StyleDate, p.DateFormat())
	install(StyleDateTime, p.DateTimeFormat())
	install(StyleTimeOfDay, p.TimeOfDayFormat())
	install(StyleTimeInterval, p.TimeIntervalFormat())

	book.SetDefaultStyle(value.TypeBoolean, StyleBoolean)
	book.SetDefaultStyle(value.TypeNumber, StyleNumber)
	book.SetDefaultStyle(value.TypePercentage, StylePercentage)
	book.SetDefaultStyle(value.TypeCurrency, StyleCurrency)
	book.SetDefaultStyle(value.TypeDateTime, StyleDate)
	book.SetDefaultStyle(value.TypeDuration, StyleTimeInterval)

	return nil
}
