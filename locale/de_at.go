package locale

import (
	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/value"
	"golang.org/x/text/language"
)

var deATTag = language.MustParse("de-AT")

func init() {
	Register(deAT{})
}

// deAT provides Austrian German defaults: day.month.year dates, comma
// decimal and period grouping separators, and a trailing euro sign on
// currency.
type deAT struct{}

func (deAT) Tag() language.Tag { return deATTag }

func (deAT) BooleanFormat() *format.ValueFormat {
	return format.NewLocalized(FormatBoolean, deATTag, value.TypeBoolean).
		Boolean()
}

func (deAT) NumberFormat() *format.ValueFormat {
	return format.NewLocalized(FormatNumber, deATTag, value.TypeNumber).
		Number().DecimalPlaces(2).Separators(",", ".").Push()
}

func (deAT) PercentageFormat() *format.ValueFormat {
	return format.NewLocalized(FormatPercentage, deATTag, value.TypePercentage).
		Number().DecimalPlaces(2).Separators(",", ".").Push().
		Literal("%")
}

func (deAT) CurrencyFormat() *format.ValueFormat {
	return format.NewLocalized(FormatCurrency, deATTag, value.TypeCurrency).
		Number().DecimalPlaces(2).MinDecimalPlaces(2).Grouping().Separators(",", ".").Push().
		Literal(" ").
		CurrencySymbol("€")
}

func (deAT) DateFormat() *format.ValueFormat {
	return format.NewLocalized(FormatDate, deATTag, value.TypeDateTime).
		Day().Long().Push().
		Literal(".").
		Month().Long().Push().
		Literal(".").
		Year().Long().Push()
}

func (deAT) DateTimeFormat() *format.ValueFormat {
	return format.NewLocalized(FormatDateTime, deATTag, value.TypeDateTime).
		Day().Long().Push().
		Literal(".").
		Month().Long().Push().
		Literal(".").
		Year().Long().Push().
		Literal(" ").
		Hours().Long().Push().
		Literal(":").
		Minutes().Long().Push().
		Literal(":").
		Seconds().Long().Push()
}

func (deAT) TimeOfDayFormat() *format.ValueFormat {
	return format.NewLocalized(FormatTimeOfDay, deATTag, value.TypeDateTime).
		Hours().Long().Push().
		Literal(":").
		Minutes().Long().Push().
		Literal(":").
		Seconds().Long().Push()
}

func (deAT) TimeIntervalFormat() *format.ValueFormat {
	f := format.NewLocalized(FormatTimeInterval, deATTag, value.TypeDuration).
		Hours().Long().Push().
		Literal(":").
		Minutes().Long().Push().
		Literal(":").
		Seconds().Long().Push()
	f.TruncateOnOverflow = false
	return f
}
