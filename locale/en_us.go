package locale

import (
	"github.com/tsawler/ods/format"
	"github.com/tsawler/ods/value"
	"golang.org/x/text/language"
)

func init() {
	Register(enUS{})
}

// enUS provides United States English defaults: month/day/year dates, a
// dollar-sign prefix on currency, and period decimal separators.
type enUS struct{}

func (enUS) Tag() language.Tag { return language.AmericanEnglish }

func (enUS) BooleanFormat() *format.ValueFormat {
	return format.NewLocalized(FormatBoolean, language.AmericanEnglish, value.TypeBoolean).
		Boolean()
}

func (enUS) NumberFormat() *format.ValueFormat {
	return format.NewLocalized(FormatNumber, language.AmericanEnglish, value.TypeNumber).
		Number().DecimalPlaces(2).Push()
}

func (enUS) PercentageFormat() *format.ValueFormat {
	return format.NewLocalized(FormatPercentage, language.AmericanEnglish, value.TypePercentage).
		Number().DecimalPlaces(2).Push().
		Literal("%")
}

func (enUS) CurrencyFormat() *format.ValueFormat {
	return format.NewLocalized(FormatCurrency, language.AmericanEnglish, value.TypeCurrency).
		CurrencySymbol("$").
		Literal(" ").
		Number().DecimalPlaces(2).MinDecimalPlaces(2).Grouping().Push()
}

func (enUS) DateFormat() *format.ValueFormat {
	return format.NewLocalized(FormatDate, language.AmericanEnglish, value.TypeDateTime).
		Month().Long().Push().
		Literal("/").
		Day().Long().Push().
		Literal("/").
		Year().Long().Push()
}

func (enUS) DateTimeFormat() *format.ValueFormat {
	return format.NewLocalized(FormatDateTime, language.AmericanEnglish, value.TypeDateTime).
		Month().Long().Push().
		Literal("/").
		Day().Long().Push().
		Literal("/").
		Year().Long().Push().
		Literal(" ").
		Hours().Long().Push().
		Literal(":").
		Minutes().Long().Push().
		Literal(":").
		Seconds().Long().Push()
}

func (enUS) TimeOfDayFormat() *format.ValueFormat {
	return format.NewLocalized(FormatTimeOfDay, language.AmericanEnglish, value.TypeDateTime).
		Hours().Long().Push().
		Literal(":").
		Minutes().Long().Push().
		Literal(":").
		Seconds().Long().Push().
		Literal(" ").
		AmPm()
}

func (enUS) TimeIntervalFormat() *format.ValueFormat {
	f := format.NewLocalized(FormatTimeInterval, language.AmericanEnglish, value.TypeDuration).
		Hours().Long().Push().
		Literal(":").
		Minutes().Long().Push().
		Literal(":").
		Seconds().Long().Push()
	f.TruncateOnOverflow = false
	return f
}
