package tabular

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// en formats grouped decimals ("1,234.50"). Shared and read-only, so
// concurrent renders need no coordination.
var en = message.NewPrinter(language.English)

// displayValue derives a cell's display string from its raw value and style.
// Nil renders as an empty string regardless of hints. A numeric format hint
// on a non-numeric value wraps [ErrFormatMismatch].
func displayValue(value any, style Style) (string, error) {
	if value == nil {
		return "", nil
	}
	if style.Number == NumberNone {
		return naturalString(value), nil
	}
	f, ok := toFloat(value)
	if !ok {
		return "", fmt.Errorf("%w: %T value %v under a numeric format hint", ErrFormatMismatch, value, value)
	}
	switch style.Number {
	case NumberInteger:
		return en.Sprint(number.Decimal(f, number.Scale(0))), nil
	case NumberCurrency:
		if f < 0 {
			return "-$" + en.Sprint(number.Decimal(-f, number.Scale(2))), nil
		}
		return "$" + en.Sprint(number.Decimal(f, number.Scale(2))), nil
	case NumberPercent:
		return en.Sprint(number.Percent(f, number.Scale(2))), nil
	default:
		return en.Sprint(number.Decimal(f, number.Scale(2))), nil
	}
}

// naturalString is the unhinted display form. Floats keep the two-decimal
// convention so amounts line up across rows; dates drop a zero clock.
func naturalString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return en.Sprint(number.Decimal(v, number.Scale(2)))
	case float32:
		return en.Sprint(number.Decimal(float64(v), number.Scale(2)))
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
