// Package normalize coerces raw spreadsheet cells into typed record fields.
// Every function here is total: malformed input yields a safe default, never an error.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
}

// Excel serial days accepted as dates: 1900-01-01 through 9999-12-31.
const (
	minSerialDay = 1
	maxSerialDay = 2958465
)

func ToText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *string:
		if t == nil {
			return ""
		}
		return strings.TrimSpace(*t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(DateLayout)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func ToNumber(v any) float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint64:
		f = float64(t)
	case bool:
		if t {
			f = 1
		}
	case string:
		f = parseNumber(t)
	default:
		f = parseNumber(fmt.Sprint(v))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToNonNegative is ToNumber clamped at zero, used for currency columns.
func ToNonNegative(v any) float64 {
	f := ToNumber(v)
	if f < 0 {
		return 0
	}
	return f
}

func ToInt(v any) int {
	return int(math.Round(ToNumber(v)))
}

func ToDate(v any, now time.Time) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return now.Format(DateLayout)
		}
		return t.Format(DateLayout)
	case float64:
		if d, ok := fromSerial(t); ok {
			return d
		}
		return now.Format(DateLayout)
	case int:
		if d, ok := fromSerial(float64(t)); ok {
			return d
		}
		return now.Format(DateLayout)
	}

	s := ToText(v)
	if s == "" {
		return now.Format(DateLayout)
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.Format(DateLayout)
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if d, ok := fromSerial(serial); ok {
			return d
		}
	}
	return now.Format(DateLayout)
}

func fromSerial(serial float64) (string, bool) {
	if math.IsNaN(serial) || serial < minSerialDay || serial > maxSerialDay {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

func parseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		s = singleSeparator(s, ",")
	case lastDot >= 0:
		s = singleSeparator(s, ".")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// singleSeparator resolves a number written with only one kind of separator.
// Repeated separators, or one followed by exactly three digits after a
// non-zero integer part, group thousands. Anything else is the decimal point.
func singleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}
	i := strings.Index(s, sep)
	whole, frac := strings.TrimLeft(s[:i], "+-"), s[i+1:]
	if len(frac) == 3 && whole != "" && whole != "0" && isDigits(frac) {
		return s[:i] + frac
	}
	return s[:i] + "." + frac
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
