package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the textual timestamp forms engines hand back when a
// driver does not decode the column into time.Time itself.
var timeLayouts = []string{
	TimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Int64 coerces a value into an int64. Non-numeric values yield 0.
func Int64(v any) int64 {
	switch n := Value(v).(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case int8:
		return int64(n)
	case uint32:
		return int64(n)
	case uint16:
		return int64(n)
	case uint8:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
		return i
	default:
		return 0
	}
}

// Float64 coerces a value into a float64. Non-numeric values yield 0.
func Float64(v any) float64 {
	switch n := Value(v).(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int16:
		return float64(n)
	case int8:
		return float64(n)
	case uint32:
		return float64(n)
	case uint16:
		return float64(n)
	case uint8:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
		return f
	default:
		return 0
	}
}

// String coerces a value into a string. nil yields "".
func String(v any) string {
	switch s := Value(v).(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

// Timestamp renders a value as an ISO-8601 string. Text in a recognised
// timestamp layout is reformatted; anything else is returned verbatim.
func Timestamp(v any) string {
	switch t := Value(v).(type) {
	case nil:
		return ""
	case string:
		return reformatTime(t)
	case []byte:
		return reformatTime(string(t))
	default:
		return String(t)
	}
}

func reformatTime(s string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatTime(t)
		}
	}
	return s
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(f*p) / p
}
