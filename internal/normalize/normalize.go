// Package normalize converts engine-native query values into JSON-safe values.
//
// Embedded engines hand back wide integers, fixed-point decimals and
// microsecond timestamps that encoding/json either rejects or renders in a
// shape clients cannot consume. Value walks a result recursively and rewrites
// those into plain numbers and ISO-8601 strings. Unknown shapes pass through
// untouched; nothing here ever returns an error.
package normalize

import (
	"math"
	"math/big"
	"time"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// TimeLayout is the ISO-8601 rendering used for every timestamp.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Micros is a timestamp expressed as microseconds since the Unix epoch.
type Micros int64

// Value returns a JSON-safe equivalent of v.
func Value(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *big.Int:
		if val == nil {
			return nil
		}
		return bigInt(val)
	case big.Int:
		return bigInt(&val)
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val)
		}
		return float64(val)
	case duckdb.Decimal:
		return decimal(val)
	case *duckdb.Decimal:
		if val == nil {
			return nil
		}
		return decimal(*val)
	case duckdb.UUID:
		return val.String()
	case uuid.UUID:
		return val.String()
	case time.Time:
		return formatTime(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return formatTime(*val)
	case Micros:
		return formatTime(time.UnixMilli(int64(val) / 1000))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Value(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Value(item)
		}
		return out
	case Row:
		return val.normalized()
	case []Row:
		out := make([]Row, len(val))
		for i, row := range val {
			out[i] = row.normalized()
		}
		return out
	default:
		return v
	}
}

// bigInt keeps values that fit in int64 exact and degrades the rest to float64.
func bigInt(v *big.Int) any {
	if v.IsInt64() {
		return v.Int64()
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// decimal computes mantissa / 10^scale.
func decimal(d duckdb.Decimal) any {
	if d.Value == nil {
		return nil
	}
	mantissa, _ := new(big.Float).SetInt(d.Value).Float64()
	return mantissa / math.Pow10(int(d.Scale))
}

func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format(TimeLayout)
}
