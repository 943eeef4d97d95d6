package normalize

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

func TestValue(t *testing.T) {
	huge, _ := new(big.Int).SetString("18446744073709551616", 10) // 2^64

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "big int within int64", input: big.NewInt(9007199254740991), expected: int64(9007199254740991)},
		{name: "big int value", input: *big.NewInt(42), expected: int64(42)},
		{name: "big int beyond int64", input: huge, expected: float64(18446744073709551616)},
		{
			name:     "uuid",
			input:    uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			expected: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		},
		{name: "uint64 small", input: uint64(7), expected: int64(7)},
		{name: "uint64 large", input: uint64(math.MaxUint64), expected: float64(math.MaxUint64)},
		{
			name:     "decimal",
			input:    duckdb.Decimal{Width: 10, Scale: 2, Value: big.NewInt(159900)},
			expected: float64(1599),
		},
		{
			name:     "decimal with fraction",
			input:    duckdb.Decimal{Width: 10, Scale: 2, Value: big.NewInt(2999)},
			expected: 29.99,
		},
		{
			name:     "decimal zero scale",
			input:    duckdb.Decimal{Width: 18, Scale: 0, Value: big.NewInt(-12)},
			expected: float64(-12),
		},
		{name: "decimal without mantissa", input: duckdb.Decimal{Scale: 2}, expected: nil},
		{
			name:     "timestamp",
			input:    time.Date(2024, 3, 1, 12, 30, 45, 123456789, time.UTC),
			expected: "2024-03-01T12:30:45.123Z",
		},
		{
			name:     "timestamp in other zone",
			input:    time.Date(2024, 3, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600)),
			expected: "2024-03-01T12:00:00.000Z",
		},
		{name: "micros", input: Micros(1709296245123456), expected: "2024-03-01T12:30:45.123Z"},
		{name: "string passthrough", input: "hello", expected: "hello"},
		{name: "int32 passthrough", input: int32(5), expected: int32(5)},
		{name: "bool passthrough", input: true, expected: true},
		{
			name:     "sequence",
			input:    []any{big.NewInt(1), "a", nil},
			expected: []any{int64(1), "a", nil},
		},
		{
			name:     "mapping",
			input:    map[string]any{"n": big.NewInt(3), "nested": []any{uint64(4)}},
			expected: map[string]any{"n": int64(3), "nested": []any{int64(4)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Value(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Value(%#v) = %#v, want %#v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValueIdempotent(t *testing.T) {
	inputs := []any{
		nil,
		big.NewInt(123),
		uint64(math.MaxUint64),
		duckdb.Decimal{Width: 10, Scale: 2, Value: big.NewInt(4599)},
		time.Now(),
		Micros(1),
		[]any{big.NewInt(1), time.Unix(0, 0)},
		map[string]any{"price": duckdb.Decimal{Scale: 3, Value: big.NewInt(1005)}},
		NewRow([]string{"id", "created_at"}, []any{big.NewInt(9), time.Unix(100, 0)}),
	}

	for _, in := range inputs {
		once := Value(in)
		twice := Value(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Value not idempotent for %#v: %#v then %#v", in, once, twice)
		}
	}
}

func TestMicrosMatchesMillisecondRendering(t *testing.T) {
	for _, micros := range []int64{0, 999, 1000, 1700000000123999, -1500} {
		want := time.UnixMilli(micros / 1000).UTC().Format(TimeLayout)
		if got := Value(Micros(micros)); got != want {
			t.Errorf("Value(Micros(%d)) = %v, want %s", micros, got, want)
		}
	}
}

func TestRowMarshalKeepsColumnOrder(t *testing.T) {
	row := NewRow(
		[]string{"z", "a", "price", "created_at"},
		[]any{int32(1), "x", duckdb.Decimal{Scale: 2, Value: big.NewInt(1050)}, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	)

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"z":1,"a":"x","price":10.5,"created_at":"2024-01-02T03:04:05.000Z"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestRowGet(t *testing.T) {
	row := NewRow([]string{"id", "name"}, []any{int64(1)})

	if got := row.Get("id"); got != int64(1) {
		t.Errorf("Get(id) = %v", got)
	}
	if got := row.Get("name"); got != nil {
		t.Errorf("Get(name) = %v, want nil for missing value", got)
	}
	if got := row.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}
