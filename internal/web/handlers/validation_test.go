package handlers

import (
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr bool
	}{
		{"number", 19.99, 19.99, false},
		{"numeric string", " 42.5 ", 42.5, false},
		{"integer string", "7", 7, false},
		{"missing", nil, 0, true},
		{"zero", 0.0, 0, true},
		{"negative", -5.0, 0, true},
		{"text", "cheap", 0, true},
		{"nan", "NaN", 0, true},
		{"infinite", "Inf", 0, true},
		{"bool", true, 0, true},
		{"object", map[string]any{"amount": 5}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrice(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var verr ValidationError
				if !errors.As(err, &verr) || verr.Field != "price" {
					t.Errorf("ParsePrice(%v) error = %v, want price ValidationError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if got, err := ValidateRequired("  Alice ", "name"); err != nil || got != "Alice" {
		t.Errorf("ValidateRequired trimmed = %q, %v", got, err)
	}
	if _, err := ValidateRequired(" \t", "name"); err == nil {
		t.Error("blank value accepted")
	} else if err.Error() != "name: is required" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9999", 9999, false},
		{"-3", -3, false},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseID(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestDecodeSegment(t *testing.T) {
	tests := map[string]string{
		"Electronics":    "Electronics",
		"Home%20Office":  "Home Office",
		"Caf%C3%A9":      "Café",
		"100%":           "100%",
		"Books%2FComics": "Books/Comics",
	}

	for raw, want := range tests {
		if got := DecodeSegment(raw); got != want {
			t.Errorf("DecodeSegment(%q) = %q, want %q", raw, got, want)
		}
	}
}
