package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/saltyorg/duckapi/internal/database"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &database.Stats{
		TotalUsers:    5,
		TotalProducts: 2,
		Analytics: []database.CategoryStats{
			{Category: "Electronics", Count: 2, AvgPrice: 814.5, MaxPrice: 1599, MinPrice: 30},
		},
	})

	out := buf.String()
	for _, want := range []string{"Users:    5", "Products: 2", "CATEGORY", "Electronics", "814.50", "1599.00", "30.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_NoProducts(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &database.Stats{})

	if !strings.Contains(buf.String(), "No products yet.") {
		t.Errorf("unexpected summary:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "CATEGORY") {
		t.Error("table header printed for empty analytics")
	}
}
