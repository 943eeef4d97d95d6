package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/saltyorg/duckapi/internal/database"
)

// printSummary writes record totals and the per-category price table
func printSummary(out io.Writer, stats *database.Stats) {
	fmt.Fprintf(out, "\nUsers:    %d\nProducts: %d\n\n", stats.TotalUsers, stats.TotalProducts)

	if len(stats.Analytics) == 0 {
		fmt.Fprintln(out, "No products yet.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tAVG\tMIN\tMAX\t")
	for _, c := range stats.Analytics {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t\n", c.Category, c.Count, c.AvgPrice, c.MinPrice, c.MaxPrice)
	}
	tw.Flush()
	fmt.Fprintln(out)
}
