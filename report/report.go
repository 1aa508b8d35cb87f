// report/report.go
// Package: report
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/mwiater/gostatcli/dataset"
	"github.com/mwiater/gostatcli/stats"
)

// formatNum renders a float with the fewest digits that round-trip,
// so 5.6 prints as "5.6" and 39.0/9 keeps its full precision.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// joinRow renders a row as its comma-joined values.
func joinRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = formatNum(v)
	}
	return strings.Join(parts, ", ")
}

// Run writes one block per dataset row: the row's contents, its median,
// and its mean. Empty rows report the error in place of a statistic.
func Run(w io.Writer, cfg dataset.Config) {
	if cfg.Debug {
		pp.Println(cfg)
	}
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	for _, ds := range cfg.Datasets {
		fmt.Fprintln(w, nameStyle.Render(fmt.Sprintf("%s:", ds.Name)))
		for _, row := range ds.Rows {
			fmt.Fprintf(w, "Data: %s\n", joinRow(row))
			if median, err := stats.Median(row); err != nil {
				fmt.Fprintf(w, "Median: error: %v\n", err)
			} else {
				fmt.Fprintf(w, "Median: %s\n", formatNum(median))
			}
			if mean, err := stats.Mean(row); err != nil {
				fmt.Fprintf(w, "Mean: error: %v\n", err)
			} else {
				fmt.Fprintf(w, "Mean: %s\n", formatNum(mean))
			}
			fmt.Fprintln(w)
		}
	}
}

// Describe writes an extended statistics block per dataset row: count,
// min/max, mean with standard deviation, and the p50/p95 quantiles.
func Describe(w io.Writer, cfg dataset.Config) {
	if cfg.Debug {
		pp.Println(cfg)
	}
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	for _, ds := range cfg.Datasets {
		fmt.Fprintln(w, nameStyle.Render(fmt.Sprintf("%s:", ds.Name)))
		for _, row := range ds.Rows {
			fmt.Fprintf(w, "Data: %s\n", joinRow(row))
			if len(row) == 0 {
				fmt.Fprintf(w, "  error: %v\n\n", stats.ErrEmptyInput)
				continue
			}
			min, max, _ := stats.MinMax(row)
			mean, std, _ := stats.MeanStd(row)
			p50, _ := stats.Quantile(row, 0.50)
			p95, _ := stats.Quantile(row, 0.95)
			fmt.Fprintf(w, "  count:      %d\n", len(row))
			fmt.Fprintf(w, "  min/max:    %s / %s\n", formatNum(min), formatNum(max))
			fmt.Fprintf(w, "  mean ± std: %s ± %s\n", formatNum(mean), formatNum(std))
			fmt.Fprintf(w, "  p50/p95:    %s / %s\n\n", formatNum(p50), formatNum(p95))
		}
	}
}

// ListDatasets lists every configured dataset with its row count and
// per-row sizes.
func ListDatasets(w io.Writer, cfg dataset.Config) {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	for _, ds := range cfg.Datasets {
		fmt.Fprintln(w, nameStyle.Render(fmt.Sprintf("%s: %d rows", ds.Name, len(ds.Rows))))
		for i, row := range ds.Rows {
			fmt.Fprintln(w, "  >>> "+rowStyle.Render(fmt.Sprintf("row %d: %d values", i+1, len(row))))
		}
		fmt.Fprintln(w)
	}
}
