// Package render draws simulation tables for the terminal.
package render

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tifye/simlab/export"
	"github.com/tifye/simlab/sim"
)

const CurrencySymbol = "Bs"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Renderer formats numbers for one locale.
type Renderer struct {
	printer *message.Printer
}

func New(tag language.Tag) *Renderer {
	return &Renderer{printer: message.NewPrinter(tag)}
}

// Money formats v with two decimals and the currency symbol.
func (r *Renderer) Money(v float64) string {
	return r.printer.Sprintf("%s %.2f", CurrencySymbol, v)
}

// Number prints whole values without decimals and small fractions with four.
func (r *Renderer) Number(v float64) string {
	switch {
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		return r.printer.Sprintf("%.0f", v)
	case math.Abs(v) < 1:
		return r.printer.Sprintf("%.4f", v)
	default:
		return r.printer.Sprintf("%.2f", v)
	}
}

// Table renders a bordered table.
func (r *Renderer) Table(header []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// Rows renders simulation rows using their own header and records.
func Rows[R export.Record](r *Renderer, rows []R) string {
	records := export.Records(rows)
	return r.Table(records[0], records[1:])
}

// Metrics renders a two-column name/value table.
func (r *Renderer) Metrics(metrics []sim.Metric) string {
	rows := make([][]string, len(metrics))
	for i, m := range metrics {
		rows[i] = []string{m.Name, r.Number(m.Value)}
	}
	return r.Table([]string{"metric", "value"}, rows)
}

// Aggregate renders batch means, labelled with the run count.
func (r *Renderer) Aggregate(agg sim.Aggregate) string {
	rows := make([][]string, len(agg.Means))
	for i, m := range agg.Means {
		rows[i] = []string{m.Name, r.Number(m.Value)}
	}
	return r.Table([]string{"mean over " + r.printer.Sprint(agg.Runs) + " runs", "value"}, rows)
}
