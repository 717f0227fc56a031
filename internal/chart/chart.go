// Package chart renders the PNG analysis chart.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"partifin/internal/model"
)

var (
	revenueColor = color.RGBA{R: 0x00, G: 0x66, B: 0xCC, A: 0xFF}
	expenseColor = color.RGBA{R: 0xFF, G: 0x66, B: 0x00, A: 0xFF}
)

// SaveRevenueExpense writes a line chart of yearly revenue and expense
// (M€) to path.
func SaveRevenueExpense(path, title string, records []model.YearRecord) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Année"
	p.Y.Label.Text = "Montants (M€)"
	p.Add(plotter.NewGrid())

	revenue := make(plotter.XYs, len(records))
	expense := make(plotter.XYs, len(records))
	for i, r := range records {
		revenue[i].X = float64(r.Year)
		revenue[i].Y = r.TotalRevenue
		expense[i].X = float64(r.Year)
		expense[i].Y = r.TotalExpense
	}

	revenueLine, err := plotter.NewLine(revenue)
	if err != nil {
		return fmt.Errorf("building revenue series: %w", err)
	}
	revenueLine.Width = vg.Points(2)
	revenueLine.Color = revenueColor

	expenseLine, err := plotter.NewLine(expense)
	if err != nil {
		return fmt.Errorf("building expense series: %w", err)
	}
	expenseLine.Width = vg.Points(2)
	expenseLine.Color = expenseColor

	p.Add(revenueLine, expenseLine)
	p.Legend.Add("Revenus Totaux", revenueLine)
	p.Legend.Add("Dépenses Totales", expenseLine)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
