// Package visualiser renders side-by-side views of a raw trajectory and its
// filtered (or compressed) counterpart for visual inspection. It consumes
// plain coordinate sequences and has no knowledge of the pipeline beyond
// that.
package visualiser

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrTooFewAxes is returned when a coordinate row has fewer than two axes.
var ErrTooFewAxes = errors.New("need at least two spatial axes to plot")

// toXYs projects the first two axes of each row into plotter coordinates.
func toXYs(coords [][]float64) (plotter.XYs, error) {
	pts := make(plotter.XYs, len(coords))
	for i, row := range coords {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrTooFewAxes, i, len(row))
		}
		pts[i].X = row[0]
		pts[i].Y = row[1]
	}
	return pts, nil
}

// SaveComparisonPNG writes a scatter plot of the raw points over the
// filtered points to path. The image format follows the path extension
// (.png, .svg, .pdf).
func SaveComparisonPNG(path string, raw, filtered [][]float64) error {
	rawPts, err := toXYs(raw)
	if err != nil {
		return err
	}
	filteredPts, err := toXYs(filtered)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Trajectory filtering"
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	filteredScatter, err := plotter.NewScatter(filteredPts)
	if err != nil {
		return err
	}
	filteredScatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	filteredScatter.GlyphStyle.Radius = vg.Points(2)
	p.Add(filteredScatter)
	p.Legend.Add("filtered", filteredScatter)

	rawScatter, err := plotter.NewScatter(rawPts)
	if err != nil {
		return err
	}
	rawScatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	rawScatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(rawScatter)
	p.Legend.Add("raw", rawScatter)

	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save comparison plot: %w", err)
	}
	log.Printf("wrote trajectory comparison to %s", path)
	return nil
}

// WriteComparisonHTML renders the same comparison as a standalone ECharts
// HTML document.
func WriteComparisonHTML(w io.Writer, raw, filtered [][]float64) error {
	rawData, err := toScatterData(raw)
	if err != nil {
		return err
	}
	filteredData, err := toScatterData(filtered)
	if err != nil {
		return err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Trajectory filtering", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Trajectory filtering", Subtitle: fmt.Sprintf("raw=%d filtered=%d points", len(raw), len(filtered))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("raw", rawData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	scatter.AddSeries("filtered", filteredData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func toScatterData(coords [][]float64) ([]opts.ScatterData, error) {
	data := make([]opts.ScatterData, 0, len(coords))
	for i, row := range coords {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrTooFewAxes, i, len(row))
		}
		data = append(data, opts.ScatterData{Value: []interface{}{row[0], row[1]}})
	}
	return data, nil
}
