package chart

import (
	"bytes"
	"fmt"
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 400

	dateLabelFormat = "Jan 02"
)

var (
	ErrNotEnoughData = fmt.Errorf("not enough data to render chart")

	colorPurple = drawing.ColorFromHex("805ad5")
)

type Size struct {
	Width  int
	Height int
}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	return s
}

// pointStyle draws dots without connecting lines.
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// paddedRange keeps the axis range non-empty for constant data, which the
// renderer rejects.
func paddedRange(values []float64) *gochart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi > lo {
		pad := (hi - lo) * 0.05
		return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}
	pad := math.Max(math.Abs(lo)*0.05, 1)
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// Line renders the cumulative values of metric over time as PNG.
func Line(points []schema.CovidDataPoint, metric schema.MetricType, title string, size Size) ([]byte, error) {
	if len(points) < 2 {
		return nil, ErrNotEnoughData
	}
	size = size.orDefault()

	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		t, err := series.ParseDate(p.Date)
		if err != nil {
			return nil, err
		}
		xs = append(xs, t)
		ys = append(ys, metric.Of(p))
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      size.Width,
		Height:     size.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat(dateLabelFormat),
		},
		YAxis: gochart.YAxis{
			Name:  metric.Title(),
			Range: paddedRange(ys),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    metric.Title(),
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: gochart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	return render(ch)
}

// Bar renders one bar per daily change. Bars hang from zero, so negative
// changes point down.
func Bar(changes []schema.DailyChangeData, title string, size Size) ([]byte, error) {
	if len(changes) == 0 {
		return nil, ErrNotEnoughData
	}
	size = size.orDefault()

	bars := make([]gochart.Value, len(changes))
	values := make([]float64, 0, len(changes)+1)
	for i, c := range changes {
		label := c.Date
		if t, err := series.ParseDate(c.Date); err == nil {
			label = t.Format(dateLabelFormat)
		}
		style := gochart.Style{FillColor: colorPurple, StrokeColor: colorPurple}
		if c.Value < 0 {
			style = gochart.Style{FillColor: gochart.ColorRed, StrokeColor: gochart.ColorRed}
		}
		bars[i] = gochart.Value{Label: label, Value: c.Value, Style: style}
		values = append(values, c.Value)
	}
	values = append(values, 0)

	// leave room for the y axis and keep bars at least a pixel wide
	usable := size.Width - 120
	slot := usable / len(changes)
	if slot < 2 {
		slot = 2
	}
	spacing := slot / 5
	width := slot - spacing
	if width < 1 {
		width = 1
	}

	bc := gochart.BarChart{
		Title:        title,
		Width:        size.Width,
		Height:       size.Height,
		Background:   gochart.Style{Padding: gochart.Box{Top: 40}},
		BarWidth:     width,
		BarSpacing:   spacing,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: gochart.YAxis{
			Range: paddedRange(values),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scatter renders deaths against cases, one dot per day.
func Scatter(pairs []schema.ScatterDataPoint, title string, size Size) ([]byte, error) {
	if len(pairs) < 2 {
		return nil, ErrNotEnoughData
	}
	size = size.orDefault()

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.Cases
		ys[i] = p.Deaths
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      size.Width,
		Height:     size.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  schema.MetricCases.Title(),
			Range: paddedRange(xs),
		},
		YAxis: gochart.YAxis{
			Name:  schema.MetricDeaths.Title(),
			Range: paddedRange(ys),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Cases vs Deaths",
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(gochart.ColorRed),
			},
		},
	}

	return render(ch)
}

func render(ch gochart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
