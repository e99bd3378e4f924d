package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func testPoints() []schema.CovidDataPoint {
	return []schema.CovidDataPoint{
		{Date: "2020-03-01", Cases: 88000, Deaths: 3000, Recovered: 42000},
		{Date: "2020-03-02", Cases: 90000, Deaths: 3100, Recovered: 45000},
		{Date: "2020-03-03", Cases: 89500, Deaths: 3100, Recovered: 48000},
		{Date: "2020-03-04", Cases: 95000, Deaths: 3300, Recovered: 51000},
	}
}

func TestLine(t *testing.T) {
	img, err := Line(testPoints(), schema.MetricCases, "Cumulative Cases Over Time", Size{Width: 640, Height: 320})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngHeader), "not a png")
}

func TestLineConstantValues(t *testing.T) {
	points := testPoints()
	for i := range points {
		points[i].Deaths = 0
	}

	img, err := Line(points, schema.MetricDeaths, "", Size{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngHeader), "not a png")
}

func TestBar(t *testing.T) {
	changes := series.DailyChange(testPoints(), schema.MetricCases)

	img, err := Bar(changes, "Daily New Cases", Size{Width: 640, Height: 320})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngHeader), "not a png")
}

func TestScatter(t *testing.T) {
	img, err := Scatter(series.ScatterPairs(testPoints()), "Cases vs Deaths Correlation", Size{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngHeader), "not a png")
}

func TestNotEnoughData(t *testing.T) {
	one := testPoints()[:1]

	_, err := Line(one, schema.MetricCases, "", Size{})
	assert.Equal(t, ErrNotEnoughData, err)

	_, err = Bar(series.DailyChange(one, schema.MetricCases), "", Size{})
	assert.Equal(t, ErrNotEnoughData, err)

	_, err = Scatter(series.ScatterPairs(one), "", Size{})
	assert.Equal(t, ErrNotEnoughData, err)
}

func TestPaddedRange(t *testing.T) {
	r := paddedRange([]float64{5, 5, 5})
	assert.True(t, r.Min < 5 && r.Max > 5)

	r = paddedRange([]float64{-3, 0, 7})
	assert.True(t, r.Min < -3 && r.Max > 7)
}
