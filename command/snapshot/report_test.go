package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

func testView() schema.View {
	return schema.View{
		Metric: schema.MetricCases,
		Series: []schema.CovidDataPoint{
			{Date: "2020-03-01", Cases: 10, Deaths: 1},
			{Date: "2020-03-02", Cases: 15, Deaths: 1},
			{Date: "2020-03-03", Cases: 1012, Deaths: 2},
		},
		DailyChanges: []schema.DailyChangeData{
			{Date: "2020-03-02", Value: 5},
			{Date: "2020-03-03", Value: 997},
		},
		Scatter: []schema.ScatterDataPoint{
			{Cases: 10, Deaths: 1},
			{Cases: 15, Deaths: 1},
			{Cases: 1012, Deaths: 2},
		},
		Cards: []schema.SummaryCard{
			{Title: "累計確診", Value: "1,012"},
			{Title: "累計死亡", Value: "2"},
			{Title: "最新單日增加", Value: "997"},
		},
		Titles: &schema.ChartTitles{Line: "line", Bar: "每日新增確診", Scatter: "scatter"},
	}
}

func TestWriteReportAlignsWideTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, testView(), "en"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+1+2+2)

	// card values start at the same display column
	valueColumn := runewidth.StringWidth("最新單日增加") + len(columnGap)
	for _, l := range lines[:3] {
		prefix := strings.TrimSuffix(l, strings.Fields(l)[1])
		assert.Equal(t, valueColumn, runewidth.StringWidth(prefix), l)
	}

	assert.Contains(t, lines[4], "每日新增確診")
	assert.Equal(t, runewidth.StringWidth(lines[4]), runewidth.StringWidth(lines[6]))
	assert.Equal(t, runewidth.StringWidth(lines[6]), runewidth.StringWidth(lines[7]))
	assert.True(t, strings.HasSuffix(lines[6], " 5"))
	assert.True(t, strings.HasSuffix(lines[7], "997"))
}

func TestWriteReportEmptyChanges(t *testing.T) {
	view := testView()
	view.DailyChanges = []schema.DailyChangeData{}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, view, "en"))
	assert.Contains(t, buf.String(), "(no daily changes)")
}

func TestWriteCharts(t *testing.T) {
	dir, err := ioutil.TempDir("", "snapshot")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	skipped, err := writeCharts(dir, testView(), chart.Size{Width: 320, Height: 200})
	require.NoError(t, err)
	assert.Empty(t, skipped)

	for _, name := range []string{"line.png", "bar.png", "scatter.png"} {
		b, err := ioutil.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), name)
	}
}

func TestWriteChartsSkipsShortSeries(t *testing.T) {
	dir, err := ioutil.TempDir("", "snapshot")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	view := testView()
	view.Series = view.Series[:1]
	view.Scatter = view.Scatter[:1]
	view.DailyChanges = []schema.DailyChangeData{}

	skipped, err := writeCharts(dir, view, chart.Size{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"line.png", "bar.png", "scatter.png"}, skipped)
}
