package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func TestRender(t *testing.T) {
	state := schema.State{
		SelectedMetric: schema.MetricCases,
		DateRange:      30,
		LoadedRange:    30,
		Data: []schema.CovidDataPoint{
			{Date: "2020-03-01", Cases: 10, Deaths: 1},
			{Date: "2020-03-02", Cases: 15, Deaths: 2},
			{Date: "2020-03-03", Cases: 12, Deaths: 2},
		},
	}

	view := Render(state)

	assert.Equal(t, schema.MetricCases, view.Metric)
	assert.Equal(t, state.Data, view.Series)
	assert.Equal(t, []schema.DailyChangeData{
		{Date: "2020-03-02", Value: 5},
		{Date: "2020-03-03", Value: -3},
	}, view.DailyChanges)
	assert.Equal(t, []schema.ScatterDataPoint{
		{Cases: 10, Deaths: 1},
		{Cases: 15, Deaths: 2},
		{Cases: 12, Deaths: 2},
	}, view.Scatter)
	assert.Equal(t, schema.Summary{LatestCases: 12, LatestDeaths: 2, LatestDailyChange: -3}, view.Summary)

	assert.Equal(t, view, Render(state), "render must be repeatable")
}

func TestRenderEmpty(t *testing.T) {
	view := Render(schema.State{SelectedMetric: schema.MetricDeaths})

	assert.NotNil(t, view.Series)
	assert.Empty(t, view.Series)
	assert.Empty(t, view.DailyChanges)
	assert.Empty(t, view.Scatter)
	assert.Equal(t, schema.Summary{}, view.Summary)
}

func TestRenderSinglePoint(t *testing.T) {
	view := Render(schema.State{
		SelectedMetric: schema.MetricCases,
		Data:           []schema.CovidDataPoint{{Date: "2020-03-01", Cases: 4, Deaths: 1}},
	})

	assert.Empty(t, view.DailyChanges)
	assert.Equal(t, []schema.ScatterDataPoint{{Cases: 4, Deaths: 1}}, view.Scatter)
}

func TestLocalize(t *testing.T) {
	view := Localize(Render(schema.State{
		SelectedMetric: schema.MetricDeaths,
		Data: []schema.CovidDataPoint{
			{Date: "2020-03-01", Cases: 1200000, Deaths: 64000},
			{Date: "2020-03-02", Cases: 1250000, Deaths: 69500},
		},
	}), "en")

	assert.Equal(t, []schema.SummaryCard{
		{Title: "Total Cases", Value: "1,250,000", Color: "blue"},
		{Title: "Total Deaths", Value: "69,500", Color: "red"},
		{Title: "Latest Daily Increase", Value: "5,500", Color: "purple", Metric: schema.MetricDeaths},
	}, view.Cards)

	if assert.NotNil(t, view.Titles) {
		assert.Equal(t, "Cumulative Deaths Over Time", view.Titles.Line)
		assert.Equal(t, "Daily New Deaths", view.Titles.Bar)
		assert.Equal(t, "Cases vs Deaths Correlation", view.Titles.Scatter)
	}
}

func TestLocalizeEmptyFallsBackToZero(t *testing.T) {
	cards := Cards(schema.Summary{}, schema.MetricCases, "zh-TW")

	assert.Len(t, cards, 3)
	assert.Equal(t, "累計確診", cards[0].Title)
	for _, c := range cards {
		assert.Equal(t, "0", c.Value)
	}
	assert.Equal(t, "每日新增確診", Titles(schema.MetricCases, "zh-TW").Bar)
}
