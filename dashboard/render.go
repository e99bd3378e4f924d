package dashboard

import (
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// Render derives everything the presentation layer shows from state. It
// holds no state of its own.
func Render(state schema.State) schema.View {
	data := state.Data
	if data == nil {
		data = []schema.CovidDataPoint{}
	}
	changes := series.DailyChange(data, state.SelectedMetric)

	return schema.View{
		Metric:       state.SelectedMetric,
		DateRange:    state.DateRange,
		LoadedRange:  state.LoadedRange,
		UpdatedAt:    state.UpdatedAt,
		Series:       data,
		DailyChanges: changes,
		Scatter:      series.ScatterPairs(data),
		Summary:      series.Summarize(data, changes),
	}
}

// Localize fills in the summary cards and chart titles for lang.
func Localize(view schema.View, lang string) schema.View {
	view.Cards = Cards(view.Summary, view.Metric, lang)
	titles := Titles(view.Metric, lang)
	view.Titles = &titles
	return view
}

func Cards(summary schema.Summary, metric schema.MetricType, lang string) []schema.SummaryCard {
	l := utils.NewLocalizer(lang)
	return []schema.SummaryCard{
		{
			Title: utils.Localize(l, "TotalCases", nil),
			Value: utils.FormatNumber(lang, summary.LatestCases),
			Color: consts.ColorCases,
		},
		{
			Title: utils.Localize(l, "TotalDeaths", nil),
			Value: utils.FormatNumber(lang, summary.LatestDeaths),
			Color: consts.ColorDeaths,
		},
		{
			Title:  utils.Localize(l, "LatestDailyIncrease", nil),
			Value:  utils.FormatNumber(lang, summary.LatestDailyChange),
			Color:  consts.ColorDelta,
			Metric: metric,
		},
	}
}

func Titles(metric schema.MetricType, lang string) schema.ChartTitles {
	l := utils.NewLocalizer(lang)

	name := utils.Localize(l, "Metric"+metric.Title(), nil)
	data := map[string]interface{}{"Metric": name}

	return schema.ChartTitles{
		Line:    utils.Localize(l, "LineChartTitle", data),
		Bar:     utils.Localize(l, "BarChartTitle", data),
		Scatter: utils.Localize(l, "ScatterChartTitle", nil),
	}
}
