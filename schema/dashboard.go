package schema

import "time"

// State is everything a render pass needs: the two selections and the
// series currently loaded. LoadedRange is the date range Data was fetched
// for, which lags DateRange while a load is in flight.
type State struct {
	SelectedMetric MetricType       `json:"metric"`
	DateRange      int              `json:"days"`
	LoadedRange    int              `json:"loaded_days"`
	Data           []CovidDataPoint `json:"data"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type SummaryCard struct {
	Title  string     `json:"title"`
	Value  string     `json:"value"`
	Color  string     `json:"color"`
	Metric MetricType `json:"metric,omitempty"`
}

type ChartTitles struct {
	Line    string `json:"line"`
	Bar     string `json:"bar"`
	Scatter string `json:"scatter"`
}

type View struct {
	Metric       MetricType         `json:"metric"`
	DateRange    int                `json:"days"`
	LoadedRange  int                `json:"loaded_days"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Series       []CovidDataPoint   `json:"series"`
	DailyChanges []DailyChangeData  `json:"daily_changes"`
	Scatter      []ScatterDataPoint `json:"scatter"`
	Summary      Summary            `json:"summary"`
	Cards        []SummaryCard      `json:"cards,omitempty"`
	Titles       *ChartTitles       `json:"titles,omitempty"`
}
