package schema

// CovidDataPoint is one day of cumulative counters.
type CovidDataPoint struct {
	Date      string  `json:"date"`
	Cases     float64 `json:"cases"`
	Deaths    float64 `json:"deaths"`
	Recovered float64 `json:"recovered"`
}

type DailyChangeData struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ScatterDataPoint struct {
	Cases  float64 `json:"cases"`
	Deaths float64 `json:"deaths"`
}

type Summary struct {
	LatestCases       float64 `json:"latest_cases"`
	LatestDeaths      float64 `json:"latest_deaths"`
	LatestDailyChange float64 `json:"latest_daily_change"`
}
