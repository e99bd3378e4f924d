package series

import "github.com/bitmark-inc/covid-dashboard/schema"

// Summarize picks the latest cumulative counters and the latest daily
// change, each zero when there is nothing to pick from.
func Summarize(points []schema.CovidDataPoint, changes []schema.DailyChangeData) schema.Summary {
	var s schema.Summary
	if n := len(points); n > 0 {
		s.LatestCases = points[n-1].Cases
		s.LatestDeaths = points[n-1].Deaths
	}
	if n := len(changes); n > 0 {
		s.LatestDailyChange = changes[n-1].Value
	}
	return s
}
