package series

import "github.com/bitmark-inc/covid-dashboard/schema"

// DailyChange differences consecutive points for the given metric. A
// drop in a cumulative counter yields a negative value.
func DailyChange(points []schema.CovidDataPoint, metric schema.MetricType) []schema.DailyChangeData {
	if len(points) < 2 || !metric.Valid() {
		return []schema.DailyChangeData{}
	}

	changes := make([]schema.DailyChangeData, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		changes = append(changes, schema.DailyChangeData{
			Date:  points[i].Date,
			Value: metric.Of(points[i]) - metric.Of(points[i-1]),
		})
	}
	return changes
}
