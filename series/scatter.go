package series

import "github.com/bitmark-inc/covid-dashboard/schema"

func ScatterPairs(points []schema.CovidDataPoint) []schema.ScatterDataPoint {
	pairs := make([]schema.ScatterDataPoint, len(points))
	for i, p := range points {
		pairs[i] = schema.ScatterDataPoint{Cases: p.Cases, Deaths: p.Deaths}
	}
	return pairs
}
