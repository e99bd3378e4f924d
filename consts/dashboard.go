package consts

import "github.com/bitmark-inc/covid-dashboard/schema"

const (
	DefaultMetric    = schema.MetricCases
	DefaultDateRange = 30
)

// DateRanges are the day counts offered by the date range selector.
var DateRanges = []int{7, 14, 30, 90}

// AllowedDateRange reports whether days is one of ranges, falling back to
// DateRanges when ranges is empty.
func AllowedDateRange(days int, ranges []int) bool {
	if len(ranges) == 0 {
		ranges = DateRanges
	}
	for _, r := range ranges {
		if r == days {
			return true
		}
	}
	return false
}

// Card colors, one per summary card.
const (
	ColorCases  = "blue"
	ColorDeaths = "red"
	ColorDelta  = "purple"
)
