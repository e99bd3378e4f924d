package schema

import (
	"fmt"
	"strings"
)

type MetricType string

const (
	MetricCases     MetricType = "cases"
	MetricDeaths    MetricType = "deaths"
	MetricRecovered MetricType = "recovered"
)

var (
	ErrUnknownMetric = fmt.Errorf("unknown metric")

	Metrics = []MetricType{MetricCases, MetricDeaths, MetricRecovered}
)

// ParseMetric accepts a metric name case-insensitively.
func ParseMetric(s string) (MetricType, error) {
	m := MetricType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
	return m, nil
}

func (m MetricType) Valid() bool {
	switch m {
	case MetricCases, MetricDeaths, MetricRecovered:
		return true
	}
	return false
}

// Of returns the counter of p selected by m, or 0 for an unknown metric.
func (m MetricType) Of(p CovidDataPoint) float64 {
	switch m {
	case MetricCases:
		return p.Cases
	case MetricDeaths:
		return p.Deaths
	case MetricRecovered:
		return p.Recovered
	}
	return 0
}

// Title is the capitalized metric name used in chart headings.
func (m MetricType) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}
