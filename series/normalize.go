package series

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const DateLayout = "2006-01-02"

var (
	ErrMissingDate = fmt.Errorf("missing date")
	ErrBadDate     = fmt.Errorf("unparseable date")

	// upstream reports m/d/yy; the others are accepted for hand-made input
	dateLayouts = []string{"1/2/06", "1/2/2006", DateLayout}
)

type SkippedRecord struct {
	Index  int              `json:"index"`
	Record schema.RawRecord `json:"record"`
	Reason error            `json:"-"`
}

type NormalizeResult struct {
	Points  []schema.CovidDataPoint
	Skipped []SkippedRecord
}

// ParseDate parses any of the accepted date layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
}

// Normalize maps raw records to data points in input order. Missing
// counters become zero; records without a usable date are skipped and
// reported.
func Normalize(records []schema.RawRecord) NormalizeResult {
	result := NormalizeResult{
		Points: make([]schema.CovidDataPoint, 0, len(records)),
	}

	for i, r := range records {
		date, err := ParseDate(r.Date)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRecord{Index: i, Record: r, Reason: err})
			continue
		}

		result.Points = append(result.Points, schema.CovidDataPoint{
			Date:      date.Format(DateLayout),
			Cases:     counter(r.Cases),
			Deaths:    counter(r.Deaths),
			Recovered: counter(r.Recovered),
		})
	}

	return result
}

func counter(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
