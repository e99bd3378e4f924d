package diseasesh

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
)

const (
	logPrefix  = "diseasesh"
	DefaultURL = "https://disease.sh/v3/covid-19"
)

var (
	ErrInvalidDays      = fmt.Errorf("days must be a positive integer")
	ErrUnexpectedStatus = fmt.Errorf("unexpected response status")
)

//go:generate mockgen -destination=mocks/diseasesh.go -package=mocks github.com/bitmark-inc/covid-dashboard/external/diseasesh Client

// Client - interface to fetch historical covid counters
type Client interface {
	Historical(ctx context.Context, days int) ([]schema.RawRecord, error)
}

// counters keyed by upstream date, e.g. "3/21/20"
type timeline struct {
	Cases     map[string]*float64 `json:"cases"`
	Deaths    map[string]*float64 `json:"deaths"`
	Recovered map[string]*float64 `json:"recovered"`
}

type countryResponse struct {
	Country  string   `json:"country"`
	Timeline timeline `json:"timeline"`
}

type diseaseSH struct {
	url     string
	country string
	client  *http.Client
}

func (d diseaseSH) Historical(ctx context.Context, days int) ([]schema.RawRecord, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	endpoint := d.endpoint(days)
	data, err := d.get(ctx, endpoint)
	if nil != err {
		return nil, err
	}

	var t timeline
	if d.country == "" {
		err = json.Unmarshal(data, &t)
	} else {
		var resp countryResponse
		err = json.Unmarshal(data, &resp)
		t = resp.Timeline
	}
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"error":    err,
			"raw json": string(data),
		}).Error("decode historical json")
		return nil, fmt.Errorf("decode historical response: %w", err)
	}

	records := pivot(t)
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"days":    days,
		"country": d.country,
		"records": len(records),
	}).Debug("historical data from disease.sh")

	return records, nil
}

func (d diseaseSH) endpoint(days int) string {
	scope := "all"
	if d.country != "" {
		scope = url.PathEscape(d.country)
	}
	return fmt.Sprintf("%s/historical/%s?lastdays=%d", d.url, scope, days)
}

func (d diseaseSH) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if nil != err {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    endpoint,
			"error":  err,
		}).Error("get historical data")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("read historical data response")
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    endpoint,
			"status": resp.StatusCode,
			"body":   string(data),
		}).Error("historical data response status")
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return data, nil
}

// pivot turns the three per-metric maps into one record per date, in
// chronological order. Dates that cannot be parsed go last.
func pivot(t timeline) []schema.RawRecord {
	dates := make(map[string]struct{})
	for _, m := range []map[string]*float64{t.Cases, t.Deaths, t.Recovered} {
		for k := range m {
			dates[k] = struct{}{}
		}
	}

	type keyed struct {
		date   string
		parsed time.Time
		ok     bool
	}

	keys := make([]keyed, 0, len(dates))
	for k := range dates {
		parsed, err := series.ParseDate(k)
		keys = append(keys, keyed{date: k, parsed: parsed, ok: err == nil})
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch {
		case a.ok && b.ok && !a.parsed.Equal(b.parsed):
			return a.parsed.Before(b.parsed)
		case a.ok != b.ok:
			return a.ok
		}
		return a.date < b.date
	})

	records := make([]schema.RawRecord, len(keys))
	for i, k := range keys {
		records[i] = schema.RawRecord{
			Date:      k.date,
			Cases:     t.Cases[k.date],
			Deaths:    t.Deaths[k.date],
			Recovered: t.Recovered[k.date],
		}
	}
	return records
}

// New - new disease.sh client; an empty country fetches worldwide totals
func New(baseURL, country string, timeout time.Duration) Client {
	u := DefaultURL
	if baseURL != "" {
		u = baseURL
	}

	return &diseaseSH{
		url:     u,
		country: country,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}
