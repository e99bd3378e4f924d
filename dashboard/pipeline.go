package dashboard

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-dashboard/external/diseasesh"
	"github.com/bitmark-inc/covid-dashboard/series"
)

const logPrefix = "dashboard"

// Loader runs the fetch and normalize stages for a date range.
type Loader interface {
	Load(ctx context.Context, days int) (series.NormalizeResult, error)
}

type Pipeline struct {
	client diseasesh.Client
	scope  tally.Scope
}

func NewPipeline(client diseasesh.Client, scope tally.Scope) *Pipeline {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Pipeline{
		client: client,
		scope:  scope,
	}
}

// Load fetches days of history and normalizes it. Failures other than
// cancellation are logged and reported to sentry here, once.
func (p *Pipeline) Load(ctx context.Context, days int) (series.NormalizeResult, error) {
	loadID := uuid.New().String()
	sw := p.scope.Timer("load.latency").Start()
	defer sw.Stop()

	records, err := p.client.Historical(ctx, days)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			p.scope.Counter("load.cancelled").Inc(1)
			log.WithFields(log.Fields{
				"prefix":  logPrefix,
				"load_id": loadID,
				"days":    days,
			}).Debug("load cancelled")
			return series.NormalizeResult{}, err
		}

		p.scope.Counter("load.failure").Inc(1)
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"load_id": loadID,
			"days":    days,
			"error":   err,
		}).Error("load historical data")
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("load_id", loadID)
			scope.SetExtra("days", days)
			sentry.CaptureException(err)
		})
		return series.NormalizeResult{}, err
	}

	result := series.Normalize(records)
	for _, s := range result.Skipped {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"load_id": loadID,
			"index":   s.Index,
			"date":    s.Record.Date,
			"error":   s.Reason,
		}).Warn("skip malformed record")
	}

	p.scope.Counter("records.skipped").Inc(int64(len(result.Skipped)))
	p.scope.Counter("load.success").Inc(1)
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"load_id": loadID,
		"days":    days,
		"points":  len(result.Points),
		"skipped": len(result.Skipped),
	}).Debug("loaded historical data")

	return result, nil
}
