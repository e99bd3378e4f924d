package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var (
	ErrSuperseded       = fmt.Errorf("superseded by a newer date range")
	ErrInvalidDateRange = fmt.Errorf("date range must be a positive number of days")
)

// Session holds the state of one interactive dashboard. Changing the date
// range reloads the data; changing the metric only affects rendering.
//
// Every load gets a sequence number. Starting a load cancels the one in
// flight, and a load that resolves after a newer one was started is
// dropped, so the most recently requested range always wins.
type Session struct {
	loader Loader
	scope  tally.Scope
	now    func() time.Time

	mu     sync.RWMutex
	state  schema.State
	seq    uint64
	cancel context.CancelFunc
}

func NewSession(loader Loader, scope tally.Scope, metric schema.MetricType, days int) *Session {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Session{
		loader: loader,
		scope:  scope,
		now:    time.Now,
		state: schema.State{
			SelectedMetric: metric,
			DateRange:      days,
			Data:           []schema.CovidDataPoint{},
		},
	}
}

// State returns a copy of the current state. Data is replaced wholesale on
// every load and never modified, so the slice may be shared.
func (s *Session) State() schema.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) View() schema.View {
	return Render(s.State())
}

func (s *Session) SetMetric(metric schema.MetricType) error {
	if !metric.Valid() {
		return fmt.Errorf("%w: %q", schema.ErrUnknownMetric, metric)
	}

	s.mu.Lock()
	s.state.SelectedMetric = metric
	s.mu.Unlock()
	return nil
}

// SetDateRange selects a new range and loads it. On failure the previously
// loaded data stays in place and the error is returned for the caller to
// decide whether to surface it.
func (s *Session) SetDateRange(ctx context.Context, days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDateRange, days)
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state.DateRange = days
	s.mu.Unlock()

	defer cancel()

	result, err := s.loader.Load(ctx, days)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.scope.Counter("load.stale").Inc(1)
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"days":    days,
			"seq":     seq,
			"current": s.seq,
		}).Info("drop superseded load")
		return ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      logPrefix,
			"days":        days,
			"loaded_days": s.state.LoadedRange,
			"error":       err,
		}).Warn("keep previous data after failed load")
		return err
	}

	s.state.Data = result.Points
	s.state.LoadedRange = days
	s.state.UpdatedAt = s.now()
	return nil
}

// Refresh reloads the currently selected range.
func (s *Session) Refresh(ctx context.Context) error {
	return s.SetDateRange(ctx, s.State().DateRange)
}
