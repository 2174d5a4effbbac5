package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

// Scanner is the minimal interface the scheduler needs to trigger a fine
// pass. fines.Engine implements it.
type Scanner interface {
	Scan(now time.Time) []domain.Fine
}

// Scheduler drives the periodic fine scan.
type Scheduler struct {
	scanner  Scanner
	log      *zap.Logger
	interval time.Duration
}

// New creates a scheduler ticking at the given interval.
func New(scanner Scanner, log *zap.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{scanner: scanner, log: log, interval: interval}
}

// Run scans once immediately, then on every tick until ctx is canceled.
// The immediate pass means a restart never waits a full interval before
// catching up on ended activities.
func (s *Scheduler) Run(ctx context.Context) {
	s.tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("fine scheduler stopping")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	now := time.Now().UTC()
	issued := s.scanner.Scan(now)
	s.log.Debug("fine scan pass done", zap.Int("issued", len(issued)))
}
