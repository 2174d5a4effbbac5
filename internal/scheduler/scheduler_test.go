package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

type countingScanner struct {
	calls int32
}

func (c *countingScanner) Scan(time.Time) []domain.Fine {
	atomic.AddInt32(&c.calls, 1)
	return nil
}

func TestRunScansImmediatelyAndOnTicks(t *testing.T) {
	sc := &countingScanner{}
	s := New(sc, zap.NewNop(), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(110 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}

	got := atomic.LoadInt32(&sc.calls)
	if got < 2 {
		t.Fatalf("want at least 2 scans (immediate + ticks), got %d", got)
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(&countingScanner{}, zap.NewNop(), 0)
	if s.interval != time.Hour {
		t.Fatalf("want 1h default interval, got %v", s.interval)
	}
}
