package traininglog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

// Log collects each player's personal training history. It fills up from
// the store's training-attendance hand-off and is never consulted by the
// store or the fine engine.
type Log struct {
	mu      sync.Mutex
	log     *zap.Logger
	entries []domain.TrainingEntry
}

// New creates an empty training log.
func New(log *zap.Logger) *Log {
	return &Log{log: log}
}

// Record appends a derived entry. Wire it as a store training-attendance
// listener.
func (l *Log) Record(e domain.TrainingEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	l.log.Debug("training entry recorded",
		zap.String("user", e.UserID),
		zap.String("activity", e.ActivityID),
	)
}

// EntriesForUser returns the user's entries in insertion order.
func (l *Log) EntriesForUser(userID string) []domain.TrainingEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var res []domain.TrainingEntry
	for _, e := range l.entries {
		if e.UserID == userID {
			res = append(res, e)
		}
	}
	return res
}
