package traininglog

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

func TestRecordAndEntriesForUser(t *testing.T) {
	l := New(zap.NewNop())

	day := time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC)
	l.Record(domain.TrainingEntry{UserID: "u1", ActivityID: "t1", Date: day, Skills: []string{"shooting"}})
	l.Record(domain.TrainingEntry{UserID: "u2", ActivityID: "t1", Date: day})
	l.Record(domain.TrainingEntry{UserID: "u1", ActivityID: "t2", Date: day.AddDate(0, 0, 7)})

	got := l.EntriesForUser("u1")
	if len(got) != 2 {
		t.Fatalf("want 2 entries for u1, got %d", len(got))
	}
	if got[0].ActivityID != "t1" || got[1].ActivityID != "t2" {
		t.Fatalf("entries out of order: %+v", got)
	}
	if len(l.EntriesForUser("u3")) != 0 {
		t.Fatal("unknown user should have no entries")
	}
}
