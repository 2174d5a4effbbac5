package userdir

import (
	"testing"
	"time"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

func TestDisplayNameFallsBackToID(t *testing.T) {
	d := New()
	d.Add(domain.User{ID: "u1", Name: "Erik Lund", Role: "player"})

	if got := d.DisplayName("u1"); got != "Erik Lund" {
		t.Fatalf("want Erik Lund, got %s", got)
	}
	if got := d.DisplayName("ghost"); got != "ghost" {
		t.Fatalf("unknown user should resolve to its id, got %s", got)
	}
}

func TestPendingAndApprove(t *testing.T) {
	d := New()
	base := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	d.Add(domain.User{ID: "u1", Name: "A", Pending: true, CreatedAt: base.AddDate(0, 0, 2)})
	d.Add(domain.User{ID: "u2", Name: "B", Pending: true, CreatedAt: base})
	d.Add(domain.User{ID: "u3", Name: "C", CreatedAt: base})

	p := d.Pending()
	if len(p) != 2 || p[0].ID != "u2" || p[1].ID != "u1" {
		t.Fatalf("pending: want [u2 u1] oldest first, got %+v", p)
	}

	if !d.Approve("u1") {
		t.Fatal("approve known user should succeed")
	}
	if d.Approve("ghost") {
		t.Fatal("approve unknown user should fail")
	}
	if len(d.Pending()) != 1 {
		t.Fatal("approved user still pending")
	}
}
