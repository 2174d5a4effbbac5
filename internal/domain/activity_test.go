package domain

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s, time.UTC)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestEffectiveEnd(t *testing.T) {
	date := day(t, "2025-08-09")

	a := Activity{Date: date, StartM: 14 * 60, EndM: 16 * 60}
	if got, want := a.EffectiveEnd(), date.Add(16*time.Hour); !got.Equal(want) {
		t.Fatalf("end time: want %v, got %v", want, got)
	}

	a = Activity{Date: date, StartM: 14 * 60, EndM: NoClock}
	if got, want := a.EffectiveEnd(), date.Add(14*time.Hour); !got.Equal(want) {
		t.Fatalf("start fallback: want %v, got %v", want, got)
	}

	a = Activity{Date: date, StartM: NoClock, EndM: NoClock}
	if got, want := a.EffectiveEnd(), date.Add(23*time.Hour+59*time.Minute); !got.Equal(want) {
		t.Fatalf("end-of-day fallback: want %v, got %v", want, got)
	}
}

func TestEffectiveDeadline(t *testing.T) {
	date := day(t, "2025-08-09")
	explicit := date.Add(-25 * time.Hour)

	a := Activity{Date: date, StartM: 14 * 60, AbsenceDeadline: &explicit}
	if got := a.EffectiveDeadline(); !got.Equal(explicit) {
		t.Fatalf("explicit deadline: want %v, got %v", explicit, got)
	}

	a = Activity{Date: date, StartM: 14 * 60, EndM: NoClock}
	if got, want := a.EffectiveDeadline(), date.Add(14*time.Hour); !got.Equal(want) {
		t.Fatalf("start fallback: want %v, got %v", want, got)
	}

	a = Activity{Date: date, StartM: NoClock}
	if got := a.EffectiveDeadline(); !got.Equal(date) {
		t.Fatalf("midnight fallback: want %v, got %v", date, got)
	}
}

func TestActivityTypeValid(t *testing.T) {
	for _, typ := range []ActivityType{
		TypeTraining, TypeMatch, TypeCup, TypeTeamEvent, TypeStrengthTraining,
		TypeTacticsTraining, TypeGoalieTraining, TypeMeeting, TypeOther,
	} {
		if !typ.Valid() {
			t.Fatalf("%s should be valid", typ)
		}
	}
	if ActivityType("banquet").Valid() {
		t.Fatal("unknown type should be invalid")
	}
}

func TestRuleAppliesTo(t *testing.T) {
	r := FineRule{ActivityTypes: []ActivityType{TypeMatch, TypeCup}}
	if !r.AppliesTo(TypeMatch) || !r.AppliesTo(TypeCup) {
		t.Fatal("rule should apply to its own types")
	}
	if r.AppliesTo(TypeTraining) {
		t.Fatal("rule should not apply to other types")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	when := day(t, "2025-08-09").Add(10 * time.Hour)
	a := Activity{
		ID:   "a1",
		Date: day(t, "2025-08-09"),
		Tags: []string{"shooting"},
		Responses: []ParticipantResponse{
			{UserID: "u1", Status: StatusAbsent, AbsenceDate: &when},
		},
		Comments: []Comment{{ID: "c1", UserID: "u1", Text: "hi"}},
	}

	c := a.Clone()
	c.Tags[0] = "passing"
	c.Responses[0].Status = StatusAttending
	*c.Responses[0].AbsenceDate = when.Add(time.Hour)
	c.Comments[0].Text = "edited"

	if a.Tags[0] != "shooting" {
		t.Fatal("clone shared tags with original")
	}
	if a.Responses[0].Status != StatusAbsent {
		t.Fatal("clone shared responses with original")
	}
	if !a.Responses[0].AbsenceDate.Equal(when) {
		t.Fatal("clone shared absence date with original")
	}
	if a.Comments[0].Text != "hi" {
		t.Fatal("clone shared comments with original")
	}
}
