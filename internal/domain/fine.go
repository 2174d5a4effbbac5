package domain

import "time"

// FineStatus is the lifecycle state of an issued fine.
type FineStatus string

const (
	FinePending  FineStatus = "pending"
	FinePaid     FineStatus = "paid"
	FineWaived   FineStatus = "waived"
	FineAppealed FineStatus = "appealed"
)

// FineRule is a configurable policy mapping an absence pattern to a
// monetary penalty. Rules are configuration, not per-user data.
type FineRule struct {
	ID            string
	Name          string
	Amount        int // whole kronor
	Description   string
	ActivityTypes []ActivityType
	Enabled       bool
	// BeforeDeadline limits the rule to absences reported after the
	// activity's deadline, or never reported at all.
	BeforeDeadline bool
}

// AppliesTo reports whether the rule covers the given activity type.
func (r *FineRule) AppliesTo(t ActivityType) bool {
	for _, at := range r.ActivityTypes {
		if at == t {
			return true
		}
	}
	return false
}

// Fine is one issued penalty: one rule fired against one user's absence on
// one activity. (UserID, ActivityID, RuleID) is the natural key; the engine
// never issues two fines with the same key.
type Fine struct {
	ID           string
	UserID       string
	ActivityID   string
	RuleID       string
	Amount       int // frozen copy of the rule amount at issue time
	Reason       string
	Status       FineStatus
	CreatedAt    time.Time
	DueDate      time.Time
	PaidAt       *time.Time
	WaivedBy     string
	WaivedReason string
}

// TrainingEntry is the payload handed to the personal training log when a
// player marks attending on a training activity.
type TrainingEntry struct {
	UserID        string
	ActivityID    string
	ActivityTitle string
	Date          time.Time
	Skills        []string
	DurationMin   int
	Intensity     string
}
