package domain

import "time"

// User is a club member known to the user directory.
type User struct {
	ID        string
	Name      string
	Role      string // "player" or "leader"
	Pending   bool   // awaiting leader approval after onboarding
	CreatedAt time.Time
}
