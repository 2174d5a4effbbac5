package domain

import "time"

// ActivityType classifies a scheduled team activity.
type ActivityType string

const (
	TypeTraining         ActivityType = "training"
	TypeMatch            ActivityType = "match"
	TypeCup              ActivityType = "cup"
	TypeTeamEvent        ActivityType = "team-event"
	TypeStrengthTraining ActivityType = "strength-training"
	TypeTacticsTraining  ActivityType = "tactics-training"
	TypeGoalieTraining   ActivityType = "goalie-training"
	TypeMeeting          ActivityType = "meeting"
	TypeOther            ActivityType = "other"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeTraining, TypeMatch, TypeCup, TypeTeamEvent, TypeStrengthTraining,
		TypeTacticsTraining, TypeGoalieTraining, TypeMeeting, TypeOther:
		return true
	}
	return false
}

// ResponseStatus is a participant's attendance answer for one activity.
type ResponseStatus string

const (
	StatusAttending    ResponseStatus = "attending"
	StatusAbsent       ResponseStatus = "absent"
	StatusMaybe        ResponseStatus = "maybe"
	StatusNotResponded ResponseStatus = "not_responded"
)

// ParticipantResponse is one user's answer on one activity.
// A roster holds at most one per user; later answers overwrite.
type ParticipantResponse struct {
	UserID        string
	Status        ResponseStatus
	AbsenceReason string     // only set while Status is absent
	AbsenceDate   *time.Time // when the absence was reported, nil if never
}

// Comment is an append-only note on an activity.
type Comment struct {
	ID         string
	UserID     string
	Text       string
	LeaderOnly bool
	CreatedAt  time.Time
}

// Activity is a scheduled team event with its participation roster.
type Activity struct {
	ID              string
	Title           string
	Description     string
	Location        string
	Date            time.Time // midnight of the calendar day, club timezone
	StartM          int       // minutes from midnight (0..1439), -1 when unset
	EndM            int       // minutes from midnight (0..1439), -1 when unset
	AbsenceDeadline *time.Time
	Type            ActivityType
	Canceled        bool
	Important       bool
	Tags            []string
	Responses       []ParticipantResponse
	Comments        []Comment
	CreatedAt       time.Time
}

// Response returns the user's current answer, if any.
func (a *Activity) Response(userID string) (ParticipantResponse, bool) {
	for _, r := range a.Responses {
		if r.UserID == userID {
			return r, true
		}
	}
	return ParticipantResponse{}, false
}

// EffectiveEnd is the instant the activity is considered over: end time,
// else start time, else 23:59 of the activity day.
func (a *Activity) EffectiveEnd() time.Time {
	m := a.EndM
	if m < 0 {
		m = a.StartM
	}
	if m < 0 {
		m = 23*60 + 59
	}
	return a.Date.Add(time.Duration(m) * time.Minute)
}

// EffectiveDeadline is the instant after which an absence report counts as
// late: the explicit deadline, else the start time, else midnight of the
// activity day.
func (a *Activity) EffectiveDeadline() time.Time {
	if a.AbsenceDeadline != nil {
		return *a.AbsenceDeadline
	}
	if a.StartM >= 0 {
		return a.Date.Add(time.Duration(a.StartM) * time.Minute)
	}
	return a.Date
}

// Clone returns a deep copy so readers never share roster, comment or tag
// slices with the store's own state.
func (a *Activity) Clone() Activity {
	c := *a
	if a.AbsenceDeadline != nil {
		d := *a.AbsenceDeadline
		c.AbsenceDeadline = &d
	}
	c.Tags = append([]string(nil), a.Tags...)
	c.Responses = append([]ParticipantResponse(nil), a.Responses...)
	for i, r := range c.Responses {
		if r.AbsenceDate != nil {
			d := *r.AbsenceDate
			c.Responses[i].AbsenceDate = &d
		}
	}
	c.Comments = append([]Comment(nil), a.Comments...)
	return c
}

// Stats are single-pass roster counts for one activity.
type Stats struct {
	Total        int
	Attending    int
	Maybe        int
	Absent       int
	NotResponded int
}
