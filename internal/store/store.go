package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

var (
	ErrActivityExists   = errors.New("activity id already exists")
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidType      = errors.New("invalid activity type")
)

// Attendance on a training session is worth one default training-log entry.
const (
	defaultTrainingMinutes   = 90
	defaultTrainingIntensity = "medium"
)

// Store is the canonical in-memory source of activities and each user's
// response to each activity. All access is mutex-guarded: the fine scan
// runs on its own goroutine and the check-then-write operations below must
// stay atomic.
type Store struct {
	mu         sync.RWMutex
	log        *zap.Logger
	activities []*domain.Activity
	training   []func(domain.TrainingEntry)
}

// New creates an empty store.
func New(log *zap.Logger) *Store {
	return &Store{log: log}
}

// OnTrainingAttendance registers a listener for the training-attendance
// hand-off: it fires when a user marks attending on a training activity.
// Listeners run synchronously after the response is recorded, outside the
// store lock, and must not call back into the store's mutators.
func (s *Store) OnTrainingAttendance(fn func(domain.TrainingEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.training = append(s.training, fn)
}

// AddActivity appends a new activity. An empty ID is assigned one; a
// duplicate ID is rejected rather than silently coexisting.
func (s *Store) AddActivity(a domain.Activity) (domain.Activity, error) {
	if !a.Type.Valid() {
		return domain.Activity{}, ErrInvalidType
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	} else if s.find(a.ID) != nil {
		return domain.Activity{}, ErrActivityExists
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	c := a.Clone()
	s.activities = append(s.activities, &c)
	s.log.Info("activity added",
		zap.String("id", a.ID),
		zap.String("type", string(a.Type)),
		zap.Time("date", a.Date),
	)
	return a, nil
}

// ActivityPatch carries optional field updates for UpdateActivity. Nil
// fields are left unchanged.
type ActivityPatch struct {
	Title           *string
	Description     *string
	Location        *string
	Date            *time.Time
	StartM          *int
	EndM            *int
	AbsenceDeadline *time.Time
	Type            *domain.ActivityType
	Canceled        *bool
	Important       *bool
	Tags            []string
}

// UpdateActivity merges the patch into the matching activity.
func (s *Store) UpdateActivity(id string, p ActivityPatch) error {
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidType
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.find(id)
	if a == nil {
		return ErrActivityNotFound
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.StartM != nil {
		a.StartM = *p.StartM
	}
	if p.EndM != nil {
		a.EndM = *p.EndM
	}
	if p.AbsenceDeadline != nil {
		d := *p.AbsenceDeadline
		a.AbsenceDeadline = &d
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Canceled != nil {
		a.Canceled = *p.Canceled
	}
	if p.Important != nil {
		a.Important = *p.Important
	}
	if p.Tags != nil {
		a.Tags = append([]string(nil), p.Tags...)
	}
	return nil
}

// RespondToActivity records or overwrites the user's answer on an activity.
// The roster holds at most one response per user, always. Marking attending
// on a training activity hands a derived entry to the training-log
// listeners.
func (s *Store) RespondToActivity(activityID, userID string, status domain.ResponseStatus, absenceReason string) error {
	s.mu.Lock()

	a := s.find(activityID)
	if a == nil {
		s.mu.Unlock()
		return ErrActivityNotFound
	}

	resp := domain.ParticipantResponse{UserID: userID, Status: status}
	if status == domain.StatusAbsent {
		now := time.Now().UTC()
		resp.AbsenceReason = absenceReason
		resp.AbsenceDate = &now
	}

	replaced := false
	for i := range a.Responses {
		if a.Responses[i].UserID == userID {
			a.Responses[i] = resp
			replaced = true
			break
		}
	}
	if !replaced {
		a.Responses = append(a.Responses, resp)
	}

	var entry *domain.TrainingEntry
	if status == domain.StatusAttending && a.Type == domain.TypeTraining {
		entry = &domain.TrainingEntry{
			UserID:        userID,
			ActivityID:    a.ID,
			ActivityTitle: a.Title,
			Date:          a.Date,
			Skills:        append([]string(nil), a.Tags...),
			DurationMin:   defaultTrainingMinutes,
			Intensity:     defaultTrainingIntensity,
		}
	}
	listeners := s.training
	s.mu.Unlock()

	if entry != nil {
		for _, fn := range listeners {
			fn(*entry)
		}
	}
	return nil
}

// AddComment appends a timestamped comment. Comments are never edited or
// deleted on their own, only together with the whole activity.
func (s *Store) AddComment(activityID, userID, text string, leaderOnly bool) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.find(activityID)
	if a == nil {
		return domain.Comment{}, ErrActivityNotFound
	}
	c := domain.Comment{
		ID:         uuid.NewString(),
		UserID:     userID,
		Text:       text,
		LeaderOnly: leaderOnly,
		CreatedAt:  time.Now().UTC(),
	}
	a.Comments = append(a.Comments, c)
	return c, nil
}

// DeleteActivity removes the activity together with all its responses and
// comments in one step.
func (s *Store) DeleteActivity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.activities {
		if a.ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			s.log.Info("activity deleted", zap.String("id", id))
			return nil
		}
	}
	return ErrActivityNotFound
}

// Activity returns a copy of the activity by id.
func (s *Store) Activity(id string) (domain.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.find(id)
	if a == nil {
		return domain.Activity{}, false
	}
	return a.Clone(), true
}

// ActivitiesForUser returns copies of every activity the user has responded
// to.
func (s *Store) ActivitiesForUser(userID string) []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []domain.Activity
	for _, a := range s.activities {
		if _, ok := a.Response(userID); ok {
			res = append(res, a.Clone())
		}
	}
	return res
}

// Upcoming returns up to limit activities that have not yet ended, ordered
// by date ascending. limit <= 0 means no limit.
func (s *Store) Upcoming(now time.Time, limit int) []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []domain.Activity
	for _, a := range s.activities {
		if !a.EffectiveEnd().Before(now) {
			res = append(res, a.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date.Before(res[j].Date) })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// NeedsResponse returns upcoming activities the user has not answered yet,
// or has left at not_responded.
func (s *Store) NeedsResponse(now time.Time, userID string) []domain.Activity {
	upcoming := s.Upcoming(now, 0)
	var res []domain.Activity
	for _, a := range upcoming {
		r, ok := a.Response(userID)
		if !ok || r.Status == domain.StatusNotResponded {
			res = append(res, a)
		}
	}
	return res
}

// EndedBefore returns copies of activities whose effective end lies
// strictly before now. The fine engine scans these; it only ever reads.
func (s *Store) EndedBefore(now time.Time) []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []domain.Activity
	for _, a := range s.activities {
		if a.EffectiveEnd().Before(now) {
			res = append(res, a.Clone())
		}
	}
	return res
}

// Stats counts the roster by status in a single pass.
func (s *Store) Stats(id string) (domain.Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.find(id)
	if a == nil {
		return domain.Stats{}, false
	}
	var st domain.Stats
	for _, r := range a.Responses {
		st.Total++
		switch r.Status {
		case domain.StatusAttending:
			st.Attending++
		case domain.StatusMaybe:
			st.Maybe++
		case domain.StatusAbsent:
			st.Absent++
		default:
			st.NotResponded++
		}
	}
	return st, true
}

// find must be called with the lock held.
func (s *Store) find(id string) *domain.Activity {
	for _, a := range s.activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}
