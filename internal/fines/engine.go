package fines

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

var (
	ErrFineNotFound  = errors.New("fine not found")
	ErrRuleNotFound  = errors.New("rule not found")
	ErrRuleExists    = errors.New("rule id already exists")
	ErrFineSettled   = errors.New("fine is no longer pending")
	ErrInvalidStatus = errors.New("invalid fine status")
)

// Fines fall due 30 days after they are issued.
const dueAfter = 30 * 24 * time.Hour

// ActivitySource is the read side of the activity store the engine scans.
type ActivitySource interface {
	EndedBefore(now time.Time) []domain.Activity
}

// Engine converts absence history into fine records: at most one fine per
// (user, activity, rule). It only reads from the activity source, never
// writes.
type Engine struct {
	mu     sync.Mutex
	log    *zap.Logger
	source ActivitySource
	rules  []domain.FineRule
	fines  []domain.Fine
	issued map[string]struct{} // natural keys of every fine ever issued
	hooks  []func(domain.Fine)
}

// New creates an engine over the given activity source and initial rule
// set. Rule list order is evaluation order.
func New(source ActivitySource, rules []domain.FineRule, log *zap.Logger) *Engine {
	return &Engine{
		log:    log,
		source: source,
		rules:  append([]domain.FineRule(nil), rules...),
		issued: make(map[string]struct{}),
	}
}

// OnFineIssued registers a hook invoked once per newly issued fine, after
// the scan batch is committed. Hooks run outside the engine lock.
func (e *Engine) OnFineIssued(fn func(domain.Fine)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks = append(e.hooks, fn)
}

// Scan runs one fine pass over every activity that ended before now and
// returns the newly issued fines. Deduplication is keyed on the
// (user, activity, rule) natural key, so re-scans are no-ops and a rule
// enabled after an activity was first processed still gets its turn.
func (e *Engine) Scan(now time.Time) []domain.Fine {
	ended := e.source.EndedBefore(now)

	e.mu.Lock()
	var issued []domain.Fine
	for _, a := range ended {
		if a.Canceled {
			continue
		}
		deadline := a.EffectiveDeadline()
		for _, r := range a.Responses {
			if r.Status != domain.StatusAbsent {
				continue
			}
			late := r.AbsenceDate == nil || r.AbsenceDate.After(deadline)
			for i := range e.rules {
				rule := &e.rules[i]
				if !rule.Enabled || !rule.AppliesTo(a.Type) {
					continue
				}
				if rule.BeforeDeadline && !late {
					continue
				}
				key := naturalKey(r.UserID, a.ID, rule.ID)
				if _, dup := e.issued[key]; dup {
					continue
				}
				f := domain.Fine{
					ID:         uuid.NewString(),
					UserID:     r.UserID,
					ActivityID: a.ID,
					RuleID:     rule.ID,
					Amount:     rule.Amount,
					Reason:     fmt.Sprintf("%s - %s (%s)", rule.Name, a.Title, a.Date.Format("2006-01-02")),
					Status:     domain.FinePending,
					CreatedAt:  now,
					DueDate:    now.Add(dueAfter),
				}
				e.fines = append(e.fines, f)
				e.issued[key] = struct{}{}
				issued = append(issued, f)
			}
		}
	}
	hooks := e.hooks
	e.mu.Unlock()

	if len(issued) > 0 {
		e.log.Info("fine scan issued new fines",
			zap.Int("activities", len(ended)),
			zap.Int("fines", len(issued)),
		)
	}
	for _, f := range issued {
		for _, fn := range hooks {
			fn(f)
		}
	}
	return issued
}

// UpdateFineStatus moves a fine out of pending. Paid, waived and appealed
// are all terminal: appealed stays where it is until there is a product
// decision on how an appeal resolves.
func (e *Engine) UpdateFineStatus(id string, status domain.FineStatus, actorID, reason string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := e.find(id)
	if f == nil {
		return ErrFineNotFound
	}
	if f.Status != domain.FinePending {
		return fmt.Errorf("%w: %s", ErrFineSettled, f.Status)
	}
	switch status {
	case domain.FinePaid:
		now := time.Now().UTC()
		f.PaidAt = &now
	case domain.FineWaived:
		f.WaivedBy = actorID
		f.WaivedReason = reason
	case domain.FineAppealed:
		// nothing extra recorded
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	f.Status = status
	e.log.Info("fine status updated",
		zap.String("fine", id),
		zap.String("status", string(status)),
	)
	return nil
}

// RulePatch carries optional field updates for UpdateRule. Nil fields are
// left unchanged.
type RulePatch struct {
	Name           *string
	Amount         *int
	Description    *string
	ActivityTypes  []domain.ActivityType
	Enabled        *bool
	BeforeDeadline *bool
}

// UpdateRule merges the patch into the matching rule. Changes take effect
// on the next scan pass only; fines already issued keep their frozen
// amount.
func (e *Engine) UpdateRule(id string, p RulePatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.rules {
		if e.rules[i].ID != id {
			continue
		}
		r := &e.rules[i]
		if p.Name != nil {
			r.Name = *p.Name
		}
		if p.Amount != nil {
			r.Amount = *p.Amount
		}
		if p.Description != nil {
			r.Description = *p.Description
		}
		if p.ActivityTypes != nil {
			r.ActivityTypes = append([]domain.ActivityType(nil), p.ActivityTypes...)
		}
		if p.Enabled != nil {
			r.Enabled = *p.Enabled
		}
		if p.BeforeDeadline != nil {
			r.BeforeDeadline = *p.BeforeDeadline
		}
		return nil
	}
	return ErrRuleNotFound
}

// AddRule appends a rule at the end of the evaluation order.
func (e *Engine) AddRule(r domain.FineRule) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	for i := range e.rules {
		if e.rules[i].ID == r.ID {
			return ErrRuleExists
		}
	}
	e.rules = append(e.rules, r)
	return nil
}

// Rules returns the rule set in evaluation order.
func (e *Engine) Rules() []domain.FineRule {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.FineRule(nil), e.rules...)
}

// Fines returns every fine issued so far, oldest first.
func (e *Engine) Fines() []domain.Fine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Fine(nil), e.fines...)
}

// FinesForUser returns the user's fines, oldest first.
func (e *Engine) FinesForUser(userID string) []domain.Fine {
	e.mu.Lock()
	defer e.mu.Unlock()

	var res []domain.Fine
	for _, f := range e.fines {
		if f.UserID == userID {
			res = append(res, f)
		}
	}
	return res
}

// Summary sums a user's fines per lifecycle bucket.
type Summary struct {
	Pending  int
	Paid     int
	Waived   int
	Appealed int
}

// SummaryForUser totals the user's fine amounts by status.
func (e *Engine) SummaryForUser(userID string) Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	var s Summary
	for _, f := range e.fines {
		if f.UserID != userID {
			continue
		}
		switch f.Status {
		case domain.FinePending:
			s.Pending += f.Amount
		case domain.FinePaid:
			s.Paid += f.Amount
		case domain.FineWaived:
			s.Waived += f.Amount
		case domain.FineAppealed:
			s.Appealed += f.Amount
		}
	}
	return s
}

// find must be called with the lock held.
func (e *Engine) find(id string) *domain.Fine {
	for i := range e.fines {
		if e.fines[i].ID == id {
			return &e.fines[i]
		}
	}
	return nil
}

func naturalKey(userID, activityID, ruleID string) string {
	return userID + "\x00" + activityID + "\x00" + ruleID
}
