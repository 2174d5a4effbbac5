package fines

import "github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"

// DefaultRules is the rule set a new season starts from. Leaders tune it
// at runtime through UpdateRule; edits never touch fines already issued.
func DefaultRules() []domain.FineRule {
	all := []domain.ActivityType{
		domain.TypeTraining,
		domain.TypeMatch,
		domain.TypeCup,
		domain.TypeTeamEvent,
		domain.TypeStrengthTraining,
		domain.TypeTacticsTraining,
		domain.TypeGoalieTraining,
		domain.TypeMeeting,
		domain.TypeOther,
	}
	return []domain.FineRule{
		{
			ID:             "late-absence",
			Name:           "Sen avanmälan",
			Amount:         50,
			Description:    "Absence reported after the deadline, or not reported at all.",
			ActivityTypes:  all,
			Enabled:        true,
			BeforeDeadline: true,
		},
		{
			ID:            "match-absence",
			Name:          "Missad match",
			Amount:        100,
			Description:   "Any absence from a match or cup.",
			ActivityTypes: []domain.ActivityType{domain.TypeMatch, domain.TypeCup},
			Enabled:       true,
		},
		{
			ID:            "meeting-absence",
			Name:          "Missat lagmöte",
			Amount:        25,
			Description:   "Any absence from a team meeting.",
			ActivityTypes: []domain.ActivityType{domain.TypeMeeting},
			Enabled:       false,
		},
	}
}
