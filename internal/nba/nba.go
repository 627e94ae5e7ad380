// Package nba selects the next best actions to surface to a parent from
// their profile, interest facilities, alerts and waitlist state.
package nba

import (
	"time"

	"github.com/alexanderramin/dotori/internal/domain"
)

// DefaultMaxActions is how many actions SelectActions returns at most.
const DefaultMaxActions = 3

type Action struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Item is one proactive suggestion.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Action      *Action `json:"action,omitempty"`
	Priority    int     `json:"priority"`
}

// Context is the state the rules are evaluated against. A nil User means
// the visitor is not logged in. Now drives the month-gated rules and child
// ages; the engine fills it from its clock when zero.
type Context struct {
	User                 *domain.User      `json:"user" yaml:"user"`
	InterestFacilities   []domain.Facility `json:"interestFacilities" yaml:"interestFacilities"`
	AlertCount           int               `json:"alertCount" yaml:"alertCount"`
	WaitlistCount        int               `json:"waitlistCount" yaml:"waitlistCount"`
	BestWaitlistPosition *int              `json:"bestWaitlistPosition,omitempty" yaml:"bestWaitlistPosition,omitempty"`
	WaitlistFacilityName string            `json:"waitlistFacilityName,omitempty" yaml:"waitlistFacilityName,omitempty"`
	Now                  time.Time         `json:"-" yaml:"-"`
}

func (c Context) onboarded() bool {
	return c.User != nil && c.User.OnboardingCompleted
}

// Rule pairs an eligibility test with the item it produces. Condition and
// Generate only read the context.
type Rule struct {
	ID        string
	Priority  int
	Condition func(Context) bool
	Generate  func(Context) Item
}

// LoginItem is returned alone for visitors without a profile.
func LoginItem() Item {
	return Item{
		ID:          "login_cta",
		Title:       "로그인하고 맞춤 추천 받기",
		Description: "카카오로 간편하게 시작하세요",
		Action:      &Action{Label: "로그인", Target: "/login"},
		Priority:    50,
	}
}
