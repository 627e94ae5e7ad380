package nba

import (
	"sort"
	"time"
)

// Engine evaluates a rule table against a context.
type Engine struct {
	rules      []Rule
	maxActions int
	now        func() time.Time
}

type Option func(*Engine)

// WithClock sets the clock used when a context carries no Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMaxActions lowers the number of returned actions. Values outside
// 1..DefaultMaxActions are ignored.
func WithMaxActions(n int) Option {
	return func(e *Engine) {
		if n > 0 && n <= DefaultMaxActions {
			e.maxActions = n
		}
	}
}

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules:      Rules(),
		maxActions: DefaultMaxActions,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SelectActions returns at most the configured number of items, ordered by
// descending priority. Rules of equal priority keep declaration order. A
// context without a user yields only LoginItem.
func (e *Engine) SelectActions(ctx Context) []Item {
	if ctx.User == nil {
		return []Item{LoginItem()}
	}
	if ctx.Now.IsZero() {
		ctx.Now = e.now()
	}

	eligible := make([]Rule, 0, len(e.rules))
	for _, r := range e.rules {
		if r.Condition(ctx) {
			eligible = append(eligible, r)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Priority > eligible[j].Priority
	})
	if len(eligible) > e.maxActions {
		eligible = eligible[:e.maxActions]
	}

	items := make([]Item, 0, len(eligible))
	for _, r := range eligible {
		items = append(items, r.Generate(ctx))
	}
	return items
}

// SelectActions evaluates the default rule table. ctx.Now should be set;
// when it is zero the wall clock is used.
func SelectActions(ctx Context) []Item {
	return NewEngine().SelectActions(ctx)
}
