// Package service binds the pure decision packages to configuration: the
// advisor supplies the clock, the limits and the logging for each call.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/dotori/internal/checklist"
	"github.com/alexanderramin/dotori/internal/config"
	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/alexanderramin/dotori/internal/convctx"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/insight"
	"github.com/alexanderramin/dotori/internal/intent"
	"github.com/alexanderramin/dotori/internal/logger"
	"github.com/alexanderramin/dotori/internal/nba"
	"github.com/alexanderramin/dotori/internal/report"
	"github.com/alexanderramin/dotori/internal/season"
)

var (
	// ErrTooFewFacilities is returned when a comparison gets fewer than two
	// facilities.
	ErrTooFewFacilities = errors.New("at least two facilities are required")
	// ErrNoFacility is returned when a per-facility call gets none.
	ErrNoFacility = errors.New("facility is required")
)

// Advisor is the entry point the CLI and shell call into.
type Advisor struct {
	cfg    *config.Config
	log    logger.Logger
	obs    UseCaseObserver
	now    func() time.Time
	engine *nba.Engine
}

type Option func(*Advisor)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(a *Advisor) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClock replaces the config clock. Returned times are moved into the
// configured zone.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) {
		if now != nil {
			a.now = now
		}
	}
}

// WithObserver sets the first non-nil observer as the use-case observer.
func WithObserver(observers ...UseCaseObserver) Option {
	return func(a *Advisor) { a.obs = useCaseObserverOrNoop(observers) }
}

// NewAdvisor builds an advisor bound to cfg. A nil cfg uses config.Default.
func NewAdvisor(cfg *config.Config, opts ...Option) *Advisor {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &Advisor{
		cfg: cfg,
		log: logger.NewNoOpLogger(),
		obs: NoopUseCaseObserver{},
		now: cfg.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.engine = nba.NewEngine(
		nba.WithMaxActions(cfg.NBA.MaxActions),
		nba.WithClock(a.clock),
	)
	return a
}

func (a *Advisor) clock() time.Time {
	return a.now().In(a.cfg.Location())
}

// track logs the start of a use case and returns the function that reports
// its outcome.
func (a *Advisor) track(ctx context.Context, name string, fields logger.Fields) func(error) {
	runID := uuid.NewString()
	startedAt := time.Now()
	a.log.Debug(name, logger.Fields{"run_id": runID, "stage": "start"})
	return func(err error) {
		a.obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			RunID:     runID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}

// Analysis is everything the advisor reads out of one user message.
type Analysis struct {
	Intent       intent.Intent               `json:"intent"`
	Scores       map[intent.Intent]int       `json:"scores"`
	Scenario     intent.Scenario             `json:"scenario,omitempty"`
	Empathy      string                      `json:"empathy,omitempty"`
	Context      convctx.ConversationContext `json:"context"`
	Region       convctx.RegionMatch         `json:"region"`
	FacilityType domain.FacilityType         `json:"facilityType,omitempty"`
	Query        string                      `json:"query"`
	Briefing     season.Briefing             `json:"briefing"`
	QuickReplies contract.Block              `json:"quickReplies"`
}

// Analyze classifies message against history and gathers the context a
// reply would be built from.
func (a *Advisor) Analyze(ctx context.Context, message string, history []contract.Turn) (*Analysis, error) {
	fields := logger.Fields{"history_turns": len(history)}
	done := a.track(ctx, "analyze", fields)
	if err := ctx.Err(); err != nil {
		done(err)
		return nil, err
	}

	now := a.clock()
	res := &Analysis{
		Intent:       intent.Classify(message, history),
		Scores:       intent.Scores(message, history),
		Context:      convctx.ExtractConversationContextN(history, a.cfg.Context.MaxFacilityIDs),
		Region:       convctx.ExtractRegion(message),
		Query:        convctx.SanitizeSearchQuery(message),
		Briefing:     season.BriefingFor(now),
		QuickReplies: contract.NewQuickReplyBlock(season.QuickReplyLabels(now.Month())),
	}
	if t, ok := convctx.ExtractFacilityType(message); ok {
		res.FacilityType = t
	}
	if res.Intent == intent.Transfer {
		res.Scenario = intent.DetectTransferScenario(message)
		res.Empathy = res.Scenario.Empathy()
	}

	fields["intent"] = string(res.Intent)
	fields["scenario"] = string(res.Scenario)
	fields["mentioned_facilities"] = len(res.Context.MentionedFacilityIDs)
	done(nil)
	return res, nil
}

// Actions selects the next best actions for nctx.
func (a *Advisor) Actions(ctx context.Context, nctx nba.Context) ([]nba.Item, error) {
	fields := logger.Fields{"signed_in": nctx.User != nil}
	done := a.track(ctx, "actions", fields)
	if err := ctx.Err(); err != nil {
		done(err)
		return nil, err
	}
	items := a.engine.SelectActions(nctx)
	fields["actions"] = len(items)
	done(nil)
	return items, nil
}

// Report compares facilities. child may be nil.
func (a *Advisor) Report(ctx context.Context, facilities []domain.Facility, child *domain.Child) (r *report.Report, err error) {
	fields := logger.Fields{"facilities": len(facilities)}
	done := a.track(ctx, "report", fields)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if len(facilities) < 2 {
		return nil, fmt.Errorf("building report: %w", ErrTooFewFacilities)
	}
	r = report.BuildReport(facilities, child, a.clock())
	fields["sections"] = len(r.Sections)
	return r, nil
}

// ProfileChecklist builds the document checklist for a family profile.
func (a *Advisor) ProfileChecklist(ctx context.Context, in checklist.ProfileInput) (c *checklist.Checklist, err error) {
	fields := logger.Fields{"facility_type": string(in.FacilityType)}
	done := a.track(ctx, "profile_checklist", fields)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	c = checklist.BuildFromProfile(in, a.clock())
	fields["items"] = len(c.Items())
	return c, nil
}

// FacilityChecklist builds the visit and enrollment checklist. Both f and
// child may be nil.
func (a *Advisor) FacilityChecklist(ctx context.Context, f *domain.Facility, child *domain.Child) (c *checklist.Checklist, err error) {
	fields := logger.Fields{"has_facility": f != nil, "has_child": child != nil}
	done := a.track(ctx, "facility_checklist", fields)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	c = checklist.BuildForFacility(f, child, a.clock())
	fields["items"] = len(c.Items())
	return c, nil
}

// Insights returns the highlights for one facility, capped by config.
func (a *Advisor) Insights(ctx context.Context, f *domain.Facility, child *domain.Child) (out []insight.Insight, err error) {
	fields := logger.Fields{}
	done := a.track(ctx, "insights", fields)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("building insights: %w", ErrNoFacility)
	}
	fields["facility_id"] = f.ID
	out = insight.BuildInsightsN(f, child, a.clock(), min(a.cfg.Insights.Max, insight.DefaultMaxInsights))
	fields["insights"] = len(out)
	return out, nil
}

// TransferReasons lists why a move to in.Facility could make sense.
func (a *Advisor) TransferReasons(ctx context.Context, in insight.TransferInput) (out []insight.TransferReason, err error) {
	fields := logger.Fields{"has_previous": in.PreviousFacility != nil}
	done := a.track(ctx, "transfer_reasons", fields)
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if in.Facility == nil {
		return nil, fmt.Errorf("building transfer reasons: %w", ErrNoFacility)
	}
	fields["facility_id"] = in.Facility.ID
	out = insight.BuildTransferReasons(in)
	fields["reasons"] = len(out)
	return out, nil
}
