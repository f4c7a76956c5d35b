package views

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/derive"
	"github.com/2beens/dawarpower/internal/profile"

	log "github.com/sirupsen/logrus"
)

const (
	MsgNoProfile              = "Save your coach profile first so the coach can plan around it."
	MsgScheduleFailed         = "Unable to build a schedule right now. Try again in a moment."
	MsgNoStoredSchedule       = "No saved schedule for this profile yet. Build one first."
	MsgRecommendationFailed   = "Unable to load coach recommendations right now. Try again in a moment."
	defaultRecommendationDays = 3

	slotSchedule = "schedule"
)

type ScheduleState struct {
	HasProfile     bool                          `json:"hasProfile"`
	Schedule       *coachapi.ScheduleResponse    `json:"schedule"`
	Recommendation *coachapi.CoachRecommendation `json:"recommendation"`
	Loading        bool                          `json:"loading"`
	Message        string                        `json:"message"`
	// Stale is set once the profile changed after the schedule was built.
	Stale bool `json:"stale"`
}

// SchedulePanel builds training schedules for the current profile. A profile
// change makes in-flight requests stale: their answers are dropped.
type SchedulePanel struct {
	*lifecycle
	api scheduleAPI

	mu             sync.Mutex
	current        *profile.CoachProfile
	schedule       *coachapi.ScheduleResponse
	recommendation *coachapi.CoachRecommendation
	loading        bool
	message        string
	stale          bool
}

func NewSchedulePanel(store *profile.Store, api scheduleAPI) *SchedulePanel {
	return &SchedulePanel{
		lifecycle: newLifecycle(store),
		api:       api,
	}
}

func (sp *SchedulePanel) Activate() {
	sp.activate(sp.onProfile)
}

func (sp *SchedulePanel) Deactivate() {
	sp.deactivate()
	sp.mu.Lock()
	sp.loading = false
	sp.mu.Unlock()
}

func (sp *SchedulePanel) onProfile(p *profile.CoachProfile) {
	sp.supersede(slotSchedule)

	sp.mu.Lock()
	defer sp.mu.Unlock()

	previous := sp.current
	sp.current = p
	sp.loading = false
	if sp.schedule != nil && (previous == nil || p == nil || !previous.LastUpdated.Equal(p.LastUpdated)) {
		sp.stale = true
	}
}

func (sp *SchedulePanel) State() ScheduleState {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.stateLocked()
}

func (sp *SchedulePanel) stateLocked() ScheduleState {
	return ScheduleState{
		HasProfile:     sp.current != nil,
		Schedule:       sp.schedule,
		Recommendation: sp.recommendation,
		Loading:        sp.loading,
		Message:        sp.message,
		Stale:          sp.stale,
	}
}

// Sessions returns the sessions and summary of the latest schedule, if any.
func (sp *SchedulePanel) Sessions() ([]coachapi.ScheduledSession, string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.schedule == nil {
		return nil, ""
	}
	return append([]coachapi.ScheduledSession{}, sp.schedule.Sessions...), sp.schedule.Notes.Summary
}

func (sp *SchedulePanel) Build(ctx context.Context) (ScheduleState, error) {
	return sp.run(ctx, MsgScheduleFailed, "", func(ctx context.Context, p *profile.CoachProfile) (*coachapi.ScheduleResponse, *coachapi.CoachRecommendation, error) {
		schedule, err := sp.api.BuildSchedule(ctx, coachapi.SchedulePayloadFrom(p))
		return schedule, nil, err
	})
}

// FetchStored loads the schedule the api keeps for the current profile.
func (sp *SchedulePanel) FetchStored(ctx context.Context) (ScheduleState, error) {
	return sp.run(ctx, MsgScheduleFailed, MsgNoStoredSchedule, func(ctx context.Context, p *profile.CoachProfile) (*coachapi.ScheduleResponse, *coachapi.CoachRecommendation, error) {
		schedule, err := sp.api.FetchStoredSchedule(ctx, coachapi.SchedulePayloadFrom(p))
		return schedule, nil, err
	})
}

// Recommend asks the coach for a combined schedule and meal plan, weighted
// by focusAreas.
func (sp *SchedulePanel) Recommend(ctx context.Context, focusAreas []string) (ScheduleState, error) {
	return sp.run(ctx, MsgRecommendationFailed, "", func(ctx context.Context, p *profile.CoachProfile) (*coachapi.ScheduleResponse, *coachapi.CoachRecommendation, error) {
		rec, err := sp.api.CoachRecommendation(ctx, RecommendationRequestFrom(p, focusAreas))
		if err != nil {
			return nil, nil, err
		}
		return &rec.Schedule, rec, nil
	})
}

// RecommendationRequestFrom bundles the schedule payload and a meal plan
// request derived from p.
func RecommendationRequestFrom(p *profile.CoachProfile, focusAreas []string) coachapi.CoachRecommendationRequest {
	form := coachapi.MealPlanForm{
		Goal: p.Goal,
		Diet: p.DietPreference,
		Days: defaultRecommendationDays,
	}
	if calories, ok := derive.EstimateCalories(p); ok {
		form.Calories = &calories
	}
	if days, ok := derive.PlanDays(p); ok {
		form.Days = days
	}
	if focusAreas == nil {
		focusAreas = []string{}
	}

	return coachapi.CoachRecommendationRequest{
		Schedule:   coachapi.SchedulePayloadFrom(p),
		MealPlan:   coachapi.MealPlanRequestFrom(p, form),
		FocusAreas: focusAreas,
	}
}

type scheduleCall func(ctx context.Context, p *profile.CoachProfile) (*coachapi.ScheduleResponse, *coachapi.CoachRecommendation, error)

// run calls the api for the current profile. A 404 answer shows notFoundMsg
// when one is given.
func (sp *SchedulePanel) run(ctx context.Context, failMsg, notFoundMsg string, call scheduleCall) (ScheduleState, error) {
	req, err := sp.begin(ctx, slotSchedule)
	if err != nil {
		return ScheduleState{}, err
	}

	sp.mu.Lock()
	current := sp.current.Clone()
	if current == nil {
		sp.message = MsgNoProfile
		state := sp.stateLocked()
		sp.mu.Unlock()
		req.done()
		return state, nil
	}
	sp.loading = true
	sp.message = ""
	sp.mu.Unlock()

	schedule, rec, err := call(req.ctx, current)

	sp.mu.Lock()
	defer sp.mu.Unlock()
	apply := req.done()

	if !apply {
		log.Debugf("schedule: discarding a stale response")
		return sp.stateLocked(), nil
	}

	sp.loading = false
	if err != nil {
		var apiErr *coachapi.Error
		if notFoundMsg != "" && errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			sp.message = notFoundMsg
		} else {
			log.Errorf("schedule request failed: %s", err)
			sp.message = failMsg
		}
		return sp.stateLocked(), nil
	}

	sp.schedule = schedule
	if rec != nil {
		sp.recommendation = rec
	}
	sp.stale = false
	return sp.stateLocked(), nil
}
