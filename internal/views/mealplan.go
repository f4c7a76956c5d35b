package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/derive"
	"github.com/2beens/dawarpower/internal/profile"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	MsgMealPlanFailed = "Unable to generate a meal plan right now. Try again in a moment."
	MsgSampleFailed   = "Trouble loading the sample plan. Adjust the inputs and generate a fresh set."

	slotMealPlan = "meal-plan"
)

func DefaultMealPlanForm() coachapi.MealPlanForm {
	return coachapi.MealPlanForm{
		Goal:     profile.GoalMaintain,
		Calories: profile.Ptr(defaultCalorieTarget),
		Diet:     profile.DietStandard,
		Days:     3,
	}
}

func validateMealPlanForm(form coachapi.MealPlanForm) error {
	var err error
	if !form.Goal.Valid() {
		err = multierr.Append(err, fmt.Errorf("goal: invalid value %q", form.Goal))
	}
	if !form.Diet.Valid() {
		err = multierr.Append(err, fmt.Errorf("diet: invalid value %q", form.Diet))
	}
	if form.Calories != nil && (*form.Calories < 1200 || *form.Calories > 4500) {
		err = multierr.Append(err, fmt.Errorf("calories: %d out of range [1200, 4500]", *form.Calories))
	}
	if form.Days < 1 || form.Days > 5 {
		err = multierr.Append(err, fmt.Errorf("days: %d out of range [1, 5]", form.Days))
	}
	return err
}

type MealPlanState struct {
	Form         coachapi.MealPlanForm      `json:"form"`
	Plan         *coachapi.MealPlanResponse `json:"plan"`
	Loading      bool                       `json:"loading"`
	ErrorMessage string                     `json:"errorMessage"`
}

// MealPlanGenerator keeps its form in line with the profile: every emission
// re-derives goal, diet, calories and plan length.
type MealPlanGenerator struct {
	*lifecycle
	api mealPlanAPI

	mu       sync.Mutex
	current  *profile.CoachProfile
	form     coachapi.MealPlanForm
	plan     *coachapi.MealPlanResponse
	loading  bool
	errorMsg string
}

func NewMealPlanGenerator(store *profile.Store, api mealPlanAPI) *MealPlanGenerator {
	return &MealPlanGenerator{
		lifecycle: newLifecycle(store),
		api:       api,
		form:      DefaultMealPlanForm(),
	}
}

func (g *MealPlanGenerator) Activate() {
	g.activate(g.onProfile)
}

func (g *MealPlanGenerator) Deactivate() {
	g.deactivate()
	g.mu.Lock()
	g.loading = false
	g.mu.Unlock()
}

func (g *MealPlanGenerator) onProfile(p *profile.CoachProfile) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current = p
	if p == nil {
		return
	}
	g.form.Goal = p.Goal
	g.form.Diet = p.DietPreference
	if calories, ok := derive.EstimateCalories(p); ok {
		g.form.Calories = &calories
	}
	if days, ok := derive.PlanDays(p); ok {
		g.form.Days = days
	}
}

func (g *MealPlanGenerator) State() MealPlanState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *MealPlanGenerator) stateLocked() MealPlanState {
	form := g.form
	if g.form.Calories != nil {
		form.Calories = profile.Ptr(*g.form.Calories)
	}
	return MealPlanState{
		Form:         form,
		Plan:         g.plan,
		Loading:      g.loading,
		ErrorMessage: g.errorMsg,
	}
}

// HasPlan reports whether a plan (sample or generated) is on display.
func (g *MealPlanGenerator) HasPlan() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.plan != nil
}

// LoadSample shows the api's sample plan until the user generates one.
func (g *MealPlanGenerator) LoadSample(ctx context.Context) (MealPlanState, error) {
	req, err := g.begin(ctx, slotMealPlan)
	if err != nil {
		return MealPlanState{}, err
	}
	g.startLoading()

	plan, err := g.api.SampleMealPlan(req.ctx)
	return g.finish(req, plan, err, MsgSampleFailed), nil
}

// Generate asks the api for a plan. A non nil form replaces the current one.
// An invalid form is returned as error and nothing is requested.
func (g *MealPlanGenerator) Generate(ctx context.Context, form *coachapi.MealPlanForm) (MealPlanState, error) {
	g.mu.Lock()
	effective := g.form
	g.mu.Unlock()
	if form != nil {
		effective = *form
	}
	if err := validateMealPlanForm(effective); err != nil {
		return MealPlanState{}, err
	}

	req, err := g.begin(ctx, slotMealPlan)
	if err != nil {
		return MealPlanState{}, err
	}

	g.mu.Lock()
	g.form = effective
	payload := coachapi.MealPlanRequestFrom(g.current, g.form)
	g.loading = true
	g.errorMsg = ""
	g.mu.Unlock()

	plan, err := g.api.GenerateMealPlan(req.ctx, payload)
	return g.finish(req, plan, err, MsgMealPlanFailed), nil
}

func (g *MealPlanGenerator) startLoading() {
	g.mu.Lock()
	g.loading = true
	g.errorMsg = ""
	g.mu.Unlock()
}

func (g *MealPlanGenerator) finish(req *request, plan *coachapi.MealPlanResponse, err error, failMsg string) MealPlanState {
	g.mu.Lock()
	defer g.mu.Unlock()
	apply := req.done()

	if !apply {
		log.Debugf("meal plan: discarding a stale response")
		return g.stateLocked()
	}

	g.loading = false
	if err != nil {
		log.Errorf("meal plan request failed: %s", err)
		g.errorMsg = failMsg
		return g.stateLocked()
	}
	g.plan = plan
	return g.stateLocked()
}
