package views

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/dawarpower/internal/derive"
	"github.com/2beens/dawarpower/internal/profile"
)

const defaultCalorieTarget = 2200

// DefaultProfileForm is what the editor shows before any profile exists and
// after a clear.
func DefaultProfileForm() profile.CoachProfile {
	return profile.CoachProfile{
		WorkStyle:        profile.WorkStyleHybrid,
		Goal:             profile.GoalMaintain,
		CalorieTarget:    profile.Ptr(defaultCalorieTarget),
		Gender:           profile.DefaultGender,
		ActivityLevel:    profile.DefaultActivityLevel,
		PreferredWindows: []string{},
		EquipmentAccess:  []string{},
		DietPreference:   profile.DietStandard,
		StressLevel:      profile.StressModerate,
	}
}

// ProfileSummary is the read-only card of the saved profile.
type ProfileSummary struct {
	Goal      string `json:"goal"`
	Activity  string `json:"activity"`
	Gender    string `json:"gender"`
	Windows   string `json:"windows"`
	Equipment string `json:"equipment"`
	Diet      string `json:"diet"`
	Calories  *int   `json:"calories"`
}

type EditorState struct {
	Form    profile.CoachProfile  `json:"form"`
	Saved   *profile.CoachProfile `json:"saved"`
	Summary *ProfileSummary       `json:"summary"`
}

type ProfileEditor struct {
	*lifecycle
	events Events

	mu    sync.Mutex
	form  profile.CoachProfile
	saved *profile.CoachProfile
}

func NewProfileEditor(store *profile.Store) *ProfileEditor {
	return &ProfileEditor{
		lifecycle: newLifecycle(store),
		events:    noopEvents{},
		form:      DefaultProfileForm(),
	}
}

func (e *ProfileEditor) Activate() {
	e.activate(e.onProfile)
}

func (e *ProfileEditor) Deactivate() {
	e.deactivate()
}

func (e *ProfileEditor) onProfile(p *profile.CoachProfile) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.saved = p
	if p == nil {
		// keep whatever the user typed
		return
	}
	e.form = *p.Clone()
	e.form.LastUpdated = time.Time{}
}

func (e *ProfileEditor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := EditorState{
		Form:  *e.form.Clone(),
		Saved: e.saved.Clone(),
	}
	if e.saved != nil {
		state.Summary = summarize(e.saved)
	}
	return state
}

// Submit validates the form and saves it as the new profile. An invalid form
// leaves the store untouched.
func (e *ProfileEditor) Submit(ctx context.Context, form profile.CoachProfile) error {
	if !e.isActive() {
		return ErrInactive
	}

	form.Normalize()
	if err := form.Validate(); err != nil {
		e.mu.Lock()
		e.form = *form.Clone()
		e.mu.Unlock()
		return err
	}

	e.store.Save(ctx, form)
	e.events.ProfileSaved()
	return nil
}

// Clear removes the stored profile and resets the form to its defaults.
func (e *ProfileEditor) Clear(ctx context.Context) error {
	if !e.isActive() {
		return ErrInactive
	}

	e.store.Clear(ctx)
	e.events.ProfileCleared()

	e.mu.Lock()
	e.form = DefaultProfileForm()
	e.mu.Unlock()
	return nil
}

func summarize(p *profile.CoachProfile) *ProfileSummary {
	summary := &ProfileSummary{
		Goal:      derive.GoalLabel(p.Goal),
		Activity:  derive.ActivityLabel(p.ActivityLevel),
		Gender:    derive.GenderLabel(p.Gender),
		Windows:   derive.WindowsSummary(p),
		Equipment: derive.EquipmentSummary(p),
		Diet:      derive.DietSummary(p),
	}
	if calories, ok := derive.EstimateCalories(p); ok {
		summary.Calories = &calories
	}
	return summary
}
