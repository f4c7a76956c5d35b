package views

import (
	"time"

	"github.com/2beens/dawarpower/internal/profile"

	log "github.com/sirupsen/logrus"
)

// Events is told about profile changes the user made through a view.
type Events interface {
	ProfileSaved()
	ProfileCleared()
	PresetApplied(key string)
}

type noopEvents struct{}

func (noopEvents) ProfileSaved()        {}
func (noopEvents) ProfileCleared()      {}
func (noopEvents) PresetApplied(string) {}

type options struct {
	clock  func() time.Time
	events Events
}

type Option func(*options)

func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithEvents(events Events) Option {
	return func(o *options) {
		if events != nil {
			o.events = events
		}
	}
}

// Remote holds the api clients of the views. A client may stay nil when its
// views are never used.
type Remote struct {
	MealPlan  mealPlanAPI
	Schedule  scheduleAPI
	Wellness  wellnessAPI
	Exercises exerciseAPI
	Users     userAPI
}

// Views holds every screen of the coach, all sharing one profile store.
type Views struct {
	Editor     *ProfileEditor
	Onboarding *OnboardingWizard
	QuickStart *QuickStart
	MealPlan   *MealPlanGenerator
	Schedule   *SchedulePanel
	Board      *TaskBoard
	Wellness   *WellnessSync
	Exercises  *ExerciseCatalog
	Signup     *Signup
}

func New(store *profile.Store, remote Remote, opts ...Option) *Views {
	o := options{
		clock:  time.Now,
		events: noopEvents{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	editor := NewProfileEditor(store)
	editor.events = o.events

	return &Views{
		Editor: editor,
		Onboarding: NewOnboardingWizard(store, func(p profile.CoachProfile) {
			log.Infof("onboarding completed: goal [%s], work style [%s]", p.Goal, p.WorkStyle)
			o.events.ProfileSaved()
		}),
		QuickStart: NewQuickStart(store, func(key string) {
			log.Infof("quick start preset applied: %s", key)
			o.events.PresetApplied(key)
		}),
		MealPlan:  NewMealPlanGenerator(store, remote.MealPlan),
		Schedule:  NewSchedulePanel(store, remote.Schedule),
		Board:     NewTaskBoard(store),
		Wellness:  NewWellnessSync(store, remote.Wellness, o.clock),
		Exercises: NewExerciseCatalog(store, remote.Exercises),
		Signup:    NewSignup(store, remote.Users),
	}
}

func (v *Views) ActivateAll() {
	v.Editor.Activate()
	v.MealPlan.Activate()
	v.Schedule.Activate()
	v.Board.Activate()
	v.Wellness.Activate()
	v.Exercises.Activate()
	v.Signup.Activate()
}

// DeactivateAll releases every subscription and cancels all remote calls
// still in flight.
func (v *Views) DeactivateAll() {
	v.Editor.Deactivate()
	v.MealPlan.Deactivate()
	v.Schedule.Deactivate()
	v.Board.Deactivate()
	v.Wellness.Deactivate()
	v.Exercises.Deactivate()
	v.Signup.Deactivate()
}
