package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/dawarpower/internal/profile"

	"go.uber.org/multierr"
)

type IdentityStep struct {
	FullName   string            `json:"fullName"`
	Occupation string            `json:"occupation"`
	WorkStyle  profile.WorkStyle `json:"workStyle"`
	Goal       profile.Goal      `json:"goal"`
	Timezone   string            `json:"timezone"`
}

type ScheduleStep struct {
	PreferredWindows []string              `json:"preferredWindows"`
	EquipmentAccess  []string              `json:"equipmentAccess"`
	ActivityLevel    profile.ActivityLevel `json:"activityLevel"`
	StressLevel      profile.StressLevel   `json:"stressLevel"`
}

type NutritionStep struct {
	DietPreference      profile.DietPreference `json:"dietPreference"`
	CalorieTarget       *int                   `json:"calorieTarget"`
	DietaryRestrictions string                 `json:"dietaryRestrictions"`
	DietaryPreferences  string                 `json:"dietaryPreferences"`
}

// OnboardingForm is the three step wizard's input.
type OnboardingForm struct {
	Identity  IdentityStep  `json:"identity"`
	Schedule  ScheduleStep  `json:"schedule"`
	Nutrition NutritionStep `json:"nutrition"`
}

func DefaultOnboardingForm() OnboardingForm {
	return OnboardingForm{
		Identity: IdentityStep{
			WorkStyle: profile.WorkStyleHybrid,
			Goal:      profile.GoalMaintain,
		},
		Schedule: ScheduleStep{
			PreferredWindows: []string{},
			EquipmentAccess:  []string{},
			ActivityLevel:    profile.DefaultActivityLevel,
			StressLevel:      profile.StressModerate,
		},
		Nutrition: NutritionStep{
			DietPreference: profile.DietStandard,
			CalorieTarget:  profile.Ptr(defaultCalorieTarget),
		},
	}
}

// Profile builds the complete profile the wizard saves. Fields the wizard
// does not ask for get their empty values.
func (f OnboardingForm) Profile() profile.CoachProfile {
	p := profile.CoachProfile{
		FullName:            f.Identity.FullName,
		Occupation:          f.Identity.Occupation,
		WorkStyle:           f.Identity.WorkStyle,
		Timezone:            f.Identity.Timezone,
		Goal:                f.Identity.Goal,
		CalorieTarget:       f.Nutrition.CalorieTarget,
		Gender:              profile.GenderPreferNotToSay,
		ActivityLevel:       f.Schedule.ActivityLevel,
		PreferredWindows:    append([]string{}, f.Schedule.PreferredWindows...),
		EquipmentAccess:     append([]string{}, f.Schedule.EquipmentAccess...),
		DietPreference:      f.Nutrition.DietPreference,
		StressLevel:         f.Schedule.StressLevel,
		DietaryRestrictions: f.Nutrition.DietaryRestrictions,
		DietaryPreferences:  f.Nutrition.DietaryPreferences,
	}
	p.Normalize()
	return p
}

func (f OnboardingForm) validate() error {
	var err error
	if strings.TrimSpace(string(f.Schedule.ActivityLevel)) == "" {
		err = multierr.Append(err, errors.New("activityLevel: required"))
	}
	p := f.Profile()
	return multierr.Append(err, p.Validate())
}

// OnboardingWizard saves a first profile from three short steps. It renders no
// profile state, so it holds no store subscription.
type OnboardingWizard struct {
	store       *profile.Store
	onCompleted func(profile.CoachProfile)
}

func NewOnboardingWizard(store *profile.Store, onCompleted func(profile.CoachProfile)) *OnboardingWizard {
	return &OnboardingWizard{
		store:       store,
		onCompleted: onCompleted,
	}
}

// Submit validates every step and saves the profile. The completion callback
// runs after the save.
func (w *OnboardingWizard) Submit(ctx context.Context, form OnboardingForm) (*profile.CoachProfile, error) {
	if err := form.validate(); err != nil {
		return nil, fmt.Errorf("onboarding: %w", err)
	}

	saved := w.store.Save(ctx, form.Profile())
	if w.onCompleted != nil {
		w.onCompleted(*saved)
	}
	return saved, nil
}
