package profile

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// CoachProfile describes the coaching preferences, constraints and goals of the
// single local user. Optional numerics are nil when unset and serialize as null.
type CoachProfile struct {
	FullName   string    `json:"fullName"`
	Occupation string    `json:"occupation"`
	WorkStyle  WorkStyle `json:"workStyle"`
	Timezone   string    `json:"timezone"`
	Goal       Goal      `json:"goal"`

	CalorieTarget *int     `json:"calorieTarget"`
	HeightCm      *float64 `json:"heightCm"`
	WeightKg      *float64 `json:"weightKg"`
	Age           *int     `json:"age"`

	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`

	PreferredWindows []string       `json:"preferredWindows"`
	EquipmentAccess  []string       `json:"equipmentAccess"`
	DietPreference   DietPreference `json:"dietPreference"`
	CommuteMinutes   *int           `json:"commuteMinutes"`
	StressLevel      StressLevel    `json:"stressLevel"`

	Injuries            string `json:"injuries"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	DietaryAllergies    string `json:"dietaryAllergies"`
	DietaryPreferences  string `json:"dietaryPreferences"`
	Supplements         string `json:"supplements"`
	WeightGoalShort     string `json:"weightGoalShort"`
	WeightGoalLong      string `json:"weightGoalLong"`
	Notes               string `json:"notes"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// Clone returns a deep copy; slices and optional numerics are not shared.
func (p *CoachProfile) Clone() *CoachProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.CalorieTarget = clonePtr(p.CalorieTarget)
	c.HeightCm = clonePtr(p.HeightCm)
	c.WeightKg = clonePtr(p.WeightKg)
	c.Age = clonePtr(p.Age)
	c.CommuteMinutes = clonePtr(p.CommuteMinutes)
	c.PreferredWindows = append([]string{}, p.PreferredWindows...)
	c.EquipmentAccess = append([]string{}, p.EquipmentAccess...)
	return &c
}

// Normalize fills the defaults every stored profile carries: set-valued fields
// are never nil and the open enums fall back to their defaults when empty.
func (p *CoachProfile) Normalize() {
	if p.PreferredWindows == nil {
		p.PreferredWindows = []string{}
	}
	if p.EquipmentAccess == nil {
		p.EquipmentAccess = []string{}
	}
	if p.Gender == "" {
		p.Gender = DefaultGender
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = DefaultActivityLevel
	}
}

type numericRange struct {
	min, max float64
}

var (
	CalorieTargetRange  = numericRange{1200, 4500}
	HeightCmRange       = numericRange{120, 250}
	WeightKgRange       = numericRange{40, 250}
	AgeRange            = numericRange{10, 100}
	CommuteMinutesRange = numericRange{0, 240}
)

// Validate checks the profile against the form rules. All violations are
// reported together.
func (p *CoachProfile) Validate() error {
	var err error

	if len(strings.TrimSpace(p.FullName)) < 2 {
		err = multierr.Append(err, fmt.Errorf("fullName: at least 2 characters required"))
	}
	if len(strings.TrimSpace(p.Occupation)) < 2 {
		err = multierr.Append(err, fmt.Errorf("occupation: at least 2 characters required"))
	}
	if strings.TrimSpace(p.Timezone) == "" {
		err = multierr.Append(err, fmt.Errorf("timezone: required"))
	}
	if !p.WorkStyle.Valid() {
		err = multierr.Append(err, fmt.Errorf("workStyle: invalid value %q", p.WorkStyle))
	}
	if !p.Goal.Valid() {
		err = multierr.Append(err, fmt.Errorf("goal: invalid value %q", p.Goal))
	}
	if !p.DietPreference.Valid() {
		err = multierr.Append(err, fmt.Errorf("dietPreference: invalid value %q", p.DietPreference))
	}
	if !p.StressLevel.Valid() {
		err = multierr.Append(err, fmt.Errorf("stressLevel: invalid value %q", p.StressLevel))
	}

	err = multierr.Append(err, checkRange("calorieTarget", p.CalorieTarget, CalorieTargetRange))
	err = multierr.Append(err, checkRange("heightCm", p.HeightCm, HeightCmRange))
	err = multierr.Append(err, checkRange("weightKg", p.WeightKg, WeightKgRange))
	err = multierr.Append(err, checkRange("age", p.Age, AgeRange))
	err = multierr.Append(err, checkRange("commuteMinutes", p.CommuteMinutes, CommuteMinutesRange))

	return err
}

func checkRange[T int | float64](field string, v *T, r numericRange) error {
	if v == nil {
		return nil
	}
	if float64(*v) < r.min || float64(*v) > r.max {
		return fmt.Errorf("%s: %v out of range [%v, %v]", field, *v, r.min, r.max)
	}
	return nil
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Ptr is a small helper for filling optional numeric fields.
func Ptr[T any](v T) *T {
	return &v
}
