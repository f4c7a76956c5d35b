package coachapi

import (
	"github.com/2beens/dawarpower/internal/derive"
	"github.com/2beens/dawarpower/internal/profile"
)

// MealPlanForm is the part of a meal plan request the user picks directly.
type MealPlanForm struct {
	Goal     profile.Goal           `json:"goal"`
	Calories *int                   `json:"calories"`
	Diet     profile.DietPreference `json:"diet"`
	Days     int                    `json:"days"`
}

// MealPlanRequestFrom completes form with the dietary details of p. A nil
// profile gives a request with empty lists and no free text.
func MealPlanRequestFrom(p *profile.CoachProfile, form MealPlanForm) MealPlanRequest {
	req := MealPlanRequest{
		Goal:         string(form.Goal),
		Calories:     form.Calories,
		Diet:         string(form.Diet),
		Days:         form.Days,
		Restrictions: []string{},
		Allergies:    []string{},
	}
	if p == nil {
		return req
	}

	req.Restrictions = derive.ParseList(p.DietaryRestrictions)
	req.Allergies = derive.ParseList(p.DietaryAllergies)
	req.Preferences = p.DietaryPreferences
	req.Supplements = p.Supplements
	req.WeightGoalShort = p.WeightGoalShort
	req.WeightGoalLong = p.WeightGoalLong
	req.ActivityLevel = string(p.ActivityLevel)
	return req
}

// SchedulePayloadFrom copies the scheduling relevant fields of p. Calorie
// target, body measurements, notes and the stamp stay local.
func SchedulePayloadFrom(p *profile.CoachProfile) SchedulePayload {
	windows := append([]string{}, p.PreferredWindows...)
	equipment := append([]string{}, p.EquipmentAccess...)
	return SchedulePayload{
		FullName:            p.FullName,
		Occupation:          p.Occupation,
		WorkStyle:           string(p.WorkStyle),
		Timezone:            p.Timezone,
		Goal:                string(p.Goal),
		PreferredWindows:    windows,
		EquipmentAccess:     equipment,
		DietPreference:      string(p.DietPreference),
		CommuteMinutes:      p.CommuteMinutes,
		StressLevel:         string(p.StressLevel),
		Age:                 p.Age,
		Gender:              string(p.Gender),
		ActivityLevel:       string(p.ActivityLevel),
		Injuries:            p.Injuries,
		DietaryRestrictions: p.DietaryRestrictions,
		DietaryAllergies:    p.DietaryAllergies,
		DietaryPreferences:  p.DietaryPreferences,
		Supplements:         p.Supplements,
		WeightGoalShort:     p.WeightGoalShort,
		WeightGoalLong:      p.WeightGoalLong,
	}
}
