// Package derive turns a profile into display values and request defaults.
// Every function is pure and accepts a nil profile.
package derive

import (
	"math"
	"strings"

	"github.com/2beens/dawarpower/internal/profile"
)

const (
	kgToLbs = 2.20462

	minPlanDays = 3
	maxPlanDays = 5

	NoWindowsFallback   = "No preferred windows yet"
	NoEquipmentFallback = "Bodyweight default"
	NoDietFallback      = "Standard"
)

// EstimateCalories returns the calorie target when set, otherwise an estimate
// from body weight and goal. No weight, no estimate.
func EstimateCalories(p *profile.CoachProfile) (int, bool) {
	if p == nil {
		return 0, false
	}
	if p.CalorieTarget != nil && *p.CalorieTarget > 0 {
		return *p.CalorieTarget, true
	}
	if p.WeightKg == nil || *p.WeightKg <= 0 {
		return 0, false
	}

	multiplier := 14.0
	switch p.Goal {
	case profile.GoalFatLoss:
		multiplier = 12
	case profile.GoalMuscleGain:
		multiplier = 16
	}
	return int(math.Round(*p.WeightKg * kgToLbs * multiplier)), true
}

// PlanDays derives the plan length from the number of preferred windows,
// clamped to [3, 5]. Without windows the caller keeps its own default.
func PlanDays(p *profile.CoachProfile) (int, bool) {
	if p == nil || len(p.PreferredWindows) == 0 {
		return 0, false
	}
	return min(maxPlanDays, max(minPlanDays, len(p.PreferredWindows))), true
}

func WindowsSummary(p *profile.CoachProfile) string {
	if p == nil || len(p.PreferredWindows) == 0 {
		return NoWindowsFallback
	}
	return joinLabels(WindowOptions, p.PreferredWindows)
}

func EquipmentSummary(p *profile.CoachProfile) string {
	if p == nil || len(p.EquipmentAccess) == 0 {
		return NoEquipmentFallback
	}
	return joinLabels(EquipmentOptions, p.EquipmentAccess)
}

func DietSummary(p *profile.CoachProfile) string {
	if p == nil || p.DietPreference == "" {
		return NoDietFallback
	}
	return labelOf(DietOptions, string(p.DietPreference))
}

func GoalLabel(goal profile.Goal) string {
	return labelOf(GoalOptions, string(goal))
}

// NutritionGoalLabel is the meal plan wording of a goal.
func NutritionGoalLabel(goal profile.Goal) string {
	return labelOf(NutritionGoalOptions, string(goal))
}

func DietLabel(diet profile.DietPreference) string {
	return labelOf(DietOptions, string(diet))
}

func ActivityLabel(level profile.ActivityLevel) string {
	return labelOf(ActivityOptions, string(level))
}

func GenderLabel(gender profile.Gender) string {
	return labelOf(GenderOptions, string(gender))
}

func WorkStyleLabel(ws profile.WorkStyle) string {
	return labelOf(WorkStyleOptions, string(ws))
}

// ParseList splits a comma separated free text field, trims every item and
// drops the empty ones. Order is kept.
func ParseList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// FocusSummary is the training guidance shown above the weekly board.
func FocusSummary(p *profile.CoachProfile) string {
	if p == nil {
		return "Drag movements into the days that fit. The coach will adapt once you save your profile."
	}

	var base string
	switch p.Goal {
	case profile.GoalFatLoss:
		base = "Alternate metabolic circuits with strength maintenance sets."
	case profile.GoalMuscleGain:
		base = "Prioritise progressive overload with push/pull/legs waves."
	default:
		base = "Blend strength upkeep with mobility to stay competition ready."
	}

	equipmentHint := "We will anchor bodyweight and mobility-heavy sessions"
	if len(p.EquipmentAccess) > 0 {
		equipmentHint = "We will lean on " + strings.Join(p.EquipmentAccess, ", ")
	}

	return base + " " + strings.ToLower(equipmentHint) + " and protect your preferred windows so nothing slips."
}

func joinLabels(options []Option, values []string) string {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		labels = append(labels, labelOf(options, v))
	}
	return strings.Join(labels, ", ")
}
