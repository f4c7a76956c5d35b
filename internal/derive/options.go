package derive

import "github.com/2beens/dawarpower/internal/profile"

// Option is a value/label pair for select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	GoalOptions = []Option{
		{string(profile.GoalFatLoss), "Fat loss"},
		{string(profile.GoalMaintain), "Maintain performance"},
		{string(profile.GoalMuscleGain), "Build muscle"},
	}

	// NutritionGoalOptions label the same goals in meal plan wording.
	NutritionGoalOptions = []Option{
		{string(profile.GoalFatLoss), "Fat loss"},
		{string(profile.GoalMaintain), "Maintenance"},
		{string(profile.GoalMuscleGain), "Muscle gain"},
	}

	DietOptions = []Option{
		{string(profile.DietStandard), "Standard"},
		{string(profile.DietVegetarian), "Vegetarian"},
		{string(profile.DietVegan), "Vegan"},
		{string(profile.DietPescatarian), "Pescatarian"},
		{string(profile.DietGlutenFree), "Gluten free"},
	}

	GenderOptions = []Option{
		{string(profile.GenderFemale), "Female"},
		{string(profile.GenderMale), "Male"},
		{string(profile.GenderNonBinary), "Non-binary"},
		{string(profile.GenderPreferNotToSay), "Prefer not to say"},
	}

	ActivityOptions = []Option{
		{string(profile.ActivitySedentary), "Sedentary (little to no exercise)"},
		{string(profile.ActivityLight), "Light (1-2 sessions/week)"},
		{string(profile.ActivityModerate), "Moderate (3-4 sessions/week)"},
		{string(profile.ActivityHigh), "High (5+ sessions/week)"},
	}

	WorkStyleOptions = []Option{
		{string(profile.WorkStyleRemote), "Remote"},
		{string(profile.WorkStyleHybrid), "Hybrid"},
		{string(profile.WorkStyleOnsite), "On-site"},
	}

	StressOptions = []Option{
		{string(profile.StressLow), "Low"},
		{string(profile.StressModerate), "Moderate"},
		{string(profile.StressHigh), "High"},
	}

	WindowOptions = []Option{
		{profile.WindowEarlyMorning, "Early morning (5–7 AM)"},
		{profile.WindowPreWork, "Before work (7–9 AM)"},
		{profile.WindowMidday, "Midday focus block"},
		{profile.WindowLateAfternoon, "Late afternoon reset"},
		{profile.WindowEvening, "Evening (after 6 PM)"},
		{profile.WindowWeekend, "Weekend flexibility"},
	}

	EquipmentOptions = []Option{
		{profile.EquipmentBodyweight, "Bodyweight only"},
		{profile.EquipmentDumbbells, "Dumbbells"},
		{profile.EquipmentKettlebell, "Kettlebell"},
		{profile.EquipmentBands, "Resistance bands"},
		{profile.EquipmentFullGym, "Full gym access"},
		{profile.EquipmentOutdoors, "Outdoor / running"},
	}

	// DayOptions are the plan lengths the meal plan form offers.
	DayOptions = []int{3, 4, 5}
)

// labelOf looks value up in options; unknown values pass through unchanged.
func labelOf(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
