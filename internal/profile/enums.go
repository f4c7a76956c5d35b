package profile

type WorkStyle string

const (
	WorkStyleRemote WorkStyle = "remote"
	WorkStyleHybrid WorkStyle = "hybrid"
	WorkStyleOnsite WorkStyle = "onsite"
)

func (w WorkStyle) Valid() bool {
	switch w {
	case WorkStyleRemote, WorkStyleHybrid, WorkStyleOnsite:
		return true
	}
	return false
}

type Goal string

const (
	GoalFatLoss    Goal = "fat_loss"
	GoalMaintain   Goal = "maintain"
	GoalMuscleGain Goal = "muscle_gain"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalFatLoss, GoalMaintain, GoalMuscleGain:
		return true
	}
	return false
}

type DietPreference string

const (
	DietStandard    DietPreference = "standard"
	DietVegetarian  DietPreference = "vegetarian"
	DietVegan       DietPreference = "vegan"
	DietPescatarian DietPreference = "pescatarian"
	DietGlutenFree  DietPreference = "gluten_free"
)

func (d DietPreference) Valid() bool {
	switch d {
	case DietStandard, DietVegetarian, DietVegan, DietPescatarian, DietGlutenFree:
		return true
	}
	return false
}

type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

func (s StressLevel) Valid() bool {
	switch s {
	case StressLow, StressModerate, StressHigh:
		return true
	}
	return false
}

// Gender is an open set: the named values are the ones the forms offer,
// any other non-empty raw value is kept as-is (see IsKnown).
type Gender string

const (
	GenderFemale         Gender = "female"
	GenderMale           Gender = "male"
	GenderNonBinary      Gender = "non_binary"
	GenderPreferNotToSay Gender = "prefer_not_to_say"

	DefaultGender = GenderPreferNotToSay
)

func (g Gender) IsKnown() bool {
	switch g {
	case GenderFemale, GenderMale, GenderNonBinary, GenderPreferNotToSay:
		return true
	}
	return false
}

// ActivityLevel is an open set, same rules as Gender.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"

	DefaultActivityLevel = ActivityModerate
)

func (a ActivityLevel) IsKnown() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityHigh:
		return true
	}
	return false
}

// Preferred training windows offered by the forms.
const (
	WindowEarlyMorning  = "early_morning"
	WindowPreWork       = "pre_work"
	WindowMidday        = "midday"
	WindowLateAfternoon = "late_afternoon"
	WindowEvening       = "evening"
	WindowWeekend       = "weekend"
)

// Equipment options offered by the forms.
const (
	EquipmentBodyweight = "bodyweight"
	EquipmentDumbbells  = "dumbbells"
	EquipmentKettlebell = "kettlebell"
	EquipmentBands      = "bands"
	EquipmentFullGym    = "full_gym"
	EquipmentOutdoors   = "outdoors"
)
