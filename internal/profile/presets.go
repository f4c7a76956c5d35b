package profile

import "sort"

const (
	PresetHybridHustle = "hybrid_hustle"
	PresetTravelReset  = "travel_reset"
	PresetHomeStrength = "home_strength"
)

// PresetCard is the quick start teaser shown next to each preset.
type PresetCard struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Blurb    string `json:"blurb"`
}

// presets must never be handed out directly, always through Preset (a copy).
var presets = map[string]CoachProfile{
	PresetHybridHustle: {
		FullName:            "Hybrid Hustle",
		Occupation:          "Product Manager",
		WorkStyle:           WorkStyleHybrid,
		Timezone:            "EST",
		Goal:                GoalMaintain,
		CalorieTarget:       Ptr(2200),
		Age:                 Ptr(33),
		Gender:              GenderFemale,
		ActivityLevel:       ActivityModerate,
		PreferredWindows:    []string{WindowPreWork, WindowMidday, WindowEvening},
		EquipmentAccess:     []string{EquipmentDumbbells, EquipmentBands},
		DietPreference:      DietStandard,
		CommuteMinutes:      Ptr(45),
		StressLevel:         StressModerate,
		HeightCm:            Ptr(175.0),
		WeightKg:            Ptr(76.0),
		Injuries:            "Occasional knee tightness",
		DietaryRestrictions: "shellfish",
		DietaryPreferences:  "Mediterranean flavors",
		Supplements:         "Multivitamin, omega-3",
		WeightGoalShort:     "Lose 5 lbs in 8 weeks",
		WeightGoalLong:      "Maintain tone year-round",
		Notes:               "Two office days, travels monthly.",
	},
	PresetTravelReset: {
		FullName:            "Travel Reset",
		Occupation:          "Consultant",
		WorkStyle:           WorkStyleOnsite,
		Timezone:            "PST",
		Goal:                GoalFatLoss,
		CalorieTarget:       Ptr(2000),
		Age:                 Ptr(38),
		Gender:              GenderMale,
		ActivityLevel:       ActivityLight,
		PreferredWindows:    []string{WindowEarlyMorning, WindowLateAfternoon, WindowWeekend},
		EquipmentAccess:     []string{EquipmentBodyweight, EquipmentOutdoors},
		DietPreference:      DietPescatarian,
		CommuteMinutes:      Ptr(20),
		StressLevel:         StressHigh,
		HeightCm:            Ptr(168.0),
		WeightKg:            Ptr(68.0),
		Injuries:            "Lower back stiffness",
		DietaryRestrictions: "dairy",
		DietaryPreferences:  "Seafood, bowls",
		Supplements:         "Vitamin D",
		WeightGoalShort:     "Drop 10 lbs for summer travel",
		WeightGoalLong:      "Improve stamina on client trips",
		Notes:               "Hotels most of the week, focus on mobility and HIIT.",
	},
	PresetHomeStrength: {
		FullName:           "Home Strength",
		Occupation:         "Designer",
		WorkStyle:          WorkStyleRemote,
		Timezone:           "CST",
		Goal:               GoalMuscleGain,
		CalorieTarget:      Ptr(2600),
		Age:                Ptr(29),
		Gender:             GenderNonBinary,
		ActivityLevel:      ActivityHigh,
		PreferredWindows:   []string{WindowMidday, WindowEvening},
		EquipmentAccess:    []string{EquipmentFullGym},
		DietPreference:     DietStandard,
		CommuteMinutes:     Ptr(0),
		StressLevel:        StressLow,
		HeightCm:           Ptr(182.0),
		WeightKg:           Ptr(82.0),
		Injuries:           "None",
		DietaryPreferences: "High protein bowls",
		Supplements:        "Creatine, whey protein",
		WeightGoalShort:    "Add 5 lbs lean mass",
		WeightGoalLong:     "Compete in obstacle race",
		Notes:              "Garage gym with barbell, loves progressive overload.",
	},
}

var presetCards = []PresetCard{
	{
		Key:      PresetHybridHustle,
		Title:    "Hybrid hustle",
		Subtitle: "Office + remote mix",
		Blurb:    "Balanced strength and conditioning around morning commutes.",
	},
	{
		Key:      PresetTravelReset,
		Title:    "Travel reset",
		Subtitle: "Frequent flights",
		Blurb:    "Bodyweight HIIT and mobility blocks for hotel weeks.",
	},
	{
		Key:      PresetHomeStrength,
		Title:    "Home strength",
		Subtitle: "Remote lifter",
		Blurb:    "Progressive overload with garage gym access.",
	},
}

// Preset returns a copy of the template stored under key. The copy carries a
// zero LastUpdated; the store stamps it when the preset is applied.
func Preset(key string) (*CoachProfile, bool) {
	p, ok := presets[key]
	if !ok {
		return nil, false
	}
	c := p.Clone()
	c.Normalize()
	return c, true
}

// PresetKeys returns the catalog keys in a stable order.
func PresetKeys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func PresetCards() []PresetCard {
	return append([]PresetCard{}, presetCards...)
}
