package coachapi

type Exercise struct {
	ID           int    `json:"id"`
	ExerciseName string `json:"exerciseName"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Image        string `json:"image"`
}

type User struct {
	UserID   int       `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Exercise *Exercise `json:"exercise"`
}

// StatusResponse is the body of delete and record calls, e.g. {"status": "deleted"}.
type StatusResponse struct {
	Status string `json:"status"`
}

type MealPlanRequest struct {
	Goal            string   `json:"goal"`
	Calories        *int     `json:"calories"`
	Diet            string   `json:"diet"`
	Days            int      `json:"days"`
	Restrictions    []string `json:"restrictions"`
	Allergies       []string `json:"allergies"`
	Preferences     string   `json:"preferences,omitempty"`
	Supplements     string   `json:"supplements,omitempty"`
	WeightGoalShort string   `json:"weightGoalShort,omitempty"`
	WeightGoalLong  string   `json:"weightGoalLong,omitempty"`
	ActivityLevel   string   `json:"activityLevel,omitempty"`
}

type MacroTargets struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

type MealIdea struct {
	Name        string   `json:"name"`
	MealType    string   `json:"mealType"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fat         int      `json:"fat"`
	PrepTime    int      `json:"prepTime"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type MealPlanDay struct {
	Day           string        `json:"day"`
	Focus         string        `json:"focus"`
	TotalCalories int           `json:"totalCalories"`
	Meals         []MealIdea    `json:"meals"`
	CoachTip      string        `json:"coachTip,omitempty"`
	Macros        *MacroTargets `json:"macros,omitempty"`
}

type MealPlanSummary struct {
	TargetCalories int          `json:"targetCalories"`
	Goal           string       `json:"goal"`
	Diet           string       `json:"diet"`
	HydrationCups  int          `json:"hydrationCups"`
	MacroTargets   MacroTargets `json:"macroTargets"`
	ActualMacros   MacroTargets `json:"actualMacros"`
	Highlights     []string     `json:"highlights"`
	Tips           []string     `json:"tips"`
}

type MealPlanResponse struct {
	Summary  MealPlanSummary `json:"summary"`
	Days     []MealPlanDay   `json:"days"`
	Rotation []string        `json:"rotation"`
}

// SchedulePayload is the profile as the scheduling endpoints expect it.
type SchedulePayload struct {
	FullName            string   `json:"fullName"`
	Occupation          string   `json:"occupation"`
	WorkStyle           string   `json:"workStyle"`
	Timezone            string   `json:"timezone"`
	Goal                string   `json:"goal"`
	PreferredWindows    []string `json:"preferredWindows"`
	EquipmentAccess     []string `json:"equipmentAccess"`
	DietPreference      string   `json:"dietPreference"`
	CommuteMinutes      *int     `json:"commuteMinutes"`
	StressLevel         string   `json:"stressLevel"`
	Age                 *int     `json:"age"`
	Gender              string   `json:"gender"`
	ActivityLevel       string   `json:"activityLevel"`
	Injuries            string   `json:"injuries"`
	DietaryRestrictions string   `json:"dietaryRestrictions"`
	DietaryAllergies    string   `json:"dietaryAllergies"`
	DietaryPreferences  string   `json:"dietaryPreferences"`
	Supplements         string   `json:"supplements"`
	WeightGoalShort     string   `json:"weightGoalShort"`
	WeightGoalLong      string   `json:"weightGoalLong"`
}

type ScheduledSession struct {
	Day             string `json:"day"`
	Window          string `json:"window"`
	Focus           string `json:"focus"`
	DurationMinutes int    `json:"durationMinutes"`
	Equipment       string `json:"equipment"`
	Intensity       string `json:"intensity"`
}

type ScheduleNotes struct {
	Summary       string `json:"summary"`
	RecoveryTip   string `json:"recoveryTip"`
	MealAlignment string `json:"mealAlignment"`
}

type ScheduleResponse struct {
	Sessions []ScheduledSession `json:"sessions"`
	Notes    ScheduleNotes      `json:"notes"`
	Insights []string           `json:"insights,omitempty"`
}

type WellnessMetric struct {
	Timestamp   string   `json:"timestamp"`
	Source      string   `json:"source,omitempty"`
	Steps       *int     `json:"steps"`
	SleepHours  *float64 `json:"sleepHours"`
	Readiness   *int     `json:"readiness"`
	EnergyLevel string   `json:"energyLevel,omitempty"`
	Comment     string   `json:"comment,omitempty"`
}

type WellnessImportRequest struct {
	Source  string           `json:"source"`
	Entries []WellnessMetric `json:"entries"`
}

// WellnessImportResult carries the api's answer plus the batch id this client
// tagged the import request with.
type WellnessImportResult struct {
	Status  string `json:"status"`
	Count   string `json:"count"`
	BatchID string `json:"batchId"`
}

type CoachRecommendationRequest struct {
	Schedule   SchedulePayload `json:"schedule"`
	MealPlan   MealPlanRequest `json:"mealPlan"`
	FocusAreas []string        `json:"focusAreas"`
}

type CoachRecommendation struct {
	ProfileHash string           `json:"profileHash"`
	Schedule    ScheduleResponse `json:"schedule"`
	MealPlan    MealPlanResponse `json:"mealPlan"`
	Takeaways   []string         `json:"takeaways"`
	NextActions []string         `json:"nextActions"`
}
