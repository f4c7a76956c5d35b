package views

import (
	"context"

	"github.com/2beens/dawarpower/internal/coachapi"
)

//go:generate mockgen -source=$GOFILE -destination=remote_mocks_test.go -package=views_test

type mealPlanAPI interface {
	SampleMealPlan(ctx context.Context) (*coachapi.MealPlanResponse, error)
	GenerateMealPlan(ctx context.Context, req coachapi.MealPlanRequest) (*coachapi.MealPlanResponse, error)
}

type scheduleAPI interface {
	BuildSchedule(ctx context.Context, payload coachapi.SchedulePayload) (*coachapi.ScheduleResponse, error)
	FetchStoredSchedule(ctx context.Context, payload coachapi.SchedulePayload) (*coachapi.ScheduleResponse, error)
	CoachRecommendation(ctx context.Context, req coachapi.CoachRecommendationRequest) (*coachapi.CoachRecommendation, error)
}

type wellnessAPI interface {
	RecordWellnessMetric(ctx context.Context, metric coachapi.WellnessMetric) (*coachapi.StatusResponse, error)
	ListWellnessMetrics(ctx context.Context, limit int) ([]coachapi.WellnessMetric, error)
	ImportWellnessMetrics(ctx context.Context, source string, entries []coachapi.WellnessMetric) (*coachapi.WellnessImportResult, error)
	ProviderSample(ctx context.Context, provider string) ([]coachapi.WellnessMetric, error)
}

type exerciseAPI interface {
	ListExercises(ctx context.Context) ([]coachapi.Exercise, error)
	GetExercise(ctx context.Context, id int) (*coachapi.Exercise, error)
	AddExercise(ctx context.Context, exercise coachapi.Exercise) (*coachapi.Exercise, error)
	UpdateExercise(ctx context.Context, id int, exercise coachapi.Exercise) (*coachapi.Exercise, error)
	DeleteExercise(ctx context.Context, id int) (*coachapi.StatusResponse, error)
}

type userAPI interface {
	AddUser(ctx context.Context, user coachapi.User) (*coachapi.User, error)
}
