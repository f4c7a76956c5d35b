package coachapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2beens/dawarpower/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

type recordedCall struct {
	endpoint string
	outcome  string
}

type testObserver struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (o *testObserver) ObserveRemoteCall(endpoint, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, recordedCall{endpoint, outcome})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	httpClient := server.Client()
	t.Cleanup(func() {
		httpClient.CloseIdleConnections()
		server.Close()
	})
	return NewClient(server.URL+"/fit", httpClient, opts...)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", nil)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, http.DefaultClient, c.httpClient)

	c = NewClient("http://api.local/fit/", nil)
	assert.Equal(t, "http://api.local/fit", c.BaseURL())
}

func TestClient_ListExercises(t *testing.T) {
	observer := &testObserver{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fit/exercise", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Write([]byte(`[{"id":1,"exerciseName":"Squats","category":"legs","description":"deep","sets":3,"reps":10,"image":""}]`))
	}, WithCallObserver(observer))

	exercises, err := c.ListExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, Exercise{ID: 1, ExerciseName: "Squats", Category: "legs", Description: "deep", Sets: 3, Reps: 10}, exercises[0])
	assert.Equal(t, []recordedCall{{"listExercises", "ok"}}, observer.calls)
}

func TestClient_ExerciseAndUserCRUD(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch r.Method {
		case http.MethodDelete:
			w.Write([]byte(`{"status":"deleted"}`))
		case http.MethodGet:
			if r.URL.Path == "/fit/user/7" {
				w.Write([]byte(`{"userId":7,"name":"Ana","email":"ana@x.io","password":"p","exercise":null}`))
				return
			}
			w.Write([]byte(`{"id":4,"exerciseName":"Row"}`))
		default:
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		}
	})
	ctx := context.Background()

	created, err := c.AddExercise(ctx, Exercise{ExerciseName: "Row", Sets: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Sets)

	got, err := c.GetExercise(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Row", got.ExerciseName)

	updated, err := c.UpdateExercise(ctx, 4, Exercise{ID: 4, ExerciseName: "Cable row"})
	require.NoError(t, err)
	assert.Equal(t, "Cable row", updated.ExerciseName)

	status, err := c.DeleteExercise(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "deleted", status.Status)

	user, err := c.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Nil(t, user.Exercise)

	addedUser, err := c.AddUser(ctx, User{Name: "Bo", Email: "bo@x.io"})
	require.NoError(t, err)
	assert.Equal(t, "Bo", addedUser.Name)

	_, err = c.UpdateUser(ctx, 7, User{UserID: 7, Name: "Ana B"})
	require.NoError(t, err)
	_, err = c.DeleteUser(ctx, 7)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /fit/exercise",
		"GET /fit/exercise/4",
		"PUT /fit/exercise/4",
		"DELETE /fit/exercise/4",
		"GET /fit/user/7",
		"POST /fit/user",
		"PUT /fit/user/7",
		"DELETE /fit/user/7",
	}, seen)
}

func TestClient_ErrorStatus(t *testing.T) {
	observer := &testObserver{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Schedule not found for profile"}`))
	}, WithCallObserver(observer))

	p := profile.FakeProfile(1)
	schedule, err := c.FetchStoredSchedule(context.Background(), SchedulePayloadFrom(&p))
	require.Error(t, err)
	assert.Nil(t, schedule)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, `coach api: status 404: {"detail":"Schedule not found for profile"}`, err.Error())
	assert.Equal(t, []recordedCall{{"fetchStoredSchedule", "error"}}, observer.calls)
}

func TestClient_BadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal listUsers response")
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c := NewClient(server.URL, server.Client())
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http client do")

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_SampleMealPlanIsCached(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fit/meal-plan", r.URL.Path)
		w.Write([]byte(`{"summary":{"targetCalories":2200,"goal":"maintain","diet":"standard","hydrationCups":9},"days":[{"day":"Day 1","focus":"Balance","totalCalories":2150,"meals":[]}],"rotation":["Oats"]}`))
	})
	ctx := context.Background()

	first, err := c.SampleMealPlan(ctx)
	require.NoError(t, err)
	second, err := c.SampleMealPlan(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2200, first.Summary.TargetCalories)
	assert.Equal(t, []string{"Oats"}, first.Rotation)
	assert.EqualValues(t, 1, hits.Load())

	c.ClearCache()
	_, err = c.SampleMealPlan(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}

func TestClient_SampleMealPlan_ErrorNotCached(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"summary":{"targetCalories":2000},"days":[],"rotation":[]}`))
	})
	ctx := context.Background()

	_, err := c.SampleMealPlan(ctx)
	assert.EqualError(t, err, "coach api: status 502")

	plan, err := c.SampleMealPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2000, plan.Summary.TargetCalories)
}

func TestClient_GenerateMealPlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "fat_loss", req["goal"])
		assert.Equal(t, float64(2116), req["calories"])
		assert.Equal(t, []any{"peanuts", "shellfish", "dairy"}, req["restrictions"])
		assert.Equal(t, []any{}, req["allergies"])
		assert.NotContains(t, req, "supplements")

		w.Write([]byte(`{"summary":{"targetCalories":2116,"goal":"fat_loss","diet":"vegan","macroTargets":{"protein":160,"carbs":200,"fat":60}},"days":[],"rotation":[]}`))
	})

	p := &profile.CoachProfile{DietaryRestrictions: "peanuts,  shellfish ,,dairy", ActivityLevel: profile.ActivityLight}
	req := MealPlanRequestFrom(p, MealPlanForm{
		Goal:     profile.GoalFatLoss,
		Calories: profile.Ptr(2116),
		Diet:     profile.DietVegan,
		Days:     3,
	})

	plan, err := c.GenerateMealPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, MacroTargets{Protein: 160, Carbs: 200, Fat: 60}, plan.Summary.MacroTargets)
}

func TestClient_BuildScheduleAndRecommendation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fit/schedule":
			w.Write([]byte(`{"sessions":[{"day":"Monday","window":"midday","focus":"Strength","durationMinutes":40,"equipment":"dumbbells","intensity":"moderate"}],"notes":{"summary":"s","recoveryTip":"r","mealAlignment":"m"},"insights":["Readiness steady"]}`))
		case "/fit/coach/recommendation":
			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []any{}, req["focusAreas"])
			w.Write([]byte(`{"profileHash":"abc","schedule":{"sessions":[],"notes":{}},"mealPlan":{"rotation":["Oats"]},"takeaways":["t"],"nextActions":["n"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()
	p := profile.FakeProfile(3)

	schedule, err := c.BuildSchedule(ctx, SchedulePayloadFrom(&p))
	require.NoError(t, err)
	require.Len(t, schedule.Sessions, 1)
	assert.Equal(t, 40, schedule.Sessions[0].DurationMinutes)
	assert.Equal(t, []string{"Readiness steady"}, schedule.Insights)

	rec, err := c.CoachRecommendation(ctx, CoachRecommendationRequest{
		Schedule: SchedulePayloadFrom(&p),
		MealPlan: MealPlanRequestFrom(&p, MealPlanForm{Goal: p.Goal, Diet: p.DietPreference, Days: 3}),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.ProfileHash)
	assert.Equal(t, []string{"Oats"}, rec.MealPlan.Rotation)
	assert.Equal(t, []string{"n"}, rec.NextActions)
}

func TestClient_Wellness(t *testing.T) {
	var importRequestID atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/fit/wellness-sync":
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			w.Write([]byte(`[{"timestamp":"2026-01-01T07:00:00Z","steps":900},{"timestamp":"2026-01-02T07:00:00Z","steps":1200}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/fit/wellness-sync":
			w.Write([]byte(`{"status":"recorded"}`))
		case r.URL.Path == "/fit/wellness-sync/provider/whoop":
			w.Write([]byte(`[{"timestamp":"2026-01-03T07:00:00Z","source":"whoop","readiness":81}]`))
		case r.URL.Path == "/fit/wellness-sync/import":
			importRequestID.Store(r.Header.Get(RequestIDHeader))
			var req WellnessImportRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "whoop", req.Source)
			w.Write([]byte(`{"status":"imported","count":"1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	c.newID = func() string { return "batch-1" }
	ctx := context.Background()

	metrics, err := c.ListWellnessMetrics(ctx, 0)
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, 1200, *metrics[1].Steps)
	assert.Nil(t, metrics[0].SleepHours)

	status, err := c.RecordWellnessMetric(ctx, WellnessMetric{Timestamp: "2026-01-04T07:00:00Z", EnergyLevel: "steady"})
	require.NoError(t, err)
	assert.Equal(t, "recorded", status.Status)

	sample, err := c.ProviderSample(ctx, " Whoop ")
	require.NoError(t, err)
	require.Len(t, sample, 1)
	assert.Equal(t, 81, *sample[0].Readiness)

	result, err := c.ImportWellnessMetrics(ctx, "whoop", sample)
	require.NoError(t, err)
	assert.Equal(t, &WellnessImportResult{Status: "imported", Count: "1", BatchID: "batch-1"}, result)
	assert.Equal(t, "batch-1", importRequestID.Load())

	_, err = c.ProviderSample(ctx, "  ")
	assert.EqualError(t, err, "provider is empty")
}

func TestSchedulePayloadFrom(t *testing.T) {
	p := profile.FakeProfile(5)
	p.CalorieTarget = profile.Ptr(2400)
	p.Notes = "private"

	payload := SchedulePayloadFrom(&p)
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, excluded := range []string{"calorieTarget", "heightCm", "weightKg", "notes", "lastUpdated"} {
		assert.NotContains(t, fields, excluded)
	}
	assert.Equal(t, p.FullName, fields["fullName"])
	assert.Len(t, fields, 20)

	payload.PreferredWindows = append(payload.PreferredWindows, "mutated")
	assert.NotContains(t, p.PreferredWindows, "mutated")
}

func TestMealPlanRequestFrom_NilProfile(t *testing.T) {
	req := MealPlanRequestFrom(nil, MealPlanForm{Goal: profile.GoalMaintain, Diet: profile.DietStandard, Days: 3})
	assert.Equal(t, MealPlanRequest{
		Goal:         "maintain",
		Diet:         "standard",
		Days:         3,
		Restrictions: []string{},
		Allergies:    []string{},
	}, req)
}
