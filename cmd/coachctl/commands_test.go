package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/profile"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApi struct {
	fetchedDay string
	imported   *coachapi.WellnessImportRequest
	updated    *coachapi.User
	deletedID  string
}

func (f *fakeApi) server(t *testing.T) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
	r.HandleFunc("/schedule", func(w http.ResponseWriter, r *http.Request) {
		var payload coachapi.SchedulePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "CLI Check", payload.FullName)
		writeJSON(w, coachapi.ScheduleResponse{
			Sessions: []coachapi.ScheduledSession{{Day: "Tuesday", Window: "midday"}},
		})
	}).Methods("POST")
	r.HandleFunc("/schedule/fetch", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, coachapi.ScheduleResponse{
			Sessions: []coachapi.ScheduledSession{{Day: f.fetchedDay, Window: "midday"}},
		})
	}).Methods("POST")
	r.HandleFunc("/wellness-sync/provider/{provider}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["provider"] != "whoop" {
			http.Error(w, "unknown provider", http.StatusNotFound)
			return
		}
		writeJSON(w, []coachapi.WellnessMetric{
			{Timestamp: "2025-01-02T06:00:00Z", Source: "whoop", Readiness: profile.Ptr(81)},
		})
	}).Methods("GET")
	r.HandleFunc("/wellness-sync/import", func(w http.ResponseWriter, r *http.Request) {
		f.imported = &coachapi.WellnessImportRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(f.imported))
		writeJSON(w, map[string]string{"status": "imported", "count": "1"})
	}).Methods("POST")
	r.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []coachapi.User{
			{UserID: 1, Name: "Ana", Email: "ana@example.com", Password: "hunter22"},
			{UserID: 2, Name: "Bo", Email: "bo@example.com", Password: "hunter33"},
		})
	}).Methods("GET")
	r.HandleFunc("/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "1" {
			http.Error(w, "no such user", http.StatusNotFound)
			return
		}
		writeJSON(w, coachapi.User{UserID: 1, Name: "Ana", Email: "ana@example.com", Password: "hunter22"})
	}).Methods("GET")
	r.HandleFunc("/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.updated = &coachapi.User{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(f.updated))
		writeJSON(w, f.updated)
	}).Methods("PUT")
	r.HandleFunc("/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.deletedID = mux.Vars(r)["id"]
		writeJSON(w, coachapi.StatusResponse{Status: "deleted"})
	}).Methods("DELETE")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		writeJSON(w, map[string]any{"status": "ok", "profilePresent": true})
	}).Methods("GET")

	s := httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: coachctl")

	code, _, _ = runCLI(t, "dance")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "wellness")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "wellness", "whoop", "delete")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "users", "show")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "users", "delete", "abc")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "users", "rename", "1")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "-nope", "presets")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Presets(t *testing.T) {
	code, stdout, _ := runCLI(t, "presets")
	require.Equal(t, exitOK, code)

	var cards []profile.PresetCard
	require.NoError(t, json.Unmarshal([]byte(stdout), &cards))
	assert.Len(t, cards, len(profile.PresetKeys()))
}

func TestRun_ScheduleCheck(t *testing.T) {
	api := &fakeApi{fetchedDay: "Tuesday"}
	s := api.server(t)

	code, stdout, stderr := runCLI(t, "-api", s.URL, "schedule-check")
	require.Equal(t, exitOK, code, stderr)

	var schedule coachapi.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &schedule))
	require.Len(t, schedule.Sessions, 1)
	assert.Equal(t, "Tuesday", schedule.Sessions[0].Day)

	api.fetchedDay = "Friday"
	code, _, stderr = runCLI(t, "-api", s.URL, "schedule-check")
	assert.Equal(t, exitMismatch, code)
	assert.Contains(t, stderr, "mismatch between generated and fetched schedule")
}

func TestRun_Wellness(t *testing.T) {
	api := &fakeApi{}
	s := api.server(t)

	code, stdout, stderr := runCLI(t, "-api", s.URL, "wellness", "whoop")
	require.Equal(t, exitOK, code, stderr)
	var entries []coachapi.WellnessMetric
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 81, *entries[0].Readiness)
	assert.Nil(t, api.imported)

	code, stdout, stderr = runCLI(t, "-api", s.URL, "wellness", "whoop", "import")
	require.Equal(t, exitOK, code, stderr)
	require.NotNil(t, api.imported)
	assert.Equal(t, "whoop", api.imported.Source)
	assert.Len(t, api.imported.Entries, 1)
	var result coachapi.WellnessImportResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "imported", result.Status)
	assert.NotEmpty(t, result.BatchID)

	code, _, stderr = runCLI(t, "-api", s.URL, "wellness", "garmin")
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr, "request failed")
}

func TestRun_Status(t *testing.T) {
	s := (&fakeApi{}).server(t)

	code, stdout, stderr := runCLI(t, "-companion", s.URL+"/", "status")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `"status": "ok"`)
}

func TestRun_Users(t *testing.T) {
	api := &fakeApi{}
	s := api.server(t)

	code, stdout, stderr := runCLI(t, "-api", s.URL, "users")
	require.Equal(t, exitOK, code, stderr)
	var users []coachapi.User
	require.NoError(t, json.Unmarshal([]byte(stdout), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "Bo", users[1].Name)
	assert.NotContains(t, stdout, "hunter")

	code, stdout, stderr = runCLI(t, "-api", s.URL, "users", "show", "1")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "ana@example.com")
	assert.NotContains(t, stdout, "hunter22")

	code, _, stderr = runCLI(t, "-api", s.URL, "users", "show", "9")
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr, "get user 9")

	code, stdout, stderr = runCLI(t, "-api", s.URL, "users", "rename", "1", "Ana B")
	require.Equal(t, exitOK, code, stderr)
	require.NotNil(t, api.updated)
	assert.Equal(t, "Ana B", api.updated.Name)
	assert.Equal(t, "ana@example.com", api.updated.Email)
	assert.NotContains(t, stdout, "hunter22")

	code, stdout, stderr = runCLI(t, "-api", s.URL, "users", "delete", "2")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "2", api.deletedID)
	assert.Contains(t, stdout, `"status": "deleted"`)
}
