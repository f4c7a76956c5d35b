package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/dawarpower/internal/profile"
	"github.com/2beens/dawarpower/internal/views"

	"github.com/stretchr/testify/require"
)

// SetupTest resets the remote calls rate limit bucket between tests.
func (s *IntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	keys, err := s.redisClient.Keys(ctx, "rate:*").Result()
	s.Require().NoError(err)
	if len(keys) > 0 {
		s.Require().NoError(s.redisClient.Del(ctx, keys...).Err())
	}
}

func (s *IntegrationTestSuite) doRequest(method, path string, body any) (int, []byte) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, serverEndpoint+path, payload)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestProfileIsPersistedInRedis() {
	ctx := context.Background()
	p := profile.FakeProfile(42)

	code, body := s.doRequest(http.MethodPut, "/profile", p)
	s.Require().Equal(http.StatusOK, code, string(body))

	raw, err := s.redisClient.Get(ctx, "coach::"+profile.StorageKey).Bytes()
	s.Require().NoError(err)
	var stored profile.CoachProfile
	s.Require().NoError(json.Unmarshal(raw, &stored))
	s.Equal(p.FullName, stored.FullName)
	s.False(stored.LastUpdated.IsZero())

	code, body = s.doRequest(http.MethodGet, "/profile", nil)
	s.Require().Equal(http.StatusOK, code)
	var state views.EditorState
	s.Require().NoError(json.Unmarshal(body, &state))
	s.Require().NotNil(state.Saved)
	s.Equal(p.FullName, state.Saved.FullName)
	s.Equal(p.FullName, state.Form.FullName)

	code, _ = s.doRequest(http.MethodDelete, "/profile", nil)
	s.Require().Equal(http.StatusOK, code)
	exists, err := s.redisClient.Exists(ctx, "coach::"+profile.StorageKey).Result()
	s.Require().NoError(err)
	s.Equal(int64(0), exists)
}

func (s *IntegrationTestSuite) TestScheduleFromPreset() {
	code, body := s.doRequest(http.MethodPost, "/presets/"+profile.PresetHomeStrength, nil)
	s.Require().Equal(http.StatusOK, code, string(body))

	preset, ok := profile.Preset(profile.PresetHomeStrength)
	s.Require().True(ok)

	code, body = s.doRequest(http.MethodPost, "/schedule", nil)
	s.Require().Equal(http.StatusOK, code, string(body))
	var state views.ScheduleState
	s.Require().NoError(json.Unmarshal(body, &state))
	s.True(state.HasProfile)
	s.False(state.Stale)
	s.Require().NotNil(state.Schedule)
	s.Len(state.Schedule.Sessions, len(preset.PreferredWindows))

	payloads := s.remoteApi.schedulePayloads()
	s.Require().NotEmpty(payloads)
	last := payloads[len(payloads)-1]
	s.Equal(preset.FullName, last.FullName)
	s.Equal(string(preset.Goal), last.Goal)

	// another preset makes the built schedule stale
	code, _ = s.doRequest(http.MethodPost, "/presets/"+profile.PresetTravelReset, nil)
	s.Require().Equal(http.StatusOK, code)
	code, body = s.doRequest(http.MethodGet, "/schedule", nil)
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(body, &state))
	s.True(state.Stale)
}

func (s *IntegrationTestSuite) TestWellnessSubmit() {
	code, body := s.doRequest(http.MethodPost, "/wellness", views.WellnessForm{
		Steps:       profile.Ptr(8000),
		Readiness:   profile.Ptr(77),
		EnergyLevel: "steady",
	})
	s.Require().Equal(http.StatusOK, code, string(body))

	var state views.WellnessState
	s.Require().NoError(json.Unmarshal(body, &state))
	s.Equal(views.MsgSynced, state.Feedback)
	s.Require().NotEmpty(state.History)
	s.Equal(77, *state.History[0].Readiness)
}

func (s *IntegrationTestSuite) TestRemoteCallsAreRateLimited() {
	t := s.T()
	for i := 0; i < remoteCallsPerMin; i++ {
		code, body := s.doRequest(http.MethodPost, "/wellness", views.WellnessForm{Steps: profile.Ptr(i)})
		require.Equal(t, http.StatusOK, code, string(body))
	}

	code, _ := s.doRequest(http.MethodPost, "/wellness", views.WellnessForm{Steps: profile.Ptr(1)})
	require.Equal(t, http.StatusTooManyRequests, code)

	// reads are never limited
	code, _ = s.doRequest(http.MethodGet, "/wellness", nil)
	require.Equal(t, http.StatusOK, code)
}
