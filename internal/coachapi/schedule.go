package coachapi

import (
	"context"
	"net/http"
)

func (c *Client) BuildSchedule(ctx context.Context, payload SchedulePayload) (*ScheduleResponse, error) {
	schedule := &ScheduleResponse{}
	if _, err := c.do(ctx, "buildSchedule", http.MethodPost, "/schedule", payload, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// FetchStoredSchedule returns the schedule the api last built for the same
// profile payload. The api answers 404 when there is none.
func (c *Client) FetchStoredSchedule(ctx context.Context, payload SchedulePayload) (*ScheduleResponse, error) {
	schedule := &ScheduleResponse{}
	if _, err := c.do(ctx, "fetchStoredSchedule", http.MethodPost, "/schedule/fetch", payload, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (c *Client) CoachRecommendation(ctx context.Context, req CoachRecommendationRequest) (*CoachRecommendation, error) {
	if req.FocusAreas == nil {
		req.FocusAreas = []string{}
	}
	recommendation := &CoachRecommendation{}
	if _, err := c.do(ctx, "coachRecommendation", http.MethodPost, "/coach/recommendation", req, recommendation); err != nil {
		return nil, err
	}
	return recommendation, nil
}
