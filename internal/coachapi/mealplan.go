package coachapi

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// SampleMealPlan returns the api's default plan. The answer is cached for an
// hour, it only changes with api deployments.
func (c *Client) SampleMealPlan(ctx context.Context) (*MealPlanResponse, error) {
	plan := &MealPlanResponse{}
	if cached, err := c.cache.Get([]byte(sampleCacheKey)); err == nil {
		if err := json.Unmarshal(cached, plan); err == nil {
			log.Tracef("sample meal plan served from cache")
			return plan, nil
		} else {
			log.Errorf("failed to unmarshal cached sample meal plan: %s", err)
		}
	}

	respBytes, err := c.do(ctx, "sampleMealPlan", http.MethodGet, "/meal-plan", nil, plan)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set([]byte(sampleCacheKey), respBytes, sampleCacheTTL); err != nil {
		log.Errorf("failed to cache sample meal plan: %s", err)
	}

	return plan, nil
}

func (c *Client) GenerateMealPlan(ctx context.Context, req MealPlanRequest) (*MealPlanResponse, error) {
	plan := &MealPlanResponse{}
	if _, err := c.do(ctx, "generateMealPlan", http.MethodPost, "/meal-plan", req, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
