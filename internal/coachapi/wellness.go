package coachapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultWellnessLimit = 10

func (c *Client) RecordWellnessMetric(ctx context.Context, metric WellnessMetric) (*StatusResponse, error) {
	status := &StatusResponse{}
	if _, err := c.do(ctx, "recordWellnessMetric", http.MethodPost, "/wellness-sync", metric, status); err != nil {
		return nil, err
	}
	return status, nil
}

// ListWellnessMetrics returns up to limit of the latest metrics, oldest first.
func (c *Client) ListWellnessMetrics(ctx context.Context, limit int) ([]WellnessMetric, error) {
	if limit <= 0 {
		limit = DefaultWellnessLimit
	}
	var metrics []WellnessMetric
	path := fmt.Sprintf("/wellness-sync?limit=%d", limit)
	if _, err := c.do(ctx, "listWellnessMetrics", http.MethodGet, path, nil, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// ImportWellnessMetrics uploads entries as one batch. The batch id doubles as
// the request id, so the import can be found in the api logs.
func (c *Client) ImportWellnessMetrics(ctx context.Context, source string, entries []WellnessMetric) (*WellnessImportResult, error) {
	if entries == nil {
		entries = []WellnessMetric{}
	}
	batchID := c.newID()
	result := &WellnessImportResult{}
	req := WellnessImportRequest{Source: source, Entries: entries}
	if _, err := c.doWithID(ctx, "importWellnessMetrics", http.MethodPost, "/wellness-sync/import", batchID, req, result); err != nil {
		return nil, err
	}
	result.BatchID = batchID
	return result, nil
}

// ProviderSample fetches the sample metrics of a wearable provider
// (apple_health, fitbit, whoop).
func (c *Client) ProviderSample(ctx context.Context, provider string) ([]WellnessMetric, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return nil, fmt.Errorf("provider is empty")
	}
	var metrics []WellnessMetric
	path := "/wellness-sync/provider/" + url.PathEscape(provider)
	if _, err := c.do(ctx, "providerSample", http.MethodGet, path, nil, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}
