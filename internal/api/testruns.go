package api

import (
	"context"
	"net/http"
)

// SubmitTestRun posts one screenshot for comparison against its baseline.
// Uses POST /test-runs.
func (c *Client) SubmitTestRun(ctx context.Context, req CreateTestRunRequest) (*TestRunResponse, error) {
	var run TestRunResponse
	if err := c.doJSON(ctx, http.MethodPost, "/test-runs", "submit test run", req, &run); err != nil {
		return nil, err
	}
	return &run, nil
}
