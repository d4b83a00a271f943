package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateBuild opens a new build for the project.
// Uses POST /builds.
func (c *Client) CreateBuild(ctx context.Context, req CreateBuildRequest) (*BuildResponse, error) {
	var build BuildResponse
	if err := c.doJSON(ctx, http.MethodPost, "/builds", "create build", req, &build); err != nil {
		return nil, err
	}
	return &build, nil
}

// StopBuild marks the build as finished. The response body is ignored.
// Uses PATCH /builds/{buildId}.
func (c *Client) StopBuild(ctx context.Context, buildID string) error {
	if buildID == "" {
		return fmt.Errorf("stop build: empty build id")
	}
	path := "/builds/" + url.PathEscape(buildID)
	return c.doJSON(ctx, http.MethodPatch, path, "stop build", nil, nil)
}
