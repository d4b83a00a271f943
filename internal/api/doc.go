// Package api is the transport client for the Visual Regression Tracker
// service.
//
// Usage:
//
//	client, err := api.New(apiURL, apiKey, project, api.WithTimeout(30*time.Second))
//	build, err := client.CreateBuild(ctx, api.CreateBuildRequest{Project: project, BranchName: "main"})
//	run, err := client.SubmitTestRun(ctx, api.CreateTestRunRequest{BuildID: build.ID, ...})
//	err = client.StopBuild(ctx, build.ID)
//
// Every request carries the apiKey and project headers. Each call makes a
// single attempt; retries are left to the caller.
package api
