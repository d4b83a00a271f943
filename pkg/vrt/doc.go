// Package vrt is a client for the Visual Regression Tracker service.
//
// A Tracker owns one build at a time:
//
//	tracker, err := vrt.New(cfg, vrt.WithLogger(logger))
//	session, err := tracker.Start(ctx)
//	defer session.Close()
//	result, err := tracker.TrackBytes(ctx, "home page", png, vrt.WithViewport("1280x720"))
//
// With soft assert disabled, any status other than ok is returned as an
// *AssertionError. With soft assert enabled, the result is always returned
// and the caller inspects Status.
//
// A Tracker is not safe for concurrent use.
package vrt
