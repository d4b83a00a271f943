package main

import (
	"context"
	"errors"
	"io"

	"vrt/pkg/vrt"
)

// withBuild opens a build, runs fn and stops the build however fn returns.
func withBuild(ctx context.Context, tracker *vrt.Tracker, fn func() error) (err error) {
	session, err := tracker.Start(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn()
}

// report prints the outcome of one Track call. A failed comparison still
// prints its URLs before the error is returned.
func report(w io.Writer, name string, result *vrt.TestRunResult, err error) error {
	var ae *vrt.AssertionError
	if errors.As(err, &ae) && ae.Result != nil {
		printResult(w, name, ae.Result)
		return err
	}
	if err != nil {
		return err
	}
	printResult(w, name, result)
	return nil
}
