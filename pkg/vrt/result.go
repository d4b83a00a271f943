package vrt

import "vrt/internal/api"

// TestRunResult is the interpreted response to a submitted screenshot.
// BaselineURL and DiffURL are nil when the service returned no such image.
type TestRunResult struct {
	ID                 string
	Status             Status
	URL                string
	ImageURL           string
	BaselineURL        *string
	DiffURL            *string
	DiffPercent        float64
	PixelMisMatchCount int
}

// Interpret maps a raw test run response to a TestRunResult and applies the
// soft-assert policy. An unknown status is a *ProtocolError regardless of
// softAssert. With softAssert disabled, every status but ok yields an
// *AssertionError carrying the result in place of a return value.
func Interpret(resp *api.TestRunResponse, softAssert bool) (*TestRunResult, error) {
	status, err := ParseStatus(resp.Status)
	if err != nil {
		return nil, err
	}

	result := &TestRunResult{
		ID:                 resp.ID,
		Status:             status,
		URL:                resp.URL,
		ImageURL:           resp.URL + "/" + resp.ImageName,
		BaselineURL:        joinOptional(resp.URL, resp.BaselineName),
		DiffURL:            joinOptional(resp.URL, resp.DiffName),
		DiffPercent:        resp.DiffPercent,
		PixelMisMatchCount: resp.PixelMisMatchCount,
	}

	if !softAssert && status != StatusOk {
		return nil, &AssertionError{Status: status, URL: result.URL, Result: result}
	}
	return result, nil
}

func joinOptional(base string, name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	u := base + "/" + *name
	return &u
}
