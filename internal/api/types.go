package api

// --- Request types ---

// CreateBuildRequest is the body of POST /builds.
type CreateBuildRequest struct {
	Project    string `json:"project"`
	BranchName string `json:"branchName"`
	CIBuildID  string `json:"ciBuildId,omitempty"`
}

// IgnoreArea is a rectangle, in pixels, excluded from comparison.
type IgnoreArea struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CreateTestRunRequest is the body of POST /test-runs.
// The misspelled diffTollerancePercent key is what the service expects.
type CreateTestRunRequest struct {
	ProjectID             string       `json:"projectId"`
	BuildID               string       `json:"buildId"`
	BranchName            string       `json:"branchName"`
	Name                  string       `json:"name"`
	ImageBase64           string       `json:"imageBase64"`
	OS                    string       `json:"os,omitempty"`
	Browser               string       `json:"browser,omitempty"`
	Viewport              string       `json:"viewport,omitempty"`
	Device                string       `json:"device,omitempty"`
	CustomTags            string       `json:"customTags,omitempty"`
	DiffTollerancePercent float64      `json:"diffTollerancePercent"`
	Comment               string       `json:"comment,omitempty"`
	IgnoreAreas           []IgnoreArea `json:"ignoreAreas,omitempty"`
}

// --- Response types ---

// BuildResponse is returned by POST /builds.
type BuildResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	Number     int    `json:"number,omitempty"`
	CIBuildID  string `json:"ciBuildId,omitempty"`
	BranchName string `json:"branchName,omitempty"`
	Status     string `json:"status,omitempty"`
}

// TestRunResponse is returned by POST /test-runs.
// BaselineName and DiffName are nil when the service omits them.
type TestRunResponse struct {
	ID                    string  `json:"id,omitempty"`
	Status                string  `json:"status"`
	URL                   string  `json:"url"`
	ImageName             string  `json:"imageName"`
	BaselineName          *string `json:"baselineName,omitempty"`
	DiffName              *string `json:"diffName,omitempty"`
	DiffPercent           float64 `json:"diffPercent,omitempty"`
	DiffTollerancePercent float64 `json:"diffTollerancePercent,omitempty"`
	PixelMisMatchCount    int     `json:"pixelMisMatchCount,omitempty"`
	Merge                 bool    `json:"merge,omitempty"`
}

// errorBody is the error shape the service returns on non-2xx responses.
// Message is either a string or a list of validation messages.
type errorBody struct {
	StatusCode int         `json:"statusCode"`
	Message    messageList `json:"message"`
	Error      string      `json:"error"`
}
