package vrt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"vrt/internal/api"
	"vrt/pkg/config"
)

// fakeService stands in for the VRT API and records what it receives.
type fakeService struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	requests  []string
	lastBuild api.CreateBuildRequest
	lastRun   map[string]any
	headers   http.Header

	build   api.BuildResponse
	testRun string // raw JSON body for POST /test-runs
	failOn  string // "METHOD /path-prefix" answered with 500
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	f := &fakeService{
		t:       t,
		build:   api.BuildResponse{ID: "build-1", ProjectID: "project-1"},
		testRun: `{"status":"ok","url":"Url1","imageName":"img.png"}`,
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeService) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	f.requests = append(f.requests, key)
	f.headers = r.Header.Clone()

	if f.failOn != "" && strings.HasPrefix(key, f.failOn) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"statusCode":500,"message":"Internal server error"}`))
		return
	}

	switch {
	case key == "POST /builds":
		json.NewDecoder(r.Body).Decode(&f.lastBuild)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(f.build)
	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/builds/"):
		w.Write([]byte(`{"id":"ignored"}`))
	case key == "POST /test-runs":
		f.lastRun = nil
		json.NewDecoder(r.Body).Decode(&f.lastRun)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(f.testRun))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeService) requestLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeService) run() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastRun
}

func (f *fakeService) buildRequest() api.CreateBuildRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBuild
}

func (f *fakeService) header(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.headers.Get(key)
}

// set mutates the canned responses under the lock.
func (f *fakeService) set(fn func(f *fakeService)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeService) config() config.Config {
	return config.Config{
		APIURL:     f.server.URL,
		CIBuildID:  "build id",
		BranchName: "branch name",
		Project:    "project",
		APIKey:     "api key",
	}
}

func (f *fakeService) tracker(cfg config.Config) *Tracker {
	f.t.Helper()
	tr, err := New(cfg, WithHTTPClient(f.server.Client()))
	if err != nil {
		f.t.Fatal(err)
	}
	return tr
}
