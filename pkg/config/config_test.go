package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIURL, EnvCIBuildID, EnvBranchName, EnvProject, EnvAPIKey, EnvEnableSoftAssert} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCheckComplete_Order(t *testing.T) {
	cfg := Config{}
	steps := []struct {
		wantField string
		fill      func(*Config)
	}{
		{"apiUrl", func(c *Config) { c.APIURL = "1" }},
		{"branchName", func(c *Config) { c.BranchName = "2" }},
		{"project", func(c *Config) { c.Project = "3" }},
		{"apiKey", func(c *Config) { c.APIKey = "4" }},
	}
	for _, s := range steps {
		err := cfg.CheckComplete()
		var mf *MissingFieldError
		if !errors.As(err, &mf) {
			t.Fatalf("expected MissingFieldError for %s, got %v", s.wantField, err)
		}
		if mf.Field != s.wantField {
			t.Errorf("Field = %q, want %q", mf.Field, s.wantField)
		}
		s.fill(&cfg)
	}
	if err := cfg.CheckComplete(); err != nil {
		t.Errorf("complete config: %v", err)
	}
}

func TestLoadFile_JSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "vrt.json", `{
		"apiUrl": "http://vrt:4200",
		"aciBuildIdpiUrl": "ci-1",
		"branchName": "develop",
		"project": "web",
		"apiKey": "secret",
		"enableSoftAssert": true
	}`)

	got, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := Config{
		APIURL:           "http://vrt:4200",
		CIBuildID:        "ci-1",
		BranchName:       "develop",
		Project:          "web",
		APIKey:           "secret",
		EnableSoftAssert: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "vrt.yml", "branchName: main\nproject: web\napiKey: secret\nciBuildId: ci-2\n")

	got, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := Config{
		APIURL:     DefaultAPIURL,
		CIBuildID:  "ci-2",
		BranchName: "main",
		Project:    "web",
		APIKey:     "secret",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_MisspelledKeyWins(t *testing.T) {
	got, err := Parse([]byte(`{"ciBuildId": "alt", "aciBuildIdpiUrl": "legacy"}`), ".json")
	if err != nil {
		t.Fatal(err)
	}
	if got.CIBuildID != "legacy" {
		t.Errorf("CIBuildID = %q, want legacy", got.CIBuildID)
	}
}

func TestParse_DetectsFormat(t *testing.T) {
	fromJSON, err := Parse([]byte(`  {"project": "a"}`), "")
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, err := Parse([]byte("project: a\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	if fromJSON.Project != "a" || fromYAML.Project != "a" {
		t.Errorf("got json=%q yaml=%q", fromJSON.Project, fromYAML.Project)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte(`{"project": `), ".json"); err == nil {
		t.Error("expected JSON parse error")
	}
	if _, err := Parse([]byte("project: [\n"), ".yaml"); err == nil {
		t.Error("expected YAML parse error")
	}
}

func TestApplyEnvironment(t *testing.T) {
	env := map[string]string{
		EnvAPIURL:           "http://env:4200",
		EnvCIBuildID:        "ci-env",
		EnvBranchName:       "env-branch",
		EnvProject:          "env-project",
		EnvAPIKey:           "env-key",
		EnvEnableSoftAssert: "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	var got Config
	if err := applyEnv(&got, lookup); err != nil {
		t.Fatal(err)
	}
	want := Config{
		APIURL:           "http://env:4200",
		CIBuildID:        "ci-env",
		BranchName:       "env-branch",
		Project:          "env-project",
		APIKey:           "env-key",
		EnableSoftAssert: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnvironment_EmptyIgnored(t *testing.T) {
	clearEnv(t)
	cfg := Config{Project: "keep", EnableSoftAssert: true}
	if err := ApplyEnvironment(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Project != "keep" || !cfg.EnableSoftAssert {
		t.Errorf("empty env values should not override: %+v", cfg)
	}
}

func TestApplyEnvironment_BadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEnableSoftAssert, "maybe")
	var cfg Config
	if err := ApplyEnvironment(&cfg); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "custom.json", `{
		"apiUrl": "http://file:4200",
		"branchName": "file-branch",
		"project": "file-project",
		"apiKey": "file-key"
	}`)
	t.Setenv(EnvProject, "env-project")
	t.Setenv(EnvAPIKey, "env-key")
	key := "override-key"

	got, err := Load(p, Overrides{APIKey: &key})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		APIURL:     "http://file:4200",
		BranchName: "file-branch",
		Project:    "env-project",
		APIKey:     "override-key",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultPath(t *testing.T) {
	clearEnv(t)
	testChdir(t, t.TempDir())
	writeFile(t, ".", "vrt.yaml", "branchName: main\nproject: web\napiKey: k\nenableSoftAssert: true\n")

	got, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Project != "web" || !got.EnableSoftAssert || got.APIURL != DefaultAPIURL {
		t.Errorf("unexpected config: %+v", got)
	}
}

func TestLoad_JSONPreferredOverYAML(t *testing.T) {
	clearEnv(t)
	testChdir(t, t.TempDir())
	writeFile(t, ".", "vrt.json", `{"branchName":"main","project":"from-json","apiKey":"k"}`)
	writeFile(t, ".", "vrt.yaml", "branchName: main\nproject: from-yaml\napiKey: k\n")

	got, err := Load("", Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Project != "from-json" {
		t.Errorf("Project = %q, want from-json", got.Project)
	}
}

func TestLoad_NoSources(t *testing.T) {
	clearEnv(t)
	testChdir(t, t.TempDir())

	_, err := Load("", Overrides{})
	var mf *MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mf.Field != "branchName" {
		t.Errorf("Field = %q, want branchName", mf.Field)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)
	testChdir(t, t.TempDir())
	t.Setenv(EnvBranchName, "main")
	t.Setenv(EnvProject, "web")

	_, err := Load("", Overrides{})
	if !IsMissingField(err) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	var mf *MissingFieldError
	errors.As(err, &mf)
	if mf.Field != "apiKey" {
		t.Errorf("Field = %q, want apiKey", mf.Field)
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "bob.json"), Overrides{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOverrides_Apply(t *testing.T) {
	url, branch, soft := "http://o", "o-branch", true
	cfg := Config{APIURL: "http://a", BranchName: "a", Project: "p"}
	Overrides{APIURL: &url, BranchName: &branch, EnableSoftAssert: &soft}.Apply(&cfg)

	want := Config{APIURL: "http://o", BranchName: "o-branch", Project: "p", EnableSoftAssert: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestRedacted(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"", ""},
		{"abc", "****"},
		{"0123456789", "****6789"},
	}
	for _, tt := range tests {
		got := Config{APIKey: tt.key}.Redacted().APIKey
		if got != tt.want {
			t.Errorf("Redacted(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
