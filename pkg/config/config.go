// Package config resolves the client configuration from a file, the
// environment and explicit overrides.
package config

import (
	"errors"
	"fmt"
)

// DefaultAPIURL is used when no source sets apiUrl.
const DefaultAPIURL = "http://localhost:4200"

// Config is the resolved client configuration.
//
// The file key for CIBuildID is "aciBuildIdpiUrl"; existing vrt.json files
// use that spelling. "ciBuildId" is accepted on read as well.
type Config struct {
	APIURL           string `json:"apiUrl" yaml:"apiUrl"`
	CIBuildID        string `json:"aciBuildIdpiUrl,omitempty" yaml:"aciBuildIdpiUrl,omitempty"`
	BranchName       string `json:"branchName" yaml:"branchName"`
	Project          string `json:"project" yaml:"project"`
	APIKey           string `json:"apiKey" yaml:"apiKey"`
	EnableSoftAssert bool   `json:"enableSoftAssert" yaml:"enableSoftAssert"`
}

// Defaults returns a Config holding only the built-in defaults.
func Defaults() Config {
	return Config{APIURL: DefaultAPIURL}
}

// MissingFieldError reports a required field that no source provided.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: missing required field %q", e.Field)
}

// IsMissingField reports whether err is a *MissingFieldError.
func IsMissingField(err error) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf)
}

// CheckComplete returns a *MissingFieldError for the first required field
// that is empty, checked in the order apiUrl, branchName, project, apiKey.
func (c Config) CheckComplete() error {
	required := []struct {
		name  string
		value string
	}{
		{"apiUrl", c.APIURL},
		{"branchName", c.BranchName},
		{"project", c.Project},
		{"apiKey", c.APIKey},
	}
	for _, r := range required {
		if r.value == "" {
			return &MissingFieldError{Field: r.name}
		}
	}
	return nil
}

// Redacted returns a copy with the API key masked, for display.
func (c Config) Redacted() Config {
	if c.APIKey == "" {
		return c
	}
	key := c.APIKey
	if len(key) > 4 {
		c.APIKey = "****" + key[len(key)-4:]
	} else {
		c.APIKey = "****"
	}
	return c
}

// Overrides holds explicitly supplied values. Nil fields are left alone.
type Overrides struct {
	APIURL           *string
	CIBuildID        *string
	BranchName       *string
	Project          *string
	APIKey           *string
	EnableSoftAssert *bool
}

// Apply copies every non-nil override onto c.
func (o Overrides) Apply(c *Config) {
	setString(&c.APIURL, o.APIURL)
	setString(&c.CIBuildID, o.CIBuildID)
	setString(&c.BranchName, o.BranchName)
	setString(&c.Project, o.Project)
	setString(&c.APIKey, o.APIKey)
	if o.EnableSoftAssert != nil {
		c.EnableSoftAssert = *o.EnableSoftAssert
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Load resolves the configuration: defaults, then the file at path (or the
// first default file found when path is empty), then VRT_* environment
// variables, then overrides. The result is checked with CheckComplete.
func Load(path string, overrides Overrides) (Config, error) {
	cfg, err := Resolve(path, overrides)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.CheckComplete(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve merges all sources like Load but does not check completeness.
func Resolve(path string, overrides Overrides) (Config, error) {
	cfg := Defaults()

	file, err := findFile(path)
	if err != nil {
		return Config{}, err
	}
	if file != "" {
		if err := mergeFile(&cfg, file); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnvironment(&cfg); err != nil {
		return Config{}, err
	}
	overrides.Apply(&cfg)
	return cfg, nil
}
