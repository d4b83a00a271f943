package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched in order when no explicit path is given.
var DefaultPaths = []string{"vrt.json", "vrt.yaml", "vrt.yml"}

// fileConfig mirrors Config with pointer fields so that keys absent from the
// file do not clobber earlier values.
type fileConfig struct {
	APIURL           *string `json:"apiUrl" yaml:"apiUrl"`
	CIBuildID        *string `json:"aciBuildIdpiUrl" yaml:"aciBuildIdpiUrl"`
	CIBuildIDAlt     *string `json:"ciBuildId" yaml:"ciBuildId"`
	BranchName       *string `json:"branchName" yaml:"branchName"`
	Project          *string `json:"project" yaml:"project"`
	APIKey           *string `json:"apiKey" yaml:"apiKey"`
	EnableSoftAssert *bool   `json:"enableSoftAssert" yaml:"enableSoftAssert"`
}

// LoadFile reads a config file (YAML or JSON) on top of the defaults.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse merges config bytes onto the defaults. ext is the file extension
// used as a format hint; empty means detect from content.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Defaults()
	fc, err := parse(data, ext)
	if err != nil {
		return Config{}, err
	}
	fc.apply(&cfg)
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	fc, err := parse(data, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fc.apply(cfg)
	return nil
}

func parse(data []byte, ext string) (*fileConfig, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		// Detect: JSON starts with {, anything else is YAML
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var fc fileConfig
	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	}
	return &fc, nil
}

func (fc *fileConfig) apply(c *Config) {
	setString(&c.APIURL, fc.APIURL)
	setString(&c.CIBuildID, fc.CIBuildIDAlt)
	setString(&c.CIBuildID, fc.CIBuildID)
	setString(&c.BranchName, fc.BranchName)
	setString(&c.Project, fc.Project)
	setString(&c.APIKey, fc.APIKey)
	if fc.EnableSoftAssert != nil {
		c.EnableSoftAssert = *fc.EnableSoftAssert
	}
}

// findFile returns the file to read. An explicit path must exist; for the
// default search, no file at all yields "".
func findFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}
	for _, p := range DefaultPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config file: %w", err)
		}
	}
	return "", nil
}
