package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names, one per field.
const (
	EnvAPIURL           = "VRT_APIURL"
	EnvCIBuildID        = "VRT_CIBUILDID"
	EnvBranchName       = "VRT_BRANCHNAME"
	EnvProject          = "VRT_PROJECT"
	EnvAPIKey           = "VRT_APIKEY"
	EnvEnableSoftAssert = "VRT_ENABLESOFTASSERT"
)

// ApplyEnvironment overwrites c with any non-empty VRT_* variables.
func ApplyEnvironment(c *Config) error {
	return applyEnv(c, os.LookupEnv)
}

func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return &v
		}
		return nil
	}

	setString(&c.APIURL, get(EnvAPIURL))
	setString(&c.CIBuildID, get(EnvCIBuildID))
	setString(&c.BranchName, get(EnvBranchName))
	setString(&c.Project, get(EnvProject))
	setString(&c.APIKey, get(EnvAPIKey))

	if v := get(EnvEnableSoftAssert); v != nil {
		b, err := strconv.ParseBool(*v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvEnableSoftAssert, *v, err)
		}
		c.EnableSoftAssert = b
	}
	return nil
}
