package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vrt/internal/logging"
	"vrt/pkg/config"
	"vrt/pkg/vrt"
)

type rootFlags struct {
	configPath string
	apiURL     string
	apiKey     string
	project    string
	branch     string
	ciBuildID  string
	softAssert bool
	timeout    time.Duration
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	root := &cobra.Command{
		Use:   "vrt",
		Short: "Submit screenshots to Visual Regression Tracker",
		Long:  "vrt opens a build on a Visual Regression Tracker service, submits\nscreenshots for comparison against their baselines and reports the verdicts.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(rf.logLevel)
			if err != nil {
				return err
			}
			return logging.Init(level, rf.logFormat, cmd.ErrOrStderr())
		},
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVarP(&rf.configPath, "config", "c", "", "Config file (default: vrt.json, vrt.yaml or vrt.yml)")
	f.StringVar(&rf.apiURL, "api-url", "", "Service URL (overrides "+config.EnvAPIURL+")")
	f.StringVar(&rf.apiKey, "api-key", "", "API key (overrides "+config.EnvAPIKey+")")
	f.StringVar(&rf.project, "project", "", "Project name or id (overrides "+config.EnvProject+")")
	f.StringVar(&rf.branch, "branch", "", "Branch name (overrides "+config.EnvBranchName+")")
	f.StringVar(&rf.ciBuildID, "ci-build-id", "", "CI build id (overrides "+config.EnvCIBuildID+")")
	f.BoolVar(&rf.softAssert, "soft-assert", false, "Report failed comparisons without failing (overrides "+config.EnvEnableSoftAssert+")")
	f.DurationVar(&rf.timeout, "timeout", 30*time.Second, "Per-request timeout")
	f.StringVar(&rf.logLevel, "log-level", "", "Log level: debug, info, warn, error (default $"+logging.EnvLevel+" or warn)")
	f.StringVar(&rf.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newTrackCmd(rf))
	root.AddCommand(newRunCmd(rf))
	root.AddCommand(newCaptureCmd(rf))
	root.AddCommand(newConfigCmd(rf))
	return root
}

// overrides turns explicitly set flags into config overrides.
func (rf *rootFlags) overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	changed := cmd.Flags().Changed
	if changed("api-url") {
		o.APIURL = &rf.apiURL
	}
	if changed("api-key") {
		o.APIKey = &rf.apiKey
	}
	if changed("project") {
		o.Project = &rf.project
	}
	if changed("branch") {
		o.BranchName = &rf.branch
	}
	if changed("ci-build-id") {
		o.CIBuildID = &rf.ciBuildID
	}
	if changed("soft-assert") {
		o.EnableSoftAssert = &rf.softAssert
	}
	return o
}

func (rf *rootFlags) newTracker(cmd *cobra.Command) (*vrt.Tracker, error) {
	cfg, err := config.Load(rf.configPath, rf.overrides(cmd))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return vrt.New(cfg,
		vrt.WithLogger(logging.New("tracker")),
		vrt.WithTimeout(rf.timeout),
	)
}
