package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vrt/pkg/config"
)

func newConfigCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(rf.configPath, rf.overrides(cmd))
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg.Redacted())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(data))
			if err := cfg.CheckComplete(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			return nil
		},
	}
}
