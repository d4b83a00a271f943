package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type trackFlags struct {
	name  string
	image string
	attrs trackAttrs
}

func newTrackCmd(rf *rootFlags) *cobra.Command {
	tf := &trackFlags{}
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Submit one screenshot in a new build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrack(cmd, rf, tf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&tf.name, "name", "n", "", "Test name (required)")
	f.StringVarP(&tf.image, "image", "i", "", "Path to the screenshot (required)")
	tf.attrs.register(f)

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func runTrack(cmd *cobra.Command, rf *rootFlags, tf *trackFlags) error {
	opts, err := tf.attrs.options()
	if err != nil {
		return err
	}
	tracker, err := rf.newTracker(cmd)
	if err != nil {
		return err
	}

	file, err := os.Open(tf.image)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	ctx := cmd.Context()
	return withBuild(ctx, tracker, func() error {
		result, err := tracker.TrackReader(ctx, tf.name, file, opts...)
		return report(cmd.OutOrStdout(), tf.name, result, err)
	})
}
