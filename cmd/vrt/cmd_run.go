package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vrt/pkg/vrt"
)

type runFlags struct {
	jobs  int
	ext   string
	attrs trackAttrs
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	runf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run <dir>",
		Short: "Submit every screenshot in a directory within one build",
		Long: "run encodes every matching file in <dir> and submits them in name order\n" +
			"within a single build. The file name without extension is the test name.\n" +
			"Failed comparisons are reported together; transport errors abort the run.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, rf, runf, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVarP(&runf.jobs, "jobs", "j", runtime.NumCPU(), "Files read and encoded in parallel")
	f.StringVar(&runf.ext, "ext", ".png", "File extension to submit")
	runf.attrs.register(f)
	return cmd
}

// screenshot is one file queued for submission.
type screenshot struct {
	name    string
	path    string
	encoded string
}

func runRun(cmd *cobra.Command, rf *rootFlags, runf *runFlags, dir string) error {
	if runf.jobs < 1 {
		return fmt.Errorf("jobs must be at least 1")
	}
	opts, err := runf.attrs.options()
	if err != nil {
		return err
	}
	shots, err := listScreenshots(dir, runf.ext)
	if err != nil {
		return err
	}
	tracker, err := rf.newTracker(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := encodeAll(ctx, shots, runf.jobs); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var failed []string
	err = withBuild(ctx, tracker, func() error {
		for _, s := range shots {
			result, err := tracker.Track(ctx, s.name, s.encoded, opts...)
			if err := report(out, s.name, result, err); err != nil {
				if !vrt.IsAssertion(err) {
					return fmt.Errorf("track %s: %w", s.name, err)
				}
				failed = append(failed, s.name)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d submitted, %d failed\n", len(shots), len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("comparison failed: %s", strings.Join(failed, ", "))
	}
	return nil
}

func listScreenshots(dir, ext string) ([]*screenshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var shots []*screenshot
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		shots = append(shots, &screenshot{
			name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			path: filepath.Join(dir, e.Name()),
		})
	}
	if len(shots) == 0 {
		return nil, fmt.Errorf("no %s files in %s", ext, dir)
	}
	sort.Slice(shots, func(i, j int) bool { return shots[i].name < shots[j].name })
	return shots, nil
}

// encodeAll reads and base64-encodes the files with at most jobs in flight.
func encodeAll(ctx context.Context, shots []*screenshot, jobs int) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, s := range shots {
		s := s // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			f, err := os.Open(s.path)
			if err != nil {
				return fmt.Errorf("open %s: %w", s.path, err)
			}
			defer f.Close()
			s.encoded, err = vrt.EncodeImageReader(f)
			if err != nil {
				return fmt.Errorf("encode %s: %w", s.path, err)
			}
			return nil
		})
	}
	return g.Wait()
}
