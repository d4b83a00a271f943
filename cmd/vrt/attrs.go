package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"vrt/pkg/vrt"
)

// trackAttrs are the optional test run attributes shared by the submitting commands.
type trackAttrs struct {
	os        string
	browser   string
	viewport  string
	device    string
	tags      string
	tolerance float64
	comment   string
	ignore    []string
}

// register adds the attribute flags, using the current field values as defaults.
func (a *trackAttrs) register(f *pflag.FlagSet) {
	f.StringVar(&a.os, "os", a.os, "Operating system tag")
	f.StringVar(&a.browser, "browser", a.browser, "Browser tag")
	f.StringVar(&a.viewport, "viewport", a.viewport, "Viewport tag, e.g. 1280x720")
	f.StringVar(&a.device, "device", a.device, "Device tag")
	f.StringVar(&a.tags, "tags", a.tags, "Custom tags")
	f.Float64Var(&a.tolerance, "tolerance", a.tolerance, "Diff tolerance in percent")
	f.StringVar(&a.comment, "comment", a.comment, "Comment attached to the run")
	f.StringArrayVar(&a.ignore, "ignore", nil, "Ignore area x,y,width,height (repeatable)")
}

func (a *trackAttrs) options() ([]vrt.TrackOption, error) {
	var opts []vrt.TrackOption
	add := func(v string, fn func(string) vrt.TrackOption) {
		if v != "" {
			opts = append(opts, fn(v))
		}
	}
	add(a.os, vrt.WithOS)
	add(a.browser, vrt.WithBrowser)
	add(a.viewport, vrt.WithViewport)
	add(a.device, vrt.WithDevice)
	add(a.tags, vrt.WithCustomTags)
	add(a.comment, vrt.WithComment)
	if a.tolerance < 0 || a.tolerance > 100 {
		return nil, fmt.Errorf("tolerance %v: must be between 0 and 100", a.tolerance)
	}
	if a.tolerance != 0 {
		opts = append(opts, vrt.WithDiffTolerance(a.tolerance))
	}

	areas := make([]vrt.IgnoreArea, 0, len(a.ignore))
	for _, s := range a.ignore {
		area, err := parseIgnoreArea(s)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	if len(areas) > 0 {
		opts = append(opts, vrt.WithIgnoreAreas(areas...))
	}
	return opts, nil
}

func parseIgnoreArea(s string) (vrt.IgnoreArea, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return vrt.IgnoreArea{}, fmt.Errorf("ignore area %q: want x,y,width,height", s)
	}
	var n [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return vrt.IgnoreArea{}, fmt.Errorf("ignore area %q: bad number %q", s, p)
		}
		n[i] = v
	}
	return vrt.IgnoreArea{X: n[0], Y: n[1], Width: n[2], Height: n[3]}, nil
}

func printResult(w io.Writer, name string, r *vrt.TestRunResult) {
	fmt.Fprintf(w, "%s: %s\n", name, r.Status)
	fmt.Fprintf(w, "  url:      %s\n", r.URL)
	fmt.Fprintf(w, "  image:    %s\n", r.ImageURL)
	if r.BaselineURL != nil {
		fmt.Fprintf(w, "  baseline: %s\n", *r.BaselineURL)
	}
	if r.DiffURL != nil {
		fmt.Fprintf(w, "  diff:     %s\n", *r.DiffURL)
	}
}
