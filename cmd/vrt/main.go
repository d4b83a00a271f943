// vrt submits screenshots to a Visual Regression Tracker service.
//
// Usage:
//
//	vrt track -n <name> -i <image.png> [--viewport=1280x720] [--ignore=x,y,w,h]
//	vrt run <dir> [--jobs=N] [--ext=.png]
//	vrt capture --url=<url> -n <name> [--viewport=1280x720] [--full-page]
//	vrt config
//
// Connection settings come from vrt.json / vrt.yaml, VRT_* variables and
// the persistent flags, in increasing order of precedence.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
