// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	flags "github.com/jessevdk/go-flags"
	"github.com/randkit/randkit/internal/version"
)

// realMain is the real main function for randkit.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() int {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Use randkit -h to show usage")
		return 1
	}

	if cfg.ShowVersion {
		fmt.Printf("randkit version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return 0
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer logRotator.Close()
	}
	setLogLevels(cfg.DebugLevel)

	if err := run(cfg, args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "randkit: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain())
}
