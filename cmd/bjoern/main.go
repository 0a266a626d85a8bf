// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bjoern resolves the launch configuration of a bjoern server from
// its command line and prints it for the serving runtime.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yeetrun/bjoern/pkg/argparse"
	"github.com/yeetrun/bjoern/pkg/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := cli.Parse(args, stdout, stderr)
	if err != nil {
		return argparse.ExitCode(err)
	}
	logger := newLogger(stderr, cfg.Verbose)

	if cfg.ShowVersion {
		v, err := version()
		if err != nil {
			logger.Error("version", "err", err)
			return 1
		}
		fmt.Fprintf(stdout, "bjoern %s\n", v)
		return 0
	}

	logger.Info("configuration resolved", "action", cfg.Action, "addr", cfg.Addr(), "app", cfg.App)
	logger.Debug("daemon settings", "daemon", cfg.Daemon, "pid_file", cfg.PIDFile, "home", cfg.Home, "backlog", cfg.Backlog)

	if err := cli.Render(stdout, cfg, cfg.Format); err != nil {
		logger.Error("render configuration", "format", cfg.Format, "err", err)
		return 1
	}
	return 0
}

// newLogger logs warnings by default, info with -v and debug with -vv.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
