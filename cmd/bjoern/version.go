// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// buildVersion is injected at build time via -ldflags.
var buildVersion string

// version returns the release version if one was injected, otherwise the
// commit hash of the build. An injected version must be valid semver.
func version() (string, error) {
	v := strings.TrimSpace(buildVersion)
	if v == "" {
		return versionCommit(), nil
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return "", fmt.Errorf("invalid build version %q: %w", v, err)
	}
	return sv.String(), nil
}

// versionCommit returns the commit hash of the current build.
func versionCommit() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var dirty bool
	var commit string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if commit == "" {
		return "dev"
	}

	if len(commit) >= 9 {
		commit = commit[:9]
	}
	if dirty {
		commit += "+dirty"
	}
	return commit
}
