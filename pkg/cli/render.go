// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/bjoern/pkg/env"
	"gopkg.in/yaml.v3"
)

// Render writes cfg to w in the given format.
func Render(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatText, "":
		return renderText(w, cfg)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatEnv:
		return env.Marshal(w, cfg)
	default:
		return &ConfigError{Msg: fmt.Sprintf("unknown output format %q", format)}
	}
}

func renderText(w io.Writer, cfg Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s\t%s\n", k, v)
		}
	}
	row("ACTION", string(cfg.Action))
	row("LISTEN", cfg.Addr())
	row("BACKLOG", strconv.Itoa(cfg.Backlog))
	row("APP", cfg.App)
	row("HOME", cfg.Home)
	row("DAEMON", strconv.FormatBool(cfg.Daemon))
	row("PID FILE", cfg.PIDFile)
	row("VERBOSE", strconv.Itoa(cfg.Verbose))
	return tw.Flush()
}
