// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Colorizer adds ANSI attributes to text when Enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer enabled only when f is a terminal and
// neither NO_COLOR nor a dumb TERM asks otherwise.
func NewColorizer(f *os.File) Colorizer {
	if !IsTerminal(f) {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap returns text with attrs applied.
func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	// color.New honours the package-wide NoColor switch, which is decided
	// from os.Stdout; the caller already decided for its own stream.
	cl := color.New(attrs...)
	cl.EnableColor()
	return cl.Sprint(text)
}

func (c Colorizer) Error(text string) string {
	return c.Wrap(text, color.FgRed, color.Bold)
}
