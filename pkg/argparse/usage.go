// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

const (
	usageMargin = 4 // spaces before each option signature
	helpGap     = 2 // spaces between the column and the help text
)

// signature renders the option names and value tag, e.g. "-o, --output=<str>".
func signature(o *Option) string {
	var b strings.Builder
	if o.Short != 0 {
		b.WriteByte('-')
		b.WriteRune(o.Short)
	}
	if o.Short != 0 && o.Long != "" {
		b.WriteString(", ")
	}
	if o.Long != "" {
		b.WriteString("--")
		b.WriteString(o.Long)
	}
	b.WriteString(o.Kind.typeTag())
	return b.String()
}

// columnWidth is the position, margin included, that signatures are padded
// to: the widest signature rounded up to a multiple of 4, plus the margin.
func columnWidth(opts []Option) int {
	width := 0
	for i := range opts {
		if opts[i].Kind == KindGroup {
			continue
		}
		n := utf8.RuneCountInString(signature(&opts[i]))
		n = (n + 3) &^ 3
		width = max(width, n)
	}
	return width + usageMargin
}

// column returns the padded signature width used for rendering. With a
// terminal width set, the column never takes more than half of it; longer
// signatures then put their help text on the next line.
func (p *Parser) column(opts []Option) int {
	width := columnWidth(opts)
	if p.Width > 0 && width > p.Width/2 {
		width = max(p.Width/2, usageMargin)
	}
	return width
}

// Usage renders the help screen.
func (p *Parser) Usage() string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	opts := entries(p.Options)
	width := p.column(opts)
	for i := range opts {
		o := &opts[i]
		if o.Kind == KindGroup {
			b.WriteByte('\n')
			b.WriteString(o.Help)
			b.WriteByte('\n')
			continue
		}
		sig := strings.Repeat(" ", usageMargin) + signature(o)
		b.WriteString(sig)
		pad := width
		if pos := utf8.RuneCountInString(sig); pos <= width {
			pad = width - pos
		} else {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", pad+helpGap))
		b.WriteString(p.wrapHelp(o.Help, width+helpGap))
		b.WriteByte('\n')
	}

	if p.Epilog != "" {
		b.WriteString(p.Epilog)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteUsage writes the help screen to w.
func (p *Parser) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, p.Usage())
	return err
}

// wrapHelp folds help to fit between indent and p.Width. Continuation lines
// are indented to the help column.
func (p *Parser) wrapHelp(help string, indent int) string {
	if p.Width <= 0 || indent >= p.Width {
		return help
	}
	wrapped := wordwrap.WrapString(help, uint(p.Width-indent))
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", indent))
}
