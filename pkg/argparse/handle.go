// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yeetrun/bjoern/pkg/tui"
)

// ParseAndHandleHelp runs Parse and reports problems the way a command line
// program is expected to:
//
//   - on ErrHelp the usage screen goes to Stdout;
//   - on a malformed table only "error: <reason>" goes to Stderr;
//   - on any other error "error: <reason>" goes to Stderr and the usage
//     screen to Stdout.
//
// The parse error is returned in every case, joined with any failure to
// write the usage screen, so the caller can pick an exit status with
// ExitCode. Nothing here calls os.Exit.
func (p *Parser) ParseAndHandleHelp(args []string) (*Result, error) {
	res, err := p.Parse(args)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, ErrHelp) {
		return nil, p.usageAfter(err)
	}
	p.printError(err)
	var tableErr *InvalidTableError
	if errors.As(err, &tableErr) {
		return nil, err
	}
	return nil, p.usageAfter(err)
}

// usageAfter writes the usage screen and returns err, joined with the write
// failure if there was one.
func (p *Parser) usageAfter(err error) error {
	if werr := p.WriteUsage(p.stdout()); werr != nil {
		return errors.Join(err, werr)
	}
	return err
}

func (p *Parser) printError(err error) {
	c := tui.Colorizer{Enabled: p.Color}
	fmt.Fprintf(p.stderr(), "%s %s\n", c.Error("error:"), err)
}

func (p *Parser) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Parser) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}
