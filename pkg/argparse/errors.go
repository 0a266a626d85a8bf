// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Parse when the help option was given.
var ErrHelp = errors.New("help requested")

// OptionRef names the option a diagnostic is about, in the form the user
// typed it: "-n" for a short match, "--name" for a long one.
type OptionRef struct {
	Short  rune
	Long   string
	IsLong bool
}

func (r OptionRef) String() string {
	if r.IsLong {
		return "--" + r.Long
	}
	return "-" + string(r.Short)
}

// UnknownOptionError is returned when a token matches no option.
type UnknownOptionError struct {
	Token string // the whole offending token, e.g. "-ax" or "--bogus=1"
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option `%s`", e.Token)
}

// MissingValueError is returned when a value-bearing option is the last
// token and has no attached value.
type MissingValueError struct {
	Option OptionRef
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option `%s` requires a value", e.Option)
}

// InvalidNumberError is returned when a numeric option value does not parse
// completely.
type InvalidNumberError struct {
	Option OptionRef
	Kind   Kind
	Value  string
	Err    error
}

func (e *InvalidNumberError) Error() string {
	if e.Kind == KindFloat {
		return fmt.Sprintf("option `%s` expects a numerical value", e.Option)
	}
	return fmt.Sprintf("option `%s` expects an integer value", e.Option)
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// RangeError is returned when a numeric option value overflows its slot.
type RangeError struct {
	Option OptionRef
	Value  string
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("option `%s` Numerical result out of range", e.Option)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// InvalidTableError reports a malformed option table. It is a bug in the
// program embedding the parser, not a user error.
type InvalidTableError struct {
	Index  int
	Kind   Kind
	Reason string
}

func (e *InvalidTableError) Error() string {
	return e.Reason
}

// ExitCode maps a Parse error to the conventional process status: 0 for
// success or a help request, 1 for anything else.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}
	return 1
}
