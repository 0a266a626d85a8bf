// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Flag changes how Parse treats the argument vector.
type Flag int

const (
	// StopAtNonOption ends option processing at the first positional
	// argument instead of permuting options out from between positionals.
	StopAtNonOption Flag = 1 << iota
)

// Parser parses an argument vector against an option table.
//
// The table is only read. A Parser may be shared by concurrent Parse calls
// as long as those calls do not write to the same value slots.
type Parser struct {
	Options []Option
	Flags   Flag

	// Description is printed below the "Usage:" line, Epilog after the
	// options.
	Description string
	Epilog      string

	// Stdout receives the usage screen and Stderr the diagnostics written by
	// ParseAndHandleHelp. Nil means os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Width, when positive, word-wraps help texts so no usage line is wider
	// than Width columns.
	Width int

	// Color highlights the "error:" prefix of diagnostics.
	Color bool
}

// Result is the outcome of a successful Parse.
type Result struct {
	// Args holds the positional arguments in their original relative order,
	// followed by everything that was not subject to option processing
	// (the tokens after "--", or after the first positional when
	// StopAtNonOption is set).
	Args []string
}

// NArg returns the number of arguments left after option processing.
func (r *Result) NArg() int {
	return len(r.Args)
}

// Arg returns the i'th remaining argument, or "" if there is none.
func (r *Result) Arg(i int) string {
	if i < 0 || i >= len(r.Args) {
		return ""
	}
	return r.Args[i]
}

// Validate checks p.Options; see Validate.
func (p *Parser) Validate() error {
	return Validate(p.Options)
}

type tokenKind int

const (
	tokenPositional tokenKind = iota
	tokenTerminator
	tokenShort
	tokenLong
)

func classify(tok string) tokenKind {
	switch {
	case len(tok) < 2 || tok[0] != '-':
		return tokenPositional
	case tok == "--":
		return tokenTerminator
	case tok[1] == '-':
		return tokenLong
	default:
		return tokenShort
	}
}

// state is the scan position of one Parse call.
type state struct {
	args []string
	i    int // index of the token being processed

	// pending holds the text attached to the current token: what follows a
	// short option letter, or what follows "=" in a long option. attached
	// distinguishes "--name=" from no attachment at all.
	pending  string
	attached bool

	// out collects positionals; its length is the write cursor.
	out []string
}

// takeValue consumes the attached value, or else the next argument.
func (s *state) takeValue() (string, bool) {
	if s.attached {
		v := s.pending
		s.pending, s.attached = "", false
		return v, true
	}
	if s.i+1 < len(s.args) {
		s.i++
		return s.args[s.i], true
	}
	return "", false
}

func (s *state) attach(v string) {
	s.pending, s.attached = v, true
}

func (s *state) detach() {
	s.pending, s.attached = "", false
}

// finish appends the unprocessed tail verbatim.
func (s *state) finish() *Result {
	out := append(s.out, s.args[s.i:]...)
	return &Result{Args: out}
}

// Parse processes args, which must not include the program name. Matched
// options write their values into the table's slots; the remaining
// arguments are returned in Result.Args.
//
// Parse never prints and never exits. It returns *UnknownOptionError,
// *MissingValueError, *InvalidNumberError, *RangeError or
// *InvalidTableError on failure, ErrHelp when the help option was given,
// or whatever error an option callback returned.
func (p *Parser) Parse(args []string) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opts := entries(p.Options)
	st := &state{args: args, out: make([]string, 0, len(args))}

	for ; st.i < len(st.args); st.i++ {
		tok := st.args[st.i]
		switch classify(tok) {
		case tokenPositional:
			if p.Flags&StopAtNonOption != 0 {
				return st.finish(), nil
			}
			st.out = append(st.out, tok)
		case tokenTerminator:
			st.i++
			return st.finish(), nil
		case tokenShort:
			if err := p.parseShort(opts, st); err != nil {
				return nil, err
			}
		case tokenLong:
			if err := p.parseLong(opts, st); err != nil {
				return nil, err
			}
		}
	}
	return st.finish(), nil
}

// parseShort handles "-x", "-xVALUE" and clusters of flags like "-abc".
func (p *Parser) parseShort(opts []Option, st *state) error {
	tok := st.args[st.i]
	rest := tok[1:]
	defer st.detach()
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		o := findShort(opts, r)
		if o == nil {
			return &UnknownOptionError{Token: tok}
		}
		rest = rest[size:]
		if rest != "" {
			st.attach(rest)
		} else {
			st.detach()
		}
		if err := p.extract(o, st, OptionRef{Short: r}, false); err != nil {
			return err
		}
		if !st.attached {
			return nil
		}
		// A boolean left the rest of the cluster untouched.
		rest = st.pending
	}
	return nil
}

// parseLong handles "--name", "--name=VALUE" and "--no-name".
func (p *Parser) parseLong(opts []Option, st *state) error {
	tok := st.args[st.i]
	arg := tok[2:]
	defer st.detach()
	for i := range opts {
		o := &opts[i]
		if o.Kind == KindGroup || o.Long == "" {
			continue
		}
		negated := false
		rest, ok := strings.CutPrefix(arg, o.Long)
		if !ok {
			if o.NoNegate || o.Kind != KindBoolean {
				continue
			}
			after, isNo := strings.CutPrefix(arg, "no-")
			if !isNo {
				continue
			}
			if rest, ok = strings.CutPrefix(after, o.Long); !ok {
				continue
			}
			negated = true
		}
		if rest != "" {
			value, eq := strings.CutPrefix(rest, "=")
			if !eq {
				continue
			}
			st.attach(value)
		}
		return p.extract(o, st, OptionRef{Short: o.Short, Long: o.Long, IsLong: true}, negated)
	}
	return &UnknownOptionError{Token: tok}
}

func findShort(opts []Option, r rune) *Option {
	for i := range opts {
		o := &opts[i]
		if o.Kind != KindGroup && o.Short != 0 && o.Short == r {
			return o
		}
	}
	return nil
}
