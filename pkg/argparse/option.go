// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "fmt"

// Kind is the type of an Option table entry.
type Kind int

const (
	// KindEnd terminates a table. It is optional in Go; entries after the
	// first KindEnd are ignored.
	KindEnd Kind = iota
	// KindGroup is a header line in the usage screen. It matches nothing.
	KindGroup
	// KindBoolean options take no value and count occurrences.
	KindBoolean
	// KindInteger options take a value parsed with base auto-detection.
	KindInteger
	// KindFloat options take a decimal or exponential value.
	KindFloat
	// KindString options take the value verbatim.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end"
	case KindGroup:
		return "group"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// typeTag is the usage suffix shown after the option names.
func (k Kind) typeTag() string {
	switch k {
	case KindInteger:
		return "=<int>"
	case KindFloat:
		return "=<float>"
	case KindString:
		return "=<str>"
	}
	return ""
}

// Option describes one entry of an option table.
//
// Value is owned by the caller and must point at the storage matching Kind:
//
//	KindBoolean  *int      (occurrence counter, never negative)
//	KindInteger  *int
//	KindFloat    *float64
//	KindString   *string
//
// A KindBoolean option may leave Value nil when it only acts through its
// Callback (see Help).
type Option struct {
	Kind  Kind
	Short rune   // 0 if none
	Long  string // without the leading dashes, "" if none
	Value any
	Help  string

	// NoNegate disables the --no-<long> form of a boolean option.
	NoNegate bool

	// Callback runs after the value has been stored. A non-nil error stops
	// the parse and is returned from Parse unchanged.
	Callback func(p *Parser, o *Option) error
	// Data is passed through untouched for use by callbacks.
	Data any
}

// Boolean returns a counting option bound to v.
func Boolean(short rune, long string, v *int, help string) Option {
	o := Option{Kind: KindBoolean, Short: short, Long: long, Help: help}
	if v != nil {
		o.Value = v
	}
	return o
}

// Integer returns an option that stores an integer into v.
func Integer(short rune, long string, v *int, help string) Option {
	return Option{Kind: KindInteger, Short: short, Long: long, Value: v, Help: help}
}

// Float returns an option that stores a float into v.
func Float(short rune, long string, v *float64, help string) Option {
	return Option{Kind: KindFloat, Short: short, Long: long, Value: v, Help: help}
}

// String returns an option that stores a string into v.
func String(short rune, long string, v *string, help string) Option {
	return Option{Kind: KindString, Short: short, Long: long, Value: v, Help: help}
}

// Group returns a usage header entry.
func Group(header string) Option {
	return Option{Kind: KindGroup, Help: header}
}

// End returns a table terminator.
func End() Option {
	return Option{Kind: KindEnd}
}

// Help returns the conventional -h/--help option. Its callback stops the
// parse with ErrHelp.
func Help() Option {
	return Option{
		Kind:     KindBoolean,
		Short:    'h',
		Long:     "help",
		Help:     "show this help message and exit",
		NoNegate: true,
		Callback: func(*Parser, *Option) error { return ErrHelp },
	}
}

// entries returns the table up to, but not including, the first KindEnd.
func entries(opts []Option) []Option {
	for i := range opts {
		if opts[i].Kind == KindEnd {
			return opts[:i]
		}
	}
	return opts
}

// Validate checks a table for programming mistakes. Every failure is an
// *InvalidTableError.
func Validate(opts []Option) error {
	for i := range entries(opts) {
		o := &opts[i]
		switch o.Kind {
		case KindGroup:
			if o.Help == "" {
				return &InvalidTableError{Index: i, Kind: o.Kind, Reason: "group has no header text"}
			}
			continue
		case KindBoolean, KindInteger, KindFloat, KindString:
		default:
			return &InvalidTableError{Index: i, Kind: o.Kind, Reason: fmt.Sprintf("wrong option type: %d", int(o.Kind))}
		}
		if o.Short == 0 && o.Long == "" {
			return &InvalidTableError{Index: i, Kind: o.Kind, Reason: "option has neither a short nor a long name"}
		}
		if o.Help == "" {
			return &InvalidTableError{Index: i, Kind: o.Kind, Reason: fmt.Sprintf("option %s has no help text", o.displayName())}
		}
		if !slotMatches(o) {
			return &InvalidTableError{Index: i, Kind: o.Kind, Reason: fmt.Sprintf("option %s: value %T does not fit a %s option", o.displayName(), o.Value, o.Kind)}
		}
	}
	return nil
}

func slotMatches(o *Option) bool {
	switch o.Kind {
	case KindBoolean:
		if o.Value == nil {
			return true
		}
		p, ok := o.Value.(*int)
		return ok && p != nil
	case KindInteger:
		p, ok := o.Value.(*int)
		return ok && p != nil
	case KindFloat:
		p, ok := o.Value.(*float64)
		return ok && p != nil
	case KindString:
		p, ok := o.Value.(*string)
		return ok && p != nil
	}
	return false
}

// displayName is the most descriptive name of o for diagnostics.
func (o *Option) displayName() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + string(o.Short)
}
