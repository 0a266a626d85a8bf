// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"strconv"
	"strings"
)

// extract stores the value for a matched option and then runs its callback.
// The value comes from the attached fragment in st when there is one, or
// from the next argument otherwise.
func (p *Parser) extract(o *Option, st *state, ref OptionRef, negated bool) error {
	switch o.Kind {
	case KindBoolean:
		if v, ok := o.Value.(*int); ok {
			if negated {
				*v--
			} else {
				*v++
			}
			// Repeated negation never goes below "unset".
			if *v < 0 {
				*v = 0
			}
		}

	case KindString:
		s, ok := st.takeValue()
		if !ok {
			return &MissingValueError{Option: ref}
		}
		*o.Value.(*string) = s

	case KindInteger:
		s, ok := st.takeValue()
		if !ok {
			return &MissingValueError{Option: ref}
		}
		n, err := parseInt(s)
		if err != nil {
			return numberError(ref, o.Kind, s, err)
		}
		*o.Value.(*int) = int(n)

	case KindFloat:
		s, ok := st.takeValue()
		if !ok {
			return &MissingValueError{Option: ref}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return numberError(ref, o.Kind, s, err)
		}
		*o.Value.(*float64) = f
	}

	if o.Callback != nil {
		return o.Callback(p, o)
	}
	return nil
}

// parseInt reads s the way C's strtol does with base 0: an optional sign,
// then "0x" or "0X" for hex, a leading "0" for octal and decimal otherwise.
// Go-only syntax such as "0b", "0o" and digit separators is rejected.
func parseInt(s string) (int64, error) {
	sign, body := "", s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		sign, body = body[:1], body[1:]
	}
	base := 10
	switch {
	case len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X'):
		base, body = 16, body[2:]
	case len(body) > 1 && body[0] == '0':
		base, body = 8, body[1:]
	}
	if body == "" || strings.ContainsAny(body, "_+-") {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseInt(sign+body, base, strconv.IntSize)
}

func numberError(ref OptionRef, kind Kind, value string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &RangeError{Option: ref, Value: value, Err: err}
	}
	return &InvalidNumberError{Option: ref, Kind: kind, Value: value, Err: err}
}
