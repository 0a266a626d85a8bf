// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env encodes structs as KEY=value environment lines.
package env

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Marshal writes one KEY=value line for every non-zero field of e that
// carries an `env:"KEY"` tag. e must be a struct or a pointer to one.
// Values containing whitespace, quotes or shell metacharacters are quoted.
func Marshal(w io.Writer, e any) error {
	re := reflect.ValueOf(e)
	if re.Kind() == reflect.Ptr {
		re = re.Elem()
	}
	if re.Kind() != reflect.Struct {
		return fmt.Errorf("env: cannot marshal %s", re.Kind())
	}
	ret := re.Type()
	for i := 0; i < re.NumField(); i++ {
		field := re.Field(i)
		tag := ret.Field(i).Tag.Get("env")
		if tag == "" || tag == "-" {
			continue
		}
		if field.IsZero() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", tag, quote(fmt.Sprint(field.Interface()))); err != nil {
			return err
		}
	}
	return nil
}

func quote(v string) string {
	if v == "" || !strings.ContainsAny(v, " \t\n\"'\\$`#;&|<>()*?") {
		return v
	}
	return strconv.Quote(v)
}
