// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"bytes"
	"testing"
)

func TestMarshal(t *testing.T) {
	type sample struct {
		Name     string `env:"NAME"`
		Port     int    `env:"PORT"`
		Debug    bool   `env:"DEBUG"`
		Path     string `env:"PATH_WITH_SPACE"`
		Skipped  string `env:"-"`
		Untagged string
	}
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "all set",
			in:   sample{Name: "web", Port: 80, Debug: true, Path: "/srv/my app", Skipped: "x", Untagged: "y"},
			want: "NAME=web\nPORT=80\nDEBUG=true\nPATH_WITH_SPACE=\"/srv/my app\"\n",
		},
		{
			name: "zero values skipped",
			in:   &sample{Port: 8000},
			want: "PORT=8000\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Marshal(&buf, tt.in); err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Marshal() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestMarshalNotStruct(t *testing.T) {
	var buf bytes.Buffer
	if err := Marshal(&buf, 42); err == nil {
		t.Fatal("Marshal(42) error = nil, want error")
	}
}
