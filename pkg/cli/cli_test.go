// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/bjoern/pkg/argparse"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			args: []string{"-w", "app:application"},
			want: Config{
				Action:      ActionStart,
				Host:        DefaultHost,
				Port:        DefaultPort,
				App:         "app:application",
				AppModule:   "app",
				AppCallable: "application",
				Backlog:     DefaultBacklog,
				Format:      FormatText,
			},
		},
		{
			name: "tcp with options between positionals",
			args: []string{"--host=0.0.0.0", "start", "-p", "9000", "--wsgi", "pkg.web:make_app", "-vv", "--backlog=0x100"},
			want: Config{
				Action:      ActionStart,
				Host:        "0.0.0.0",
				Port:        9000,
				App:         "pkg.web:make_app",
				AppModule:   "pkg.web",
				AppCallable: "make_app",
				Backlog:     256,
				Verbose:     2,
				Format:      FormatText,
			},
		},
		{
			name: "unix socket",
			args: []string{"-s", "unix:/tmp/app.sock", "-wapp:app", "--format", "json"},
			want: Config{
				Action:      ActionStart,
				UnixSocket:  "/tmp/app.sock",
				App:         "app:app",
				AppModule:   "app",
				AppCallable: "app",
				Backlog:     DefaultBacklog,
				Format:      FormatJSON,
			},
		},
		{
			name: "daemon start",
			args: []string{"-d", "--pid", "/run/bjoern.pid", "--home", "/srv/venv", "-w", "app:app"},
			want: Config{
				Action:      ActionStart,
				Host:        DefaultHost,
				Port:        DefaultPort,
				App:         "app:app",
				AppModule:   "app",
				AppCallable: "app",
				Home:        "/srv/venv",
				PIDFile:     "/run/bjoern.pid",
				Daemon:      true,
				Backlog:     DefaultBacklog,
				Format:      FormatText,
			},
		},
		{
			name: "daemon stop needs no app",
			args: []string{"stop", "--daemon", "--pid=/run/bjoern.pid"},
			want: Config{
				Action:  ActionStop,
				Host:    DefaultHost,
				Port:    DefaultPort,
				PIDFile: "/run/bjoern.pid",
				Daemon:  true,
				Backlog: DefaultBacklog,
				Format:  FormatText,
			},
		},
		{
			name: "version skips validation",
			args: []string{"-V", "stop", "extra"},
			want: Config{
				Action:      ActionStart,
				Backlog:     DefaultBacklog,
				Format:      FormatText,
				ShowVersion: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got, err := Parse(tt.args, &stdout, &stderr)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v (stderr %q)", tt.args, err, stderr.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
			if stdout.Len() != 0 || stderr.Len() != 0 {
				t.Errorf("unexpected output: stdout %q, stderr %q", stdout.String(), stderr.String())
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   string
		wantUsage bool
	}{
		{
			name:    "unknown action",
			args:    []string{"reload", "-w", "a:b"},
			wantErr: "unknown action `reload` (want one of start, stop, restart)",
		},
		{
			name:    "too many positionals",
			args:    []string{"start", "stop", "-w", "a:b"},
			wantErr: "too many arguments: 'bjoern' accepts at most 1 argument(s), got 2",
		},
		{
			name:    "port out of range",
			args:    []string{"-p", "70000", "-w", "a:b"},
			wantErr: "option `--port` must be between 1 and 65535, got 70000",
		},
		{
			name:    "socket with port",
			args:    []string{"-s", "/tmp/s", "-p", "80", "-w", "a:b"},
			wantErr: "option `--unix-socket` cannot be combined with `--host` or `--port`",
		},
		{
			name:    "empty socket",
			args:    []string{"--unix-socket=unix:", "-w", "a:b"},
			wantErr: "option `--unix-socket` needs a path",
		},
		{
			name:    "pid without daemon",
			args:    []string{"--pid", "/run/x.pid", "-w", "a:b"},
			wantErr: "option `--pid` requires `--daemon`",
		},
		{
			name:    "restart without pid",
			args:    []string{"restart", "-d", "-w", "a:b"},
			wantErr: "action `restart` requires `--daemon` and `--pid`",
		},
		{
			name:    "start without app",
			args:    []string{},
			wantErr: "action `start` requires `--wsgi`",
		},
		{
			name:    "app without callable",
			args:    []string{"-w", "app"},
			wantErr: "option `--wsgi` expects module:callable, got \"app\"",
		},
		{
			name:    "bad format",
			args:    []string{"-w", "a:b", "-f", "xml"},
			wantErr: "option `--format` expects one of text, json, yaml, toml or env, got \"xml\"",
		},
		{
			name:    "bad backlog",
			args:    []string{"-w", "a:b", "--backlog", "-1"},
			wantErr: "option `--backlog` must be positive, got -1",
		},
		{
			name:      "port not a number",
			args:      []string{"--port=http"},
			wantErr:   "option `--port` expects an integer value",
			wantUsage: true,
		},
		{
			name:      "unknown option",
			args:      []string{"--threads", "4"},
			wantErr:   "unknown option `--threads`",
			wantUsage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			_, err := Parse(tt.args, &stdout, &stderr)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want %q", tt.args, tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
			if code := argparse.ExitCode(err); code != 1 {
				t.Errorf("ExitCode = %d, want 1", code)
			}
			if want := "error: " + tt.wantErr + "\n"; stderr.String() != want {
				t.Errorf("stderr = %q, want %q", stderr.String(), want)
			}
			if got := stdout.Len() > 0; got != tt.wantUsage {
				t.Errorf("usage printed = %v, want %v", got, tt.wantUsage)
			}
		})
	}
}

func TestParseConfigErrorTypes(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse([]string{"bogus"}, &buf, &buf)
	var actionErr *ActionError
	if !errors.As(err, &actionErr) || actionErr.Action != "bogus" {
		t.Errorf("error = %#v, want ActionError for bogus", err)
	}

	_, err = Parse([]string{"-p", "0", "-w", "a:b"}, &buf, &buf)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %#v, want ConfigError", err)
	}
}

func TestParseConfigHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	_, err := Parse([]string{"--help"}, &stdout, &stderr)
	if !errors.Is(err, argparse.ErrHelp) {
		t.Fatalf("error = %v, want ErrHelp", err)
	}
	if code := argparse.ExitCode(err); code != 0 {
		t.Errorf("ExitCode = %d, want 0", code)
	}
	out := stdout.String()
	for _, want := range []string{
		"Usage:\n",
		"\nServer options\n",
		"\nDaemon options\n",
		"\nOutput options\n",
		"-p, --port=<int>",
		"-s, --unix-socket=<str>",
		"--backlog=<int>",
		"-V, --version",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestConfigAddr(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Host: "127.0.0.1", Port: 8000}, "127.0.0.1:8000"},
		{Config{Host: "::1", Port: 80}, "[::1]:80"},
		{Config{UnixSocket: "/tmp/s", Host: "ignored"}, "unix:/tmp/s"},
	}
	for _, tt := range tests {
		if got := tt.cfg.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func TestRequireArgsAtMost(t *testing.T) {
	if err := RequireArgsAtMost("x", []string{"a"}, 1); err != nil {
		t.Errorf("RequireArgsAtMost(1 of 1) = %v, want nil", err)
	}
	err := RequireArgsAtMost("x", []string{"a", "b"}, 1)
	if err == nil || err.Error() != "'x' accepts at most 1 argument(s), got 2" {
		t.Errorf("RequireArgsAtMost(2 of 1) = %v", err)
	}
}
