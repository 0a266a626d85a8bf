// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli resolves the launcher configuration from the command line.
package cli

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/yeetrun/bjoern/pkg/argparse"
	"github.com/yeetrun/bjoern/pkg/tui"
)

const (
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 8000
	DefaultBacklog = 1024
)

// Action is what the launcher should do with the server process.
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
)

var actions = []Action{ActionStart, ActionStop, ActionRestart}

// Format selects how Render encodes a Config.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatEnv  Format = "env"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatEnv}

// Config is the resolved launcher configuration.
type Config struct {
	Action      Action `json:"action" yaml:"action" toml:"action" env:"BJOERN_ACTION"`
	Host        string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty" env:"BJOERN_HOST"`
	Port        int    `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty" env:"BJOERN_PORT"`
	UnixSocket  string `json:"unix_socket,omitempty" yaml:"unix_socket,omitempty" toml:"unix_socket,omitempty" env:"BJOERN_UNIX_SOCKET"`
	App         string `json:"app,omitempty" yaml:"app,omitempty" toml:"app,omitempty" env:"BJOERN_APP"`
	AppModule   string `json:"app_module,omitempty" yaml:"app_module,omitempty" toml:"app_module,omitempty" env:"BJOERN_APP_MODULE"`
	AppCallable string `json:"app_callable,omitempty" yaml:"app_callable,omitempty" toml:"app_callable,omitempty" env:"BJOERN_APP_CALLABLE"`
	Home        string `json:"home,omitempty" yaml:"home,omitempty" toml:"home,omitempty" env:"BJOERN_HOME"`
	PIDFile     string `json:"pid_file,omitempty" yaml:"pid_file,omitempty" toml:"pid_file,omitempty" env:"BJOERN_PID_FILE"`
	Daemon      bool   `json:"daemon" yaml:"daemon" toml:"daemon" env:"BJOERN_DAEMON"`
	Backlog     int    `json:"backlog" yaml:"backlog" toml:"backlog" env:"BJOERN_BACKLOG"`
	Verbose     int    `json:"verbose" yaml:"verbose" toml:"verbose" env:"BJOERN_VERBOSE"`

	// Format and ShowVersion steer the command itself and are not rendered.
	Format      Format `json:"-" yaml:"-" toml:"-" env:"-"`
	ShowVersion bool   `json:"-" yaml:"-" toml:"-" env:"-"`
}

// Addr is the listen address: "host:port", or "unix:<path>" for a socket.
func (c Config) Addr() string {
	if c.UnixSocket != "" {
		return "unix:" + c.UnixSocket
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConfigError reports options that parse fine on their own but do not make
// a usable configuration together.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ActionError is returned for an unknown positional action.
type ActionError struct {
	Action string
}

func (e *ActionError) Error() string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return fmt.Sprintf("unknown action `%s` (want one of %s)", e.Action, strings.Join(names, ", "))
}

// raw holds the option slots before they are checked and folded into a
// Config.
type raw struct {
	host, unixSocket, app, home, pid, format string
	port, backlog                            int
	daemon, verbose, version                 int

	// set records which options were given explicitly, keyed by the
	// option's Data.
	set map[string]bool
}

func (r *raw) mark(_ *argparse.Parser, o *argparse.Option) error {
	r.set[o.Data.(string)] = true
	return nil
}

// with attaches the explicit-use tracker to o.
func (r *raw) with(o argparse.Option, key string) argparse.Option {
	o.Callback = r.mark
	o.Data = key
	return o
}

func newRaw() *raw {
	return &raw{
		host:    DefaultHost,
		port:    DefaultPort,
		backlog: DefaultBacklog,
		format:  string(FormatText),
		set:     make(map[string]bool),
	}
}

// parser returns the launcher's option table bound to r.
func (r *raw) parser() *argparse.Parser {
	return &argparse.Parser{
		Description: "bjoern [options] [start|stop|restart]\n\nResolve the launch configuration of a bjoern server.",
		Options: []argparse.Option{
			argparse.Help(),

			argparse.Group("Server options"),
			r.with(argparse.String('H', "host", &r.host, "address to bind (default "+DefaultHost+")"), "host"),
			r.with(argparse.Integer('p', "port", &r.port, "TCP port to bind (default "+strconv.Itoa(DefaultPort)+")"), "port"),
			r.with(argparse.String('s', "unix-socket", &r.unixSocket, "listen on a unix socket instead of TCP, e.g. unix:/tmp/app.sock"), "unix-socket"),
			r.with(argparse.String('w', "wsgi", &r.app, "application to serve, as module:callable"), "wsgi"),
			argparse.Integer(0, "backlog", &r.backlog, "listen queue length (default "+strconv.Itoa(DefaultBacklog)+")"),
			argparse.String(0, "home", &r.home, "virtualenv to load the application from"),

			argparse.Group("Daemon options"),
			argparse.Boolean('d', "daemon", &r.daemon, "detach and run in the background"),
			r.with(argparse.String(0, "pid", &r.pid, "write the daemon's process id to this file"), "pid"),

			argparse.Group("Output options"),
			argparse.Boolean('v', "verbose", &r.verbose, "log more, repeat for debug output"),
			argparse.String('f', "format", &r.format, "print the configuration as text, json, yaml, toml or env"),
			{
				Kind:     argparse.KindBoolean,
				Short:    'V',
				Long:     "version",
				Value:    &r.version,
				Help:     "print the version and exit",
				NoNegate: true,
			},
			argparse.End(),
		},
	}
}

// Parse resolves a Config from args, which must not include the program
// name. Problems are reported on stderr and the usage screen goes to stdout,
// so callers only need argparse.ExitCode on the returned error. When stdout
// or stderr is a terminal, the usage is wrapped to its width and the
// diagnostics are coloured.
func Parse(args []string, stdout, stderr io.Writer) (Config, error) {
	r := newRaw()
	p := r.parser()
	p.Stdout, p.Stderr = stdout, stderr
	if f, ok := stdout.(*os.File); ok {
		p.Width = tui.Width(f)
	}
	if f, ok := stderr.(*os.File); ok {
		p.Color = tui.NewColorizer(f).Enabled
	}

	res, err := p.ParseAndHandleHelp(args)
	if err != nil {
		return Config{}, err
	}
	cfg, err := r.resolve(res.Args)
	if err != nil {
		c := tui.Colorizer{Enabled: p.Color}
		fmt.Fprintf(stderr, "%s %v\n", c.Error("error:"), err)
		return Config{}, err
	}
	return cfg, nil
}

// resolve validates the parsed options and builds the Config.
func (r *raw) resolve(args []string) (Config, error) {
	cfg := Config{
		Action:      ActionStart,
		Backlog:     r.backlog,
		Verbose:     r.verbose,
		Daemon:      r.daemon > 0,
		Home:        r.home,
		PIDFile:     r.pid,
		Format:      Format(r.format),
		ShowVersion: r.version > 0,
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := RequireArgsAtMost("bjoern", args, 1); err != nil {
		return Config{}, &ConfigError{Msg: "too many arguments", Err: err}
	}
	if len(args) == 1 {
		a, err := parseAction(args[0])
		if err != nil {
			return Config{}, err
		}
		cfg.Action = a
	}

	if !validFormat(cfg.Format) {
		return Config{}, &ConfigError{Msg: fmt.Sprintf("option `--format` expects one of text, json, yaml, toml or env, got %q", r.format)}
	}
	if r.backlog <= 0 {
		return Config{}, &ConfigError{Msg: fmt.Sprintf("option `--backlog` must be positive, got %d", r.backlog)}
	}

	if r.set["unix-socket"] {
		if r.set["host"] || r.set["port"] {
			return Config{}, &ConfigError{Msg: "option `--unix-socket` cannot be combined with `--host` or `--port`"}
		}
		cfg.UnixSocket = strings.TrimPrefix(r.unixSocket, "unix:")
		if cfg.UnixSocket == "" {
			return Config{}, &ConfigError{Msg: "option `--unix-socket` needs a path"}
		}
	} else {
		if r.port < 1 || r.port > 65535 {
			return Config{}, &ConfigError{Msg: fmt.Sprintf("option `--port` must be between 1 and 65535, got %d", r.port)}
		}
		if r.host == "" {
			return Config{}, &ConfigError{Msg: "option `--host` needs an address"}
		}
		cfg.Host, cfg.Port = r.host, r.port
	}

	if r.set["pid"] && !cfg.Daemon {
		return Config{}, &ConfigError{Msg: "option `--pid` requires `--daemon`"}
	}
	if cfg.Action != ActionStart && (!cfg.Daemon || cfg.PIDFile == "") {
		return Config{}, &ConfigError{Msg: fmt.Sprintf("action `%s` requires `--daemon` and `--pid`", cfg.Action)}
	}

	if cfg.Action != ActionStop {
		if !r.set["wsgi"] {
			return Config{}, &ConfigError{Msg: fmt.Sprintf("action `%s` requires `--wsgi`", cfg.Action)}
		}
		mod, callable, ok := strings.Cut(r.app, ":")
		if !ok || mod == "" || callable == "" {
			return Config{}, &ConfigError{Msg: fmt.Sprintf("option `--wsgi` expects module:callable, got %q", r.app)}
		}
		cfg.App, cfg.AppModule, cfg.AppCallable = r.app, mod, callable
	}
	return cfg, nil
}

func parseAction(s string) (Action, error) {
	for _, a := range actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", &ActionError{Action: s}
}

func validFormat(f Format) bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

func RequireArgsAtMost(subcmd string, args []string, count int) error {
	if len(args) > count {
		return fmt.Errorf("'%s' accepts at most %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
