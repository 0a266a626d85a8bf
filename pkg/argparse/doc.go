// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse parses command line arguments against a static option
// table and renders the matching usage screen.
//
// The parser follows these rules:
//   - Options and positionals may be interleaved; positionals keep their
//     relative order
//   - "--" ends option processing, everything after it is positional
//   - Short options can be clustered ("-abc") and take attached values
//     ("-ofile")
//   - Long options take "--name=value" or "--name value"
//   - Boolean options count occurrences; "--no-name" counts one down
//
// # Basic Usage
//
//	var (
//	    verbose int
//	    port    = 8000
//	    host    = "127.0.0.1"
//	)
//	p := &argparse.Parser{
//	    Description: "run the server",
//	    Options: []argparse.Option{
//	        argparse.Help(),
//	        argparse.Group("Server options"),
//	        argparse.String(0, "host", &host, "address to bind"),
//	        argparse.Integer('p', "port", &port, "port to bind"),
//	        argparse.Boolean('v', "verbose", &verbose, "log more, repeatable"),
//	    },
//	}
//	res, err := p.ParseAndHandleHelp(os.Args[1:])
//	if err != nil {
//	    os.Exit(argparse.ExitCode(err))
//	}
//	fmt.Println(res.Args)
//
// # Errors
//
// Parse never prints and never exits. Failures are returned as
// *UnknownOptionError, *MissingValueError, *InvalidNumberError, *RangeError
// or *InvalidTableError, and a help request as ErrHelp. ParseAndHandleHelp
// prints the conventional diagnostic and usage screen for those and still
// returns the error; ExitCode maps it to 0 or 1.
//
// # Callbacks
//
// An Option may carry a Callback that runs after its value has been stored.
// Returning an error from a callback aborts the parse with that error.
package argparse
