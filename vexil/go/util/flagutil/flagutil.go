/*
 * Copyright 2025 The Vexil Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package flagutil is a collection of helper functions for binaries using the
// flags package.  It is the conventional boundary where flag errors stop
// being values: every failure is reported on the diagnostic stream prefixed
// by "Error: ", followed by the full usage reference, followed by an
// unsuccessful exit.
package flagutil // import "vexil.io/vexil/go/util/flagutil"

import (
	"fmt"
	"io"
	"os"
	"strings"

	"vexil.io/vexil/go/flags"
	"vexil.io/vexil/go/util/build"

	"bitbucket.org/creachadair/shell"
	"github.com/pkg/errors"
)

// SimpleUsage returns a Registry.Usage function that prints the given
// description and list of arguments in the following format:
//
//	Usage: binary <arg0> <arg1> ... <argN>
//	<description>
//
//	<build.VersionLine()>
//
//	Flags:
//	<the registry's flag entries>
func SimpleUsage(r *flags.Registry, description string, args ...string) func() {
	return func() {
		w := r.Output()
		prefix := fmt.Sprintf("Usage: %s ", r.Name())
		alignArgs(len(prefix), args)
		fmt.Fprintf(w, `%s%s
%s

%s

Flags:
`, prefix, strings.Join(args, " "), description, build.VersionLine())
		r.VisitAll(func(f flags.Flag) {
			fmt.Fprintln(w, f.UsageEntry())
		})
	}
}

func alignArgs(col int, args []string) {
	s := strings.Repeat(" ", col)
	for i, arg := range args {
		args[i] = strings.Replace(arg, "\n", "\n"+s, -1)
	}
}

// WriteError writes the diagnostic for err to w in the conventional format:
// the error text prefixed by "Error: ", then the registry's usage reference.
func WriteError(w io.Writer, r *flags.Registry, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	r.WriteUsage(w)
}

// UsageError prints msg prefixed by "Error: " to r's output, prints r's
// usage, and exits the program unsuccessfully.
func UsageError(r *flags.Registry, msg string) {
	fmt.Fprintln(r.Output(), "Error: "+msg)
	if r.Usage != nil {
		r.Usage()
	} else {
		r.PrintUsage()
	}
	os.Exit(1)
}

// UsageErrorf prints str formatted with the given vals to r's output, prints
// r's usage, and exits the program unsuccessfully.
func UsageErrorf(r *flags.Registry, str string, vals ...any) {
	UsageError(r, fmt.Sprintf(str, vals...))
}

// ExitOnError parses args into r and reports any failure through UsageError.
func ExitOnError(r *flags.Registry, args []string) {
	if err := r.Parse(args); err != nil {
		UsageError(r, err.Error())
	}
}

// ArgsFromEnv returns args with the shell-quoted contents of the environment
// variable env prepended, so that flags set in the environment can still be
// overridden on the command line.  Callers conventionally pass os.Args[1:].
func ArgsFromEnv(env string, args []string) ([]string, error) {
	v := os.Getenv(env)
	if v == "" {
		return args, nil
	}
	extra, ok := shell.Split(v)
	if !ok {
		return nil, errors.Errorf("invalid shell quoting in $%s: %q", env, v)
	}
	return append(extra, args...), nil
}

// ParseEnv parses r's flags from args, preceded by any arguments found in the
// environment variable env.
func ParseEnv(r *flags.Registry, env string, args []string) error {
	combined, err := ArgsFromEnv(env, args)
	if err != nil {
		return err
	}
	if err := r.Parse(combined); err != nil {
		return errors.WithMessagef(err, "parsing flags from $%s and command line", env)
	}
	return nil
}

// MustInt constructs and registers an int flag on r, reporting any
// construction failure through UsageError.
func MustInt(r *flags.Registry, name string, def int, desc string, opts ...flags.Option) *flags.IntFlag {
	f, err := r.Int(name, def, desc, opts...)
	if err != nil {
		UsageError(r, err.Error())
	}
	return f
}

// MustFloat constructs and registers a float64 flag on r, reporting any
// construction failure through UsageError.
func MustFloat(r *flags.Registry, name string, def float64, desc string, opts ...flags.Option) *flags.FloatFlag {
	f, err := r.Float(name, def, desc, opts...)
	if err != nil {
		UsageError(r, err.Error())
	}
	return f
}

// MustString constructs and registers a string flag on r, reporting any
// construction failure through UsageError.
func MustString(r *flags.Registry, name string, def string, desc string, opts ...flags.Option) *flags.StringFlag {
	f, err := r.String(name, def, desc, opts...)
	if err != nil {
		UsageError(r, err.Error())
	}
	return f
}

// MustBool constructs and registers a bool flag on r, reporting any
// construction failure through UsageError.
func MustBool(r *flags.Registry, name, desc string) *flags.BoolFlag {
	f, err := r.Bool(name, desc)
	if err != nil {
		UsageError(r, err.Error())
	}
	return f
}
