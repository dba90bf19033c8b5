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

package flags

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"bitbucket.org/creachadair/stringset"
)

// A Registry holds a set of flags keyed by name and drives argument parsing,
// mandatory-flag enforcement, and usage rendering over them.  Flags register
// into it at construction; Parse is then invoked once with the process
// argument vector.  Registration and parsing are safe for concurrent use.
type Registry struct {
	// Usage may be set to a custom function that prints the registry's
	// usage message.  When nil, WriteUsage output is used.  It is invoked
	// by the flagutil error boundary when parsing or registration fails.
	Usage func()

	mu       sync.Mutex
	name     string
	output   io.Writer // nil means os.Stderr
	flags    map[string]Flag
	order    []Flag
	pending  []string // names of mandatory flags, in registration order
	provided stringset.Set
}

// NewRegistry returns an empty Registry.  The given name is reported in the
// usage header, conventionally the program's basename.
func NewRegistry(name string) *Registry {
	return &Registry{name: name, flags: make(map[string]Flag)}
}

// Name returns the registry's name, as shown in the usage header.
func (r *Registry) Name() string { return r.name }

// NFlags returns the number of registered flags.
func (r *Registry) NFlags() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Output returns the destination for usage messages, os.Stderr when unset.
func (r *Registry) Output() io.Writer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.output == nil {
		return os.Stderr
	}
	return r.output
}

// SetOutput sets the destination for usage messages.  A nil output means
// os.Stderr.
func (r *Registry) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = w
}

// register inserts f, keyed by its name.  Mandatory flags are also tracked
// for the post-parse presence check.
func (r *Registry) register(f Flag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := f.Name()
	if _, ok := r.flags[name]; ok {
		return &DuplicateFlagError{Name: name}
	}
	if r.flags == nil {
		r.flags = make(map[string]Flag)
	}
	r.flags[name] = f
	r.order = append(r.order, f)
	if f.IsMandatory() {
		r.pending = append(r.pending, name)
	}
	return nil
}

// Int constructs and registers a flag holding an int.
func (r *Registry) Int(name string, def int, desc string, opts ...Option) (*IntFlag, error) {
	m, err := newMeta(name, IntKind, desc, opts)
	if err != nil {
		return nil, err
	}
	f := &IntFlag{meta: m, value: def, def: def}
	if err := r.register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Float constructs and registers a flag holding a float64.
func (r *Registry) Float(name string, def float64, desc string, opts ...Option) (*FloatFlag, error) {
	m, err := newMeta(name, FloatKind, desc, opts)
	if err != nil {
		return nil, err
	}
	f := &FloatFlag{meta: m, value: def, def: def}
	if err := r.register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// String constructs and registers a flag holding a string.
func (r *Registry) String(name string, def string, desc string, opts ...Option) (*StringFlag, error) {
	m, err := newMeta(name, StringKind, desc, opts)
	if err != nil {
		return nil, err
	}
	f := &StringFlag{meta: m, value: def, def: def}
	if err := r.register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Bool constructs and registers a flag holding a bool.  Boolean flags default
// to false and cannot be mandatory: supplying --name on the command line is
// the only way to set one, and its absence means false.
func (r *Registry) Bool(name, desc string) (*BoolFlag, error) {
	m, err := newMeta(name, BoolKind, desc, nil)
	if err != nil {
		return nil, err
	}
	f := &BoolFlag{meta: m}
	if err := r.register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Declare constructs and registers a flag of an explicit Kind, validating
// that the dynamic type of def matches the kind: int for IntKind, float64
// for FloatKind, string for StringKind.  For BoolKind, def must be nil or
// false and any Options are ignored, since boolean flags always default to
// false and are never mandatory.  Most callers use the typed constructors
// instead.
func (r *Registry) Declare(kind Kind, name string, def any, desc string, opts ...Option) (Flag, error) {
	switch kind {
	case IntKind:
		d, ok := def.(int)
		if !ok {
			return nil, &TypeMismatchError{Name: name, Kind: kind, Value: def}
		}
		return r.Int(name, d, desc, opts...)
	case FloatKind:
		d, ok := def.(float64)
		if !ok {
			return nil, &TypeMismatchError{Name: name, Kind: kind, Value: def}
		}
		return r.Float(name, d, desc, opts...)
	case StringKind:
		d, ok := def.(string)
		if !ok {
			return nil, &TypeMismatchError{Name: name, Kind: kind, Value: def}
		}
		return r.String(name, d, desc, opts...)
	case BoolKind:
		if def != nil {
			if d, ok := def.(bool); !ok || d {
				return nil, &TypeMismatchError{Name: name, Kind: kind, Value: def}
			}
		}
		return r.Bool(name, desc)
	default:
		panic(fmt.Errorf("unhandled Kind: %v", kind))
	}
}

// Lookup returns the flag registered under name, or nil if there is none.
func (r *Registry) Lookup(name string) Flag {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flags[name]
}

// VisitAll calls fn for each registered flag, in registration order.
func (r *Registry) VisitAll(fn func(Flag)) {
	r.mu.Lock()
	order := make([]Flag, len(r.order))
	copy(order, r.order)
	r.mu.Unlock()
	for _, f := range order {
		fn(f)
	}
}

// Provided reports whether name was assigned a value by Parse.
func (r *Registry) Provided(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.provided.Contains(name)
}

// WriteUsage writes the registry's usage reference to w: a header naming the
// program, then every flag's two-line usage entry in registration order.
func (r *Registry) WriteUsage(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(w, "Usage of %s:\n", r.name)
	for _, f := range r.order {
		fmt.Fprintln(w, f.UsageEntry())
	}
}

// PrintUsage writes the registry's usage reference to its output.
func (r *Registry) PrintUsage() { r.WriteUsage(r.Output()) }

// CommandLine is the default flag registry, named after the running program.
// The top-level registration and parsing functions operate on it.
var CommandLine = NewRegistry(filepath.Base(os.Args[0]))

// Int constructs and registers a CommandLine flag holding an int.
func Int(name string, def int, desc string, opts ...Option) (*IntFlag, error) {
	return CommandLine.Int(name, def, desc, opts...)
}

// Float constructs and registers a CommandLine flag holding a float64.
func Float(name string, def float64, desc string, opts ...Option) (*FloatFlag, error) {
	return CommandLine.Float(name, def, desc, opts...)
}

// String constructs and registers a CommandLine flag holding a string.
func String(name string, def string, desc string, opts ...Option) (*StringFlag, error) {
	return CommandLine.String(name, def, desc, opts...)
}

// Bool constructs and registers a CommandLine flag holding a bool.
func Bool(name, desc string) (*BoolFlag, error) {
	return CommandLine.Bool(name, desc)
}

// Lookup returns the CommandLine flag registered under name, or nil if there
// is none.
func Lookup(name string) Flag { return CommandLine.Lookup(name) }

// Parse parses the command-line arguments from os.Args[1:] into CommandLine.
func Parse() error { return CommandLine.Parse(os.Args[1:]) }

// PrintUsage writes CommandLine's usage reference to its output.
func PrintUsage() { CommandLine.PrintUsage() }
