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

// Package flags implements registration and parsing of typed command-line
// flags.
//
// A flag is a named, typed value cell with a default and a help description.
// Flags are collected into a Registry that parses an argument vector once at
// program startup:
//
//	reg := flags.NewRegistry("server")
//	port, _ := reg.Int("port", 8080, "'PORT' to listen on", flags.Mandatory())
//	verbose, _ := reg.Bool("verbose", "enable verbose logging")
//
//	if err := reg.Parse(os.Args[1:]); err != nil {
//		// report err alongside reg.PrintUsage()
//	}
//
// A description may name the flag's value by embedding a single-quoted token
// (above, 'PORT'); the token is shown next to the flag name in usage text and
// the quotes are stripped from the help line.
//
// The accepted argument shapes are "-name value" and "-name=value" (also
// "--name=value") for typed flags and "--name" for boolean flags, which take
// no value.  Every failure mode is reported as a distinct error type so
// callers can present diagnostics however they like; package
// vexil.io/vexil/go/util/flagutil provides the conventional
// print-usage-and-exit boundary.
package flags // import "vexil.io/vexil/go/flags"

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the scalar type of a flag's value.
type Kind int

// The supported flag value kinds.
const (
	IntKind Kind = iota
	FloatKind
	StringKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Flag is a registered command-line flag of one of the supported kinds:
// *IntFlag, *FloatFlag, *StringFlag, or *BoolFlag.
type Flag interface {
	// Name returns the flag's registration name, used as its argument key.
	Name() string
	// Kind returns the scalar kind of the flag's value.
	Kind() Kind
	// Description returns the flag's help text with placeholder quotes
	// removed.
	Description() string
	// Placeholder returns the value name extracted from the single-quoted
	// token of the description, if any.
	Placeholder() string
	// IsMandatory reports whether parsing fails when the flag is absent.
	IsMandatory() bool
	// IsDefault reports whether the flag's current value equals its default.
	IsDefault() bool
	// UsageEntry returns the flag's two-line usage description.
	UsageEntry() string

	// Set assigns the flag's value from its textual form.  Together with
	// String and Get this makes every Flag a flag.Getter, so Vexil flags
	// can be handed to tooling written against the standard flag package.
	Set(string) error
	// Get returns the flag's current value.
	Get() any
	// String returns the textual form of the flag's current value.
	String() string

	isFlag()
}

// meta holds the properties shared by every flag kind.
type meta struct {
	name        string
	kind        Kind
	desc        string
	placeholder string
	mandatory   bool
}

func (m *meta) Name() string        { return m.name }
func (m *meta) Kind() Kind          { return m.kind }
func (m *meta) Description() string { return m.desc }
func (m *meta) Placeholder() string { return m.placeholder }
func (m *meta) IsMandatory() bool   { return m.mandatory }
func (m *meta) isFlag()             {}

// UsageEntry returns the flag's two-line usage description: the argument
// shape of the flag followed by its indented help text, with mandatory flags
// marked.
func (m *meta) UsageEntry() string {
	var sb strings.Builder
	switch {
	case m.kind == BoolKind:
		fmt.Fprintf(&sb, "--%s\n", m.name)
	case m.placeholder != "":
		fmt.Fprintf(&sb, "-%s %s\n", m.name, m.placeholder)
	default:
		fmt.Fprintf(&sb, "-%s\n", m.name)
	}
	fmt.Fprintf(&sb, "    %s", m.desc)
	if m.mandatory {
		sb.WriteString(" (mandatory)")
	}
	return sb.String()
}

// An Option adjusts the construction of a non-boolean flag.
type Option interface{ isOption() }

type mandatory struct{}

func (mandatory) isOption() {}

// Mandatory returns an Option that marks a flag as required: parsing fails
// with a MissingFlagError unless the flag appears in the argument list.
// Boolean flags cannot be mandatory; their absence simply means false.
func Mandatory() Option { return mandatory{} }

func newMeta(name string, kind Kind, desc string, opts []Option) (meta, error) {
	placeholder, cleaned, err := extractPlaceholder(desc)
	if err != nil {
		return meta{}, err
	}
	m := meta{name: name, kind: kind, desc: cleaned, placeholder: placeholder}
	for _, opt := range opts {
		switch opt.(type) {
		case mandatory:
			m.mandatory = true
		default:
			panic(fmt.Errorf("unhandled Option type: %T", opt))
		}
	}
	return m, nil
}

var placeholderRE = regexp.MustCompile(`'(.*?)'`)

// extractPlaceholder finds the single-quoted argument name in desc.  It
// returns the name and desc with every quote character removed.  More than
// one quoted token makes the description ambiguous.
func extractPlaceholder(desc string) (placeholder, cleaned string, err error) {
	matches := placeholderRE.FindAllStringSubmatch(desc, -1)
	if len(matches) == 0 {
		return "", desc, nil
	}
	if len(matches) > 1 {
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m[1]
		}
		return "", "", &AmbiguousPlaceholderError{Description: desc, Candidates: candidates}
	}
	if matches[0][1] == "" {
		return "", desc, nil
	}
	return matches[0][1], strings.ReplaceAll(desc, "'", ""), nil
}
