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
	"strings"
)

// TypeMismatchError reports a default value whose dynamic type does not match
// the declared Kind of its flag.
type TypeMismatchError struct {
	Name  string
	Kind  Kind
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid default value for %s flag %q: %#v", e.Kind, e.Name, e.Value)
}

// AmbiguousPlaceholderError reports a flag description containing more than
// one single-quoted argument name.
type AmbiguousPlaceholderError struct {
	Description string
	Candidates  []string
}

func (e *AmbiguousPlaceholderError) Error() string {
	return fmt.Sprintf("argument names conflict in %q, between: %s", e.Description, strings.Join(e.Candidates, ", "))
}

// DuplicateFlagError reports a second registration of an already-registered
// flag name.
type DuplicateFlagError struct {
	Name string
}

func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag already registered: %s", e.Name)
}

// ConversionError reports a raw value that cannot be converted to a flag's
// scalar kind.
type ConversionError struct {
	Value string
	Name  string
	Kind  Kind
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert value %q for flag %q (expected type: %s)", e.Value, e.Name, e.Kind)
}

// InvalidFormatError reports an argument token that matches no accepted flag
// shape.  MissingValue marks the case of a space-separated flag token with no
// following value token.
type InvalidFormatError struct {
	Token        string
	MissingValue bool
}

func (e *InvalidFormatError) Error() string {
	if e.MissingValue {
		return fmt.Sprintf("missing value for flag: %s", e.Token)
	}
	return fmt.Sprintf("invalid flag format: %s", e.Token)
}

// UnknownFlagError reports an argument naming a flag that was never
// registered.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %s", e.Name)
}

// BoolFormatError reports a boolean flag referenced through a non-boolean
// argument shape.  Equals marks whether the offending token used the
// equals-separated form.
type BoolFormatError struct {
	Name   string
	Equals bool
}

func (e *BoolFormatError) Error() string {
	shape := fmt.Sprintf("-%s value", e.Name)
	if e.Equals {
		shape = fmt.Sprintf("-%s=value", e.Name)
	}
	return fmt.Sprintf("boolean flags have to be specified as %q, not %q", "--"+e.Name, shape)
}

// MissingFlagError reports a mandatory flag absent from the parsed argument
// list.
type MissingFlagError struct {
	Name string
}

func (e *MissingFlagError) Error() string {
	return fmt.Sprintf("mandatory flag %q not provided", e.Name)
}
