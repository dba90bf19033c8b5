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
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// Parse reads the argument list, excluding the program name, left to right in
// a single pass, assigning each matched value to its registered flag.  The
// accepted token shapes are
//
//	-name value    typed flag, value taken from the next token
//	-name=value    typed flag, split at the first "="
//	--name=value   same as -name=value
//	--name         boolean flag, toggled to true
//
// Flag names match after every "-" is removed from the token, so "-port",
// "--port", and "port" in "-port=80" all address the flag named "port".
// Boolean flags accept only the "--name" shape.
//
// Parse stops at the first failure, returning an InvalidFormatError,
// UnknownFlagError, BoolFormatError, or ConversionError describing it.  Once
// the list is exhausted, every mandatory flag must have been assigned at
// least once; the first-registered flag still missing is reported as a
// MissingFlagError.
//
// Parse is meant to run once per Registry, after all flags are constructed.
// It does not restore default values between calls.
func (r *Registry) Parse(args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	provided := stringset.New()
	rest := args
	for len(rest) > 0 {
		tok := rest[0]
		rest = rest[1:]

		var realName, raw string
		var boolForm, hasEq bool
		switch {
		case strings.Contains(tok, "="):
			parts := strings.SplitN(tok, "=", 2)
			realName, raw = parts[0], parts[1]
			hasEq = true
		case strings.HasPrefix(tok, "--"):
			realName = tok
			raw = "true"
			boolForm = true
		case strings.HasPrefix(tok, "-"):
			realName = tok
			if len(rest) == 0 {
				return &InvalidFormatError{Token: tok, MissingValue: true}
			}
			raw = rest[0]
			rest = rest[1:]
		default:
			return &InvalidFormatError{Token: tok}
		}

		name := strings.ReplaceAll(realName, "-", "")
		f, ok := r.flags[name]
		if !ok {
			return &UnknownFlagError{Name: name}
		}
		if f.Kind() == BoolKind && !boolForm {
			return &BoolFormatError{Name: name, Equals: hasEq}
		}
		if err := f.Set(raw); err != nil {
			return err
		}
		provided.Add(name)
	}

	for _, name := range r.pending {
		if !provided.Contains(name) {
			return &MissingFlagError{Name: name}
		}
	}
	r.provided = provided
	return nil
}
