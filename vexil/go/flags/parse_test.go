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
	"errors"
	"testing"

	"vexil.io/vexil/go/test/testutil"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"space separated", []string{"-port", "8080"}, 8080},
		{"equals separated", []string{"-port=8080"}, 8080},
		{"double dash equals", []string{"--port=8080"}, 8080},
		{"equals without dashes", []string{"port=8080"}, 8080},
		{"repeated flag last wins", []string{"-port=1", "-port=2"}, 2},
		{"negative value", []string{"-port", "-5"}, -5},
		{"negative equals value", []string{"-port=-5"}, -5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := NewRegistry("test")
			port := mustInt(t, reg, "port", 0, "'PORT' to listen on")
			testutil.Fatalf(t, "Parse: %v", reg.Parse(test.args))
			if port.Value() != test.want {
				t.Errorf("port: got %d, want %d", port.Value(), test.want)
			}
			if !reg.Provided("port") {
				t.Error("Provided(port): got false, want true")
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	reg := NewRegistry("test")
	verbose := mustBool(t, reg, "verbose", "enable verbose logging")
	testutil.Fatalf(t, "Parse: %v", reg.Parse([]string{"--verbose"}))
	if !verbose.Value() {
		t.Error("verbose: got false, want true")
	}
	if !reg.Provided("verbose") {
		t.Error("Provided(verbose): got false, want true")
	}

	reg = NewRegistry("test")
	verbose = mustBool(t, reg, "verbose", "enable verbose logging")
	testutil.Fatalf(t, "Parse: %v", reg.Parse(nil))
	if verbose.Value() || !verbose.IsDefault() {
		t.Errorf("absent verbose: got (%v, %v), want (false, true)", verbose.Value(), verbose.IsDefault())
	}
	if reg.Provided("verbose") {
		t.Error("Provided(verbose): got true, want false")
	}
}

func TestParseMixed(t *testing.T) {
	reg := NewRegistry("test")
	addr := mustString(t, reg, "addr", "", "'ADDRESS' to dial")
	retries := mustInt(t, reg, "retries", 3, "retry 'TIMES' before giving up")
	timeout := mustFloat(t, reg, "timeout", 2.5, "'SECONDS' per attempt")
	verbose := mustBool(t, reg, "verbose", "enable verbose logging")
	name := mustString(t, reg, "name", "anon", "user name")

	args := []string{"-addr", "localhost:80", "--verbose", "-retries=5", "--timeout=0.5"}
	testutil.Fatalf(t, "Parse: %v", reg.Parse(args))

	if addr.Value() != "localhost:80" {
		t.Errorf("addr: got %q, want localhost:80", addr.Value())
	}
	if retries.Value() != 5 {
		t.Errorf("retries: got %d, want 5", retries.Value())
	}
	if timeout.Value() != 0.5 {
		t.Errorf("timeout: got %v, want 0.5", timeout.Value())
	}
	if !verbose.Value() {
		t.Error("verbose: got false, want true")
	}
	for _, provided := range []string{"addr", "retries", "timeout", "verbose"} {
		if !reg.Provided(provided) {
			t.Errorf("Provided(%s): got false, want true", provided)
		}
	}
	if reg.Provided("name") || !name.IsDefault() {
		t.Error("untouched flag: want unprovided and default")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bare token", []string{"port"}, &InvalidFormatError{Token: "port"}},
		{"dangling flag", []string{"-port"}, &InvalidFormatError{Token: "-port", MissingValue: true}},
		{"unknown flag", []string{"-nope=1"}, &UnknownFlagError{Name: "nope"}},
		{"unknown flag space form", []string{"-nope", "1"}, &UnknownFlagError{Name: "nope"}},
		{"empty name", []string{"--"}, &UnknownFlagError{Name: ""}},
		{"bool equals form", []string{"-verbose=true"}, &BoolFormatError{Name: "verbose", Equals: true}},
		{"bool double dash equals form", []string{"--verbose=true"}, &BoolFormatError{Name: "verbose", Equals: true}},
		{"bool space form", []string{"-verbose", "true"}, &BoolFormatError{Name: "verbose"}},
		{"conversion failure", []string{"-port", "abc"}, &ConversionError{Value: "abc", Name: "port", Kind: IntKind}},
		{"conversion failure empty value", []string{"-port="}, &ConversionError{Value: "", Name: "port", Kind: IntKind}},
		{"typed flag in boolean form", []string{"--port"}, &ConversionError{Value: "true", Name: "port", Kind: IntKind}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := NewRegistry("test")
			mustInt(t, reg, "port", 0, "'PORT' to listen on")
			mustBool(t, reg, "verbose", "enable verbose logging")

			err := reg.Parse(test.args)
			if err == nil {
				t.Fatalf("Parse(%q): got nil error, want %v", test.args, test.want)
			}
			if diffErr := testutil.DeepEqual(test.want, err); diffErr != nil {
				t.Errorf("Parse(%q) error: %v", test.args, diffErr)
			}
		})
	}
}

func TestParseMandatory(t *testing.T) {
	reg := NewRegistry("test")
	mustString(t, reg, "target", "", "the 'HOST' to dial", Mandatory())

	var want error = &MissingFlagError{Name: "target"}
	if err := testutil.DeepEqual(want, reg.Parse(nil)); err != nil {
		t.Errorf("Parse without target: %v", err)
	}
	if reg.Provided("target") {
		t.Error("Provided(target) after failure: got true, want false")
	}

	reg = NewRegistry("test")
	target := mustString(t, reg, "target", "", "the 'HOST' to dial", Mandatory())
	testutil.Fatalf(t, "Parse: %v", reg.Parse([]string{"-target", "example.com"}))
	if target.Value() != "example.com" {
		t.Errorf("target: got %q, want example.com", target.Value())
	}
	if !reg.Provided("target") {
		t.Error("Provided(target): got false, want true")
	}
}

// Missing mandatory flags are reported in registration order.
func TestParseMandatoryOrder(t *testing.T) {
	reg := NewRegistry("test")
	mustInt(t, reg, "alpha", 0, "", Mandatory())
	mustInt(t, reg, "bravo", 0, "", Mandatory())

	var want error = &MissingFlagError{Name: "alpha"}
	if err := testutil.DeepEqual(want, reg.Parse(nil)); err != nil {
		t.Errorf("Parse with both missing: %v", err)
	}

	reg = NewRegistry("test")
	mustInt(t, reg, "alpha", 0, "", Mandatory())
	mustInt(t, reg, "bravo", 0, "", Mandatory())
	want = &MissingFlagError{Name: "bravo"}
	if err := testutil.DeepEqual(want, reg.Parse([]string{"-alpha=1"})); err != nil {
		t.Errorf("Parse with bravo missing: %v", err)
	}
}

// An explicitly empty value still counts as providing the flag.
func TestParseEmptyValue(t *testing.T) {
	reg := NewRegistry("test")
	target := mustString(t, reg, "target", "", "the 'HOST' to dial", Mandatory())

	testutil.Fatalf(t, "Parse: %v", reg.Parse([]string{"-target="}))
	if target.Value() != "" {
		t.Errorf("target: got %q, want empty", target.Value())
	}
	if !reg.Provided("target") {
		t.Error("Provided(target): got false, want true")
	}
}

// Dashes are decoration: every "-" in the name part of a token is discarded
// before the flag is looked up.
func TestParseDashHandling(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"interior dash", []string{"-my-port=7"}},
		{"doubled dashes", []string{"--my--port=7"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := NewRegistry("test")
			myport := mustInt(t, reg, "myport", 0, "")
			testutil.Fatalf(t, "Parse: %v", reg.Parse(test.args))
			if myport.Value() != 7 {
				t.Errorf("myport: got %d, want 7", myport.Value())
			}
			if !reg.Provided("myport") {
				t.Error("Provided(myport): got false, want true")
			}
		})
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	reg := NewRegistry("test")
	alpha := mustInt(t, reg, "alpha", 0, "")
	bravo := mustInt(t, reg, "bravo", 0, "")

	err := reg.Parse([]string{"-alpha", "1", "-bravo", "abc", "-alpha", "9"})
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("Parse error: got %v, want *ConversionError", err)
	}
	if convErr.Name != "bravo" {
		t.Errorf("failing flag: got %q, want bravo", convErr.Name)
	}

	// Assignments before the failure stick, but nothing is recorded as
	// provided and later tokens are never reached.
	if alpha.Value() != 1 {
		t.Errorf("alpha: got %d, want 1", alpha.Value())
	}
	if !bravo.IsDefault() {
		t.Errorf("bravo: got %d, want its default", bravo.Value())
	}
	if reg.Provided("alpha") || reg.Provided("bravo") {
		t.Error("Provided after failed parse: got true, want false")
	}

	// Argument errors take precedence over the mandatory check.
	reg = NewRegistry("test")
	mustInt(t, reg, "jobs", 1, "", Mandatory())
	var unknownErr *UnknownFlagError
	if err := reg.Parse([]string{"-nope=1"}); !errors.As(err, &unknownErr) {
		t.Errorf("Parse error: got %v, want *UnknownFlagError", err)
	}
}
