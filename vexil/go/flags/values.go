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
	"flag"
	"fmt"
	"math"
	"strconv"

	"vexil.io/vexil/go/util/compare"
)

var (
	_ flag.Getter = (*IntFlag)(nil)
	_ flag.Getter = (*FloatFlag)(nil)
	_ flag.Getter = (*StringFlag)(nil)
	_ flag.Getter = (*BoolFlag)(nil)
)

// An IntFlag is a Flag holding an int value.
type IntFlag struct {
	meta
	value, def int
}

// Value returns the flag's current value.
func (f *IntFlag) Value() int { return f.value }

// Default returns the value the flag was constructed with.
func (f *IntFlag) Default() int { return f.def }

// IsDefault reports whether the flag's current value equals its default.
func (f *IntFlag) IsDefault() bool { return f.value == f.def }

// Set implements part of the flag.Getter interface.
func (f *IntFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return &ConversionError{Value: s, Name: f.name, Kind: IntKind}
	}
	f.value = v
	return nil
}

// Get implements part of the flag.Getter interface.
func (f *IntFlag) Get() any { return f.value }

// String implements part of the flag.Getter interface.
func (f *IntFlag) String() string {
	if f == nil {
		return ""
	}
	return strconv.Itoa(f.value)
}

// Equal reports whether the flag's current value equals v.  The operand may
// be a value of any integer or float type (floats are truncated toward
// zero), a base-10 numeric string, or a flag.Getter holding one of those;
// unconvertible operands are never equal.
func (f *IntFlag) Equal(v any) bool {
	i, ok := toInt(v)
	return ok && f.value == i
}

// Compare returns the Order between the flag's current value and v, accepting
// the same operands as Equal.  Unconvertible operands yield a
// ConversionError.
func (f *IntFlag) Compare(v any) (compare.Order, error) {
	i, ok := toInt(v)
	if !ok {
		return compare.EQ, &ConversionError{Value: fmt.Sprint(v), Name: f.name, Kind: IntKind}
	}
	return compare.Compare(f.value, i), nil
}

// A FloatFlag is a Flag holding a float64 value.
type FloatFlag struct {
	meta
	value, def float64
}

// Value returns the flag's current value.
func (f *FloatFlag) Value() float64 { return f.value }

// Default returns the value the flag was constructed with.
func (f *FloatFlag) Default() float64 { return f.def }

// IsDefault reports whether the flag's current value equals its default.
func (f *FloatFlag) IsDefault() bool { return f.value == f.def }

// Set implements part of the flag.Getter interface.
func (f *FloatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &ConversionError{Value: s, Name: f.name, Kind: FloatKind}
	}
	f.value = v
	return nil
}

// Get implements part of the flag.Getter interface.
func (f *FloatFlag) Get() any { return f.value }

// String implements part of the flag.Getter interface.
func (f *FloatFlag) String() string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// Equal reports whether the flag's current value equals v.  The operand may
// be a value of any integer or float type, a numeric string, or a
// flag.Getter holding one of those; unconvertible operands are never equal.
// A NaN value is never equal to anything.
func (f *FloatFlag) Equal(v any) bool {
	x, ok := toFloat(v)
	return ok && f.value == x
}

// Compare returns the Order between the flag's current value and v, accepting
// the same operands as Equal.  Unconvertible operands yield a
// ConversionError.  NaN values order as in compare.Floats.
func (f *FloatFlag) Compare(v any) (compare.Order, error) {
	x, ok := toFloat(v)
	if !ok {
		return compare.EQ, &ConversionError{Value: fmt.Sprint(v), Name: f.name, Kind: FloatKind}
	}
	return compare.Compare(f.value, x), nil
}

// A StringFlag is a Flag holding a string value.
type StringFlag struct {
	meta
	value, def string
}

// Value returns the flag's current value.
func (f *StringFlag) Value() string { return f.value }

// Default returns the value the flag was constructed with.
func (f *StringFlag) Default() string { return f.def }

// IsDefault reports whether the flag's current value equals its default.
func (f *StringFlag) IsDefault() bool { return f.value == f.def }

// Set implements part of the flag.Getter interface.  Any string is a valid
// value.
func (f *StringFlag) Set(s string) error {
	f.value = s
	return nil
}

// Get implements part of the flag.Getter interface.
func (f *StringFlag) Get() any { return f.value }

// String implements part of the flag.Getter interface.
func (f *StringFlag) String() string {
	if f == nil {
		return ""
	}
	return f.value
}

// Equal reports whether the flag's current value equals the textual form of
// v, as formatted by the fmt package.
func (f *StringFlag) Equal(v any) bool { return f.value == fmt.Sprint(unwrapGetter(v)) }

// A BoolFlag is a Flag holding a bool value.  Boolean flags always default to
// false and are never mandatory; their presence on the command line toggles
// them to true.
type BoolFlag struct {
	meta
	value bool
}

// Value returns the flag's current value.
func (f *BoolFlag) Value() bool { return f.value }

// Default returns the value the flag was constructed with, always false.
func (f *BoolFlag) Default() bool { return false }

// IsDefault reports whether the flag's current value equals its default.
func (f *BoolFlag) IsDefault() bool { return !f.value }

// Set implements part of the flag.Getter interface.
func (f *BoolFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return &ConversionError{Value: s, Name: f.name, Kind: BoolKind}
	}
	f.value = v
	return nil
}

// Get implements part of the flag.Getter interface.
func (f *BoolFlag) Get() any { return f.value }

// String implements part of the flag.Getter interface.
func (f *BoolFlag) String() string {
	if f == nil {
		return ""
	}
	return strconv.FormatBool(f.value)
}

// IsBoolFlag marks the flag as boolean for tooling written against the
// standard flag package.
func (f *BoolFlag) IsBoolFlag() bool { return true }

// Equal reports whether the flag's current value equals v.  The operand may
// be a bool, a numeric value (nonzero meaning true), a string accepted by
// strconv.ParseBool, or a flag.Getter holding one of those; unconvertible
// operands are never equal.
func (f *BoolFlag) Equal(v any) bool {
	b, ok := toBool(v)
	return ok && f.value == b
}

// unwrapGetter unwraps a flag.Getter operand so flags can be compared
// directly against other flags.
func unwrapGetter(v any) any {
	if g, ok := v.(interface{ Get() any }); ok {
		return g.Get()
	}
	return v
}

func toInt(v any) (int, bool) {
	switch v := unwrapGetter(v).(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int(v), true
	case float32:
		return toInt(float64(v))
	case float64:
		if math.IsNaN(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int(v), true
	case string:
		i, err := strconv.Atoi(v)
		return i, err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch v := unwrapGetter(v).(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		x, err := strconv.ParseFloat(v, 64)
		return x, err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch v := unwrapGetter(v).(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	case int:
		return v != 0, true
	case int8:
		return v != 0, true
	case int16:
		return v != 0, true
	case int32:
		return v != 0, true
	case int64:
		return v != 0, true
	case uint:
		return v != 0, true
	case uint8:
		return v != 0, true
	case uint16:
		return v != 0, true
	case uint32:
		return v != 0, true
	case uint64:
		return v != 0, true
	case float32:
		return v != 0, true
	case float64:
		return v != 0, true
	}
	return false, false
}
