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

// Package compare implements comparisons between scalar flag values.
package compare // import "vexil.io/vexil/go/util/compare"

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// An Option changes the behavior of the generic comparisons.
type Option interface{ isOption() }

// And is an Option that unions other Options.
func And(opt ...Option) Option { return and(opt) }

type and []Option

func (and) isOption() {}

// With is an Option that provides a custom comparison function for the final
// values being compared.  Only the last With Option passed to Compare will be
// honored.
type With func(a, b any) Order

func (With) isOption() {}

type reverseOrder struct{}

func (reverseOrder) isOption() {}

// Reversed returns an Option that reverses the resulting Order from a
// comparison.
func Reversed() Option { return reverseOrder{} }

// By is an Option that transforms a value before performing a comparison.  It
// should work on both sides of the comparison equivalently.
type By func(any) any

func (By) isOption() {}

// Compare returns the Order between two arbitrary values of the same type.
//
// Only the following types are currently supported:
//
//	{string, int, int64, float64, bool, []byte}.
//
// Options may be provided to change the semantics of the comparison.  Other
// types may be compared if an appropriate By Option transforms the values into
// a supported type or a With Option is provided for the types given.
//
// Note: this function panics if a and b are different types
func Compare(a, b any, opts ...Option) (o Order) {
	var reversed bool
	defer func() {
		if reversed {
			o = o.Reverse()
		}
	}()
	var with With
	var handleOpt func(opt Option)
	handleOpt = func(opt Option) {
		switch opt := opt.(type) {
		case By:
			a = opt(a)
			b = opt(b)
		case reverseOrder:
			reversed = !reversed
		case With:
			with = opt
		case and:
			for _, nested := range opt {
				handleOpt(nested)
			}
		default:
			panic(fmt.Errorf("unhandled Option type: %T", opt))
		}
	}
	for _, opt := range opts {
		handleOpt(opt)
	}
	if with != nil {
		return with(a, b)
	}
	switch a := a.(type) {
	case bool:
		return Bools(a, b.(bool))
	case int:
		return Ints(a, b.(int))
	case int64:
		return Ints64(a, b.(int64))
	case float64:
		return Floats(a, b.(float64))
	case string:
		return Strings(a, b.(string))
	case []byte:
		return Bytes(a, b.([]byte))
	default:
		panic(fmt.Errorf("unhandled Compare type: %T", a))
	}
}

// AndThen returns o if o != EQ.  Otherwise, the Order between a and b is
// determined and returned.  AndThen can be used to chain comparisons.
//
// Example:
//
//	Compare(a, b, By(someField)).AndThen(a, b, By(someOtherField))
func (o Order) AndThen(a, b any, opts ...Option) Order {
	if o != EQ {
		return o
	}
	return Compare(a, b, opts...)
}

// Seq sequences comparisons on the same two values over different
// Options.  If len(opts) == 0, Seq merely returns Compare(a, b).
// For len(opts) > 0, Seq returns
// Compare(a, b, opts[0]).AndThen(a, b, opts[1])....AndThen(a, b, opts[len(opts)-1]).
func Seq(a, b any, opts ...Option) Order {
	if len(opts) == 0 {
		return Compare(a, b)
	}
	for _, opt := range opts {
		// Inlined, short-circuiting AndThen
		if o := Compare(a, b, opt); o != EQ {
			return o
		}
	}
	return EQ
}

// ToOrder returns LT if c < 0, EQ if c == 0, or GT if c > 0.
func ToOrder(c int) Order {
	if c < 0 {
		return LT
	} else if c > 0 {
		return GT
	}
	return EQ
}

// An Order represents an ordering relationship between values.
type Order int

// LT, EQ, and GT are the standard values for an Order.
const (
	LT Order = -1 // lhs < rhs
	EQ Order = 0  // lhs == rhs
	GT Order = 1  // lhs > rhs
)

// Reverse reverses the Order: LT -> GT, GT -> LT; EQ -> EQ.
func (o Order) Reverse() Order {
	return Order(-1 * o)
}

func (o Order) String() string {
	switch o {
	case LT:
		return "LT"
	case GT:
		return "GT"
	case EQ:
		return "EQ"
	default:
		return fmt.Sprintf("Order(%d)", o)
	}
}

// Strings returns LT if s < t, EQ if s == t, or GT if s > t.
func Strings(s, t string) Order { return Order(strings.Compare(s, t)) }

// Bytes returns LT if s < t, EQ if s == t, or GT if s > t.
func Bytes(s, t []byte) Order { return Order(bytes.Compare(s, t)) }

// Ints returns LT if a < b, EQ if a == b, or GT if a > b.
func Ints(a, b int) Order {
	switch {
	case a < b:
		return LT
	case a > b:
		return GT
	}
	return EQ
}

// Ints64 returns LT if a < b, EQ if a == b, or GT if a > b.
func Ints64(a, b int64) Order {
	switch {
	case a < b:
		return LT
	case a > b:
		return GT
	}
	return EQ
}

// Floats returns LT if a < b, EQ if a == b, or GT if a > b.  A NaN is ordered
// before any non-NaN value and two NaNs are EQ, giving a total order suitable
// for sorting.
func Floats(a, b float64) Order {
	switch {
	case a < b:
		return LT
	case a > b:
		return GT
	case a == b:
		return EQ
	}
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return EQ
	case math.IsNaN(a):
		return LT
	}
	return GT
}

// Bools returns LT if !a && b, EQ if a == b, or GT if a && !b.
func Bools(a, b bool) Order {
	if a == b {
		return EQ
	} else if !a {
		return LT
	}
	return GT
}
