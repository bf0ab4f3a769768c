// Copyright 2025 go-minitorch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package functional provides higher-order combinators over sequences of
// floating point values, built on the elementary operators in package scalar.
//
// # Sequence combinators
//
// Map, ZipWith and Reduce take an operator and return a function over
// iter.Seq values. Nothing is evaluated until the returned sequence is
// ranged over:
//
//	double := functional.Map(func(x float64) float64 { return 2 * x })
//	for v := range double(slices.Values(xs)) {
//	    ...
//	}
//
// The derived utilities are partial applications of those combinators:
//   - NegList(values)         = Map(scalar.Neg)(values)
//   - AddLists(left, right)   = ZipWith(scalar.Add)(left, right)
//   - Sum(values)             = Reduce(scalar.Add)(values)
//   - Prod(values)            = Reduce(scalar.Mul)(values)
//
// Reduce has no seed and returns 0 for an empty sequence whatever the
// operator is, so Prod of an empty sequence is 0 rather than 1.
//
// # Fallible operators
//
// TryMap, TryZipWith and TryReduce accept operators that return an error,
// such as scalar.TryInv. The error surfaces at the element where it occurs,
// when that element is pulled, and ends the sequence.
//
// # Slice transforms
//
// Transform and TransformBinary apply an operator over caller-allocated
// slices without allocating, processing min(len(input), len(output))
// elements.
package functional
