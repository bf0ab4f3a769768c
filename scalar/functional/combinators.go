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

package functional

import (
	"iter"

	"github.com/go-minitorch/minitorch/scalar"
)

// Map returns a function that applies fn to each element of a sequence,
// preserving order and length.
func Map[T scalar.Floats](fn func(T) T) func(iter.Seq[T]) iter.Seq[T] {
	return func(values iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range values {
				if !yield(fn(v)) {
					return
				}
			}
		}
	}
}

// ZipWith returns a function that combines two sequences pairwise with fn.
// The result stops at the end of the shorter sequence.
func ZipWith[T scalar.Floats](fn func(T, T) T) func(left, right iter.Seq[T]) iter.Seq[T] {
	return func(left, right iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			next, stop := iter.Pull(right)
			defer stop()
			for l := range left {
				r, ok := next()
				if !ok {
					return
				}
				if !yield(fn(l, r)) {
					return
				}
			}
		}
	}
}

// Reduce returns a function that folds a sequence from the left with fn.
// The first element seeds the accumulator; an empty sequence gives 0.
func Reduce[T scalar.Floats](fn func(T, T) T) func(iter.Seq[T]) T {
	return func(values iter.Seq[T]) T {
		var acc T
		first := true
		for v := range values {
			if first {
				acc, first = v, false
				continue
			}
			acc = fn(acc, v)
		}
		return acc
	}
}

// NegList negates each element.
func NegList[T scalar.Floats](values iter.Seq[T]) iter.Seq[T] {
	return Map(scalar.Neg[T])(values)
}

// AddLists adds two sequences elementwise, truncated to the shorter one.
func AddLists[T scalar.Floats](left, right iter.Seq[T]) iter.Seq[T] {
	return ZipWith(scalar.Add[T])(left, right)
}

// Sum adds up all elements. An empty sequence sums to 0.
func Sum[T scalar.Floats](values iter.Seq[T]) T {
	return Reduce(scalar.Add[T])(values)
}

// Prod multiplies all elements. An empty sequence gives 0, not 1.
func Prod[T scalar.Floats](values iter.Seq[T]) T {
	return Reduce(scalar.Mul[T])(values)
}
