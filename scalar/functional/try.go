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

// TryMap is Map for operators that can fail. Each element is yielded with a
// nil error until fn fails; the failing element is yielded as (0, err) and
// the sequence ends.
func TryMap[T scalar.Floats](fn func(T) (T, error)) func(iter.Seq[T]) iter.Seq2[T, error] {
	return func(values iter.Seq[T]) iter.Seq2[T, error] {
		return func(yield func(T, error) bool) {
			for v := range values {
				out, err := fn(v)
				if err != nil {
					yield(0, err)
					return
				}
				if !yield(out, nil) {
					return
				}
			}
		}
	}
}

// TryZipWith is ZipWith for operators that can fail.
func TryZipWith[T scalar.Floats](fn func(T, T) (T, error)) func(left, right iter.Seq[T]) iter.Seq2[T, error] {
	return func(left, right iter.Seq[T]) iter.Seq2[T, error] {
		return func(yield func(T, error) bool) {
			next, stop := iter.Pull(right)
			defer stop()
			for l := range left {
				r, ok := next()
				if !ok {
					return
				}
				out, err := fn(l, r)
				if err != nil {
					yield(0, err)
					return
				}
				if !yield(out, nil) {
					return
				}
			}
		}
	}
}

// TryReduce is Reduce for operators that can fail. The fold stops at the
// first error, which is returned with a zero result.
func TryReduce[T scalar.Floats](fn func(T, T) (T, error)) func(iter.Seq[T]) (T, error) {
	return func(values iter.Seq[T]) (T, error) {
		var acc T
		first := true
		for v := range values {
			if first {
				acc, first = v, false
				continue
			}
			var err error
			if acc, err = fn(acc, v); err != nil {
				return 0, err
			}
		}
		return acc, nil
	}
}
