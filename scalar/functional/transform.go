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

import "github.com/go-minitorch/minitorch/scalar"

// Transform applies fn to each element of input, storing results in output.
// It processes min(len(input), len(output)) elements.
//
// Example usage:
//
//	Transform(input, output, func(x float64) float64 { return x*x + x })
func Transform[T scalar.Floats](input, output []T, fn func(T) T) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = fn(input[i])
	}
}

// TransformBinary combines left and right elementwise with fn, storing
// results in output. It processes the shortest of the three lengths.
func TransformBinary[T scalar.Floats](left, right, output []T, fn func(T, T) T) {
	n := min(len(left), len(right), len(output))
	for i := 0; i < n; i++ {
		output[i] = fn(left[i], right[i])
	}
}

// NegTransform applies -x to each element.
// Caller must ensure len(output) >= len(input).
func NegTransform[T scalar.Floats](input, output []T) {
	Transform(input, output, scalar.Neg[T])
}

// ReLUTransform applies max(x, 0) to each element.
func ReLUTransform[T scalar.Floats](input, output []T) {
	Transform(input, output, scalar.ReLU[T])
}

// SigmoidTransform applies sigmoid(x) = 1/(1+exp(-x)) to each element.
func SigmoidTransform[T scalar.Floats](input, output []T) {
	Transform(input, output, scalar.Sigmoid[T])
}

// ExpTransform applies exp(x) to each element.
func ExpTransform[T scalar.Floats](input, output []T) {
	Transform(input, output, scalar.Exp[T])
}

// LogTransform applies the EPS-shifted ln(x + EPS) to each element.
func LogTransform[T scalar.Floats](input, output []T) {
	Transform(input, output, scalar.Log[T])
}

// AddTransform stores left[i] + right[i] in output[i].
func AddTransform[T scalar.Floats](left, right, output []T) {
	TransformBinary(left, right, output, scalar.Add[T])
}

// MulTransform stores left[i] * right[i] in output[i].
func MulTransform[T scalar.Floats](left, right, output []T) {
	TransformBinary(left, right, output, scalar.Mul[T])
}
