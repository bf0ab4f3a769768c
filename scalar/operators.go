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

package scalar

import "math"

// Mul returns a*b.
func Mul[T Floats](a, b T) T {
	return a * b
}

// ID returns a unchanged.
func ID[T Floats](a T) T {
	return a
}

// Add returns a+b.
func Add[T Floats](a, b T) T {
	return a + b
}

// Neg returns -a.
func Neg[T Floats](a T) T {
	return -a
}

// Lt returns 1 if a < b, otherwise 0.
func Lt[T Floats](a, b T) T {
	return bool2float[T](a < b)
}

// Eq returns 1 if a == b exactly, otherwise 0.
func Eq[T Floats](a, b T) T {
	return bool2float[T](a == b)
}

// IsClose returns 1 if |a-b| <= EPS, otherwise 0.
// Differences that are NaN (for example Inf-Inf) are never close.
func IsClose[T Floats](a, b T) T {
	return bool2float[T](math.Abs(float64(a)-float64(b)) <= EPS)
}

// Sigmoid computes 1 / (1 + e^(-a)).
// For very negative a the exponential overflows to +Inf and the result is 0.
func Sigmoid[T Floats](a T) T {
	return T(1.0 / (1.0 + math.Exp(-float64(a))))
}

// ReLU returns a if a > 0, otherwise 0.
func ReLU[T Floats](a T) T {
	if a > 0 {
		return a
	}
	return 0
}

// Max returns x if x > y, otherwise y. Ties return y.
func Max[T Floats](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Log computes ln(x + EPS).
//
// The EPS shift keeps Log(0) finite (about -13.8155) at the cost of a small
// bias near zero: Log(x) is ln(x + 1e-6), not ln(x). Inputs with x+EPS < 0
// give NaN and x+EPS == 0 gives -Inf; use TryLog to reject them.
func Log[T Floats](x T) T {
	return T(math.Log(float64(x) + EPS))
}

// Exp computes e^x.
func Exp[T Floats](x T) T {
	return T(math.Exp(float64(x)))
}

// LogBack is the local derivative of Log chained with the upstream
// gradient b: b / a. A zero a gives ±Inf or NaN; see TryLogBack.
func LogBack[T Floats](a, b T) T {
	return b / a
}

// Inv computes 1/a. Inv(0) is +Inf (or -Inf for negative zero); see TryInv.
func Inv[T Floats](a T) T {
	return 1 / a
}

// InvBack is the local derivative of Inv chained with the upstream
// gradient b: -b / a².
func InvBack[T Floats](a, b T) T {
	return -b / (a * a)
}

// ReLUBack gates the upstream gradient b: b if a > 0, otherwise 0.
// The gradient at the kink a == 0 is defined as 0.
func ReLUBack[T Floats](a, b T) T {
	if a > 0 {
		return b
	}
	return 0
}
