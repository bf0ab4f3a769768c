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

// Package scalar provides the elementary numeric operators used as the
// substrate of an automatic differentiation engine.
//
// Every operator is a pure function of one or two floating point values and
// is generic over Floats, so the same code serves float32 and float64:
//
//	import "github.com/go-minitorch/minitorch/scalar"
//
//	y := scalar.Sigmoid(x)
//	dx := scalar.InvBack(x, grad) // d/dx[1/x] * grad
//
// Operators follow IEEE-754 semantics for inputs outside their domain, the
// same way package math does (Inv(0) is +Inf). The Try variants report
// those inputs as ErrDomain instead.
package scalar

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// EPS is the tolerance used by IsClose and the shift applied by Log.
const EPS = 1e-6

// bool2float encodes a comparison result as 1 or 0.
func bool2float[T Floats](b bool) T {
	if b {
		return 1
	}
	return 0
}
