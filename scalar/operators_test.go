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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	gscalar "gonum.org/v1/gonum/floats/scalar"
)

// Sample points used by the property tests, covering signs, zero, tiny and
// large magnitudes.
var samples = []float64{-100, -10, -2.5, -1, -0.5, -1e-7, 0, 1e-7, 0.5, 1, 2.5, 10, 100}

func TestBinaryArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b float64) float64
		a, b float64
		want float64
	}{
		{"mul", Mul[float64], 3, 4, 12},
		{"mul by zero", Mul[float64], -3, 0, 0},
		{"add", Add[float64], 3, 4, 7},
		{"add negatives", Add[float64], -1.5, -2.5, -4},
		{"lt true", Lt[float64], 1, 2, 1},
		{"lt false", Lt[float64], 2, 1, 0},
		{"lt equal", Lt[float64], 2, 2, 0},
		{"eq true", Eq[float64], 2, 2, 1},
		{"eq false", Eq[float64], 2, 2.0000001, 0},
		{"is_close within", IsClose[float64], 1, 1 + 5e-7, 1},
		{"is_close outside", IsClose[float64], 1, 1 + 1e-5, 0},
		{"is_close inf", IsClose[float64], math.Inf(1), math.Inf(1), 0},
		{"max first", Max[float64], 3, 2, 3},
		{"max second", Max[float64], 2, 3, 3},
		{"relu_back positive", ReLUBack[float64], 2, 5, 5},
		{"relu_back negative", ReLUBack[float64], -1, 5, 0},
		{"relu_back kink", ReLUBack[float64], 0, 5, 0},
		{"inv_back", InvBack[float64], 2, 1, -0.25},
		{"log_back", LogBack[float64], 4, 2, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.a, tt.b))
		})
	}
}

func TestUnaryOperators(t *testing.T) {
	assert.Equal(t, 3.5, ID(3.5))
	assert.Equal(t, -3.5, Neg(3.5))
	assert.Equal(t, 0.5, Sigmoid(0.0))
	assert.Equal(t, 2.0, ReLU(2.0))
	assert.Equal(t, 0.0, ReLU(-2.0))
	assert.Equal(t, 1.0, Exp(0.0))
	assert.Equal(t, 0.5, Inv(2.0))
	assert.Equal(t, math.Log(1e-6), Log(0.0))
}

func TestMaxTieReturnsSecond(t *testing.T) {
	// +0 and -0 compare equal, so the sign reveals which argument was returned.
	got := Max(0.0, math.Copysign(0, -1))
	assert.True(t, math.Signbit(got))
}

func TestProperties(t *testing.T) {
	for _, a := range samples {
		assert.Equal(t, a, Neg(Neg(a)), "neg(neg(%v))", a)
		assert.Equal(t, Max(a, 0), ReLU(a), "relu(%v)", a)
		for _, b := range samples {
			assert.Equal(t, Add(a, b), Add(b, a), "add(%v, %v)", a, b)
			assert.Equal(t, Mul(a, b), Mul(b, a), "mul(%v, %v)", a, b)
		}
		if a != 0 {
			assert.Equal(t, 1.0, IsClose(Mul(a, Inv(a)), 1), "mul(%v, inv(%v))", a, a)
		}
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	for _, x := range []float64{1e-3, 0.1, 0.5, 1, 2, 5, 10} {
		// Log is shifted by EPS, so the round trip returns x+EPS.
		got := Exp(Log(x))
		assert.True(t, gscalar.EqualWithinAbs(got, x, 2*EPS), "exp(log(%v)) = %v", x, got)
		assert.Equal(t, 1.0, IsClose(got-EPS, x), "exp(log(%v)) - EPS = %v", x, got-EPS)
	}
}

func TestSigmoid(t *testing.T) {
	for _, a := range samples {
		s := Sigmoid(a)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
		assert.True(t, gscalar.EqualWithinAbs(1-s, Sigmoid(-a), 1e-12), "sigmoid symmetry at %v", a)
	}
	assert.Equal(t, 0.0, Sigmoid(-1000.0))
	assert.Equal(t, 1.0, Sigmoid(1000.0))
}

func TestFloat32(t *testing.T) {
	assert.Equal(t, float32(0.5), Sigmoid[float32](0))
	assert.Equal(t, float32(1), Lt[float32](1, 2))
	assert.Equal(t, float32(-0.25), InvBack[float32](2, 1))
	assert.InDelta(t, math.Log(2+EPS), float64(Log[float32](2)), 1e-6)

	type celsius float32
	assert.Equal(t, celsius(3), ReLU(celsius(3)))
}

func TestIEEEDomainBehaviour(t *testing.T) {
	assert.True(t, math.IsInf(Inv(0.0), 1))
	assert.True(t, math.IsInf(LogBack(0.0, 1), 1))
	assert.True(t, math.IsInf(InvBack(0.0, 1), -1))
	assert.True(t, math.IsNaN(Log(-1.0)))
	assert.True(t, math.IsInf(Log(-EPS), -1))
}

// The _back operators must agree with a numerical derivative of their
// forward operator, scaled by the upstream gradient.
func TestBackMatchesFiniteDifference(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central}
	const grad = 3.0
	for _, a := range []float64{0.25, 0.5, 1, 2, 7} {
		dLog := fd.Derivative(func(x float64) float64 { return Log(x) }, a, settings)
		assert.InDelta(t, dLog*grad, LogBack(a, grad), 1e-4, "log_back at %v", a)

		dInv := fd.Derivative(func(x float64) float64 { return Inv(x) }, a, settings)
		assert.InDelta(t, dInv*grad, InvBack(a, grad), 1e-4, "inv_back at %v", a)
	}
	for _, a := range []float64{-3, -0.5, 0.5, 3} {
		dRelu := fd.Derivative(func(x float64) float64 { return ReLU(x) }, a, settings)
		require.InDelta(t, dRelu*grad, ReLUBack(a, grad), 1e-6, "relu_back at %v", a)
	}
}

func BenchmarkSigmoid(b *testing.B) {
	x := 0.3
	for i := 0; i < b.N; i++ {
		x = Sigmoid(x)
	}
	_ = x
}

func BenchmarkLog(b *testing.B) {
	x := 2.0
	for i := 0; i < b.N; i++ {
		_ = Log(x)
	}
}
