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
	"errors"
	"fmt"
)

// ErrDomain is returned by the Try operators when an input lies outside the
// mathematical domain of the operator.
var ErrDomain = errors.New("scalar: input outside operator domain")

// DomainError records which operator rejected which input.
type DomainError struct {
	Op    string
	Input float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("scalar: %s(%g): input outside operator domain", e.Op, e.Input)
}

// Unwrap lets errors.Is match ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainError(op string, input float64) error {
	return &DomainError{Op: op, Input: input}
}

// TryLog is Log that fails when x+EPS <= 0.
func TryLog[T Floats](x T) (T, error) {
	if float64(x)+EPS <= 0 {
		return 0, domainError("log", float64(x))
	}
	return Log(x), nil
}

// TryInv is Inv that fails on a zero input.
func TryInv[T Floats](a T) (T, error) {
	if a == 0 {
		return 0, domainError("inv", float64(a))
	}
	return Inv(a), nil
}

// TryLogBack is LogBack that fails when a is zero.
func TryLogBack[T Floats](a, b T) (T, error) {
	if a == 0 {
		return 0, domainError("log_back", float64(a))
	}
	return LogBack(a, b), nil
}

// TryInvBack is InvBack that fails when a is zero.
func TryInvBack[T Floats](a, b T) (T, error) {
	if a == 0 {
		return 0, domainError("inv_back", float64(a))
	}
	return InvBack(a, b), nil
}
