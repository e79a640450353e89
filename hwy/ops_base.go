// Copyright 2025 go-highway Authors
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

package hwy

// This file provides the scalar-lane implementations of the vector
// operations the alignment core needs: construction, arithmetic, and the
// local-alignment zero clamp.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// SetN creates an n-lane vector with all lanes set to the same value.
// Used when the caller's batch is narrower than MaxLanes[T]() (e.g. the
// last chunk of an oversized batch, or an explicit lane count under
// HWY_NO_SIMD).
func SetN[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	return Vec[T]{data: make([]T, n)}
}

// ZeroN creates an n-lane vector of zeros.
func ZeroN[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the element-wise maximum. On a tie it returns a's lane,
// matching the recurrence's "first argument wins" convention (the value
// is identical either way; only a traceback, which this engine does not
// produce, would care which operand was picked).
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if b.data[i] > a.data[i] {
			result[i] = b.data[i]
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ZeroIfNegative clamps negative lanes to zero, leaving non-negative lanes
// unchanged. This is the vectorized form of Smith-Waterman's "local score
// never drops below zero" rule.
func ZeroIfNegative[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, val := range v.data {
		if val >= 0 {
			result[i] = val
		}
	}
	return Vec[T]{data: result}
}
