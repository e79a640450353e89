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

import "math"

// This file provides saturated arithmetic: results clamp to the type's
// representable range instead of wrapping. Narrow-lane DP cells (int8,
// int16) rely on this so a cell that would overflow its lane saturates to
// the lane's extreme value rather than silently wrapping sign.

// SaturatedAdd performs element-wise addition with saturation.
// For example, int8: 120 + 20 saturates to 127, not -116.
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = saturatedAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction with saturation.
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = saturatedSub(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Clamp clamps each lane to the range [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	n := min(len(hi.data), min(len(lo.data), len(v.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		val := v.data[i]
		if val < lo.data[i] {
			val = lo.data[i]
		}
		if val > hi.data[i] {
			val = hi.data[i]
		}
		result[i] = val
	}
	return Vec[T]{data: result}
}

func saturatedAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8))
		if sum > 127 {
			return T(any(int8(127)).(int8))
		}
		if sum < -128 {
			return T(any(int8(-128)).(int8))
		}
		return T(any(int8(sum)).(int8))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16))
		if sum > 32767 {
			return T(any(int16(32767)).(int16))
		}
		if sum < -32768 {
			return T(any(int16(-32768)).(int16))
		}
		return T(any(int16(sum)).(int16))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32))
		if sum > 2147483647 {
			return T(any(int32(2147483647)).(int32))
		}
		if sum < -2147483648 {
			return T(any(int32(-2147483648)).(int32))
		}
		return T(any(int32(sum)).(int32))
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		if bv > 0 && av > math.MaxInt64-bv {
			return T(any(int64(math.MaxInt64)).(int64))
		}
		if bv < 0 && av < math.MinInt64-bv {
			return T(any(int64(math.MinInt64)).(int64))
		}
		return T(any(av + bv).(int64))
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8))
		if sum > 255 {
			return T(any(uint8(255)).(uint8))
		}
		return T(any(uint8(sum)).(uint8))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16))
		if sum > 65535 {
			return T(any(uint16(65535)).(uint16))
		}
		return T(any(uint16(sum)).(uint16))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32))
		if sum > 4294967295 {
			return T(any(uint32(4294967295)).(uint32))
		}
		return T(any(uint32(sum)).(uint32))
	case uint64:
		av := any(a).(uint64)
		bv := any(b).(uint64)
		if av > math.MaxUint64-bv {
			return T(any(uint64(math.MaxUint64)).(uint64))
		}
		return T(any(av + bv).(uint64))
	default:
		return a + b
	}
}

func saturatedSub[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		diff := int16(any(a).(int8)) - int16(any(b).(int8))
		if diff > 127 {
			return T(any(int8(127)).(int8))
		}
		if diff < -128 {
			return T(any(int8(-128)).(int8))
		}
		return T(any(int8(diff)).(int8))
	case int16:
		diff := int32(any(a).(int16)) - int32(any(b).(int16))
		if diff > 32767 {
			return T(any(int16(32767)).(int16))
		}
		if diff < -32768 {
			return T(any(int16(-32768)).(int16))
		}
		return T(any(int16(diff)).(int16))
	case int32:
		diff := int64(any(a).(int32)) - int64(any(b).(int32))
		if diff > 2147483647 {
			return T(any(int32(2147483647)).(int32))
		}
		if diff < -2147483648 {
			return T(any(int32(-2147483648)).(int32))
		}
		return T(any(int32(diff)).(int32))
	case int64:
		av := any(a).(int64)
		bv := any(b).(int64)
		if bv < 0 && av > math.MaxInt64+bv {
			return T(any(int64(math.MaxInt64)).(int64))
		}
		if bv > 0 && av < math.MinInt64+bv {
			return T(any(int64(math.MinInt64)).(int64))
		}
		return T(any(av - bv).(int64))
	case uint8:
		av := any(a).(uint8)
		bv := any(b).(uint8)
		if bv > av {
			return T(any(uint8(0)).(uint8))
		}
		return T(any(av - bv).(uint8))
	case uint16:
		av := any(a).(uint16)
		bv := any(b).(uint16)
		if bv > av {
			return T(any(uint16(0)).(uint16))
		}
		return T(any(av - bv).(uint16))
	case uint32:
		av := any(a).(uint32)
		bv := any(b).(uint32)
		if bv > av {
			return T(any(uint32(0)).(uint32))
		}
		return T(any(av - bv).(uint32))
	case uint64:
		av := any(a).(uint64)
		bv := any(b).(uint64)
		if bv > av {
			return T(any(uint64(0)).(uint64))
		}
		return T(any(av - bv).(uint64))
	default:
		return a - b
	}
}
