// Package hwy provides a portable, lane-parallel vector type for narrow
// integer arithmetic with saturation, trimmed down to what a DP alignment
// kernel needs: wrap up to N scalar score lanes in one Vec[T], combine them
// lane-wise, and saturate narrow (int8/int16) lanes instead of wrapping.
//
// There is no architecture-specific backend: every Vec[T] wraps a Go slice
// and is evaluated with an ordinary loop. "Lane-parallel" here means N
// independent alignments advance through the same DP recurrence in lock
// step, not that the host CPU issues one vector instruction per op.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-pairalign/hwy"
//
//	a := hwy.Load(scores1)
//	b := hwy.Load(scores2)
//	result := hwy.Max(a, b)
//	hwy.Store(result, out)
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a Vec's lanes.
// DP scores are always signed, but the constraint keeps the unsigned half
// for symmetry with the wider family of lane-parallel numeric types.
type Lanes interface {
	Integers
}

// Vec is a portable vector handle wrapping N lanes of type T.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// Intended for tests and result extraction, not hot-path code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Lane returns the value at lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Store writes the vector's data to a slice.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

