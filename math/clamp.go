// SPDX-License-Identifier: GPL-2.0-or-later

package math

type Number interface {
	int | int32 | int64 | float32 | float64
}

// Clamp returns val limited to [lo, hi].
func Clamp[K Number](lo, val, hi K) K {
	if lo > val {
		return lo
	} else if hi < val {
		return hi
	}
	return val
}

// AlignDown returns v rounded down to a multiple of align, which must be a
// power of two.
func AlignDown[K int | int32 | int64](v, align K) K {
	return v &^ (align - 1)
}
