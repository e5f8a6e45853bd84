package num

import "math"

// Float ordinals number the non-NaN IEEE values of one width consecutively
// in numeric order, with -0 and +0 sharing ordinal 0. Counting and stepping
// in the float and double value spaces reduce to integer arithmetic on them.

// Float64Ordinal returns the ordinal of a non-NaN float64.
func Float64Ordinal(f float64) int64 {
	bits := math.Float64bits(f)
	mag := int64(bits &^ (1 << 63))
	if bits>>63 != 0 {
		return -mag
	}
	return mag
}

// Float64FromOrdinal is the inverse of Float64Ordinal.
func Float64FromOrdinal(o int64) float64 {
	if o < 0 {
		return -math.Float64frombits(uint64(-o))
	}
	return math.Float64frombits(uint64(o))
}

// Float32Ordinal returns the ordinal of a non-NaN float32.
func Float32Ordinal(f float32) int64 {
	bits := math.Float32bits(f)
	mag := int64(bits &^ (1 << 31))
	if bits>>31 != 0 {
		return -mag
	}
	return mag
}

// Float32FromOrdinal is the inverse of Float32Ordinal.
func Float32FromOrdinal(o int64) float32 {
	if o < 0 {
		return -math.Float32frombits(uint32(-o))
	}
	return math.Float32frombits(uint32(o))
}

// Ordinals of the infinities; they bound the ordered float spaces.
var (
	MaxFloat64Ordinal = Float64Ordinal(math.Inf(1))
	MaxFloat32Ordinal = Float32Ordinal(float32(math.Inf(1)))
)
