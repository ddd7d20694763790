package wyrand

import "math"

// Value enumerates the primitive types a raw hash can be converted to.
// The union is exact rather than approximate (~) because conversion depends
// on the concrete bit width of the type, dispatched per type below.
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// FromHash maps a raw 64-bit hash to a value of type T.
//
// 64-bit and pointer-sized integers use the hash verbatim (reinterpreted for
// signed types). 32-bit types take the upper 32 bits, which avalanche better
// than the low half for this mixer. 16- and 8-bit types take the low bits.
// Floats divide the hash by MaxUint64, yielding a value in [0, 1] with the
// upper bound included; float32 narrows that quotient.
func FromHash[T Value](h uint64) T {
	var out T
	switch p := any(&out).(type) {
	case *uint64:
		*p = h
	case *int64:
		*p = int64(h)
	case *uint:
		*p = uint(h)
	case *int:
		*p = int(h)
	case *uint32:
		*p = uint32(h >> 32)
	case *int32:
		*p = int32(h >> 32)
	case *uint16:
		*p = uint16(h)
	case *int16:
		*p = int16(h)
	case *uint8:
		*p = uint8(h)
	case *int8:
		*p = int8(h)
	case *float64:
		*p = float64(h) / math.MaxUint64
	case *float32:
		*p = float32(float64(h) / math.MaxUint64)
	}
	return out
}

// FromHashInRange maps a raw 64-bit hash into the half-open range
// [start, end) of type T.
//
// Integers reduce as start + h mod (end-start), with the span widened to
// uint64 before the modulo so narrow types cannot overflow. The modulus
// rarely divides 2^64 evenly, so the lowest values of a range are hit very
// slightly more often; that bias is a documented limitation for
// non-cryptographic use. Floats reduce as start + (h/MaxUint64)*(end-start).
//
// Panics if end <= start: there is no safe value to return and continuing
// would mean a divide by zero or silently wrong output.
func FromHashInRange[T Value](h uint64, start, end T) T {
	if end <= start {
		panic("wyrand: invalid range: end must be greater than start")
	}
	var out T
	switch p := any(&out).(type) {
	case *uint64:
		s, e := any(start).(uint64), any(end).(uint64)
		*p = s + h%(e-s)
	case *int64:
		s, e := any(start).(int64), any(end).(int64)
		*p = s + int64(h%uint64(e-s))
	case *uint:
		s, e := any(start).(uint), any(end).(uint)
		*p = s + uint(h%uint64(e-s))
	case *int:
		s, e := any(start).(int), any(end).(int)
		*p = s + int(h%uint64(e-s))
	case *uint32:
		s, e := any(start).(uint32), any(end).(uint32)
		*p = s + uint32(h%uint64(e-s))
	case *int32:
		s, e := any(start).(int32), any(end).(int32)
		*p = s + int32(h%uint64(e-s))
	case *uint16:
		s, e := any(start).(uint16), any(end).(uint16)
		*p = s + uint16(h%uint64(e-s))
	case *int16:
		s, e := any(start).(int16), any(end).(int16)
		*p = s + int16(h%uint64(e-s))
	case *uint8:
		s, e := any(start).(uint8), any(end).(uint8)
		*p = s + uint8(h%uint64(e-s))
	case *int8:
		s, e := any(start).(int8), any(end).(int8)
		*p = s + int8(h%uint64(e-s))
	case *float64:
		s, e := any(start).(float64), any(end).(float64)
		*p = s + (float64(h)/math.MaxUint64)*(e-s)
	case *float32:
		s, e := any(start).(float32), any(end).(float32)
		*p = s + float32(float64(h)/math.MaxUint64)*(e-s)
	}
	return out
}
