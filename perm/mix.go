package perm

import "golang.org/x/exp/constraints"

// MixInt folds a scalar integer through the table one byte window at a time,
// so a single wide integer still gets the avalanche of a multi-level fold.
//
// 8-bit values are a single lookup. 16-bit values fold the high byte over the
// low byte. Anything wider narrows to its low 32 bits and folds the low three
// bytes, the same shape as a three-dimensional coordinate.
func MixInt[T constraints.Integer](p *Permutation, v T) byte {
	switch u := any(v).(type) {
	case uint8:
		return p.Mix(int(u))
	case int8:
		return p.Mix(int(uint8(u)))
	case uint16:
		return mix16(p, u)
	case int16:
		return mix16(p, uint16(u))
	default:
		return mix32(p, uint32(uint64(v)))
	}
}

func mix16(p *Permutation, u uint16) byte {
	return p.Mix(int(u>>8), int(u&0xFF))
}

func mix32(p *Permutation, u uint32) byte {
	return p.Mix(int(u&0xFF), int((u>>8)&0xFF), int((u>>16)&0xFF))
}
