// Package perm implements a stateless, index-based mixing table for
// procedural generation. A Permutation folds N-dimensional integer
// coordinates into a single reproducible byte by chained table lookups,
// with no generator state involved: the same coordinate always mixes to the
// same byte for the same table.
package perm

import "github.com/lox/randkit/wyrand"

const tableSize = 256

// Permutation is a precomputed lookup table. The lower 256 bytes are a
// permutation of 0..255 and the upper 256 bytes are a copy of the lower.
// The mirrored half exists so Mix can index with (coordinate & 255) plus a
// previous table byte, which reaches at most 510, without a modulo or branch.
//
// A Permutation never changes after construction and is safe for concurrent
// readers.
type Permutation struct {
	table [2 * tableSize]byte
}

// WithSeed builds a table by shuffling the identity permutation with a wyrand
// generator seeded with seed, then mirroring it into the upper half. Equal
// seeds produce identical tables.
func WithSeed(seed uint64) *Permutation {
	var p Permutation
	for i := range tableSize {
		p.table[i] = byte(i)
	}
	wyrand.Shuffle(wyrand.NewWithSeed(seed), p.table[:tableSize])
	copy(p.table[tableSize:], p.table[:tableSize])
	return &p
}

// New builds a table seeded from the process-wide seed cache.
func New() *Permutation {
	return WithSeed(wyrand.SeedFromLocal())
}

// WithSystemSeed builds a table seeded from the operating system's entropy
// source.
func WithSystemSeed() *Permutation {
	return WithSeed(wyrand.SeedFromSystem())
}

// FromBytes builds a Permutation from an existing 256-byte permutation of
// 0..255. The bytes are not validated: a table with repeated entries mixes
// poorly but every lookup stays in bounds.
func FromBytes(bytes [256]byte) *Permutation {
	var p Permutation
	copy(p.table[:tableSize], bytes[:])
	copy(p.table[tableSize:], bytes[:])
	return &p
}

// FromBytesPadded builds a Permutation from a full 512-byte table, padding
// included. As with FromBytes, no validation is performed.
func FromBytesPadded(bytes [512]byte) *Permutation {
	return &Permutation{table: bytes}
}

// Bytes returns a copy of the unpadded 256-byte table.
func (p *Permutation) Bytes() [256]byte {
	var out [tableSize]byte
	copy(out[:], p.table[:tableSize])
	return out
}

// PaddedBytes returns a copy of the full 512-byte table, mirror included.
func (p *Permutation) PaddedBytes() [512]byte {
	return p.table
}

// Mix folds an N-dimensional integer coordinate into a single byte.
// Components fold right to left: the last component (masked to 8 bits) seeds
// the lookup, and each earlier component indexes the table at its masked
// value plus the previous result. A single coordinate is table[x & 255].
//
// Mix requires at least one coordinate and panics without one.
func (p *Permutation) Mix(coords ...int) byte {
	if len(coords) == 0 {
		panic("perm: Mix requires at least one coordinate")
	}
	acc := p.table[coords[len(coords)-1]&255]
	for i := len(coords) - 2; i >= 0; i-- {
		acc = p.table[(coords[i]&255)+int(acc)]
	}
	return acc
}
