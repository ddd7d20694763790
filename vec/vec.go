// Package vec provides small fixed-size integer vector types with random
// generation and permutation-mixing support, for callers that work in 2, 3,
// or 4 dimensional coordinate space. It layers on top of the raw primitives
// in wyrand and perm; neither of those packages depends on this one.
package vec

// IVec2 is a 2-component signed integer vector.
type IVec2 struct {
	X, Y int32
}

// IVec3 is a 3-component signed integer vector.
type IVec3 struct {
	X, Y, Z int32
}

// IVec4 is a 4-component signed integer vector.
type IVec4 struct {
	X, Y, Z, W int32
}

// UVec2 is a 2-component unsigned integer vector.
type UVec2 struct {
	X, Y uint32
}

// UVec3 is a 3-component unsigned integer vector.
type UVec3 struct {
	X, Y, Z uint32
}

// UVec4 is a 4-component unsigned integer vector.
type UVec4 struct {
	X, Y, Z, W uint32
}

// Value enumerates the vector types the generation and mixing helpers accept.
type Value interface {
	IVec2 | IVec3 | IVec4 | UVec2 | UVec3 | UVec4
}
