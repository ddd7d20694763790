package vec

import (
	"golang.org/x/exp/constraints"

	"github.com/lox/randkit/perm"
	"github.com/lox/randkit/wyrand"
)

// FromHash splits a raw 64-bit hash into one bit window per component:
// 32-bit halves for 2-component vectors, 21-bit windows for 3 components,
// 16-bit windows for 4. Each window becomes one component, so a single hash
// fills the whole vector.
func FromHash[T Value](h uint64) T {
	var out T
	switch p := any(&out).(type) {
	case *IVec2:
		*p = IVec2{X: int32(uint32(h)), Y: int32(h >> 32)}
	case *UVec2:
		*p = UVec2{X: uint32(h), Y: uint32(h >> 32)}
	case *IVec3:
		*p = IVec3{
			X: int32(h & 0x1FFFFF),
			Y: int32((h >> 21) & 0x1FFFFF),
			Z: int32((h >> 42) & 0x1FFFFF),
		}
	case *UVec3:
		*p = UVec3{
			X: uint32(h & 0x1FFFFF),
			Y: uint32((h >> 21) & 0x1FFFFF),
			Z: uint32((h >> 42) & 0x1FFFFF),
		}
	case *IVec4:
		*p = IVec4{
			X: int32(h & 0xFFFF),
			Y: int32((h >> 16) & 0xFFFF),
			Z: int32((h >> 32) & 0xFFFF),
			W: int32((h >> 48) & 0xFFFF),
		}
	case *UVec4:
		*p = UVec4{
			X: uint32(h & 0xFFFF),
			Y: uint32((h >> 16) & 0xFFFF),
			Z: uint32((h >> 32) & 0xFFFF),
			W: uint32((h >> 48) & 0xFFFF),
		}
	}
	return out
}

// FromHashInRange splits the hash into the same per-component windows as
// FromHash, then reduces each window into the matching component's half-open
// range [start, end). Panics if any component has end <= start.
func FromHashInRange[T Value](h uint64, start, end T) T {
	var out T
	switch p := any(&out).(type) {
	case *IVec2:
		s, e := any(start).(IVec2), any(end).(IVec2)
		*p = IVec2{
			X: reduce(h&0xFFFFFFFF, s.X, e.X),
			Y: reduce(h>>32, s.Y, e.Y),
		}
	case *UVec2:
		s, e := any(start).(UVec2), any(end).(UVec2)
		*p = UVec2{
			X: reduce(h&0xFFFFFFFF, s.X, e.X),
			Y: reduce(h>>32, s.Y, e.Y),
		}
	case *IVec3:
		s, e := any(start).(IVec3), any(end).(IVec3)
		*p = IVec3{
			X: reduce(h&0x1FFFFF, s.X, e.X),
			Y: reduce((h>>21)&0x1FFFFF, s.Y, e.Y),
			Z: reduce((h>>42)&0x1FFFFF, s.Z, e.Z),
		}
	case *UVec3:
		s, e := any(start).(UVec3), any(end).(UVec3)
		*p = UVec3{
			X: reduce(h&0x1FFFFF, s.X, e.X),
			Y: reduce((h>>21)&0x1FFFFF, s.Y, e.Y),
			Z: reduce((h>>42)&0x1FFFFF, s.Z, e.Z),
		}
	case *IVec4:
		s, e := any(start).(IVec4), any(end).(IVec4)
		*p = IVec4{
			X: reduce(h&0xFFFF, s.X, e.X),
			Y: reduce((h>>16)&0xFFFF, s.Y, e.Y),
			Z: reduce((h>>32)&0xFFFF, s.Z, e.Z),
			W: reduce((h>>48)&0xFFFF, s.W, e.W),
		}
	case *UVec4:
		s, e := any(start).(UVec4), any(end).(UVec4)
		*p = UVec4{
			X: reduce(h&0xFFFF, s.X, e.X),
			Y: reduce((h>>16)&0xFFFF, s.Y, e.Y),
			Z: reduce((h>>32)&0xFFFF, s.Z, e.Z),
			W: reduce((h>>48)&0xFFFF, s.W, e.W),
		}
	}
	return out
}

// Next draws a vector of type T from g, one raw hash per vector.
func Next[T Value](g *wyrand.Generator) T {
	return FromHash[T](g.Uint64())
}

// NextInRange draws a vector with each component in its half-open
// [start, end) from g. Panics if any component has end <= start.
func NextInRange[T Value](g *wyrand.Generator, start, end T) T {
	return FromHashInRange(g.Uint64(), start, end)
}

// Mix folds a vector's components through a permutation table, producing the
// same byte as passing the components to p.Mix in X, Y, Z, W order.
func Mix[T Value](p *perm.Permutation, v T) byte {
	switch v := any(v).(type) {
	case IVec2:
		return p.Mix(int(v.X), int(v.Y))
	case UVec2:
		return p.Mix(int(v.X), int(v.Y))
	case IVec3:
		return p.Mix(int(v.X), int(v.Y), int(v.Z))
	case UVec3:
		return p.Mix(int(v.X), int(v.Y), int(v.Z))
	case IVec4:
		return p.Mix(int(v.X), int(v.Y), int(v.Z), int(v.W))
	case UVec4:
		return p.Mix(int(v.X), int(v.Y), int(v.Z), int(v.W))
	}
	panic("vec: unsupported vector type")
}

func reduce[T constraints.Integer](w uint64, start, end T) T {
	if end <= start {
		panic("vec: invalid range: end must be greater than start")
	}
	return start + T(w%uint64(end-start))
}
