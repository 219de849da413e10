// Package transform implements the coordinate mappings that views apply to
// their sources.
//
// What & Why:
//
//	A Transform maps an n-dimensional TARGET space (what a view exposes) to an
//	m-dimensional SOURCE space (what the wrapped view or store is indexed by).
//	It is a closed tagged variant; the Kind is derived once from the
//	components at construction:
//
//	  - KindTranslation: n == m, identity mapping plus an offset.
//	  - KindSlicing:     drop (fix), insert or permute dimensions plus an offset;
//	                     every target dimension feeds exactly one source dimension.
//	  - KindMixed:       any other integer-affine mapping of the same form
//	                     (axis inversion, unused or duplicated target dimensions).
//	  - KindGeneral:     an opaque caller-supplied Mapper; never merged.
//
//	The first three share one representation: for every source dimension d
//
//	  source[d] = Offset(d)                                if Fixed(d)
//	  source[d] = Offset(d) + sign(d) * target[Mapping(d)]  otherwise
//
//	with sign(d) = -1 when Inverted(d). Compose merges two such transforms into
//	one of the same form, which is what lets a chain of views collapse into a
//	single mapping.
//
// Contracts:
//
//	BoundingBox is sound for every kind and exact (tight) for the affine kinds.
//	Compose reports false, never approximates, when either side is General.
//	Mismatched dimensionality between composed transforms, or a coordinate
//	slice of the wrong length, is a programmer error and panics with
//	ErrDimensionMismatch.
//
// Concurrency:
//
//	Transforms are immutable after construction and safe to share.
package transform
