// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/ndview/interval"

// Mapper is a caller-defined coordinate mapping that cannot be merged with
// others. Implementations must be immutable and safe for concurrent use.
//
// BoundingBox must be sound: the returned source interval must contain
// Apply(p) for every p in the target interval. It need not be tight.
type Mapper interface {
	NumTargetDimensions() int
	NumSourceDimensions() int
	Apply(target, source []int64)
	BoundingBox(target interval.Interval) interval.Interval
}

// FromMapper wraps m as a KindGeneral transform.
//
// Errors: ErrNilMapper, ErrNoDimensions.
func FromMapper(m Mapper) (Transform, error) {
	if m == nil {
		return Transform{}, ErrNilMapper
	}
	if m.NumTargetDimensions() <= 0 || m.NumSourceDimensions() <= 0 {
		return Transform{}, ErrNoDimensions
	}

	return Transform{kind: KindGeneral, mapper: m}, nil
}
