// SPDX-License-Identifier: MIT

package replica

import "errors"

var (
	// ErrBadSize indicates a group size below one.
	ErrBadSize = errors.New("replica: group size must be >= 1")

	// ErrNilMerge indicates a group built without a merge function.
	ErrNilMerge = errors.New("replica: merge function is nil")

	// ErrRankOutOfRange indicates a rank outside [0, size).
	ErrRankOutOfRange = errors.New("replica: rank out of range")

	// ErrDuplicateRank indicates a second contribution from one rank within a round.
	ErrDuplicateRank = errors.New("replica: rank already contributed to this round")
)
