package novelpoly

import (
	"fmt"

	"github.com/eth2030/novelpoly/f2e16"
)

// CodeParams describes a Reed-Solomon code instance: n total code positions
// and k payload positions, both powers of two, plus the caller's original
// (not necessarily power-of-two) shard count.
type CodeParams struct {
	n       int
	k       int
	wantedN int
}

// DeriveParameters rounds a wanted shard count and payload shard count to
// the nearest valid code dimensions: n rounds up to a power of two, k rounds
// down. wantedN must be at least 2 and wantedK at least 1, and n may not
// exceed the field size.
func DeriveParameters(wantedN, wantedK int) (CodeParams, error) {
	if wantedN < 2 {
		return CodeParams{}, fmt.Errorf("%w: got %d", ErrWantedShardCountTooLow, wantedN)
	}
	if wantedK < 1 {
		return CodeParams{}, fmt.Errorf("%w: got %d", ErrWantedPayloadShardCountTooLow, wantedK)
	}
	k := f2e16.NextLowerPowerOf2(wantedK)
	n := f2e16.NextHigherPowerOf2(wantedN)
	if n > f2e16.FieldSize {
		return CodeParams{}, fmt.Errorf("%w: %d shards need n=%d", ErrWantedShardCountTooHigh, wantedN, n)
	}
	return CodeParams{n: n, k: k, wantedN: wantedN}, nil
}

// N returns the total number of code positions.
func (p CodeParams) N() int { return p.n }

// K returns the number of payload positions.
func (p CodeParams) K() int { return p.k }

// WantedN returns the shard count the parameters were derived for.
func (p CodeParams) WantedN() int { return p.wantedN }

// MakeEncoder builds the codec for these parameters. The parameters are
// already validated, so a failure here is a programming error.
func (p CodeParams) MakeEncoder() *ReedSolomon {
	rs, err := NewReedSolomon(p.n, p.k, p.wantedN)
	if err != nil {
		panic(fmt.Sprintf("novelpoly: derived parameters rejected: %v", err))
	}
	return rs
}

// RecoverabilitySubsetSize returns the ceiling of n/3, the number of shards
// that must survive for reconstruction under the one-third-availability
// rule. Non-positive n is treated as 1.
func RecoverabilitySubsetSize(n int) int {
	if n < 1 {
		n = 1
	}
	return (n-1)/3 + 1
}
