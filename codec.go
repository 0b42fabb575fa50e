package novelpoly

import (
	"encoding/binary"
	"fmt"

	"github.com/eth2030/novelpoly/f2e16"
)

// ReedSolomon is a systematic erasure codec over GF(2^16). It splits a
// payload across wantedN shards such that any k of them recover it.
// Instances are immutable and safe for concurrent use.
type ReedSolomon struct {
	n       int
	k       int
	wantedN int
}

// NewReedSolomon builds a codec with explicit dimensions. n and k must be
// powers of two with k <= n/2 (except the minimal n=2, k=1 code), and
// wantedN must lie in (k, n]. Most callers should go through
// DeriveParameters instead.
func NewReedSolomon(n, k, wantedN int) (*ReedSolomon, error) {
	if !f2e16.IsPowerOf2(n) || !f2e16.IsPowerOf2(k) {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrParamsMustBePowerOf2, n, k)
	}
	if n > f2e16.FieldSize {
		return nil, fmt.Errorf("%w: n=%d", ErrWantedShardCountTooHigh, n)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrWantedPayloadShardCountTooLow, k)
	}
	if k > n/2 {
		return nil, fmt.Errorf("%w: k=%d exceeds n/2 for n=%d", ErrWantedPayloadShardCountTooLow, k, n)
	}
	if wantedN <= k || wantedN > n {
		return nil, fmt.Errorf("%w: wantedN=%d outside (%d, %d]", ErrWantedShardCountTooLow, wantedN, k, n)
	}
	return &ReedSolomon{n: n, k: k, wantedN: wantedN}, nil
}

// ShardLen returns the byte length of each shard produced for a payload of
// the given size: the payload is viewed as 2-byte symbols, spread evenly
// over k shards, rounded up to whole symbols.
func (r *ReedSolomon) ShardLen(payloadSize int) int {
	payloadSymbols := (payloadSize + 1) / 2
	shardSymbols := (payloadSymbols + r.k - 1) / r.k
	return shardSymbols * 2
}

// Encode produces wantedN shards of ShardLen(len(payload)) bytes each. The
// payload is processed in runs of 2k bytes; run index i contributes symbol i
// of every shard, so shard j collects code position j of every run. Shards
// beyond position wantedN-1 of the underlying n-position code are never
// materialized.
func (r *ReedSolomon) Encode(payload []byte) ([][]byte, error) {
	if len(payload) == 0 {
		return nil, ErrPayloadSizeIsZero
	}

	shardLen := r.ShardLen(len(payload))
	shards := make([][]byte, r.wantedN)
	for i := range shards {
		shards[i] = make([]byte, shardLen)
	}

	runLen := r.k * 2
	run := 0
	for off := 0; off < len(payload); off += runLen {
		end := min(off+runLen, len(payload))
		codeword := f2e16.EncodeSub(payload[off:end], r.n, r.k)
		for v := 0; v < r.wantedN; v++ {
			binary.BigEndian.PutUint16(shards[v][2*run:], uint16(codeword[v]))
		}
		run++
	}
	return shards, nil
}

// Reconstruct recovers the payload from received shards, where a nil entry
// marks a missing shard. received may be shorter than wantedN; absent tail
// entries count as missing. At least k shards must be present and all
// present shards must share one even length.
//
// The returned payload includes the zero padding Encode added to fill the
// last run; callers that know the original length should truncate.
func (r *ReedSolomon) Reconstruct(received [][]byte) ([]byte, error) {
	erasures := make([]bool, r.n)
	present := make([][]byte, r.n)
	have := 0
	shardLen := -1
	for i := 0; i < r.n; i++ {
		var shard []byte
		if i < len(received) {
			shard = received[i]
		}
		if shard == nil {
			erasures[i] = true
			continue
		}
		present[i] = shard
		have++
		if shardLen < 0 {
			shardLen = len(shard)
		} else if len(shard) != shardLen {
			return nil, fmt.Errorf("%w: %d vs %d", ErrInconsistentShardLengths, len(shard), shardLen)
		}
	}
	if have < r.k {
		return nil, fmt.Errorf("%w: have %d, need %d of %d", ErrNeedMoreShards, have, r.k, r.wantedN)
	}
	if shardLen%2 != 0 {
		return nil, fmt.Errorf("%w: length %d is odd", ErrInconsistentShardLengths, shardLen)
	}

	// The locator depends only on which positions are missing; compute it
	// once and share it across every symbol index.
	errorPoly := f2e16.EvalErrorPolynomial(erasures, f2e16.FieldSize)

	symCount := shardLen / 2
	payload := make([]byte, 0, symCount*r.k*2)
	codewords := make([]f2e16.Additive, r.n)
	for s := 0; s < symCount; s++ {
		for i, shard := range present {
			if shard != nil {
				codewords[i] = f2e16.Additive(binary.BigEndian.Uint16(shard[2*s:]))
			} else {
				codewords[i] = 0
			}
		}
		payload = append(payload, f2e16.ReconstructSub(codewords, erasures, r.n, r.k, errorPoly)...)
	}
	return payload, nil
}
