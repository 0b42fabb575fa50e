// Package naive wraps a classic Vandermonde-matrix Reed-Solomon codec over
// GF(2^8) as an independent cross-check for the additive-FFT codec. The two
// codecs produce incompatible shard bytes; what they share is the contract
// that any k of the total shards recover the payload, which the tests
// exercise over identical payload and erasure matrices.
package naive

import (
	"errors"
	"fmt"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrInvalidShardConfig = errors.New("naive: invalid shard configuration")
	ErrEmptyPayload       = errors.New("naive: payload is empty")
)

// Encoder is a fixed-geometry codec: data payload shards plus total-data
// parity shards.
type Encoder struct {
	data  int
	total int
	codec reedsolomon.Encoder
}

// New builds an Encoder with data payload shards out of total. total must
// exceed data and data must be positive.
func New(data, total int) (*Encoder, error) {
	if data < 1 || total <= data {
		return nil, fmt.Errorf("%w: data=%d total=%d", ErrInvalidShardConfig, data, total)
	}
	codec, err := reedsolomon.New(data, total-data)
	if err != nil {
		return nil, fmt.Errorf("naive: building codec: %w", err)
	}
	return &Encoder{data: data, total: total, codec: codec}, nil
}

// Encode splits payload into total shards and returns them along with the
// padded size the decoder needs to truncate back to the original payload.
func (e *Encoder) Encode(payload []byte) ([][]byte, int, error) {
	if len(payload) == 0 {
		return nil, 0, ErrEmptyPayload
	}
	shards, err := e.codec.Split(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("naive: splitting payload: %w", err)
	}
	if err := e.codec.Encode(shards); err != nil {
		return nil, 0, fmt.Errorf("naive: encoding shards: %w", err)
	}
	return shards, len(payload), nil
}

// Decode reconstructs missing shards (nil entries) in place and returns the
// first outSize payload bytes.
func (e *Encoder) Decode(shards [][]byte, outSize int) ([]byte, error) {
	if len(shards) != e.total {
		return nil, fmt.Errorf("%w: got %d shards, want %d", ErrInvalidShardConfig, len(shards), e.total)
	}
	if err := e.codec.Reconstruct(shards); err != nil {
		return nil, fmt.Errorf("naive: reconstructing shards: %w", err)
	}
	out := make([]byte, 0, outSize)
	for i := 0; i < e.data && len(out) < outSize; i++ {
		out = append(out, shards[i]...)
	}
	if len(out) < outSize {
		return nil, fmt.Errorf("%w: recovered only %d of %d bytes", ErrInvalidShardConfig, len(out), outSize)
	}
	return out[:outSize], nil
}
