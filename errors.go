package novelpoly

import "errors"

var (
	// ErrWantedShardCountTooHigh is returned when the requested total shard
	// count would round up past the GF(2^16) field size.
	ErrWantedShardCountTooHigh = errors.New("novelpoly: wanted shard count exceeds what GF(2^16) can address")

	// ErrWantedShardCountTooLow is returned for total shard counts below 2,
	// where no parity can exist.
	ErrWantedShardCountTooLow = errors.New("novelpoly: wanted shard count must be at least 2")

	// ErrWantedPayloadShardCountTooLow is returned when fewer than one
	// payload shard is requested.
	ErrWantedPayloadShardCountTooLow = errors.New("novelpoly: wanted payload shard count must be at least 1")

	// ErrPayloadSizeIsZero is returned when encoding an empty payload.
	ErrPayloadSizeIsZero = errors.New("novelpoly: payload is empty")

	// ErrNeedMoreShards is returned by reconstruction when fewer than k
	// shards are present.
	ErrNeedMoreShards = errors.New("novelpoly: insufficient shards for reconstruction")

	// ErrInconsistentShardLengths is returned when the present shards do not
	// all share one even length.
	ErrInconsistentShardLengths = errors.New("novelpoly: shard lengths are not uniform")

	// ErrParamsMustBePowerOf2 is returned when a codec is built directly
	// from dimensions that are not powers of two.
	ErrParamsMustBePowerOf2 = errors.New("novelpoly: code dimensions must be powers of two")
)
