package novelpoly

// Split cuts a payload into k contiguous byte shards of shardLen bytes each,
// zero-padding the last shard. shardLen must be positive and even (shards
// are consumed as 2-byte symbols downstream) and must cover the payload;
// violations are programming errors and panic.
func Split(payload []byte, k, shardLen int) [][]byte {
	if k < 1 || shardLen < 2 || shardLen%2 != 0 {
		panic("novelpoly: Split requires k >= 1 and a positive even shard length")
	}
	if k*shardLen < len(payload) {
		panic("novelpoly: Split shard length too small for payload")
	}
	shards := make([][]byte, k)
	for i := 0; i < k; i++ {
		shards[i] = make([]byte, shardLen)
		off := i * shardLen
		if off < len(payload) {
			copy(shards[i], payload[off:])
		}
	}
	return shards
}

// Join concatenates contiguous shards produced by Split and truncates the
// result to originalLen, dropping the padding.
func Join(shards [][]byte, originalLen int) []byte {
	out := make([]byte, 0, originalLen)
	for _, s := range shards {
		out = append(out, s...)
	}
	if originalLen < len(out) {
		out = out[:originalLen]
	}
	return out
}
