// Package novelpoly implements systematic Reed-Solomon erasure coding over
// GF(2^16) using an additive FFT in the novel polynomial basis, giving
// O(n log n) encoding and reconstruction for codes of up to 65536 shards.
//
// The top-level Encode and Reconstruct split a payload across a wanted
// number of shards such that any ceil(wanted/3) of them suffice to recover
// it. Callers needing other rates build a codec via DeriveParameters and
// ReedSolomon directly. The field and transform primitives live in the
// f2e16 sub-package.
package novelpoly

// Encode splits payload into validatorCount shards, any third of which
// (rounded up) reconstruct it.
func Encode(payload []byte, validatorCount int) ([][]byte, error) {
	params, err := DeriveParameters(validatorCount, RecoverabilitySubsetSize(validatorCount))
	if err != nil {
		return nil, err
	}
	return params.MakeEncoder().Encode(payload)
}

// Reconstruct recovers a payload from shards produced by Encode with the
// same validatorCount. Missing shards are nil entries; at least a third of
// the shards (rounded up) must be present. The result carries the zero
// padding Encode added; truncate to the known payload length.
func Reconstruct(received [][]byte, validatorCount int) ([]byte, error) {
	params, err := DeriveParameters(validatorCount, RecoverabilitySubsetSize(validatorCount))
	if err != nil {
		return nil, err
	}
	return params.MakeEncoder().Reconstruct(received)
}
