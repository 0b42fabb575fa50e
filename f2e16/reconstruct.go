// reconstruct.go recovers erased codeword symbols. The decoder is the
// frequency-domain erasure decoder of Lin, Chung, Han: multiply the received
// word by the error locator evaluated over the field, take the formal
// derivative in the transform domain, and read the erased values back out.
// Its cost is two full-size transforms regardless of how many symbols are
// missing, as long as at least k survive.
package f2e16

import "encoding/binary"

// EvalErrorPolynomial computes the error locator for an erasure pattern,
// evaluated over the whole field and returned in log form. The result
// depends only on the pattern, so callers decoding many codewords with the
// same erasures compute it once and reuse it.
func EvalErrorPolynomial(erasures []bool, n int) []Multiplier {
	initTables()
	if n > FieldSize {
		panic("f2e16: erasure domain exceeds the field")
	}

	errorPoly := make([]Multiplier, FieldSize)
	z := min(n, len(erasures))
	for i := 0; i < z; i++ {
		if erasures[i] {
			errorPoly[i] = 1
		}
	}
	walsh(errorPoly, FieldSize)
	for i := 0; i < n; i++ {
		tmp := uint32(errorPoly[i]) * uint32(logWalsh[i])
		errorPoly[i] = Multiplier(tmp % OneMask)
	}
	walsh(errorPoly, FieldSize)
	for i := 0; i < z; i++ {
		if erasures[i] {
			errorPoly[i] = OneMask - errorPoly[i]
		}
	}
	return errorPoly
}

// decodeMain rewrites codeword[:n] so that the first recoverUpTo positions
// hold the recovered values at erased indices and zero elsewhere. logWalsh2
// is the precomputed error locator from EvalErrorPolynomial.
func decodeMain(codeword []Additive, recoverUpTo int, erasures []bool, logWalsh2 []Multiplier, n int) {
	for i := 0; i < n; i++ {
		if erasures[i] {
			codeword[i] = 0
		} else {
			codeword[i] = codeword[i].mul(logWalsh2[i])
		}
	}
	inverseAFFT(codeword, n, 0)
	tweakedFormalDerivative(codeword, n)
	afft(codeword, n, 0)
	for i := 0; i < recoverUpTo; i++ {
		if erasures[i] {
			codeword[i] = codeword[i].mul(logWalsh2[i])
		} else {
			codeword[i] = 0
		}
	}
}

// ReconstructSub recovers the 2k payload bytes of one codeword. codewords
// holds the received symbols with erased positions flagged in erasures
// (their symbol values are ignored); errorPoly is the locator for exactly
// that erasure pattern. The returned bytes are the systematic symbols in
// big-endian order.
func ReconstructSub(codewords []Additive, erasures []bool, n, k int, errorPoly []Multiplier) []byte {
	initTables()
	if !IsPowerOf2(n) || !IsPowerOf2(k) || k > n/2 {
		panic("f2e16: ReconstructSub requires power-of-two dimensions with k <= n/2")
	}
	if len(codewords) != n || len(erasures) < n {
		panic("f2e16: ReconstructSub shape mismatch")
	}
	if len(errorPoly) != FieldSize {
		panic("f2e16: error locator must cover the whole field")
	}

	recovered := make([]Additive, k)
	codeword := make([]Additive, n)
	for i := 0; i < n; i++ {
		if erasures[i] {
			continue
		}
		codeword[i] = codewords[i]
		if i < k {
			recovered[i] = codewords[i]
		}
	}

	decodeMain(codeword, k, erasures, errorPoly, n)
	for i := 0; i < k; i++ {
		if erasures[i] {
			recovered[i] = codeword[i]
		}
	}

	out := make([]byte, 2*k)
	for i, sym := range recovered {
		binary.BigEndian.PutUint16(out[2*i:], uint16(sym))
	}
	return out
}
