// encode.go holds the systematic encoders. Both produce a codeword that is
// the evaluation of a degree < k polynomial over the first n points of the
// field, with the payload symbols appearing verbatim in the systematic
// positions.
package f2e16

import "encoding/binary"

// encodeLow builds a low-rate (k <= n/2) systematic codeword in place:
// the payload occupies codeword[:k] untouched and every subsequent k-sized
// window holds the evaluation of the same polynomial over that window's
// coset. data and codeword must both have length n and k must divide n.
func encodeLow(data []Additive, k int, codeword []Additive, n int) {
	if k+k > n || len(codeword) != n || len(data) != n {
		panic("f2e16: encodeLow shape mismatch")
	}
	if (n/k)*k != n {
		panic("f2e16: encodeLow requires k to divide n")
	}

	copy(codeword, data)

	// Interpolate: turn the payload evaluations into novel-basis
	// coefficients of the unique degree < k polynomial through them.
	inverseAFFT(codeword, k, 0)
	coeffs := make([]Additive, k)
	copy(coeffs, codeword[:k])

	// Evaluate the polynomial over every other coset.
	for shift := k; shift < n; shift += k {
		window := codeword[shift : shift+k]
		copy(window, coeffs)
		afft(window, k, shift)
	}

	// The first coset evaluates back to the payload itself.
	copy(codeword[:k], data[:k])
}

// encodeHigh builds the high-rate variant (parity count t = n-k a power of
// two, t <= k): parity[:t] receives the t parity symbols and the codeword is
// their concatenation with data, parity first. mem is scratch of length t.
func encodeHigh(data []Additive, k int, parity, mem []Additive, n int) {
	t := n - k
	if !IsPowerOf2(t) || t > k || len(data) != k || len(parity) < t || len(mem) < t {
		panic("f2e16: encodeHigh shape mismatch")
	}

	for i := 0; i < t; i++ {
		parity[i] = 0
	}
	for i := t; i < n; i += t {
		copy(mem[:t], data[i-t:i])
		inverseAFFT(mem, t, i)
		for j := 0; j < t; j++ {
			parity[j] ^= mem[j]
		}
	}
	afft(parity, t, 0)
}

// EncodeSub encodes up to 2k bytes of payload into an n-symbol systematic
// codeword. bytes are consumed big-endian two at a time; short payloads are
// zero-padded. n and k must be powers of two with k <= n/2 — violations are
// programming errors and panic.
func EncodeSub(data []byte, n, k int) []Additive {
	initTables()
	if !IsPowerOf2(n) || !IsPowerOf2(k) {
		panic("f2e16: EncodeSub requires power-of-two dimensions")
	}
	if len(data) == 0 || len(data) > k<<1 {
		panic("f2e16: EncodeSub payload must be 1..2k bytes")
	}
	if k > n/2 {
		panic("f2e16: EncodeSub requires k <= n/2")
	}

	symbols := make([]Additive, n)
	for i := 0; i+1 < len(data); i += 2 {
		symbols[i/2] = Additive(binary.BigEndian.Uint16(data[i:]))
	}
	if len(data)%2 == 1 {
		symbols[len(data)/2] = Additive(uint16(data[len(data)-1]) << 8)
	}

	codeword := make([]Additive, n)
	encodeLow(symbols, k, codeword, n)
	return codeword
}
