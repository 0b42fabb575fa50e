// afft.go implements the additive FFT over GF(2^16) in the novel polynomial
// basis, the transform at the heart of the O(n log n) encoder and decoder.
// Unlike the classic multiplicative FFT, the butterflies here run over the
// additive cosets of nested subspaces of the field; the per-butterfly twist
// factors ("skews") depend only on the coset and are precomputed once.
//
// Algorithms 1 and 2 of Lin, Chung, Han (FOCS 2014); the skew-table
// construction follows Lin, Al-Naffouri, Han, Chung, "Novel Polynomial Basis
// with Fast Fourier Transform and Its Application to Reed-Solomon Erasure
// Codes" (IEEE Trans. Inf. Theory 2016).
package f2e16

// buildSkewTables computes the OneMask FFT skew factors and stores them in
// log form. A resulting skew of OneMask denotes the zero element; the
// transforms skip the multiply for those butterflies (the add half of the
// butterfly still runs).
func buildSkewTables() {
	var base [fieldBits - 1]uint16
	var skewsAdd [OneMask]uint16

	for i := 1; i < fieldBits; i++ {
		base[i-1] = 1 << i
	}
	for m := 0; m < fieldBits-1; m++ {
		step := 1 << (m + 1)
		skewsAdd[(1<<m)-1] = 0
		for i := m; i < fieldBits-1; i++ {
			s := 1 << (i + 1)
			for j := (1 << m) - 1; j < s; j += step {
				skewsAdd[j+s] = skewsAdd[j] ^ base[i]
			}
		}
		// Normalize the remaining basis against the subspace just consumed,
		// keeping the recurrence in log form where possible.
		scaled := Additive(base[m]).mul(Multiplier(logTable[base[m]^1]))
		base[m] = OneMask - logTable[scaled]
		for i := m + 1; i < fieldBits-1; i++ {
			b := Multiplier((uint32(logTable[base[i]^1]) + uint32(base[m])) % OneMask)
			base[i] = uint16(Additive(base[i]).mul(b))
		}
	}
	for i := 0; i < OneMask; i++ {
		skews[i] = Multiplier(logTable[skewsAdd[i]])
	}
}

// afft is the in-place forward transform of data[:size], evaluating the
// polynomial (in the novel basis) over the size-long stretch of the field
// starting at index. size must be a power of two.
func afft(data []Additive, size, index int) {
	for departNo := size >> 1; departNo > 0; departNo >>= 1 {
		for j := departNo; j < size; j += departNo << 1 {
			skew := skews[j+index-1]
			// OneMask is the zero skew; the multiply contributes nothing.
			if skew != OneMask {
				for i := j - departNo; i < j; i++ {
					data[i] ^= data[i+departNo].mul(skew)
				}
			}
			for i := j - departNo; i < j; i++ {
				data[i+departNo] ^= data[i]
			}
		}
	}
}

// inverseAFFT undoes afft: butterflies run smallest stride first and each
// one adds before it multiplies.
func inverseAFFT(data []Additive, size, index int) {
	for departNo := 1; departNo < size; departNo <<= 1 {
		for j := departNo; j < size; j += departNo << 1 {
			for i := j - departNo; i < j; i++ {
				data[i+departNo] ^= data[i]
			}
			skew := skews[j+index-1]
			if skew != OneMask {
				for i := j - departNo; i < j; i++ {
					data[i] ^= data[i+departNo].mul(skew)
				}
			}
		}
	}
}

// AFFT applies the forward additive FFT to data[:size] at the given coset
// index. Invalid sizes are programming errors and panic.
func AFFT(data []Additive, size, index int) {
	initTables()
	checkTransformArgs(data, size, index)
	afft(data, size, index)
}

// InverseAFFT applies the inverse additive FFT to data[:size] at the given
// coset index. AFFT followed by InverseAFFT with the same arguments is the
// identity.
func InverseAFFT(data []Additive, size, index int) {
	initTables()
	checkTransformArgs(data, size, index)
	inverseAFFT(data, size, index)
}

func checkTransformArgs(data []Additive, size, index int) {
	if !IsPowerOf2(size) || size > FieldSize {
		panic("f2e16: transform size must be a power of two within the field")
	}
	if len(data) < size {
		panic("f2e16: transform data shorter than size")
	}
	if index < 0 || index+size > FieldSize {
		panic("f2e16: transform index out of field range")
	}
}

// formalDerivative computes the formal derivative of the polynomial whose
// novel-basis coefficients are cos[:size], in place. Element i folds into the
// positions below it along the lowest set bit of i.
func formalDerivative(cos []Additive, size int) {
	for i := 1; i < size; i++ {
		length := ((i ^ (i - 1)) + 1) >> 1
		for j := i - length; j < i; j++ {
			if j+length < len(cos) {
				cos[j] ^= cos[j+length]
			}
		}
	}
	for i := size; i < FieldSize && i < len(cos); i <<= 1 {
		for j := 0; j < size; j++ {
			if j+i < len(cos) {
				cos[j] ^= cos[j+i]
			}
		}
	}
}

// tweakedFormalDerivative is the derivative used by the error-correction
// pipeline. In the general construction the coefficients would be scaled by
// per-degree factors B[i] before and after the plain derivative, but in this
// field every B[i] is one, so the tweak reduces to formalDerivative itself.
// The wrapper stays so the decoder reads like the construction it implements.
func tweakedFormalDerivative(codeword []Additive, n int) {
	formalDerivative(codeword, n)
}

// FormalDerivative is the exported formal derivative over the first size
// coefficients of cos.
func FormalDerivative(cos []Additive, size int) {
	initTables()
	if !IsPowerOf2(size) || size > FieldSize {
		panic("f2e16: derivative size must be a power of two within the field")
	}
	formalDerivative(cos, size)
}
