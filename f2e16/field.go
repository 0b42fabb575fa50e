// field.go implements the GF(2^16) Galois field underlying the novel
// polynomial basis Reed-Solomon code. Field elements are represented in a
// Cantor basis over the irreducible polynomial x^16 + x^5 + x^3 + x^2 + 1
// (tail 0x2D), which is what makes the additive FFT in afft.go work: the
// basis is chosen so that the subspaces spanned by basis prefixes nest.
//
// All non-zero elements are also expressible as powers of a primitive
// element, enabling O(1) multiplication via precomputed logarithm and
// antilogarithm tables. The discrete-log form of an element is called a
// Multiplier here, since its only use is making repeated multiplication by
// a fixed scalar cheap.
//
// The table constants are load-bearing: any implementation that wants to
// exchange shards with this one must reproduce the exact same log, exp and
// skew tables, not merely an isomorphic field.
//
// Reference: Lin, Chung, Han, "Novel Polynomial Basis and Its Application
// to Reed-Solomon Erasure Codes" (FOCS 2014), https://arxiv.org/abs/1404.3458
package f2e16

import "sync"

// Additive is a field element of GF(2^16) in additive (XOR) form.
// 0 is the additive identity.
type Additive uint16

// Multiplier is a field element in discrete-logarithm form. The value
// OneMask plays the role of "log of zero": no valid logarithm, multiplying
// by it is not defined and callers skip it (see afft.go).
type Multiplier uint16

// GF(2^16) constants.
const (
	// fieldBits is the degree of the field extension.
	fieldBits = 16

	// FieldSize is the number of elements in GF(2^16).
	FieldSize = 1 << fieldBits

	// OneMask is the order of the multiplicative group, 2^16 - 1. It doubles
	// as the "multiply by zero" sentinel in Multiplier form.
	OneMask = FieldSize - 1

	// generator is the tail of the irreducible polynomial
	// x^16 + x^5 + x^3 + x^2 + 1 used for reduction.
	generator = 0x2D
)

// cantorBase is the Cantor basis of the field: element i of the additive
// representation denotes the XOR of cantorBase[b] over the set bits b of i.
// The constants are part of the wire format; changing them changes every
// codeword.
var cantorBase = [fieldBits]uint16{
	1, 44234, 15374, 5694, 50562, 60718, 37196, 16402,
	27800, 4312, 27250, 47360, 64952, 64308, 65336, 39198,
}

// Precomputed tables, built once on first use and read-only afterwards.
var (
	logTable [FieldSize]uint16     // logTable[a] = discrete log of a, logTable[0] = OneMask
	expTable [FieldSize]uint16     // inverse of logTable; expTable[OneMask] = expTable[0]
	logWalsh [FieldSize]Multiplier // Walsh transform of the log table, used by the decoder
	skews    [OneMask]Multiplier   // additive-FFT skew factors in log form
	initOnce sync.Once
)

// initTables builds the log/exp tables, the skew-factor table and the
// Walsh-transformed log table. Safe for concurrent use; after the first call
// every table is immutable.
func initTables() {
	initOnce.Do(func() {
		buildLogExpTables()
		buildSkewTables()
		buildLogWalshTable()
	})
}

// buildLogExpTables fills logTable and expTable. The LFSR pass enumerates
// the powers of the primitive element in the monomial representation; the
// Cantor expansion then rebases the log table onto cantorBase so that the
// additive FFT skews come out right.
func buildLogExpTables() {
	const mas = (1 << (fieldBits - 1)) - 1
	state := 1
	for i := 0; i < OneMask; i++ {
		expTable[state] = uint16(i)
		if state>>(fieldBits-1) != 0 {
			state &= mas
			state = state<<1 ^ generator
		} else {
			state <<= 1
		}
	}
	expTable[0] = OneMask

	// Cantor basis change: logTable[x] is first the monomial image of x,
	// then composed with the monomial log computed above.
	logTable[0] = 0
	for i := 0; i < fieldBits; i++ {
		width := 1 << i
		for j := 0; j < width; j++ {
			logTable[j+width] = logTable[j] ^ cantorBase[i]
		}
	}
	for i := 0; i < FieldSize; i++ {
		logTable[i] = expTable[logTable[i]]
	}
	for i := 0; i < FieldSize; i++ {
		expTable[logTable[i]] = uint16(i)
	}
	// Logs of non-zero elements cover [0, OneMask); the slot at OneMask is
	// aliased so that the carry fold in mul never reads garbage.
	expTable[OneMask] = expTable[0]
}

// buildLogWalshTable computes the Walsh transform of the log table with the
// zero slot cleared. The decoder multiplies erasure spectra against it when
// evaluating the error locator polynomial.
func buildLogWalshTable() {
	for i := 0; i < FieldSize; i++ {
		logWalsh[i] = Multiplier(logTable[i])
	}
	logWalsh[0] = 0
	walsh(logWalsh[:], FieldSize)
}

// mul is the raw table multiply, valid only after initTables. The sum of two
// logs is reduced with a carry fold rather than a modulo; expTable[OneMask]
// is aliased to make the fold's 0xFFFF representative work.
func (a Additive) mul(m Multiplier) Additive {
	if a == 0 {
		return 0
	}
	log := uint32(logTable[a]) + uint32(m)
	offset := log&OneMask + log>>fieldBits
	return Additive(expTable[offset])
}

// Mul returns a * b where b is in Multiplier (log) form. Multiplying the
// zero element returns zero regardless of the multiplier.
func (a Additive) Mul(m Multiplier) Additive {
	initTables()
	return a.mul(m)
}

// ToMultiplier returns the discrete-log form of a. The zero element maps to
// OneMask, the "log of zero" sentinel.
func (a Additive) ToMultiplier() Multiplier {
	initTables()
	return Multiplier(logTable[a])
}

// ToAdditive converts a Multiplier back to additive form. It inverts
// ToMultiplier for non-zero elements; the log-of-zero sentinel maps to one,
// the aliased slot mul relies on.
func (m Multiplier) ToAdditive() Additive {
	initTables()
	return Additive(expTable[m])
}

// walsh applies an in-place fast Walsh-Hadamard transform to data, viewed as
// integers modulo OneMask (with 0xFFFF kept as an alternative representative
// of zero, matching the carry fold used by mul). size must be a power of two.
//
// In field terms one butterfly computes
//
//	data[i]          := data[i] / data[i+departNo]
//	data[i+departNo] := data[i] * data[i+departNo]
//
// on elements held in log form.
func walsh(data []Multiplier, size int) {
	for departNo := 1; departNo < size; departNo <<= 1 {
		for j := 0; j < size; j += departNo << 1 {
			for i := j; i < j+departNo; i++ {
				tmp1 := uint32(data[i]) + uint32(data[i+departNo])
				tmp2 := uint32(data[i]) + OneMask - uint32(data[i+departNo])
				data[i] = Multiplier(tmp1&OneMask + tmp1>>fieldBits)
				data[i+departNo] = Multiplier(tmp2&OneMask + tmp2>>fieldBits)
			}
		}
	}
}
