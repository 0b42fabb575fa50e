package f2e16

// IsPowerOf2 reports whether x is a positive power of two.
func IsPowerOf2(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)) for x > 0.
func Log2(x int) int {
	o := 0
	for x > 1 {
		x >>= 1
		o++
	}
	return o
}

// NextHigherPowerOf2 returns the smallest power of two >= x.
func NextHigherPowerOf2(x int) int {
	if IsPowerOf2(x) {
		return x
	}
	return 1 << (Log2(x) + 1)
}

// NextLowerPowerOf2 returns the largest power of two <= x.
func NextLowerPowerOf2(x int) int {
	if IsPowerOf2(x) {
		return x
	}
	return 1 << Log2(x)
}
