package f2e16

import (
	"math/rand"
	"testing"
)

func TestSkewGoldenValues(t *testing.T) {
	initTables()

	wantHead := []Multiplier{
		65535, 65535, 21845, 65535, 17476, 21845, 34952, 65535,
		56797, 17476, 30583, 21845, 48059, 34952, 13107, 65535,
	}
	for i, want := range wantHead {
		if skews[i] != want {
			t.Errorf("skews[%d] = %d, want %d", i, skews[i], want)
		}
	}

	spot := map[int]Multiplier{
		1000:  3981,
		4095:  65535,
		32767: 65535,
		65533: 57134,
		65534: 43173,
	}
	for i, want := range spot {
		if skews[i] != want {
			t.Errorf("skews[%d] = %d, want %d", i, skews[i], want)
		}
	}
}

func TestAFFTInverseRoundTrip(t *testing.T) {
	cases := []struct {
		size  int
		index int
	}{
		{16, 4},
		{64, 0},
		{128, 32},
		{256, 256},
		{1024, 2048},
	}
	rng := rand.New(rand.NewSource(11))
	for _, c := range cases {
		data := make([]Additive, c.size)
		orig := make([]Additive, c.size)
		for i := range data {
			data[i] = Additive(rng.Intn(FieldSize))
			orig[i] = data[i]
		}
		AFFT(data, c.size, c.index)
		InverseAFFT(data, c.size, c.index)
		for i := range data {
			if data[i] != orig[i] {
				t.Fatalf("size=%d index=%d: position %d = %d after round trip, want %d",
					c.size, c.index, i, data[i], orig[i])
			}
		}
	}
}

func TestAFFTGoldenVector(t *testing.T) {
	data := []Additive{1, 2, 3, 5, 8, 13, 21, 44, 65, 0, 0xFFFF, 2, 3, 5, 7, 11}
	want := []Additive{
		0xBA0C, 0xBA06, 0xFF49, 0xFF45, 0x68D4, 0x686F, 0x2DAB, 0x2D35,
		0x7B9E, 0x7B91, 0xC122, 0xC129, 0xA9FA, 0xA91D, 0x1329, 0x13E2,
	}
	AFFT(data, 16, 4)
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("afft output[%d] = %#04x, want %#04x", i, data[i], want[i])
		}
	}
}

func TestTransformArgValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AFFT accepted a non-power-of-two size")
		}
	}()
	AFFT(make([]Additive, 12), 12, 0)
}

func benchmarkAFFT(b *testing.B, size int) {
	rng := rand.New(rand.NewSource(1))
	data := make([]Additive, size)
	for i := range data {
		data[i] = Additive(rng.Intn(FieldSize))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		afft(data, size, 0)
	}
}

func BenchmarkAFFT256(b *testing.B)  { initTables(); benchmarkAFFT(b, 256) }
func BenchmarkAFFT4096(b *testing.B) { initTables(); benchmarkAFFT(b, 4096) }

func BenchmarkInverseAFFT4096(b *testing.B) {
	initTables()
	rng := rand.New(rand.NewSource(2))
	data := make([]Additive, 4096)
	for i := range data {
		data[i] = Additive(rng.Intn(FieldSize))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inverseAFFT(data, 4096, 0)
	}
}
