package naive

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/eth2030/novelpoly"
)

func TestNewValidation(t *testing.T) {
	cases := []struct{ data, total int }{
		{0, 4}, {4, 4}, {5, 4}, {-1, 3},
	}
	for _, c := range cases {
		if _, err := New(c.data, c.total); !errors.Is(err, ErrInvalidShardConfig) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidShardConfig", c.data, c.total, err)
		}
	}
	if _, err := New(4, 12); err != nil {
		t.Errorf("New(4, 12) failed: %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(50))
	enc, err := New(4, 12)
	if err != nil {
		t.Fatal(err)
	}

	payload := make([]byte, 333)
	rng.Read(payload)
	shards, size, err := enc.Encode(payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(shards) != 12 {
		t.Fatalf("got %d shards, want 12", len(shards))
	}

	// Drop the maximum tolerable number of shards.
	for _, i := range rng.Perm(12)[:8] {
		shards[i] = nil
	}
	out, err := enc.Decode(shards, size)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatal("payload mismatch after decode")
	}
}

// Both codecs must recover the same payload from the same loss rate, even
// though their shard bytes differ.
func TestAgreesWithNovelPolyCodec(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	const validators = 12
	k := novelpoly.RecoverabilitySubsetSize(validators)

	enc, err := New(k, validators)
	if err != nil {
		t.Fatal(err)
	}

	payload := make([]byte, 500)
	rng.Read(payload)

	naiveShards, size, err := enc.Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	polyShards, err := novelpoly.Encode(payload, validators)
	if err != nil {
		t.Fatal(err)
	}

	// Keep the same surviving subset for both codecs.
	keep := map[int]bool{}
	for _, i := range rng.Perm(validators)[:k] {
		keep[i] = true
	}
	polyReceived := make([][]byte, validators)
	for i := 0; i < validators; i++ {
		if keep[i] {
			polyReceived[i] = polyShards[i]
		} else {
			naiveShards[i] = nil
		}
	}

	naiveOut, err := enc.Decode(naiveShards, size)
	if err != nil {
		t.Fatalf("naive decode failed: %v", err)
	}
	polyOut, err := novelpoly.Reconstruct(polyReceived, validators)
	if err != nil {
		t.Fatalf("novelpoly reconstruct failed: %v", err)
	}
	if !bytes.Equal(naiveOut, payload) || !bytes.Equal(polyOut[:len(payload)], payload) {
		t.Fatal("codecs disagree on the recovered payload")
	}
}
