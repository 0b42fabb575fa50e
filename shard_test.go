package novelpoly

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSplitJoinRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	cases := []struct{ size, k, shardLen int }{
		{100, 4, 26},
		{1, 1, 2},
		{64, 8, 8},
		{63, 8, 8},
	}
	for _, c := range cases {
		payload := make([]byte, c.size)
		rng.Read(payload)
		shards := Split(payload, c.k, c.shardLen)
		if len(shards) != c.k {
			t.Fatalf("Split produced %d shards, want %d", len(shards), c.k)
		}
		for i, s := range shards {
			if len(s) != c.shardLen {
				t.Fatalf("shard %d has length %d, want %d", i, len(s), c.shardLen)
			}
		}
		if got := Join(shards, c.size); !bytes.Equal(got, payload) {
			t.Fatalf("size=%d k=%d: join mismatch", c.size, c.k)
		}
	}
}

func TestSplitZeroPadding(t *testing.T) {
	shards := Split([]byte{1, 2, 3}, 2, 2)
	if !bytes.Equal(shards[0], []byte{1, 2}) {
		t.Errorf("shard 0 = %v, want [1 2]", shards[0])
	}
	if !bytes.Equal(shards[1], []byte{3, 0}) {
		t.Errorf("shard 1 = %v, want [3 0]", shards[1])
	}
}

func TestSplitRejectsOddShardLen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Split accepted an odd shard length")
		}
	}()
	Split([]byte{1, 2, 3}, 2, 3)
}
