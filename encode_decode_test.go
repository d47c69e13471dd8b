package leopard16

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeAll builds K data shards, encodes M recovery shards, and returns
// both so callers can simulate loss.
func encodeAll(t *testing.T, seed int64, k, m, size int) (data, recovery [][]byte) {
	t.Helper()
	enc, err := NewEncoder(k, m, size)
	require.NoError(t, err)

	data = randomShards(seed, k, size)
	for _, s := range data {
		require.NoError(t, enc.AddOriginalShard(s))
	}
	recovery, err = enc.Encode()
	require.NoError(t, err)
	require.Len(t, recovery, m)
	return data, recovery
}

// runScenario drops shards per keepOriginal/keepRecovery predicates, decodes,
// and checks every original shard is recovered byte-for-byte.
func runScenario(t *testing.T, k, m, size int, seed int64, keepOriginal, keepRecovery func(i int) bool) {
	t.Helper()
	data, recovery := encodeAll(t, seed, k, m, size)

	dec, err := NewDecoder(k, m, size)
	require.NoError(t, err)

	for i, s := range data {
		if keepOriginal(i) {
			require.NoError(t, dec.AddOriginalShard(i, s))
		}
	}
	for i, s := range recovery {
		if keepRecovery(i) {
			require.NoError(t, dec.AddRecoveryShard(i, s))
		}
	}

	got, err := dec.Decode()
	require.NoError(t, err)
	require.Len(t, got, k)
	for i := range data {
		require.Equal(t, data[i], got[i], "shard %d", i)
	}
}

func TestEncodeDecodeSmallSquare(t *testing.T) {
	runScenario(t, 3, 3, 64, 10,
		func(i int) bool { return i != 1 },
		func(i int) bool { return true },
	)
}

func TestEncodeDecodeHighRateLoseAllOriginals(t *testing.T) {
	const k, m = 128, 128
	runScenario(t, k, m, 1024, 11,
		func(i int) bool { return false },
		func(i int) bool { return true },
	)
}

func TestEncodeDecodeHighRateManyOriginalsFewParity(t *testing.T) {
	const k, m = 1000, 100
	runScenario(t, k, m, 1024, 12,
		func(i int) bool { return i%10 != 0 },
		func(i int) bool { return true },
	)
}

func TestEncodeDecodeLowRateManyParityFewOriginals(t *testing.T) {
	const k, m = 100, 1000
	runScenario(t, k, m, 1024, 13,
		func(i int) bool { return i%2 == 0 },
		func(i int) bool { return true },
	)
}

func TestEncodeDecodeSquarePowerOfTwoOddLoss(t *testing.T) {
	const k, m = 1024, 1024
	runScenario(t, k, m, 1024, 14,
		func(i int) bool { return i%2 == 0 },
		func(i int) bool { return true },
	)
}

// TestEncodeDecodePowerOfTwoPlusOne exercises the ceilPow2 padding path with
// random ~50% loss, at a K/M that is one past a power of two. With K == M the
// High-Rate scheme is selected, so M is padded from 16385 up to 32768.
func TestEncodeDecodePowerOfTwoPlusOne(t *testing.T) {
	const k, m, size = 16385, 16385, 64
	data, recovery := encodeAll(t, 15, k, m, size)

	r := rand.New(rand.NewSource(99))
	dec, err := NewDecoder(k, m, size)
	require.NoError(t, err)

	present := 0
	for i, s := range data {
		if r.Intn(2) == 0 {
			require.NoError(t, dec.AddOriginalShard(i, s))
			present++
		}
	}
	for i, s := range recovery {
		if present >= k {
			break
		}
		require.NoError(t, dec.AddRecoveryShard(i, s))
		present++
	}

	got, err := dec.Decode()
	require.NoError(t, err)
	for i := range data {
		require.Equal(t, data[i], got[i], "shard %d", i)
	}
}

func TestEncodeDecodeBoundaryKM1(t *testing.T) {
	runScenario(t, 1, 1, 64, 16,
		func(i int) bool { return false },
		func(i int) bool { return true },
	)
}

func TestEncodeDecodeBoundaryLargeShard(t *testing.T) {
	runScenario(t, 4, 4, 65536, 17,
		func(i int) bool { return i != 0 },
		func(i int) bool { return true },
	)
}

func TestEncoderRejectsUndersizedShard(t *testing.T) {
	_, err := NewEncoder(2, 2, 63)
	require.ErrorIs(t, err, ErrInvalidShardSize)

	_, err = NewEncoder(2, 2, 65)
	require.ErrorIs(t, err, ErrInvalidShardSize)
}

func TestDecoderRejectsTooFewShards(t *testing.T) {
	dec, err := NewDecoder(4, 4, 64)
	require.NoError(t, err)

	data := randomShards(18, 4, 64)
	require.NoError(t, dec.AddOriginalShard(0, data[0]))

	_, err = dec.Decode()
	require.ErrorIs(t, err, ErrNotEnoughShards)
}
