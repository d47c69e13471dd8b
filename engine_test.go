package leopard16

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomShards(seed int64, n, size int) [][]byte {
	r := rand.New(rand.NewSource(seed))
	shards := make([][]byte, n)
	for i := range shards {
		shards[i] = make([]byte, size)
		r.Read(shards[i])
	}
	return shards
}

func cloneShards(shards [][]byte) [][]byte {
	out := make([][]byte, len(shards))
	for i, s := range shards {
		out[i] = append([]byte(nil), s...)
	}
	return out
}

func allEngines() map[string]Engine {
	return map[string]Engine{
		"scalar": NewScalarEngine(),
		"ssse3":  NewSSSE3Engine(),
		"avx2":   NewAVX2Engine(),
		"neon":   NewNEONEngine(),
	}
}

// TestCrossEngineXorMul checks that the xor and mul operations produce identical output across all engines.
func TestCrossEngineXorMul(t *testing.T) {
	base := randomShards(1, 2, 256)
	logM := ffe(12345)

	var wantXor, wantMul []byte
	for name, e := range allEngines() {
		x := append([]byte(nil), base[0]...)
		y := append([]byte(nil), base[1]...)
		e.XOR(x, y)
		if wantXor == nil {
			wantXor = x
		} else {
			require.Equal(t, wantXor, x, "engine %s: XOR mismatch", name)
		}

		m := append([]byte(nil), base[0]...)
		e.Mul(m, logM)
		if wantMul == nil {
			wantMul = m
		} else {
			require.Equal(t, wantMul, m, "engine %s: Mul mismatch", name)
		}
	}
}

// TestCrossEngineFFTIFFT checks that fft/ifft/formal_derivative produce identical output across all engines.
func TestCrossEngineFFTIFFT(t *testing.T) {
	const n = 16
	base := randomShards(2, n, 64)

	var wantFFT, wantIFFT, wantDeriv [][]byte
	for name, e := range allEngines() {
		fftData := cloneShards(base)
		v := newShardView(fftData)
		e.FFT(v, 0, n, n, 0)
		if wantFFT == nil {
			wantFFT = fftData
		} else {
			require.Equal(t, wantFFT, fftData, "engine %s: fft mismatch", name)
		}

		ifftData := cloneShards(base)
		v = newShardView(ifftData)
		e.IFFT(v, 0, n, n, 0)
		if wantIFFT == nil {
			wantIFFT = ifftData
		} else {
			require.Equal(t, wantIFFT, ifftData, "engine %s: ifft mismatch", name)
		}

		derivData := cloneShards(base)
		e.FormalDerivative(newShardView(derivData))
		if wantDeriv == nil {
			wantDeriv = derivData
		} else {
			require.Equal(t, wantDeriv, derivData, "engine %s: formal_derivative mismatch", name)
		}
	}
}

// TestFFTIFFTRoundTrip checks that applying IFFT after FFT at the same skew_delta
// recovers the original data.
func TestFFTIFFTRoundTrip(t *testing.T) {
	const n = 32
	e := NewScalarEngine()

	original := randomShards(3, n, 64)
	data := cloneShards(original)
	v := newShardView(data)

	e.FFT(v, 0, n, n, 0)
	e.IFFT(v, 0, n, n, 0)

	require.Equal(t, original, data)
}

// TestEvalPolyAllZeroIndicatorIsNoOp checks that an all-zero erasure
// indicator (nothing missing) evaluates to an all-zero locator, matching
// the decoder's expectation that present shards are left unmasked when no
// erasure is declared at their position.
func TestEvalPolyAllZeroIndicatorIsNoOp(t *testing.T) {
	e := NewScalarEngine()
	var erasures [fieldOrder]ffe
	e.EvalPoly(&erasures, 8)
	for i, v := range erasures {
		require.Equal(t, ffe(0), v, "index %d", i)
	}
}
