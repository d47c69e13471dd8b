package leopard16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogExpRoundTrip(t *testing.T) {
	initTables()
	for a := 1; a < fieldOrder; a++ {
		require.Equal(t, ffe(a), expLUT[logLUT[a]], "exp(log(%d))", a)
	}
}

func TestMulFieldIdentityAndZero(t *testing.T) {
	initTables()
	for _, a := range []ffe{0, 1, 2, 300, 65534} {
		require.Equal(t, a, mulLog(a, logLUT[1]), "mulLog(%d, log(1))", a)
		require.Equal(t, ffe(0), mulLog(0, logLUT[12345]), "mulLog(0, log(m))")
	}
}

func TestAddModSubModRoundTrip(t *testing.T) {
	cases := []struct{ a, b ffe }{
		{0, 0}, {1, 1}, {100, 200}, {65534, 1}, {65534, 65534}, {0, 65534},
	}
	for _, c := range cases {
		sum := addMod(c.a, c.b)
		back := subMod(sum, c.b)
		want := c.a
		if want == modulus {
			// addMod/subMod operate mod 65535, so 65535 and 0 are the same residue.
			want = 0
		}
		require.Equal(t, want, back, "subMod(addMod(%d,%d),%d)", c.a, c.b, c.b)
	}
}

func TestMul16LUTsMatchMulLog(t *testing.T) {
	initTables()
	for _, logM := range []ffe{0, 1, 255, 65534, modulus} {
		lut := &mul16LUTs[logM]
		for _, x := range []ffe{0, 1, 0xAB, 0x1234, 0xFFFF} {
			want := mulLog(x, logM)
			lo := byte(x)
			hi := byte(x >> 8)
			got := lut.Lo[lo] ^ lut.Hi[hi]
			require.Equal(t, want, got, "mul16LUTs[%d] applied to %#x", logM, x)
		}
	}
}
