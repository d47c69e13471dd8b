package leopard16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFWHTDoubleApplicationIsIdentity checks that applying the FWHT twice is the identity transform,
// since 65536 mod 65535 == 1.
func TestFWHTDoubleApplicationIsIdentity(t *testing.T) {
	var data [fieldOrder]ffe
	for i := range data {
		data[i] = ffe((i*2654435761 + 7) % fieldOrder)
	}
	orig := data

	fwhtInPlace(&data, fieldOrder)
	fwhtInPlace(&data, fieldOrder)

	for i := range data {
		want := orig[i]
		if want == modulus {
			want = 0
		}
		require.Equal(t, want, data[i], "double FWHT at index %d", i)
	}
}

// TestTruncatedFWHTMatchesFullWhenTailIsZero checks that transforming a zero-tailed array truncated
// to its nonzero prefix matches transforming the full array.
func TestTruncatedFWHTMatchesFullWhenTailIsZero(t *testing.T) {
	const prefix = 1024

	var full, truncated [fieldOrder]ffe
	for i := 0; i < prefix; i++ {
		v := ffe((i*97 + 3) % fieldOrder)
		full[i] = v
		truncated[i] = v
	}

	fwhtInPlace(&full, fieldOrder)
	fwhtInPlace(&truncated, prefix)

	require.Equal(t, full, truncated)
}

func TestFwht2AltMatchesFwht2(t *testing.T) {
	cases := []struct{ a, b ffe }{
		{0, 0}, {1, 2}, {65534, 1}, {12345, 54321},
	}
	for _, c := range cases {
		a, b := c.a, c.b
		fwht2(&a, &b)

		gotA, gotB := fwht2alt(c.a, c.b)
		require.Equal(t, a, gotA)
		require.Equal(t, b, gotB)
	}
}
