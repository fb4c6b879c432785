package sampling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

	t.Run("SameKeySameStream", func(t *testing.T) {
		prngA, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		prngB, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		bufA := make([]byte, 512)
		bufB := make([]byte, 512)
		_, err = prngA.Read(bufA)
		require.NoError(t, err)
		_, err = prngB.Read(bufB)
		require.NoError(t, err)

		require.True(t, bytes.Equal(bufA, bufB))
	})

	t.Run("Reset", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		first := make([]byte, 512)
		_, err = prng.Read(first)
		require.NoError(t, err)

		prng.Reset()

		again := make([]byte, 512)
		_, err = prng.Read(again)
		require.NoError(t, err)

		require.True(t, bytes.Equal(first, again))
	})

	t.Run("Key", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		require.Equal(t, key, prng.Key())
	})

	t.Run("Float64Range", func(t *testing.T) {
		prng, err := NewKeyedPRNG(nil)
		require.NoError(t, err)
		for i := 0; i < 1024; i++ {
			f := Float64(prng, -1, 1)
			require.GreaterOrEqual(t, f, -1.0)
			require.Less(t, f, 1.0)
		}
	})
}
