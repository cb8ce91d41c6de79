package csidh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	t.Run("GenerateKey respects the exponent bound", func(t *testing.T) {
		priv, err := GenerateKey(NewShake256RandomSource([]byte("csidh keys bound")))
		require.NoError(t, err)
		for _, e := range priv.exps {
			require.LessOrEqual(t, e, int8(PrivateKeyBound))
			require.GreaterOrEqual(t, e, int8(-PrivateKeyBound))
		}
	})

	t.Run("PublicKey Bytes/NewPublicKeyFromBytes roundtrip", func(t *testing.T) {
		priv, err := GenerateKey(NewShake256RandomSource([]byte("csidh keys s11n")))
		require.NoError(t, err)
		pub := priv.PublicKey()

		decoded, err := NewPublicKeyFromBytes(pub.Bytes())
		require.NoError(t, err)
		require.True(t, pub.a.Equal(&decoded.a))
	})

	t.Run("NewPublicKeyFromBytes rejects wrong length", func(t *testing.T) {
		_, err := NewPublicKeyFromBytes([]byte{1, 2, 3})
		require.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("NewPublicKeyFromBytes rejects non-canonical encoding", func(t *testing.T) {
		_, err := NewPublicKeyFromBytes(p.AsBytes())
		require.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("deterministic RandomSource yields deterministic keys", func(t *testing.T) {
		seed := []byte("csidh keys determinism")
		a, err := GenerateKey(NewShake256RandomSource(seed))
		require.NoError(t, err)
		b, err := GenerateKey(NewShake256RandomSource(seed))
		require.NoError(t, err)
		require.Equal(t, a.exps, b.exps)
	})

	t.Run("Zeroize clears the exponent vector", func(t *testing.T) {
		priv, err := GenerateKey(NewShake256RandomSource([]byte("csidh keys zeroize")))
		require.NoError(t, err)
		priv.Zeroize()
		var zero [NumPrimes]int8
		require.Equal(t, zero, priv.exps)
	})

	t.Run("NewPrivateKeyFromExponents accepts an in-bound vector", func(t *testing.T) {
		var exps [NumPrimes]int8
		exps[0] = PrivateKeyBound
		exps[1] = -PrivateKeyBound
		priv, err := NewPrivateKeyFromExponents(exps)
		require.NoError(t, err)
		require.Equal(t, exps, priv.exps)
	})

	t.Run("NewPrivateKeyFromExponents rejects an out-of-bound entry", func(t *testing.T) {
		var exps [NumPrimes]int8
		exps[5] = PrivateKeyBound + 1
		_, err := NewPrivateKeyFromExponents(exps)
		require.ErrorIs(t, err, ErrInvalidPrivateKey)
	})

	t.Run("single isogeny moves the curve off the base curve", func(t *testing.T) {
		var exps [NumPrimes]int8
		exps[0] = 1
		priv, err := NewPrivateKeyFromExponents(exps)
		require.NoError(t, err)

		got := Action(&baseCurveA, &priv.exps, NewShake256RandomSource([]byte("csidh keys single isogeny")))
		require.False(t, got.Equal(&baseCurveA), "a single l0=3 isogeny must move off the base curve")
	})

	t.Run("key exchange end to end", func(t *testing.T) {
		alice, err := GenerateKey(NewShake256RandomSource([]byte("csidh keys e2e alice")))
		require.NoError(t, err)
		bob, err := GenerateKey(NewShake256RandomSource([]byte("csidh keys e2e bob")))
		require.NoError(t, err)

		alicePub := alice.PublicKey()
		bobPub := bob.PublicKey()

		require.Equal(t, alice.SharedSecret(bobPub), bob.SharedSecret(alicePub))
	})
}
