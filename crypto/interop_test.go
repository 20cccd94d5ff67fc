package crypto

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gwcrypto "github.com/wavesplatform/gowaves/pkg/crypto"
)

// The node's reference Go implementation must accept our signatures and produce ones we accept.
func TestSignaturesInteroperateWithGowaves(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 512)
	for nonce := 0; nonce < 16; nonce++ {
		kp, err := NewKeyPair(testSeed, uint8(nonce))
		require.NoError(t, err)
		sk, err := gwcrypto.NewSecretKeyFromBytes(kp.PrivateKey.Bytes())
		require.NoError(t, err)
		pk, err := gwcrypto.NewPublicKeyFromBytes(kp.PublicKey.Bytes())
		require.NoError(t, err)
		assert.Equal(t, pk, gwcrypto.GeneratePublicKey(sk), "nonce %d", nonce)

		var data []byte
		f.Fuzz(&data)

		ours, err := Sign(kp.PrivateKey, data)
		require.NoError(t, err)
		sig, err := gwcrypto.NewSignatureFromBytes(ours.Bytes())
		require.NoError(t, err)
		assert.True(t, gwcrypto.Verify(pk, sig, data), "nonce %d: gowaves rejected our signature", nonce)

		theirs, err := gwcrypto.Sign(sk, data)
		require.NoError(t, err)
		assert.True(t, Verify(kp.PublicKey, data, theirs[:]), "nonce %d: gowaves signature rejected", nonce)
	}
}

func TestHashesMatchGowaves(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 256)
	for i := 0; i < 32; i++ {
		var data []byte
		f.Fuzz(&data)

		fast, err := gwcrypto.FastHash(data)
		require.NoError(t, err)
		assert.Equal(t, fast[:], Blake(data))

		secure, err := gwcrypto.SecureHash(data)
		require.NoError(t, err)
		assert.Equal(t, secure[:], SecureHash(data))
	}
}
