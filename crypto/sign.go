package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/errors"
)

const SignatureSize = 64

type Signature [SignatureSize]byte

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	return common.EncodeBase58(s[:])
}

// nonce hash domain separator: 0xFE followed by 31 bytes of 0xFF
var signPrefix = func() []byte {
	p := make([]byte, 32)
	p[0] = 0xFE
	for i := 1; i < len(p); i++ {
		p[i] = 0xFF
	}
	return p
}()

// Sign produces an Ed25519 signature with the Curve25519 private scalar. The sign bit of
// the Edwards public key travels in the top bit of the last signature byte, which lets
// Verify rebuild the Edwards key from the Montgomery public key.
func Sign(sk PrivateKey, data []byte) (Signature, error) {
	var sig Signature

	a, err := edwards25519.NewScalar().SetBytesWithClamping(sk[:])
	if err != nil {
		return sig, errors.Wrap(errors.KindPointConversionError, err, "invalid private key scalar")
	}
	edPub := new(edwards25519.Point).ScalarBaseMult(a).Bytes()
	signBit := edPub[31] & 0x80

	random := make([]byte, 64)
	if _, err := rand.Read(random); err != nil {
		return sig, errors.Wrap(errors.KindSignatureError, err, "failed to read random bytes")
	}

	h := sha512.New()
	h.Write(signPrefix)
	h.Write(sk[:])
	h.Write(data)
	h.Write(random)
	r, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return sig, errors.Wrap(errors.KindSignatureError, err, "failed to reduce nonce")
	}
	encodedR := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(encodedR)
	h.Write(edPub)
	h.Write(data)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return sig, errors.Wrap(errors.KindSignatureError, err, "failed to reduce challenge")
	}
	s := edwards25519.NewScalar().MultiplyAdd(k, a, r)

	copy(sig[:32], encodedR)
	copy(sig[32:], s.Bytes())
	sig[63] &= 0x7F
	sig[63] |= signBit
	return sig, nil
}

// Verify checks signature over data against the Montgomery public key.
func Verify(pk PublicKey, data []byte, signature []byte) bool {
	if len(signature) != SignatureSize {
		return false
	}
	edPub, err := MontgomeryToEdwards(pk, signature[63]&0x80)
	if err != nil {
		return false
	}
	sig := make([]byte, SignatureSize)
	copy(sig, signature)
	sig[63] &= 0x7F
	return ed25519.Verify(edPub, data, sig)
}

// MontgomeryToEdwards maps u to y = (u-1)/(u+1) and applies signBit as the x sign.
func MontgomeryToEdwards(pk PublicKey, signBit byte) (ed25519.PublicKey, error) {
	u, err := new(field.Element).SetBytes(pk[:])
	if err != nil {
		return nil, errors.Wrap(errors.KindPointConversionError, err, "invalid montgomery coordinate")
	}
	one := new(field.Element).One()
	denominator := new(field.Element).Add(u, one)
	if denominator.Equal(new(field.Element).Zero()) == 1 {
		return nil, errors.New(errors.KindPointConversionError, "montgomery coordinate -1 has no edwards form")
	}
	numerator := new(field.Element).Subtract(u, one)
	y := new(field.Element).Multiply(numerator, new(field.Element).Invert(denominator))

	edPub := y.Bytes()
	edPub[31] &= 0x7F
	edPub[31] |= signBit & 0x80
	if _, err := new(edwards25519.Point).SetBytes(edPub); err != nil {
		return nil, errors.Wrap(errors.KindPointConversionError, err, "point is not on the curve")
	}
	return edPub, nil
}
