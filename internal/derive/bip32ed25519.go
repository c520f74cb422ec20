package derive

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	"filippo.io/edwards25519"
)

// HardenedOffset marks the boundary between soft and hardened indices, per
// CIP-3: indices at or above this value derive hardened.
const HardenedOffset uint32 = 1 << 31

// ExtendedKey is a BIP32-Ed25519 extended private key: the Icarus-clamped
// (kL, kR) scalar halves plus a 32-byte chain code.
type ExtendedKey struct {
	KL        [32]byte
	KR        [32]byte
	ChainCode [32]byte
}

// DerivationError reports that a child derivation step landed on the
// vanishingly unlikely kL ≡ 0 (mod l) case and must be skipped.
type DerivationError struct {
	Index uint32
}

func (e *DerivationError) Error() string {
	return "derivation produced a degenerate scalar; index must be skipped"
}

var errShortSeed = errors.New("derive: master key seed must be 96 bytes")

// MasterExtendedKey builds the root ExtendedKey from an Icarus MasterKey.
func MasterExtendedKey(mk *MasterKey) (*ExtendedKey, error) {
	if len(mk) != masterKeyLen {
		return nil, errShortSeed
	}
	var ek ExtendedKey
	copy(ek.KL[:], mk.KL())
	copy(ek.KR[:], mk.KR())
	copy(ek.ChainCode[:], mk.ChainCode())
	return &ek, nil
}

// IsHardened reports whether index selects the hardened derivation branch.
func IsHardened(index uint32) bool {
	return index >= HardenedOffset
}

// PublicKey returns the 32-byte Ed25519-compressed point kL*G.
func (ek *ExtendedKey) PublicKey() ([]byte, error) {
	s, err := scalarFromUnreduced(ek.KL[:])
	if err != nil {
		return nil, err
	}
	var point edwards25519.Point
	point.ScalarBaseMult(s)
	return point.Bytes(), nil
}

// Child derives the child ExtendedKey at index, choosing the hardened or
// soft branch per CIP-3 / Khovratovich-Law BIP32-Ed25519.
func (ek *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	var z, cc [64]byte
	idxBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(idxBuf, index)

	if IsHardened(index) {
		zMac := hmac.New(sha512.New, ek.ChainCode[:])
		zMac.Write([]byte{0x00})
		zMac.Write(ek.KL[:])
		zMac.Write(ek.KR[:])
		zMac.Write(idxBuf)
		copy(z[:], zMac.Sum(nil))

		ccMac := hmac.New(sha512.New, ek.ChainCode[:])
		ccMac.Write([]byte{0x01})
		ccMac.Write(ek.KL[:])
		ccMac.Write(ek.KR[:])
		ccMac.Write(idxBuf)
		copy(cc[:], ccMac.Sum(nil))
	} else {
		pub, err := ek.PublicKey()
		if err != nil {
			return nil, err
		}
		zMac := hmac.New(sha512.New, ek.ChainCode[:])
		zMac.Write([]byte{0x02})
		zMac.Write(pub)
		zMac.Write(idxBuf)
		copy(z[:], zMac.Sum(nil))

		ccMac := hmac.New(sha512.New, ek.ChainCode[:])
		ccMac.Write([]byte{0x03})
		ccMac.Write(pub)
		ccMac.Write(idxBuf)
		copy(cc[:], ccMac.Sum(nil))
	}

	zl := z[:28]
	zr := z[32:64]

	kl, err := addScalar256(ek.KL[:], zl, 8)
	if err != nil {
		return nil, err
	}
	kr := addMod256(ek.KR[:], zr)

	var child ExtendedKey
	copy(child.KL[:], kl)
	copy(child.KR[:], kr)
	copy(child.ChainCode[:], cc[32:64])

	if reducedIsZero(child.KL[:]) {
		return nil, &DerivationError{Index: index}
	}
	return &child, nil
}

// WalkPath derives a key along a sequence of indices, returning the final
// ExtendedKey. It stops and returns a *DerivationError immediately if any
// step along the way is degenerate.
func WalkPath(root *ExtendedKey, indices []uint32) (*ExtendedKey, error) {
	cur := root
	for _, idx := range indices {
		next, err := cur.Child(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// addScalar256 computes (8*zl + kl) mod 2^256, little-endian in and out.
func addScalar256(kl, zl []byte, mult int64) ([]byte, error) {
	zlInt := leToBig(zl)
	zlInt.Mul(zlInt, big.NewInt(mult))
	klInt := leToBig(kl)
	sum := new(big.Int).Add(zlInt, klInt)

	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	sum.Mod(sum, mod)

	return bigToLE(sum, 32), nil
}

// addMod256 computes (a + b) mod 2^256, little-endian in and out.
func addMod256(a, b []byte) []byte {
	sum := new(big.Int).Add(leToBig(a), leToBig(b))
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	sum.Mod(sum, mod)
	return bigToLE(sum, 32)
}

func leToBig(b []byte) *big.Int {
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(rev)
}

func bigToLE(n *big.Int, size int) []byte {
	be := n.FillBytes(make([]byte, size))
	le := make([]byte, size)
	for i, v := range be {
		le[size-1-i] = v
	}
	return le
}

// scalarFromUnreduced wide-reduces an unreduced 32-byte scalar mod l by
// zero-extending it to the 64-byte input SetUniformBytes expects.
func scalarFromUnreduced(kl []byte) (*edwards25519.Scalar, error) {
	wide := make([]byte, 64)
	copy(wide, kl)
	return edwards25519.NewScalar().SetUniformBytes(wide)
}

func reducedIsZero(kl []byte) bool {
	s, err := scalarFromUnreduced(kl)
	if err != nil {
		return false
	}
	zero := edwards25519.NewScalar()
	return s.Equal(zero) == 1
}
