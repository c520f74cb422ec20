// Package derive implements the Cardano Icarus (CIP-3) master-key
// derivation and BIP32-Ed25519 (CIP-3/Khovratovich-Law) hierarchical child
// key derivation used to walk down to the stake key.
package derive

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 4096
	masterKeyLen     = 96
)

// MasterKey is k_L(32) || k_R(32) || chaincode(32), Icarus-clamped.
type MasterKey [masterKeyLen]byte

// KL returns the clamped left 32 bytes of the scalar.
func (m *MasterKey) KL() []byte { return m[:32] }

// KR returns the right 32 bytes of the scalar.
func (m *MasterKey) KR() []byte { return m[32:64] }

// ChainCode returns the 32-byte chain code.
func (m *MasterKey) ChainCode() []byte { return m[64:96] }

// Zero overwrites the key material so it does not linger on the stack or
// heap after the candidate it belongs to is discarded.
func (m *MasterKey) Zero() {
	for i := range m {
		m[i] = 0
	}
}

// NewMasterKey derives the Icarus master key from entropy: 4096-round
// PBKDF2-HMAC-SHA512 with an empty password and the entropy as salt,
// followed by scalar clamping.
func NewMasterKey(entropy []byte) *MasterKey {
	var mk MasterKey
	derived := pbkdf2.Key(nil, entropy, pbkdf2Iterations, masterKeyLen, sha512.New)
	copy(mk[:], derived)
	clamp(&mk)
	return &mk
}

func clamp(mk *MasterKey) {
	mk[0] &= 0b11111000
	mk[31] &= 0b00011111
	mk[31] |= 0b01000000
}
