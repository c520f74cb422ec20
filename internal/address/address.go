// Package address composes Cardano Shelley addresses (CIP-19 subset) from
// Ed25519 public key material: a Blake2b-224 digest wrapped in a header
// byte and BECH32-encoded.
package address

import (
	"errors"

	"golang.org/x/crypto/blake2b"

	"github.com/cardanorecover/stakerecover/internal/bech32"
)

const digestSize = 28

const (
	headerStake      byte = 0b11100001
	headerEnterprise byte = 0b01100001
	headerBase       byte = 0b00000001
)

// ErrNoKey is returned when neither a payment nor a stake public key was
// supplied.
var ErrNoKey = errors.New("address: at least one of payment or stake public key is required")

// Hash224 returns the 28-byte Blake2b digest of pub, the payload building
// block for every CIP-19 address variant.
func Hash224(pub []byte) ([]byte, error) {
	h, err := blake2b.New(digestSize, nil)
	if err != nil {
		return nil, err
	}
	h.Write(pub)
	return h.Sum(nil), nil
}

// Compose builds a CIP-19 address string from optional payment and stake
// public keys. Exactly which of the two is present selects the header byte
// and human-readable part, per §4.6:
//
//	payment nil, stake set -> stake address,  hrp "stake", header 0xE1
//	payment set, stake nil -> enterprise address, hrp "addr", header 0x61
//	both set               -> base address,   hrp "addr", header 0x01
func Compose(paymentPub, stakePub []byte) (string, error) {
	switch {
	case paymentPub == nil && stakePub == nil:
		return "", ErrNoKey
	case paymentPub == nil:
		h, err := Hash224(stakePub)
		if err != nil {
			return "", err
		}
		return encode("stake", headerStake, h)
	case stakePub == nil:
		h, err := Hash224(paymentPub)
		if err != nil {
			return "", err
		}
		return encode("addr", headerEnterprise, h)
	default:
		hp, err := Hash224(paymentPub)
		if err != nil {
			return "", err
		}
		hs, err := Hash224(stakePub)
		if err != nil {
			return "", err
		}
		payload := append(append([]byte{}, hp...), hs...)
		return encode("addr", headerBase, payload)
	}
}

// StakeAddress is the common case: derive the stake-only address from a
// stake public key alone.
func StakeAddress(stakePub []byte) (string, error) {
	return Compose(nil, stakePub)
}

func encode(hrp string, header byte, payload []byte) (string, error) {
	data := make([]byte, 0, 1+len(payload))
	data = append(data, header)
	data = append(data, payload...)
	return bech32.Encode(hrp, data)
}
