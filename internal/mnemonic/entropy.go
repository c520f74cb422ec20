// Package mnemonic implements the BIP-39 word-to-entropy codec: packing
// words into entropy bytes and verifying the embedded checksum.
package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/cardanorecover/stakerecover/internal/wordlist"
)

// lengthParams describes one valid (wordCount, entropyBytes, checksumBits)
// combination.
type lengthParams struct {
	words       int
	entropyLen  int
	checksumLen int
}

// ValidLengths enumerates the five BIP-39 phrase lengths this codec
// supports, keyed by word count.
var ValidLengths = map[int]lengthParams{
	12: {words: 12, entropyLen: 16, checksumLen: 4},
	15: {words: 15, entropyLen: 20, checksumLen: 5},
	18: {words: 18, entropyLen: 24, checksumLen: 6},
	21: {words: 21, entropyLen: 28, checksumLen: 7},
	24: {words: 24, entropyLen: 32, checksumLen: 8},
}

// ErrUnsupportedLength is returned when the word count isn't one of
// {12,15,18,21,24}.
type ErrUnsupportedLength struct {
	N int
}

func (e *ErrUnsupportedLength) Error() string {
	return fmt.Sprintf("unsupported phrase length %d", e.N)
}

// ErrChecksumError is returned when the checksum bits embedded in a
// mnemonic's last word(s) do not match the entropy.
type ErrChecksumError struct{}

func (e *ErrChecksumError) Error() string {
	return "bip-39 checksum mismatch"
}

// WordsToEntropy decodes a mnemonic phrase into its underlying entropy,
// verifying the embedded checksum.
func WordsToEntropy(words []string, wl *wordlist.Wordlist) ([]byte, error) {
	params, ok := ValidLengths[len(words)]
	if !ok {
		return nil, &ErrUnsupportedLength{N: len(words)}
	}

	acc := new(big.Int)
	for _, w := range words {
		idx, err := wl.IndexOf(w)
		if err != nil {
			return nil, err
		}
		acc.Lsh(acc, 11)
		acc.Or(acc, big.NewInt(int64(idx)))
	}

	csLen := uint(params.checksumLen)
	checksumBits := new(big.Int).And(acc, mask(csLen))
	entropyInt := new(big.Int).Rsh(acc, csLen)

	entropy := entropyInt.FillBytes(make([]byte, params.entropyLen))

	expected := expectedChecksum(entropy, params.checksumLen)
	if checksumBits.Cmp(expected) != 0 {
		return nil, &ErrChecksumError{}
	}
	return entropy, nil
}

// EntropyToWords encodes entropy bytes (one of the five valid lengths)
// into its mnemonic phrase.
func EntropyToWords(entropy []byte, wl *wordlist.Wordlist) ([]string, error) {
	var params lengthParams
	found := false
	for _, p := range ValidLengths {
		if p.entropyLen == len(entropy) {
			params = p
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unsupported entropy length %d", len(entropy))
	}

	checksum := expectedChecksum(entropy, params.checksumLen)
	combined := new(big.Int).SetBytes(entropy)
	combined.Lsh(combined, uint(params.checksumLen))
	combined.Or(combined, checksum)

	words := make([]string, params.words)
	for i := params.words - 1; i >= 0; i-- {
		idx := new(big.Int).And(combined, mask(11))
		word, err := wl.WordAt(int(idx.Int64()))
		if err != nil {
			return nil, err
		}
		words[i] = word
		combined.Rsh(combined, 11)
	}
	return words, nil
}

func expectedChecksum(entropy []byte, checksumLen int) *big.Int {
	sum := sha256.Sum256(entropy)
	top := new(big.Int).SetBytes(sum[:])
	shift := uint(256 - checksumLen)
	return top.Rsh(top, shift)
}

func mask(bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	return m.Sub(m, big.NewInt(1))
}
