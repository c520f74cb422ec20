package mnemonic

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cardanorecover/stakerecover/internal/wordlist"
)

func words(s string) []string {
	return strings.Fields(s)
}

// T1: abandon x11, about -> entropy all zero bytes.
func TestT1AllZero(t *testing.T) {
	wl := wordlist.English()
	phrase := words(strings.Repeat("abandon ", 11) + "about")
	entropy, err := WordsToEntropy(phrase, wl)
	if err != nil {
		t.Fatalf("WordsToEntropy: %v", err)
	}
	want, _ := hex.DecodeString("00000000000000000000000000000000")
	if !bytes.Equal(entropy, want) {
		t.Fatalf("entropy = %x, want %x", entropy, want)
	}
}

// T2: zoo x11, wrong -> entropy all 0xff bytes.
func TestT2AllFF(t *testing.T) {
	wl := wordlist.English()
	phrase := words(strings.Repeat("zoo ", 11) + "wrong")
	entropy, err := WordsToEntropy(phrase, wl)
	if err != nil {
		t.Fatalf("WordsToEntropy: %v", err)
	}
	want, _ := hex.DecodeString("ffffffffffffffffffffffffffffffff")
	if !bytes.Equal(entropy, want) {
		t.Fatalf("entropy = %x, want %x", entropy, want)
	}
}

func TestBadChecksumRejected(t *testing.T) {
	wl := wordlist.English()
	// Swap the last word for one with the wrong checksum bits.
	phrase := words(strings.Repeat("abandon ", 11) + "zoo")
	_, err := WordsToEntropy(phrase, wl)
	if err == nil {
		t.Fatal("expected checksum error")
	}
	if _, ok := err.(*ErrChecksumError); !ok {
		t.Fatalf("err = %v (%T), want *ErrChecksumError", err, err)
	}
}

func TestUnsupportedLength(t *testing.T) {
	wl := wordlist.English()
	_, err := WordsToEntropy(words("abandon abandon abandon"), wl)
	if err == nil {
		t.Fatal("expected unsupported-length error")
	}
}

// Entropy round-trip: for every valid entropy length, words(entropy) then
// entropy(words) returns the original entropy.
func TestRoundTripAllLengths(t *testing.T) {
	wl := wordlist.English()
	for _, p := range ValidLengths {
		for _, fill := range []byte{0x00, 0xff, 0x5a} {
			entropy := bytes.Repeat([]byte{fill}, p.entropyLen)
			ws, err := EntropyToWords(entropy, wl)
			if err != nil {
				t.Fatalf("EntropyToWords(len=%d): %v", p.entropyLen, err)
			}
			if len(ws) != p.words {
				t.Fatalf("got %d words, want %d", len(ws), p.words)
			}
			roundTripped, err := WordsToEntropy(ws, wl)
			if err != nil {
				t.Fatalf("WordsToEntropy round trip: %v", err)
			}
			if !bytes.Equal(roundTripped, entropy) {
				t.Fatalf("round trip mismatch: got %x, want %x", roundTripped, entropy)
			}
		}
	}
}
