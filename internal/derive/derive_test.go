package derive

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// T3: master key from entropy.
func TestT3MasterKey(t *testing.T) {
	entropy, _ := hex.DecodeString("46e62370a138a182a498b8e2885bc032379ddf38")
	want, _ := hex.DecodeString("c065afd2832cd8b087c4d9ab7011f481ee1e0721e78ea5dd609f3ab3f156d245d176bd8fd4ec60b4731c3918a2a72a0226c0cd119ec35b47e4d55884667f552a23f7fdcd4a10c6cd2c7393ac61d877873e248f417634aa3d812af327ffe9d620")

	mk := NewMasterKey(entropy)
	if !bytes.Equal(mk[:], want) {
		t.Fatalf("master key = %x, want %x", mk[:], want)
	}
}

func TestClampBits(t *testing.T) {
	mk := NewMasterKey([]byte("arbitrary entropy for clamp check"))
	if mk[0]&0b00000111 != 0 {
		t.Fatalf("low 3 bits of k_L[0] not cleared: %08b", mk[0])
	}
	if mk[31]&0b00100000 != 0 {
		t.Fatalf("bit 5 of k_L[31] not cleared: %08b", mk[31])
	}
	if mk[31]&0b01000000 == 0 {
		t.Fatalf("bit 6 of k_L[31] not set: %08b", mk[31])
	}
}

func TestWalkPathDeterministic(t *testing.T) {
	entropy, _ := hex.DecodeString("46e62370a138a182a498b8e2885bc032379ddf38")
	mk := NewMasterKey(entropy)
	root, err := MasterExtendedKey(mk)
	if err != nil {
		t.Fatalf("MasterExtendedKey: %v", err)
	}

	path, err := ParsePath("1852'/1815'/0'/2/0")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}

	a, err := WalkPath(root, path)
	if err != nil {
		t.Fatalf("WalkPath: %v", err)
	}
	b, err := WalkPath(root, path)
	if err != nil {
		t.Fatalf("WalkPath (second): %v", err)
	}
	if a.KL != b.KL || a.KR != b.KR || a.ChainCode != b.ChainCode {
		t.Fatal("derivation along the same path is not deterministic")
	}
}

func TestHardenedVsSoftDivergence(t *testing.T) {
	entropy, _ := hex.DecodeString("46e62370a138a182a498b8e2885bc032379ddf38")
	root, err := MasterExtendedKey(NewMasterKey(entropy))
	if err != nil {
		t.Fatalf("MasterExtendedKey: %v", err)
	}

	hardened, err := root.Child(0 + HardenedOffset)
	if err != nil {
		t.Fatalf("Child(hardened): %v", err)
	}
	soft, err := root.Child(0)
	if err != nil {
		t.Fatalf("Child(soft): %v", err)
	}
	if hardened.KL == soft.KL {
		t.Fatal("hardened and soft derivation at index 0 produced identical keys")
	}
}

func TestParsePathHardenedMarkers(t *testing.T) {
	path, err := ParsePath("1852'/1815'/0'/2/0")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	want := StakePath(0)
	if len(path) != len(want) {
		t.Fatalf("len(path) = %d, want %d", len(path), len(want))
	}
	for i := range path {
		if path[i] != want[i] {
			t.Fatalf("path[%d] = %d, want %d", i, path[i], want[i])
		}
	}
}

func TestPublicKeyLength(t *testing.T) {
	entropy, _ := hex.DecodeString("46e62370a138a182a498b8e2885bc032379ddf38")
	root, err := MasterExtendedKey(NewMasterKey(entropy))
	if err != nil {
		t.Fatalf("MasterExtendedKey: %v", err)
	}
	pub, err := root.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	if len(pub) != 32 {
		t.Fatalf("len(pub) = %d, want 32", len(pub))
	}
}
