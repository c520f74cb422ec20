package wordlist

import "testing"

func TestEnglishSize(t *testing.T) {
	wl := English()
	if wl.Len() != Size {
		t.Fatalf("expected %d words, got %d", Size, wl.Len())
	}
}

// Wordlist bijection: word_at(index_of(w)) == w and index_of(word_at(i)) == i.
func TestBijection(t *testing.T) {
	wl := English()
	for i := 0; i < wl.Len(); i++ {
		w, err := wl.WordAt(i)
		if err != nil {
			t.Fatalf("WordAt(%d): %v", i, err)
		}
		idx, err := wl.IndexOf(w)
		if err != nil {
			t.Fatalf("IndexOf(%q): %v", w, err)
		}
		if idx != i {
			t.Fatalf("index_of(word_at(%d)) = %d, want %d", i, idx, i)
		}
	}
}

func TestIndexOfNotFound(t *testing.T) {
	wl := English()
	if _, err := wl.IndexOf("notaword"); err == nil {
		t.Fatal("expected error for word not in list")
	}
}

func TestWordAtOutOfRange(t *testing.T) {
	wl := English()
	if _, err := wl.WordAt(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
	if _, err := wl.WordAt(Size); err == nil {
		t.Fatal("expected error for index == Size")
	}
}

func TestAllReturnsIndependentCopy(t *testing.T) {
	wl := English()
	all := wl.All()
	if len(all) != Size {
		t.Fatalf("len(All()) = %d, want %d", len(all), Size)
	}
	all[0] = "mutated"
	if wl.Contains("mutated") {
		t.Fatal("mutating the slice returned by All() affected the wordlist")
	}
	w, _ := wl.WordAt(0)
	if w == "mutated" {
		t.Fatal("All() did not return a defensive copy")
	}
}

func TestContains(t *testing.T) {
	wl := English()
	if !wl.Contains("abandon") {
		t.Fatal("expected abandon to be in the list")
	}
	if wl.Contains("notaword") {
		t.Fatal("did not expect notaword to be in the list")
	}
}

// T8: neighbors("fool", 0) over the English list.
func TestNeighborsFool(t *testing.T) {
	wl := English()
	got := wl.Neighbors("fool", 0)
	want := []string{"cool", "foil", "food", "foot", "pool", "tool", "wool"}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(fool, 0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(fool, 0) = %v, want %v", got, want)
		}
	}
}

func TestNeighborsPresentWord(t *testing.T) {
	wl := English()
	got := wl.Neighbors("food", 0)
	if len(got) != 1 || got[0] != "food" {
		t.Fatalf("Neighbors(food, 0) = %v, want [food]", got)
	}
}

func TestNeighborsExpandsWithDistance(t *testing.T) {
	wl := English()
	zero := wl.Neighbors("fool", 0)
	one := wl.Neighbors("fool", 1)
	if len(one) < len(zero) {
		t.Fatalf("expected Neighbors(fool,1) to be a superset of Neighbors(fool,0)")
	}
	for _, w := range zero {
		found := false
		for _, w2 := range one {
			if w == w2 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("%q missing from wider neighborhood", w)
		}
	}
}
