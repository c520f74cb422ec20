// Package wordlist implements the BIP-39 word list: a bijection between
// 2048 tokens and the integers [0,2047], plus fuzzy lookups used to guess
// at misspelled or partially remembered words.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// Size is the fixed BIP-39 word list length.
const Size = 2048

//go:embed bip39_english.txt
var englishText string

// Wordlist is an ordered, immutable set of Size unique lowercase tokens.
// The zero value is not usable; construct with English or Load.
type Wordlist struct {
	words   []string
	indexOf map[string]int
}

// ErrBadWordlistFile is returned by Load when the input does not describe a
// valid word list (wrong line count, blank lines, or duplicate words).
type ErrBadWordlistFile struct {
	Reason string
}

func (e *ErrBadWordlistFile) Error() string {
	return fmt.Sprintf("bad wordlist file: %s", e.Reason)
}

var english *Wordlist

func init() {
	wl, err := newFromLines(strings.Split(strings.TrimRight(englishText, "\n"), "\n"))
	if err != nil {
		panic("wordlist: embedded english list is invalid: " + err.Error())
	}
	english = wl
}

// English returns the default BIP-39 English word list shipped with the
// binary.
func English() *Wordlist {
	return english
}

// Load reads a word list file per the external format: UTF-8 text, one
// token per line, each line trimmed of surrounding whitespace, exactly
// Size non-empty lines.
func Load(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrBadWordlistFile{Reason: err.Error()}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil, &ErrBadWordlistFile{Reason: "blank line in wordlist file"}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ErrBadWordlistFile{Reason: err.Error()}
	}
	return newFromLines(lines)
}

func newFromLines(lines []string) (*Wordlist, error) {
	if len(lines) != Size {
		return nil, &ErrBadWordlistFile{Reason: fmt.Sprintf("expected %d words, got %d", Size, len(lines))}
	}
	indexOf := make(map[string]int, Size)
	for i, w := range lines {
		if w == "" {
			return nil, &ErrBadWordlistFile{Reason: "empty word"}
		}
		if _, dup := indexOf[w]; dup {
			return nil, &ErrBadWordlistFile{Reason: fmt.Sprintf("duplicate word %q", w)}
		}
		indexOf[w] = i
	}
	return &Wordlist{words: lines, indexOf: indexOf}, nil
}

// ErrNotInWordlist is returned by IndexOf when the word is absent.
type ErrNotInWordlist struct {
	Word string
}

func (e *ErrNotInWordlist) Error() string {
	return fmt.Sprintf("word %q not in wordlist", e.Word)
}

// IndexOf returns the 0-based index of word.
func (w *Wordlist) IndexOf(word string) (int, error) {
	i, ok := w.indexOf[word]
	if !ok {
		return 0, &ErrNotInWordlist{Word: word}
	}
	return i, nil
}

// ErrIndexOutOfRange is returned by WordAt when i is outside [0,Size).
type ErrIndexOutOfRange struct {
	Index int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, Size)
}

// WordAt returns the word at index i.
func (w *Wordlist) WordAt(i int) (string, error) {
	if i < 0 || i >= len(w.words) {
		return "", &ErrIndexOutOfRange{Index: i}
	}
	return w.words[i], nil
}

// Contains reports whether word is a member of the list.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.indexOf[word]
	return ok
}

// Len returns the number of words in the list (always Size for a validly
// constructed Wordlist).
func (w *Wordlist) Len() int {
	return len(w.words)
}

// All returns every word in the list, in index order. The returned slice
// is owned by the caller.
func (w *Wordlist) All() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}

// Neighbors returns, in wordlist order, the fuzzy-match neighborhood of
// word under OSA edit distance maxDistance.
//
// If word is present, the initial neighborhood is {word}; otherwise it is
// the set of wordlist entries tied for minimum OSA distance to word. When
// maxDistance is 0, Neighbors returns the initial neighborhood (in
// wordlist order). Otherwise it returns every wordlist entry within
// maxDistance of any initial-neighborhood member, again in wordlist order.
func (w *Wordlist) Neighbors(word string, maxDistance int) []string {
	var initial []string
	if w.Contains(word) {
		initial = []string{word}
	} else {
		best := -1
		for _, candidate := range w.words {
			d := OSADistance(word, candidate)
			switch {
			case best == -1 || d < best:
				best = d
				initial = []string{candidate}
			case d == best:
				initial = append(initial, candidate)
			}
		}
	}

	if maxDistance == 0 {
		return initial
	}

	var result []string
	for _, candidate := range w.words {
		for _, seed := range initial {
			if OSADistance(seed, candidate) <= maxDistance {
				result = append(result, candidate)
				break
			}
		}
	}
	return result
}
