// Package config models the search's CLI-level configuration and the
// validation CLI parsing must perform before a search begins.
package config

import "fmt"

// Config is the fully-resolved set of parameters a search run needs, once
// the CLI has parsed flags and positionals.
type Config struct {
	// KnownWords are the positional words the user supplied, each possibly
	// slightly misspelled.
	KnownWords []string
	// WordlistPath overrides the default embedded BIP-39 English list.
	WordlistPath string
	// Similar is the fuzzy edit-distance budget for neighbor expansion.
	Similar int
	// Order enables reorder enumeration (row/column misreading hypotheses).
	Order bool
	// Length is the target phrase length; 0 means "smallest valid length
	// >= len(KnownWords)".
	Length int
	// Missing lists 1-based positions at which to insert unknown words.
	// Empty means "any position".
	Missing []int
	// Addresses holds target address templates (with "..." wildcards).
	Addresses []string
	// UseKoios selects the Koios REST oracle.
	UseKoios bool
	// KoiosAPIKey is an optional bearer token for the Koios oracle.
	KoiosAPIKey string
	// Verbose requests a result row for every surviving candidate, not
	// just matches.
	Verbose bool
}

// InvalidConfig is raised by Validate; the CLI should exit 1 on receipt.
type InvalidConfig struct {
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

var validLengths = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// Validate checks the three configuration invariants the CLI surface
// promises to enforce: the target length must be a valid BIP-39 phrase
// length, known words must not outnumber the target length, and the
// number of open (missing) positions must be at least the number of words
// that need filling in.
func (c *Config) Validate() error {
	length := c.Length
	if length == 0 {
		length = smallestValidLength(len(c.KnownWords))
	}
	if !validLengths[length] {
		return &InvalidConfig{Reason: fmt.Sprintf("length %d is not a valid BIP-39 phrase length (12, 15, 18, 21, or 24)", length)}
	}
	if len(c.KnownWords) > length {
		return &InvalidConfig{Reason: fmt.Sprintf("%d known words exceed target length %d", len(c.KnownWords), length)}
	}
	missingCount := length - len(c.KnownWords)
	if len(c.Missing) > 0 && len(c.Missing) < missingCount {
		return &InvalidConfig{Reason: fmt.Sprintf("%d open positions is fewer than the %d words needed to reach length %d", len(c.Missing), missingCount, length)}
	}
	return nil
}

// ResolvedLength returns c.Length, or the smallest valid length covering
// the known words when c.Length is unset.
func (c *Config) ResolvedLength() int {
	if c.Length != 0 {
		return c.Length
	}
	return smallestValidLength(len(c.KnownWords))
}

func smallestValidLength(knownCount int) int {
	for _, l := range []int{12, 15, 18, 21, 24} {
		if l >= knownCount {
			return l
		}
	}
	return 24
}
