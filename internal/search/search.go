// Package search implements the driver that pipes candidate phrases
// through checksum verification, derivation, and matching/lookup, per the
// data flow: known-words + config -> generator -> entropy codec ->
// master-key -> child derivation -> address composer -> matcher/oracle ->
// reporter.
package search

import (
	"context"

	"github.com/cardanorecover/stakerecover/internal/address"
	"github.com/cardanorecover/stakerecover/internal/candidate"
	"github.com/cardanorecover/stakerecover/internal/derive"
	"github.com/cardanorecover/stakerecover/internal/match"
	"github.com/cardanorecover/stakerecover/internal/mnemonic"
	"github.com/cardanorecover/stakerecover/internal/oracle"
	"github.com/cardanorecover/stakerecover/internal/wordlist"
)

// Result is one reported row: a derived stake address and the phrase that
// produced it.
type Result struct {
	Phrase  []string
	Address string
	Matched bool
}

// Counters tracks the driver's running totals, per §4.8.
type Counters struct {
	Total      int
	ChecksumOK int
	UniqueOK   int
}

// Driver consumes a candidate stream and reports matches. It retains no
// per-candidate state beyond the seen-address set.
type Driver struct {
	Wordlist  *wordlist.Wordlist
	Templates []*match.Template
	Oracle    oracle.Lookup
	Verbose   bool

	oracleDisabled bool
	seen           map[string]bool
}

// NewDriver builds a Driver ready to run.
func NewDriver(wl *wordlist.Wordlist, templates []*match.Template, lookup oracle.Lookup, verbose bool) *Driver {
	return &Driver{
		Wordlist:  wl,
		Templates: templates,
		Oracle:    lookup,
		Verbose:   verbose,
		seen:      make(map[string]bool),
	}
}

// Run drains seq, calling emit for every reported row, until the stream is
// exhausted or ctx is cancelled. Cancellation stops the search cleanly: it
// returns the counters accumulated so far and a nil error, with no
// in-flight cryptographic state surviving the call.
func (d *Driver) Run(ctx context.Context, seq candidate.Seq[[]string], emit func(Result)) (Counters, error) {
	var counters Counters
	for {
		select {
		case <-ctx.Done():
			return counters, nil
		default:
		}

		phrase, ok := seq()
		if !ok {
			return counters, nil
		}
		counters.Total++

		entropy, err := mnemonic.WordsToEntropy(phrase, d.Wordlist)
		if err != nil {
			continue
		}
		counters.ChecksumOK++

		root, err := derive.MasterExtendedKey(derive.NewMasterKey(entropy))
		if err != nil {
			continue
		}
		stakeKey, err := derive.WalkPath(root, derive.StakePath(0))
		zeroExtendedKey(root)
		if err != nil {
			continue
		}

		pub, err := stakeKey.PublicKey()
		if err != nil {
			zeroExtendedKey(stakeKey)
			continue
		}
		addr, err := address.StakeAddress(pub)
		zeroExtendedKey(stakeKey)
		if err != nil {
			continue
		}

		if d.seen[addr] {
			continue
		}
		d.seen[addr] = true
		counters.UniqueOK++

		matched := d.matches(ctx, addr)

		if matched || d.Verbose {
			emit(Result{Phrase: phrase, Address: addr, Matched: matched})
		}
	}
}

func (d *Driver) matches(ctx context.Context, addr string) bool {
	if len(d.Templates) > 0 && match.AnyMatch(d.Templates, addr) {
		return true
	}
	if d.Oracle == nil || d.oracleDisabled {
		return false
	}
	active, err := d.Oracle.Check(ctx, addr)
	if err != nil {
		d.oracleDisabled = true
		return false
	}
	return active
}

func zeroExtendedKey(ek *derive.ExtendedKey) {
	if ek == nil {
		return
	}
	ek.KL, ek.KR, ek.ChainCode = [32]byte{}, [32]byte{}, [32]byte{}
}
