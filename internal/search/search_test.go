package search

import (
	"context"
	"strings"
	"testing"

	"github.com/cardanorecover/stakerecover/internal/candidate"
	"github.com/cardanorecover/stakerecover/internal/match"
	"github.com/cardanorecover/stakerecover/internal/oracle"
	"github.com/cardanorecover/stakerecover/internal/wordlist"
)

func phraseSeq(phrases ...[]string) candidate.Seq[[]string] {
	i := 0
	return func() ([]string, bool) {
		if i >= len(phrases) {
			return nil, false
		}
		p := phrases[i]
		i++
		return p, true
	}
}

func TestRunFindsKnownAddressViaTemplate(t *testing.T) {
	wl := wordlist.English()
	good := strings.Fields("ladder long kangaroo inherit unknown prize else second enter addict mystery valve riot attitude area blind fabric symbol skill sunset goose shock gasp grape")
	bad := strings.Fields(strings.Repeat("abandon ", 11) + "zoo") // fails checksum

	templates, err := match.CompileAll([]string{"stake1u9t04dtwptk5776eluj6ruyd782k66npnf55tdrp6dvwnzs24r8yq"})
	if err != nil {
		t.Fatalf("CompileAll: %v", err)
	}

	d := NewDriver(wl, templates, nil, false)
	var results []Result
	counters, err := d.Run(context.Background(), phraseSeq(bad, good), func(r Result) {
		results = append(results, r)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if counters.Total != 2 {
		t.Fatalf("Total = %d, want 2", counters.Total)
	}
	if counters.ChecksumOK != 1 {
		t.Fatalf("ChecksumOK = %d, want 1", counters.ChecksumOK)
	}
	if counters.UniqueOK != 1 {
		t.Fatalf("UniqueOK = %d, want 1", counters.UniqueOK)
	}
	if len(results) != 1 || !results[0].Matched {
		t.Fatalf("results = %v, want exactly one match", results)
	}
}

func TestRunDeduplicatesByAddress(t *testing.T) {
	wl := wordlist.English()
	phrase := strings.Fields("ladder long kangaroo inherit unknown prize else second enter addict mystery valve riot attitude area blind fabric symbol skill sunset goose shock gasp grape")

	d := NewDriver(wl, nil, nil, true)
	var results []Result
	counters, err := d.Run(context.Background(), phraseSeq(phrase, phrase, phrase), func(r Result) {
		results = append(results, r)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if counters.Total != 3 || counters.ChecksumOK != 3 || counters.UniqueOK != 1 {
		t.Fatalf("counters = %+v, want Total=3 ChecksumOK=3 UniqueOK=1", counters)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 (deduplicated)", len(results))
	}
}

func TestRunDisablesOracleOnError(t *testing.T) {
	wl := wordlist.English()
	p1 := strings.Fields("ladder long kangaroo inherit unknown prize else second enter addict mystery valve riot attitude area blind fabric symbol skill sunset goose shock gasp grape")
	p2 := strings.Fields("ladder long kangaroo inherit unknown prize else second enter addict mystery valve riot attitude area blind fabric symbol skill sunset goose shock gasp uphold")

	lookup := &failingLookup{}
	d := NewDriver(wl, nil, lookup, true)
	_, err := d.Run(context.Background(), phraseSeq(p1, p2), func(Result) {})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if lookup.calls != 1 {
		t.Fatalf("oracle called %d times, want exactly 1 (disabled after first failure)", lookup.calls)
	}
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	wl := wordlist.English()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(wl, nil, nil, true)
	counters, err := d.Run(ctx, phraseSeq(strings.Fields(strings.Repeat("abandon ", 11)+"about")), func(Result) {})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if counters.Total != 0 {
		t.Fatalf("Total = %d, want 0 (cancelled before consuming anything)", counters.Total)
	}
}

type failingLookup struct {
	calls int
}

func (f *failingLookup) Check(ctx context.Context, addr string) (bool, error) {
	f.calls++
	return false, oracle.Unavailable(nil)
}
