// Command recover enumerates candidate BIP-39 seed phrases from partially
// known or misremembered words, derives the Cardano Shelley stake address
// for each surviving candidate, and reports addresses that match a
// user-supplied template or register as active on-chain.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/cardanorecover/stakerecover/internal/candidate"
	"github.com/cardanorecover/stakerecover/internal/config"
	"github.com/cardanorecover/stakerecover/internal/match"
	"github.com/cardanorecover/stakerecover/internal/oracle"
	"github.com/cardanorecover/stakerecover/internal/reclog"
	"github.com/cardanorecover/stakerecover/internal/search"
	"github.com/cardanorecover/stakerecover/internal/version"
	"github.com/cardanorecover/stakerecover/internal/wordlist"
)

func printErr(w io.Writer, msg string, args ...interface{}) {
	fmt.Fprintf(w, msg+"\n", args...)
}

func printFatal(w io.Writer, msg string, args ...interface{}) {
	printErr(w, msg, args...)
	os.Exit(1)
}

func runCommand(c *cli.Context) error {
	cfg := &config.Config{
		KnownWords:   []string(c.Args()),
		WordlistPath: c.String("wordlist"),
		Similar:      c.Int("similar"),
		Order:        c.Bool("order"),
		Length:       c.Int("length"),
		Missing:      c.IntSlice("missing"),
		Addresses:    c.StringSlice("address"),
		UseKoios:     c.Bool("koios"),
		KoiosAPIKey:  c.String("koios-api-key"),
		Verbose:      c.Bool("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		printErr(os.Stderr, red("%s"), err)
		os.Exit(1)
	}

	wl := wordlist.English()
	if cfg.WordlistPath != "" {
		loaded, err := wordlist.Load(cfg.WordlistPath)
		if err != nil {
			printErr(os.Stderr, red("%s"), err)
			os.Exit(1)
		}
		wl = loaded
	}

	targetLen := cfg.ResolvedLength()

	groups := make([][]string, len(cfg.KnownWords))
	for i, w := range cfg.KnownWords {
		neighbors := wl.Neighbors(w, cfg.Similar)
		if len(neighbors) == 0 {
			reclog.Log.Warningf("no wordlist neighbors found for %q; proceeding with the literal word", w)
			neighbors = []string{w}
		}
		groups[i] = neighbors
	}

	openPositions := missingPositionsToOpen(cfg.Missing, targetLen)

	templates, err := match.CompileAll(cfg.Addresses)
	if err != nil {
		printErr(os.Stderr, red("bad address template: %s"), err)
		os.Exit(1)
	}

	var lookup oracle.Lookup
	if cfg.UseKoios {
		koios, err := oracle.NewKoiosLookup(cfg.KoiosAPIKey)
		if err != nil {
			printErr(os.Stderr, red("could not start koios lookup: %s"), err)
			os.Exit(1)
		}
		lookup = koios
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		reclog.Log.Notice("interrupted, stopping cleanly")
		cancel()
	}()
	defer cancel()

	seq := candidate.Iterate(groups, cfg.Order, wl.All(), targetLen, openPositions)
	driver := search.NewDriver(wl, templates, lookup, cfg.Verbose)

	counters, err := driver.Run(ctx, seq, func(r search.Result) {
		fmt.Println(r.Address, "\t", joinWords(r.Phrase))
	})
	if err != nil {
		printErr(os.Stderr, red("search error: %s"), err)
		return err
	}

	reclog.Log.Noticef(
		"%s candidates, %s passed checksum, %s unique addresses",
		green(fmt.Sprint(counters.Total)),
		cyan(fmt.Sprint(counters.ChecksumOK)),
		yellow(fmt.Sprint(counters.UniqueOK)),
	)
	return nil
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

// missingPositionsToOpen converts 1-based user-supplied positions to
// 0-based indices; an empty list means "any position" within the target
// length.
func missingPositionsToOpen(missing []int, targetLen int) []int {
	if len(missing) == 0 {
		all := make([]int, targetLen)
		for i := range all {
			all[i] = i
		}
		return all
	}
	out := make([]int, len(missing))
	for i, m := range missing {
		out[i] = m - 1
	}
	return out
}

func envCommand(c *cli.Context) error {
	fmt.Printf("version: %s\n", version.CurrentVersion.String())
	fmt.Printf("wordlist size: %d\n", wordlist.Size)
	fmt.Printf("log level env override: RECOVER_LOG_LEVEL\n")
	return nil
}

func main() {
	reclog.Setup("recover", logging.NOTICE)

	app := cli.NewApp()
	app.Name = "recover"
	app.Usage = "recover a Cardano Shelley stake address from a partial BIP-39 seed phrase"
	app.Version = version.CurrentVersion.String()
	app.ArgsUsage = "[known words...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "wordlist",
			Usage: "path to an alternate wordlist file (default: embedded BIP-39 English)",
		},
		cli.IntFlag{
			Name:  "similar",
			Usage: "fuzzy edit-distance budget for each known word",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "order",
			Usage: "enable reorder enumeration (row/column misreading hypotheses)",
		},
		cli.IntFlag{
			Name:  "length",
			Usage: "target phrase length (12, 15, 18, 21, or 24); default is the smallest valid length >= known words",
		},
		cli.IntSliceFlag{
			Name:  "missing",
			Usage: "1-based positions at which to insert unknown words (default: any position)",
		},
		cli.StringSliceFlag{
			Name:  "address",
			Usage: "target stake address template(s), '...' matches any run of characters",
		},
		cli.BoolFlag{
			Name:  "koios",
			Usage: "query the Koios REST API for stake address activity",
		},
		cli.StringFlag{
			Name:  "koios-api-key",
			Usage: "optional Koios API key",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "report every surviving candidate, not just matches",
		},
	}
	app.Action = runCommand
	app.Commands = []cli.Command{
		{
			Name:   "env",
			Usage:  "print build and environment information",
			Action: envCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		printFatal(os.Stderr, red("%s"), err)
	}
}
