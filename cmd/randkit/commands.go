// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/decred/base58"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/randkit/randkit/charset"
	"github.com/randkit/randkit/prng"
	"github.com/randkit/randkit/random"
	"github.com/randkit/randkit/seedhash"
	"golang.org/x/term"
)

// command describes a subcommand.  minArgs and maxArgs bound the number of
// arguments after the command name, and a negative maxArgs means unbounded.
type command struct {
	minArgs, maxArgs int
	run              func(r *random.Rand, cfg *config, args []string, w io.Writer) error
}

var commands = map[string]command{
	"float":    {0, 0, runFloat},
	"int":      {2, 2, runInt},
	"roll":     {0, 1, runRoll},
	"uuid":     {0, 0, runUUID},
	"string":   {1, 1, runString},
	"bytes":    {1, 1, runBytes},
	"normal":   {2, 2, runNormal},
	"shuffle":  {1, -1, runShuffle},
	"sample":   {2, -1, runSample},
	"pick":     {1, -1, runPick},
	"round":    {1, 1, runRound},
	"charsets": {0, 0, runCharsets},
}

// run executes the command named by args[0] and writes its output to w.
func run(cfg *config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("no command specified")
	}
	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("wrong number of arguments for %s", name)
	}

	r, err := newRand(cfg)
	if err != nil {
		return err
	}
	return cmd.run(r, cfg, args, w)
}

// newRand returns the Rand selected by the engine and seed options.
func newRand(cfg *config) (*random.Rand, error) {
	if cfg.Engine == engineCrypto {
		return random.NewCrypto()
	}

	var seeds []prng.Seed
	switch {
	case cfg.SeedPhrase != "":
		var words [maxSeeds]uint32
		seedhash.Expand([]byte(cfg.SeedPhrase), words[:])
		for _, w := range words {
			seeds = append(seeds, prng.Word(w))
		}

	case len(cfg.Seeds) != 0:
		for _, s := range cfg.Seeds {
			seeds = append(seeds, prng.ParseSeed(s))
		}

	default:
		words, err := entropyWords()
		if err != nil {
			return nil, err
		}
		var args []string
		for _, w := range words {
			seeds = append(seeds, prng.Word(w))
			args = append(args, fmt.Sprintf("--seed %d", w))
		}
		log.Debugf("No seed specified.  Reproduce with %s",
			strings.Join(args, " "))
	}

	gen, ok := prng.New(cfg.Engine, seeds...)
	if !ok {
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
	log.Tracef("Using %s engine with %d seeds", cfg.Engine, len(seeds))
	return random.New(gen), nil
}

// entropyWords returns seed words drawn from a freshly seeded CSPRNG.
func entropyWords() ([maxSeeds]uint32, error) {
	var words [maxSeeds]uint32
	p, err := rand.NewPRNG()
	if err != nil {
		return words, err
	}
	for i := range words {
		words[i] = p.Uint32()
	}
	return words, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func runFloat(r *random.Rand, cfg *config, _ []string, w io.Writer) error {
	values, err := r.Batch(cfg.Count)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintln(w, formatFloat(v))
	}
	return nil
}

func runInt(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	min, err := parseInt(args[0])
	if err != nil {
		return err
	}
	max, err := parseInt(args[1])
	if err != nil {
		return err
	}
	if min > max {
		return fmt.Errorf("minimum %d exceeds maximum %d", min, max)
	}
	for i := 0; i < cfg.Count; i++ {
		fmt.Fprintln(w, r.Int(min, max))
	}
	return nil
}

// parseRoll parses dice notation of the form [N]dS into the number of dice
// and the number of sides.  A bare number is a count of six-sided dice.
func parseRoll(s string) (count, sides int, err error) {
	if s == "" {
		return 1, random.DefaultSides, nil
	}
	countStr, sidesStr, found := strings.Cut(strings.ToLower(s), "d")
	count, sides = 1, random.DefaultSides
	if countStr != "" {
		if count, err = strconv.Atoi(countStr); err != nil {
			return 0, 0, fmt.Errorf("invalid dice count in %q", s)
		}
	}
	if found {
		if sides, err = strconv.Atoi(sidesStr); err != nil {
			return 0, 0, fmt.Errorf("invalid die sides in %q", s)
		}
	}
	if count < 1 || sides < 1 {
		return 0, 0, fmt.Errorf("dice count and sides must be positive "+
			"in %q", s)
	}
	return count, sides, nil
}

func runRoll(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	var notation string
	if len(args) == 1 {
		notation = args[0]
	}
	count, sides, err := parseRoll(notation)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Count; i++ {
		fmt.Fprintln(w, r.Roll(count, sides))
	}
	return nil
}

func runUUID(r *random.Rand, cfg *config, _ []string, w io.Writer) error {
	for i := 0; i < cfg.Count; i++ {
		fmt.Fprintln(w, r.UUID())
	}
	return nil
}

// resolveCharset returns the named character set, or the option value itself
// when it does not name one, without the excluded characters.
func resolveCharset(cfg *config) string {
	set, ok := charset.Lookup(cfg.Charset)
	if !ok {
		set = cfg.Charset
	}
	if cfg.Exclude != "" {
		set = charset.Exclude(set, cfg.Exclude)
	}
	return set
}

// runCharsets lists the character sets accepted by --charset.
func runCharsets(_ *random.Rand, _ *config, _ []string, w io.Writer) error {
	for _, name := range charset.Names() {
		set, _ := charset.Lookup(name)
		fmt.Fprintf(w, "%-18s %s\n", name, set)
	}
	return nil
}

func runString(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	length, err := parseInt(args[0])
	if err != nil {
		return err
	}
	set := resolveCharset(cfg)
	for i := 0; i < cfg.Count; i++ {
		s, err := r.String(length, set)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	}
	return nil
}

// isTerminal returns whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runBytes(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	n, err := parseInt(args[0])
	if err != nil {
		return err
	}
	encoding := cfg.Encoding
	if encoding == "raw" && isTerminal(w) {
		log.Warnf("Refusing to write raw bytes to a terminal; using hex")
		encoding = "hex"
	}

	for i := 0; i < cfg.Count; i++ {
		b, err := r.Bytes(n)
		if err != nil {
			return err
		}
		switch encoding {
		case "raw":
			if _, err := w.Write(b); err != nil {
				return err
			}
		case "base58":
			fmt.Fprintln(w, base58.Encode(b))
		case "base64":
			fmt.Fprintln(w, base64.StdEncoding.EncodeToString(b))
		default:
			fmt.Fprintln(w, hex.EncodeToString(b))
		}
	}
	return nil
}

func runNormal(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	mean, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	deviation, err := parseFloat(args[1])
	if err != nil {
		return err
	}

	// Both values of each generated pair are used.
	for i := 0; i < cfg.Count; i += 2 {
		a, b := r.Normal(mean, deviation)
		fmt.Fprintln(w, formatFloat(a))
		if i+1 < cfg.Count {
			fmt.Fprintln(w, formatFloat(b))
		}
	}
	return nil
}

func runShuffle(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	for i := 0; i < cfg.Count; i++ {
		fmt.Fprintln(w, strings.Join(random.Shuffle(r, args), " "))
	}
	return nil
}

func runSample(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	k, err := parseInt(args[0])
	if err != nil {
		return err
	}
	items := args[1:]
	for i := 0; i < cfg.Count; i++ {
		sample, err := random.SampleMany(r, items, k)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, strings.Join(sample, " "))
	}
	return nil
}

// parseWeighted parses VALUE:WEIGHT arguments.  The weight follows the final
// colon so values may contain colons.
func parseWeighted(args []string) ([]random.Weighted[string], error) {
	table := make([]random.Weighted[string], 0, len(args))
	for _, arg := range args {
		i := strings.LastIndexByte(arg, ':')
		if i < 0 {
			return nil, fmt.Errorf("missing weight in %q", arg)
		}
		weight, err := parseFloat(arg[i+1:])
		if err != nil {
			return nil, err
		}
		table = append(table, random.Weighted[string]{
			Value:  arg[:i],
			Weight: weight,
		})
	}
	return table, nil
}

func runPick(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	table, err := parseWeighted(args)
	if err != nil {
		return err
	}
	sampler, err := random.NewWeightedSampler(r, table)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Count; i++ {
		fmt.Fprintln(w, sampler.Sample())
	}
	return nil
}

func runRound(r *random.Rand, cfg *config, args []string, w io.Writer) error {
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Count; i++ {
		fmt.Fprintln(w, formatFloat(r.Round(x)))
	}
	return nil
}
