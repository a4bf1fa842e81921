// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"github.com/randkit/randkit/prng"
)

const (
	engineCrypto = "crypto"

	defaultEngine     = prng.NameMulberry32
	defaultCount      = 1
	defaultEncoding   = "hex"
	defaultCharset    = "alphanumeric"
	defaultDebugLevel = "info"

	maxSeeds = 4
)

const usage = `[OPTIONS] command [ARGS...]

Commands:
  float                 uniform value in [0,1)
  int MIN MAX           integer in [MIN,MAX]
  roll [[N]dS]          total of N dice with S sides (default 1d6)
  uuid                  version 4 UUID
  string LEN            LEN characters from --charset
  bytes N               N bytes written with --encoding
  normal MEAN DEV       normally distributed value
  shuffle ITEM...       items in random order
  sample K ITEM...      K distinct items
  pick VALUE:WEIGHT...  value chosen proportionally to its weight
  round X               X rounded up with probability of its fraction
  charsets              character set names accepted by --charset`

type config struct {
	Engine     string   `short:"e" long:"engine" description:"generator engine (one of: mulberry32, sfc32, xoshiro128pp, crypto)"`
	Seeds      []string `short:"s" long:"seed" description:"seed word; integers are used directly and anything else is hashed; may be specified up to four times"`
	SeedPhrase string   `short:"p" long:"seedphrase" description:"derive every seed word from a phrase"`
	Count      int      `short:"n" long:"count" description:"number of results to print"`
	Encoding   string   `long:"encoding" description:"byte output encoding (one of: hex, base58, base64, raw)"`
	Charset    string   `short:"c" long:"charset" description:"character set name (see the charsets command) or literal characters for the string command"`
	Exclude    string   `short:"x" long:"exclude" description:"characters removed from the character set"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"logging level (one of: trace, debug, info, warn, error, critical, off)"`
	LogFile    string   `long:"logfile" description:"also write logs to this file, rotating it as it grows"`

	ShowVersion bool `short:"V" long:"version" description:"display version information and exit"`
}

// newConfigParser returns a go-flags parser for cfg.
func newConfigParser(cfg *config) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash|
		flags.PassAfterNonOption)
	parser.Usage = usage
	return parser
}

// loadConfig parses args into a config populated with defaults and returns
// the remaining positional arguments.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Engine:     defaultEngine,
		Count:      defaultCount,
		Encoding:   defaultEncoding,
		Charset:    defaultCharset,
		DebugLevel: defaultDebugLevel,
	}
	remaining, err := newConfigParser(&cfg).ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.Engine = strings.ToLower(cfg.Engine)
	switch cfg.Engine {
	case prng.NameMulberry32, prng.NameSFC32, prng.NameXoshiro128pp:
	case engineCrypto:
		if len(cfg.Seeds) != 0 || cfg.SeedPhrase != "" {
			return nil, nil, fmt.Errorf("the %s engine does not accept "+
				"seeds", engineCrypto)
		}
	default:
		return nil, nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	if len(cfg.Seeds) > maxSeeds {
		return nil, nil, fmt.Errorf("at most %d seeds may be specified",
			maxSeeds)
	}
	if len(cfg.Seeds) != 0 && cfg.SeedPhrase != "" {
		return nil, nil, fmt.Errorf("--seed and --seedphrase may not be " +
			"used together")
	}

	if cfg.Count < 1 {
		return nil, nil, fmt.Errorf("count must be positive, got %d",
			cfg.Count)
	}

	cfg.Encoding = strings.ToLower(cfg.Encoding)
	switch cfg.Encoding {
	case "hex", "base58", "base64", "raw":
	default:
		return nil, nil, fmt.Errorf("unknown encoding %q", cfg.Encoding)
	}

	if _, ok := slog.LevelFromString(cfg.DebugLevel); !ok {
		return nil, nil, fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}

	return &cfg, remaining, nil
}
