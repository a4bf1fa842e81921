// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/decred/base58"
	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"
	"github.com/randkit/randkit/charset"
	"github.com/randkit/randkit/prng"
)

// runArgs parses argv as the command line and returns the output of the
// command.
func runArgs(argv ...string) (string, error) {
	cfg, args, err := loadConfig(argv)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = run(cfg, args, &buf)
	return buf.String(), err
}

// lines splits command output into lines.
func lines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

// TestParseRoll ensures dice notation is parsed as expected.
func TestParseRoll(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		sides   int
		wantErr bool
	}{
		{name: "default", input: "", count: 1, sides: 6},
		{name: "count and sides", input: "3d6", count: 3, sides: 6},
		{name: "sides only", input: "d20", count: 1, sides: 20},
		{name: "count only", input: "2", count: 2, sides: 6},
		{name: "uppercase", input: "4D8", count: 4, sides: 8},
		{name: "zero dice", input: "0d6", wantErr: true},
		{name: "zero sides", input: "3d0", wantErr: true},
		{name: "negative dice", input: "-1d6", wantErr: true},
		{name: "bad count", input: "xd6", wantErr: true},
		{name: "bad sides", input: "3dx", wantErr: true},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		count, sides, err := parseRoll(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("#%d (%s): expected error", i, test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("#%d (%s): unexpected error: %v", i, test.name, err)
			continue
		}
		if count != test.count || sides != test.sides {
			t.Errorf("#%d (%s): got %dd%d, want %dd%d", i, test.name,
				count, sides, test.count, test.sides)
		}
	}
}

// TestLoadConfig ensures defaults are applied and invalid option combinations
// are rejected.
func TestLoadConfig(t *testing.T) {
	cfg, args, err := loadConfig([]string{"roll", "3d6"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine != defaultEngine || cfg.Count != defaultCount ||
		cfg.Encoding != defaultEncoding || cfg.DebugLevel != defaultDebugLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(args) != 2 || args[0] != "roll" || args[1] != "3d6" {
		t.Fatalf("unexpected arguments: %v", args)
	}

	cfg, _, err = loadConfig([]string{"-e", "SFC32", "--encoding", "Base58",
		"-s", "1", "-s", "two", "float"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine != prng.NameSFC32 || cfg.Encoding != "base58" ||
		len(cfg.Seeds) != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"unknown engine", []string{"--engine", "lcg"}},
		{"too many seeds", []string{"-s1", "-s2", "-s3", "-s4", "-s5"}},
		{"seed with phrase", []string{"-s1", "-p", "phrase"}},
		{"crypto with seed", []string{"-e", "crypto", "-s1"}},
		{"crypto with phrase", []string{"-e", "crypto", "-p", "phrase"}},
		{"zero count", []string{"-n", "0"}},
		{"unknown encoding", []string{"--encoding", "base32"}},
		{"bad debug level", []string{"-d", "loud"}},
		{"unknown flag", []string{"--nope"}},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if _, _, err := loadConfig(test.args); err == nil {
			t.Errorf("#%d (%s): expected error", i, test.name)
		}
	}

	cfg, _, err = loadConfig([]string{"-V"})
	if err != nil || !cfg.ShowVersion {
		t.Fatalf("version flag: got (%+v, %v)", cfg, err)
	}

	_, _, err = loadConfig([]string{"-h"})
	var e *flags.Error
	if !errors.As(err, &e) || e.Type != flags.ErrHelp {
		t.Fatalf("help: unexpected error %v", err)
	}
}

// TestRunDeterministic ensures seeded runs repeat exactly and differ between
// seeds and engines.
func TestRunDeterministic(t *testing.T) {
	engines := []string{prng.NameMulberry32, prng.NameSFC32,
		prng.NameXoshiro128pp}
	seen := make(map[string]string)
	for _, engine := range engines {
		for _, seed := range []string{"-s1", "-pcorrect horse"} {
			argv := []string{"-e", engine, seed, "-n", "5", "float"}
			first, err := runArgs(argv...)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", argv, err)
			}
			second, err := runArgs(argv...)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", argv, err)
			}
			if first != second {
				t.Fatalf("%v: runs differ:\n%s\n%s", argv, first, second)
			}
			key := engine + " " + seed
			for other, out := range seen {
				if out == first {
					t.Fatalf("%s and %s produced the same output", key,
						other)
				}
			}
			seen[key] = first
		}
	}
}

// TestRunMatchesEngine ensures the command line draws directly from the
// selected engine.
func TestRunMatchesEngine(t *testing.T) {
	out, err := runArgs("-s", "42", "-s", "seed", "-e", "xoshiro128pp", "-n",
		"3", "float")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gen := prng.NewXoshiro128pp(prng.Int(42), prng.String("seed"),
		prng.Word(0), prng.Word(0))
	for i, line := range lines(out) {
		want := strconv.FormatFloat(gen.Float64(), 'g', -1, 64)
		if line != want {
			t.Fatalf("line %d: got %s, want %s", i, line, want)
		}
	}
}

// TestRunCommands ensures the output of every command has the expected shape.
func TestRunCommands(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		check func(out string) bool
	}{{
		name: "float",
		argv: []string{"-n", "3", "float"},
		check: func(out string) bool {
			ls := lines(out)
			for _, l := range ls {
				v, err := strconv.ParseFloat(l, 64)
				if err != nil || v < 0 || v >= 1 {
					return false
				}
			}
			return len(ls) == 3
		},
	}, {
		name:  "int",
		argv:  []string{"-n", "50", "int", "-2", "2"},
		check: intsWithin(50, -2, 2),
	}, {
		name:  "roll",
		argv:  []string{"-n", "20", "roll", "3d6"},
		check: intsWithin(20, 3, 18),
	}, {
		name:  "roll default",
		argv:  []string{"-n", "20", "roll"},
		check: intsWithin(20, 1, 6),
	}, {
		name: "uuid",
		argv: []string{"-n", "2", "uuid"},
		check: func(out string) bool {
			ls := lines(out)
			for _, l := range ls {
				u, err := uuid.Parse(l)
				if err != nil || u.Version() != 4 || u.String() != l {
					return false
				}
			}
			return len(ls) == 2 && ls[0] != ls[1]
		},
	}, {
		name: "string named charset",
		argv: []string{"-c", "numbers", "string", "8"},
		check: func(out string) bool {
			l := lines(out)[0]
			return len(l) == 8 && strings.Trim(l, "0123456789") == ""
		},
	}, {
		name: "string literal charset with exclusions",
		argv: []string{"-c", "abc", "-x", "b", "string", "16"},
		check: func(out string) bool {
			l := lines(out)[0]
			return len(l) == 16 && strings.Trim(l, "ac") == ""
		},
	}, {
		name: "bytes hex",
		argv: []string{"-n", "2", "bytes", "10"},
		check: func(out string) bool {
			ls := lines(out)
			for _, l := range ls {
				b, err := hex.DecodeString(l)
				if err != nil || len(b) != 10 {
					return false
				}
			}
			return len(ls) == 2
		},
	}, {
		name: "bytes base58",
		argv: []string{"--encoding", "base58", "bytes", "10"},
		check: func(out string) bool {
			return len(base58.Decode(lines(out)[0])) == 10
		},
	}, {
		name: "bytes base64",
		argv: []string{"--encoding", "base64", "bytes", "10"},
		check: func(out string) bool {
			b, err := base64.StdEncoding.DecodeString(lines(out)[0])
			return err == nil && len(b) == 10
		},
	}, {
		name: "bytes raw",
		argv: []string{"--encoding", "raw", "-n", "3", "bytes", "7"},
		check: func(out string) bool {
			return len(out) == 21
		},
	}, {
		name: "normal odd count",
		argv: []string{"-n", "3", "normal", "10", "2"},
		check: func(out string) bool {
			ls := lines(out)
			for _, l := range ls {
				if _, err := strconv.ParseFloat(l, 64); err != nil {
					return false
				}
			}
			return len(ls) == 3
		},
	}, {
		name: "shuffle",
		argv: []string{"shuffle", "a", "b", "c", "d"},
		check: func(out string) bool {
			fields := strings.Fields(out)
			return len(fields) == 4 && sameItems(fields, "a", "b", "c", "d")
		},
	}, {
		name: "sample",
		argv: []string{"-n", "10", "sample", "2", "a", "b", "c", "d"},
		check: func(out string) bool {
			for _, l := range lines(out) {
				f := strings.Fields(l)
				if len(f) != 2 || f[0] == f[1] {
					return false
				}
			}
			return true
		},
	}, {
		name: "pick",
		argv: []string{"-n", "10", "pick", "x:1", "y:0", "host:port:-1"},
		check: func(out string) bool {
			return strings.Trim(strings.ReplaceAll(out, "\n", ""), "x") == ""
		},
	}, {
		name: "round integer",
		argv: []string{"-n", "3", "round", "2"},
		check: func(out string) bool {
			return out == "2\n2\n2\n"
		},
	}, {
		name: "charsets",
		argv: []string{"charsets"},
		check: func(out string) bool {
			ls := lines(out)
			names := charset.Names()
			if len(ls) != len(names) {
				return false
			}
			for i, l := range ls {
				f := strings.Fields(l)
				set, _ := charset.Lookup(names[i])
				if len(f) != 2 || f[0] != names[i] || f[1] != set {
					return false
				}
			}
			return true
		},
	}, {
		name:  "crypto engine",
		argv:  []string{"-e", "crypto", "-n", "5", "int", "1", "6"},
		check: intsWithin(5, 1, 6),
	}, {
		name:  "unseeded",
		argv:  []string{"-e", "sfc32", "-n", "5", "int", "1", "6"},
		check: intsWithin(5, 1, 6),
	}}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		argv := test.argv
		if test.name != "crypto engine" && test.name != "unseeded" {
			argv = append([]string{"-s", "7"}, argv...)
		}
		out, err := runArgs(argv...)
		if err != nil {
			t.Errorf("#%d (%s): unexpected error: %v", i, test.name, err)
			continue
		}
		if !test.check(out) {
			t.Errorf("#%d (%s): unexpected output:\n%s", i, test.name, out)
		}
	}
}

// TestRunErrors ensures invalid commands and arguments are reported.
func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"no command", nil},
		{"unknown command", []string{"flip"}},
		{"too few arguments", []string{"int", "1"}},
		{"too many arguments", []string{"uuid", "extra"}},
		{"reversed range", []string{"int", "5", "1"}},
		{"bad integer", []string{"int", "one", "6"}},
		{"bad dice", []string{"roll", "3d"}},
		{"negative length", []string{"string", "-1"}},
		{"empty charset", []string{"-c", "ab", "-x", "ab", "string", "4"}},
		{"negative bytes", []string{"bytes", "-1"}},
		{"bad mean", []string{"normal", "mu", "1"}},
		{"oversized sample", []string{"sample", "5", "a", "b"}},
		{"missing weight", []string{"pick", "x"}},
		{"bad weight", []string{"pick", "x:heavy"}},
		{"no viable weights", []string{"pick", "x:0", "y:-1"}},
		{"bad round", []string{"round", "two"}},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		argv := append([]string{"-s", "1"}, test.argv...)
		if _, err := runArgs(argv...); err == nil {
			t.Errorf("#%d (%s): expected error", i, test.name)
		}
	}
}

// intsWithin returns a check that the output is n integers in [min,max].
func intsWithin(n, min, max int) func(string) bool {
	return func(out string) bool {
		ls := lines(out)
		for _, l := range ls {
			v, err := strconv.Atoi(l)
			if err != nil || v < min || v > max {
				return false
			}
		}
		return len(ls) == n
	}
}

// sameItems returns whether got holds exactly the wanted items in any order.
func sameItems(got []string, want ...string) bool {
	counts := make(map[string]int)
	for _, s := range want {
		counts[s]++
	}
	for _, s := range got {
		counts[s]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
