// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package charset provides named character sets for generating random
// strings along with helpers for deriving new sets from them.
package charset

import "strings"

// Character sets.
const (
	Lowercase         = "abcdefghijklmnopqrstuvwxyz"
	Uppercase         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers           = "0123456789"
	HexUpper          = Numbers + "ABCDEF"
	HexLower          = Numbers + "abcdef"
	AlphanumericUpper = Uppercase + Numbers
	AlphanumericLower = Lowercase + Numbers
	Alphanumeric      = Lowercase + Uppercase + Numbers
	URLSafe           = Uppercase + Lowercase + Numbers + "_-.~"
	Wide              = Uppercase + Lowercase + Numbers + "_-+=[]{};#:@~,./<>?!$%^&*()"
)

// named maps lookup names to character sets.
var named = map[string]string{
	"lowercase":         Lowercase,
	"uppercase":         Uppercase,
	"numbers":           Numbers,
	"hexupper":          HexUpper,
	"hexlower":          HexLower,
	"alphanumericupper": AlphanumericUpper,
	"alphanumericlower": AlphanumericLower,
	"alphanumeric":      Alphanumeric,
	"urlsafe":           URLSafe,
	"wide":              Wide,
}

// Lookup returns the character set with the given case-insensitive name.
func Lookup(name string) (string, bool) {
	set, ok := named[strings.ToLower(name)]
	return set, ok
}

// Names returns the names accepted by Lookup.
func Names() []string {
	return []string{"lowercase", "uppercase", "numbers", "hexupper",
		"hexlower", "alphanumericupper", "alphanumericlower",
		"alphanumeric", "urlsafe", "wide"}
}

// Exclude returns set without any of the characters in excluded.
func Exclude(set, excluded string) string {
	drop := make(map[rune]struct{}, len(excluded))
	for _, c := range excluded {
		drop[c] = struct{}{}
	}
	var sb strings.Builder
	for _, c := range set {
		if _, ok := drop[c]; !ok {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Unique returns set with repeated characters removed, keeping the first
// occurrence of each.
func Unique(set string) string {
	seen := make(map[rune]struct{}, len(set))
	var sb strings.Builder
	for _, c := range set {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		sb.WriteRune(c)
	}
	return sb.String()
}
