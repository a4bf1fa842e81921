// Copyright (c) 2026 The randkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the randkit version.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

// Version is the semantic version of randkit.  It may be overridden with
// '-ldflags "-X github.com/randkit/randkit/internal/version.Version=x.y.z"'
// and must remain a valid semantic version or the package panics on init.
var Version = "0.1.0-pre"

// Components of Version, set during init.
var (
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// semver holds the parsed components of a semantic version.
type semver struct {
	major, minor, patch uint
	pre, build          string
}

func parseSemVer(s string) (semver, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return semver{}, fmt.Errorf("malformed version string %q", s)
	}
	var nums [3]uint
	for i := range nums {
		n, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return semver{}, fmt.Errorf("malformed version string %q: %w",
				s, err)
		}
		nums[i] = uint(n)
	}
	return semver{nums[0], nums[1], nums[2], m[4], m[5]}, nil
}

func init() {
	v, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	Major, Minor, Patch = v.major, v.minor, v.patch
	PreRelease, BuildMetadata = v.pre, v.build
}

// vcsRevision returns the abbreviated revision the binary was built from, or
// an empty string when it was not recorded.
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs":
			vcs = s.Value
		case "vcs.revision":
			revision = s.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the version.  The build revision is appended as build
// metadata when Version has none and the revision is known.
func String() string {
	if BuildMetadata != "" {
		return Version
	}
	if rev := vcsRevision(); rev != "" {
		return Version + "+" + rev
	}
	return Version
}
