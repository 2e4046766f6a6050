package semver

import (
	"fmt"
	"regexp"
	"strings"
)

// See https://regex101.com/r/vkijKf/1 for the upstream semver.org pattern
// these are assembled from.
var (
	versionRe = regexp.MustCompile(
		`^(` + numPat + `)\.(` + numPat + `)\.(` + numPat + `)` +
			`(?:-((?:` + prePat + `)(?:\.(?:` + prePat + `))*))?` +
			`(?:\+(` + buildPat + `(?:\.` + buildPat + `)*))?$`)
	preRe   = regexp.MustCompile(`^(?:` + prePat + `)$`)
	buildRe = regexp.MustCompile(`^` + buildPat + `$`)
)

/*
ParseVersion parses a complete semantic version string of the form

{Major}.{Minor}.{Patch}-{PreRelease}+{Build}

where the pre-release and build portions are optional. The whole string
must match: surrounding whitespace, a leading "v", leading zeroes, missing
or extra dotted components and non-ASCII input all report false.
*/
func ParseVersion(s string) (Version, bool) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}

	major, ok := parseNumber(m[1])
	if !ok {
		return Version{}, false
	}
	minor, ok := parseNumber(m[2])
	if !ok {
		return Version{}, false
	}
	patch, ok := parseNumber(m[3])
	if !ok {
		return Version{}, false
	}

	v := Version{major: major, minor: minor, patch: patch}
	if m[4] != "" {
		for _, id := range strings.Split(m[4], ".") {
			p, ok := ParsePreRelease(id)
			if !ok {
				return Version{}, false
			}
			v.pre = append(v.pre, p)
		}
	}
	if m[5] != "" {
		for _, id := range strings.Split(m[5], ".") {
			v.build = append(v.build, Build(id))
		}
	}
	return v, true
}

// ParsePreRelease parses a single pre-release identifier. A run of digits
// is numeric and must be "0" or have no leading zero; anything else must
// be a nonempty run of ASCII letters, digits and hyphens.
func ParsePreRelease(s string) (PreRelease, bool) {
	if !preRe.MatchString(s) {
		return PreRelease{}, false
	}
	if isNumericIdent(s) {
		n, ok := parseNumber(s)
		if !ok {
			return PreRelease{}, false
		}
		return PreRelease{numeric: true, number: n}, true
	}
	return PreRelease{word: s}, true
}

// ParseBuild parses a single build identifier: a nonempty run of ASCII
// letters, digits and hyphens.
func ParseBuild(s string) (Build, bool) {
	if !buildRe.MatchString(s) {
		return "", false
	}
	return Build(s), true
}

// MustParseVersion is ParseVersion for known-good input. It panics,
// quoting the offending string, on anything ParseVersion rejects.
func MustParseVersion(s string) Version {
	v, ok := ParseVersion(s)
	if !ok {
		panic(fmt.Sprintf("semver: invalid version %q", s))
	}
	return v
}

// MustParsePreRelease is ParsePreRelease for known-good input and panics
// on anything it rejects.
func MustParsePreRelease(s string) PreRelease {
	p, ok := ParsePreRelease(s)
	if !ok {
		panic(fmt.Sprintf("semver: invalid pre-release identifier %q", s))
	}
	return p
}

// MustParseBuild is ParseBuild for known-good input and panics on anything
// it rejects.
func MustParseBuild(s string) Build {
	b, ok := ParseBuild(s)
	if !ok {
		panic(fmt.Sprintf("semver: invalid build identifier %q", s))
	}
	return b
}
