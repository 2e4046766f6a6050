package semver

import (
	"fmt"
	"strings"
)

/*
Version is a semantic version value: the major, minor and patch release
numbers plus any pre-release and build identifiers.

Versions are immutable. The With and Bump methods return a new Version and
leave the receiver untouched, so values can be shared freely.

See https://semver.org/ for more info on semantic versioning and version
comparisons.
*/
type Version struct {
	// major is the semantic major release version number.
	major uint64
	// minor is the semantic minor release version number.
	minor uint64
	// patch is the semantic patch release version number.
	patch uint64
	// pre holds the identifiers after the '-' in a semantic version
	// string, in order.
	pre []PreRelease
	// build holds the identifiers after the '+' character. Build metadata
	// is not factored into version comparisons.
	build []Build
}

// InitialVersion returns version 0.0.0 with no pre-release or build
// identifiers.
func InitialVersion() Version {
	return Version{}
}

// MakeVersion constructs a version directly from already-validated parts.
// The identifier slices are copied, so the caller keeps ownership of its
// arguments.
func MakeVersion(major, minor, patch uint64, pre []PreRelease, build []Build) Version {
	return Version{
		major: major,
		minor: minor,
		patch: patch,
		pre:   clonePre(pre),
		build: cloneBuild(build),
	}
}

func clonePre(ids []PreRelease) []PreRelease {
	if len(ids) == 0 {
		return nil
	}
	out := make([]PreRelease, len(ids))
	copy(out, ids)
	return out
}

func cloneBuild(ids []Build) []Build {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Build, len(ids))
	copy(out, ids)
	return out
}

// Major returns the semantic major version number.
func (v Version) Major() uint64 {
	return v.major
}

// Minor returns the semantic minor version number.
func (v Version) Minor() uint64 {
	return v.minor
}

// Patch returns the semantic patch version number.
func (v Version) Patch() uint64 {
	return v.patch
}

// PreRelease returns a copy of the pre-release identifiers.
func (v Version) PreRelease() []PreRelease {
	return clonePre(v.pre)
}

// Build returns a copy of the build identifiers.
func (v Version) Build() []Build {
	return cloneBuild(v.build)
}

// WithMajor returns a copy of v with the major number replaced.
func (v Version) WithMajor(n uint64) Version {
	v.major = n
	return v
}

// WithMinor returns a copy of v with the minor number replaced.
func (v Version) WithMinor(n uint64) Version {
	v.minor = n
	return v
}

// WithPatch returns a copy of v with the patch number replaced.
func (v Version) WithPatch(n uint64) Version {
	v.patch = n
	return v
}

// WithPreRelease returns a copy of v with the pre-release identifiers
// replaced.
func (v Version) WithPreRelease(ids []PreRelease) Version {
	v.pre = clonePre(ids)
	return v
}

// WithBuild returns a copy of v with the build identifiers replaced.
func (v Version) WithBuild(ids []Build) Version {
	v.build = cloneBuild(ids)
	return v
}

// BumpMajor increments the major number, zeroes minor and patch and drops
// any pre-release and build identifiers.
func (v Version) BumpMajor() Version {
	return Version{major: v.major + 1}
}

// BumpMinor increments the minor number, zeroes patch and drops any
// pre-release and build identifiers.
func (v Version) BumpMinor() Version {
	return Version{major: v.major, minor: v.minor + 1}
}

// BumpPatch increments the patch number and drops any pre-release and
// build identifiers.
func (v Version) BumpPatch() Version {
	return Version{major: v.major, minor: v.minor, patch: v.patch + 1}
}

// IsUnstable reports whether the version belongs to initial development,
// that is, has major number 0.
func (v Version) IsUnstable() bool {
	return v.major == 0
}

// IsStable reports whether the version has left initial development.
func (v Version) IsStable() bool {
	return !v.IsUnstable()
}

/*
Compare checks the two versions and returns 1 if the current version is
greater than the version param, -1 if the current version is less, and 0
if they are equal.

Comparison logic is implemented to the https://semver.org specification:
the release triples compare first, a pre-release sorts below its release,
and pre-release identifier sequences compare identifier by identifier with
the shorter sequence losing ties. Build metadata never affects the result.
*/
func (v Version) Compare(o Version) int {
	if c := compareNumber(v.major, o.major); c != 0 {
		return c
	}
	if c := compareNumber(v.minor, o.minor); c != 0 {
		return c
	}
	if c := compareNumber(v.patch, o.patch); c != 0 {
		return c
	}
	return v.comparePreRelease(o)
}

func compareNumber(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// comparePreRelease orders two versions with equal release triples by
// their pre-release identifier sequences per
// https://semver.org/#spec-item-11.
func (v Version) comparePreRelease(o Version) int {
	switch {
	case len(v.pre) == 0 && len(o.pre) == 0:
		return 0
	case len(v.pre) == 0:
		return 1
	case len(o.pre) == 0:
		return -1
	}

	for i := 0; i < len(v.pre) && i < len(o.pre); i++ {
		if c := v.pre[i].Compare(o.pre[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(v.pre) < len(o.pre):
		return -1
	case len(v.pre) > len(o.pre):
		return 1
	}
	return 0
}

// Equal reports whether two versions are the same value, build identifiers
// included. It is stricter than Compare returning 0, which ignores build
// metadata.
func (v Version) Equal(o Version) bool {
	if v.major != o.major || v.minor != o.minor || v.patch != o.patch {
		return false
	}
	if len(v.pre) != len(o.pre) || len(v.build) != len(o.build) {
		return false
	}
	for i := range v.pre {
		if v.pre[i] != o.pre[i] {
			return false
		}
	}
	for i := range v.build {
		if v.build[i] != o.build[i] {
			return false
		}
	}
	return true
}

// sameTriple reports whether the release triples of the two versions are
// identical, ignoring any identifiers.
func (v Version) sameTriple(o Version) bool {
	return v.major == o.major && v.minor == o.minor && v.patch == o.patch
}

// String returns the version in semantic version string format.
//
// {Major}.{Minor}.{Patch}-{PreRelease}+{Build}
func (v Version) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%d.%d.%d", v.major, v.minor, v.patch)
	if len(v.pre) > 0 {
		s.WriteString("-")
		for i, id := range v.pre {
			if i > 0 {
				s.WriteString(".")
			}
			s.WriteString(id.String())
		}
	}
	if len(v.build) > 0 {
		s.WriteString("+")
		for i, id := range v.build {
			if i > 0 {
				s.WriteString(".")
			}
			s.WriteString(id.String())
		}
	}
	return s.String()
}
