package semver

import (
	"strconv"
	"strings"
)

/*
PreRelease is a single dot-separated identifier from the pre-release
portion of a version. It is either numeric or alphanumeric; per the
https://semver.org specification any identifier that could be read as a
number without a leading zero must be treated as numeric, and numeric
identifiers always order below alphanumeric ones.
*/
type PreRelease struct {
	numeric bool
	number  uint64
	word    string
}

// Numeric reports whether the identifier is a numeric one.
func (p PreRelease) Numeric() bool {
	return p.numeric
}

// Number returns the value of a numeric identifier, and 0 for an
// alphanumeric one.
func (p PreRelease) Number() uint64 {
	return p.number
}

// Word returns the text of an alphanumeric identifier, and "" for a
// numeric one.
func (p PreRelease) Word() string {
	return p.word
}

/*
Compare checks the two identifiers and returns 1 if the current identifier
is greater than the param, -1 if it is less, and 0 if they are equal.

Numeric identifiers compare by value, alphanumeric identifiers compare
byte-wise, and a numeric identifier is always lower than an alphanumeric
one. See https://semver.org/#spec-item-11.
*/
func (p PreRelease) Compare(o PreRelease) int {
	switch {
	case p.numeric && o.numeric:
		switch {
		case p.number < o.number:
			return -1
		case p.number > o.number:
			return 1
		}
		return 0
	case p.numeric:
		return -1
	case o.numeric:
		return 1
	}
	return strings.Compare(p.word, o.word)
}

// Equal reports whether two identifiers are the same identifier.
func (p PreRelease) Equal(o PreRelease) bool {
	return p == o
}

// String returns the identifier in its textual form.
func (p PreRelease) String() string {
	if p.numeric {
		return strconv.FormatUint(p.number, 10)
	}
	return p.word
}
