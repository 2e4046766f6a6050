// Package testutil carries the property-test harness shared by the
// package's test files. Nothing here ships in the built library.
package testutil

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"

	"github.com/go-semscope/semver"
)

// Check runs fn under testing/quick with the given config and reports any
// counterexample through testify.
func Check(t *testing.T, fn interface{}, cfg quick.Config) {
	t.Helper()
	assert.NoError(t, quick.Check(fn, &cfg))
}

// Config builds a quick.Config that fills the checked function's
// arguments from the given generators, one per argument.
func Config(maxCount int, gen ...func(*rand.Rand) interface{}) quick.Config {
	return quick.Config{
		MaxCount: maxCount,
		Values: func(args []reflect.Value, r *rand.Rand) {
			for i := range args {
				args[i] = reflect.ValueOf(gen[i](r))
			}
		},
	}
}

// Version is a Config generator producing random versions.
func Version(r *rand.Rand) interface{} {
	return RandomVersion(r)
}

// Constraint is a Config generator producing random constraint strings.
func Constraint(r *rand.Rand) interface{} {
	return RandomConstraint(r)
}

// Conjunction is a Config generator producing random single-conjunction
// constraint strings.
func Conjunction(r *rand.Rand) interface{} {
	return RandomConjunction(r)
}

var (
	preWords   = []string{"alpha", "beta", "rc", "pre", "snapshot", "x-y-z"}
	buildWords = []string{"build", "exp", "sha-5114f85", "20130313144700"}
	wildSlots  = []string{"x", "X", "*"}
)

// RandomVersion draws release numbers from a small pool so generated
// versions collide often enough to exercise the equality paths.
func RandomVersion(r *rand.Rand) semver.Version {
	var pre []semver.PreRelease
	if r.Intn(3) == 0 {
		for i := r.Intn(2) + 1; i > 0; i-- {
			if r.Intn(2) == 0 {
				pre = append(pre, semver.MustParsePreRelease(strconv.Itoa(r.Intn(10))))
			} else {
				pre = append(pre, semver.MustParsePreRelease(preWords[r.Intn(len(preWords))]))
			}
		}
	}
	var build []semver.Build
	if r.Intn(4) == 0 {
		build = append(build, semver.MustParseBuild(buildWords[r.Intn(len(buildWords))]))
	}
	return semver.MakeVersion(uint64(r.Intn(4)), uint64(r.Intn(4)), uint64(r.Intn(10)), pre, build)
}

// RandomConstraint produces a well-formed constraint string of one to
// three conjunctions.
func RandomConstraint(r *rand.Rand) string {
	s := RandomConjunction(r)
	for i := r.Intn(3); i > 0; i-- {
		s += " || " + RandomConjunction(r)
	}
	return s
}

// RandomConjunction produces one to two space-separated atoms, with the
// occasional doubled space the grammar tolerates.
func RandomConjunction(r *rand.Rand) string {
	s := randomAtom(r)
	if r.Intn(2) == 0 {
		sep := " "
		if r.Intn(4) == 0 {
			sep = "  "
		}
		s += sep + randomAtom(r)
	}
	return s
}

func randomAtom(r *rand.Rand) string {
	switch r.Intn(10) {
	case 0:
		return maybeSpaced(r, "<") + RandomVersion(r).String()
	case 1:
		return maybeSpaced(r, "<=") + RandomVersion(r).String()
	case 2:
		return maybeSpaced(r, "=") + RandomVersion(r).String()
	case 3:
		return maybeSpaced(r, ">=") + RandomVersion(r).String()
	case 4:
		return maybeSpaced(r, ">") + RandomVersion(r).String()
	case 5:
		return maybeSpaced(r, "~") + RandomVersion(r).String()
	case 6:
		return maybeSpaced(r, "^") + RandomVersion(r).String()
	case 7:
		return RandomVersion(r).String() + " - " + RandomVersion(r).String()
	case 8:
		switch r.Intn(3) {
		case 0:
			return wildSlot(r) + "." + wildSlot(r) + "." + wildSlot(r)
		case 1:
			return strconv.Itoa(r.Intn(4)) + "." + wildSlot(r) + "." + wildSlot(r)
		}
		return strconv.Itoa(r.Intn(4)) + "." + strconv.Itoa(r.Intn(4)) + "." + wildSlot(r)
	}
	return RandomVersion(r).String()
}

func maybeSpaced(r *rand.Rand, op string) string {
	if r.Intn(4) == 0 {
		return op + " "
	}
	return op
}

func wildSlot(r *rand.Rand) string {
	return wildSlots[r.Intn(len(wildSlots))]
}
