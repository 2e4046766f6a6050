package semver_test

import (
	"fmt"

	"github.com/go-semscope/semver"
)

func ExampleParseVersion() {
	v, ok := semver.ParseVersion("1.2.3-rc.1+build.5")
	fmt.Println(ok, v)

	_, ok = semver.ParseVersion("01.2.3")
	fmt.Println(ok)
	// Output:
	// true 1.2.3-rc.1+build.5
	// false
}

func ExampleVersion_Compare() {
	a := semver.MustParseVersion("1.2.3-alpha")
	b := semver.MustParseVersion("1.2.3")
	fmt.Println(a.Compare(b))
	// Output: -1
}

func ExampleVersion_BumpMinor() {
	v := semver.MustParseVersion("1.2.3-rc.1+build.5")
	fmt.Println(v.BumpMinor())
	// Output: 1.3.0
}

func ExampleSatisfies() {
	v := semver.MustParseVersion("1.4.2")
	c := semver.MustParseConstraint("^1.2.3")
	fmt.Println(semver.Satisfies(v, c))
	// Output: true
}

func ExampleConstraint_String() {
	c := semver.MustParseConstraint("= 1.2.3  ||  1.2.X")
	fmt.Println(c)
	// Output: 1.2.3 || 1.2.x
}
