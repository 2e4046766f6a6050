package semver

import (
	"testing"

	. "github.com/franela/goblin"
)

func TestParseConstraint(t *testing.T) {
	g := Goblin(t)
	g.Describe("Constraint parsing", func() {
		g.It("Should parse every atom form", func() {
			for _, s := range []string{
				"1.2.3",
				"=1.2.3",
				"<1.2.3",
				"<=1.2.3",
				">=1.2.3",
				">1.2.3",
				"~1.2.3",
				"^1.2.3",
				"1.2.3 - 1.4.0",
				"1.2.x",
				"1.x.x",
				"x.x.x",
				">=1.2.3 <2.0.0",
				"1.2.2 || >1.2.3 <1.3.0",
			} {
				_, ok := ParseConstraint(s)
				g.Assert(ok).IsTrue()
			}
		})

		g.It("Should allow a space between operator and operand", func() {
			c, ok := ParseConstraint("> 1.2.3")
			g.Assert(ok).IsTrue()
			g.Assert(c.String()).Equal(">1.2.3")
		})

		g.It("Should tolerate surrounding and repeated spaces", func() {
			c, ok := ParseConstraint("  >=1.0.0   <2.0.0  ||  3.0.0  ")
			g.Assert(ok).IsTrue()
			g.Assert(c.String()).Equal(">=1.0.0 <2.0.0 || 3.0.0")
		})

		g.It("Should parse alternation without surrounding spaces", func() {
			c, ok := ParseConstraint("1.2.3||1.2.4")
			g.Assert(ok).IsTrue()
			g.Assert(c.String()).Equal("1.2.3 || 1.2.4")
		})

		g.It("Should keep pre-release and build tags on operands", func() {
			c, ok := ParseConstraint(">=1.2.3-rc.1+build")
			g.Assert(ok).IsTrue()
			g.Assert(c.String()).Equal(">=1.2.3-rc.1+build")
		})

		g.It("Should reject everything off the grammar", func() {
			for _, s := range []string{
				"",
				" ",
				"||",
				"1.2.3 ||",
				"|| 1.2.3",
				"1.2.3 |",
				"(>=1.0.0)",
				">=",
				"> ",
				"1.2.3 -",
				"- 1.2.3",
				"1.2.3 - ",
				">=1.0.0 - 2.0.0",
				"1.2",
				"1.2.3.4",
				"01.2.3",
				"v1.2.3",
				"1.2.3\t1.2.4",
				">\t1.2.3",
				"1.2.3\n",
			} {
				_, ok := ParseConstraint(s)
				g.Assert(ok).IsFalse()
			}
		})

		g.It("Should reject operator prefixes on wildcards", func() {
			for _, s := range []string{"<1.2.x", "<=1.x.x", ">=x.x.x", ">1.2.*", "~1.2.x", "^1.x.x", "=1.2.x", "< 1.2.x"} {
				_, ok := ParseConstraint(s)
				g.Assert(ok).IsFalse()
			}
		})

		g.It("Should reject misaligned wildcards", func() {
			for _, s := range []string{"1.x.3", "x.2.3", "x.2.x", "x.x.3", "*.2.*"} {
				_, ok := ParseConstraint(s)
				g.Assert(ok).IsFalse()
			}
		})

		g.It("Should reject tags on wildcards", func() {
			for _, s := range []string{"1.2.x-pre", "1.x.x+build", "x.x.x-0"} {
				_, ok := ParseConstraint(s)
				g.Assert(ok).IsFalse()
			}
		})
	})
}

func TestConstraintEquality(t *testing.T) {
	g := Goblin(t)
	g.Describe("Constraint structural equality", func() {
		g.It("Should fold the equals operator into the bare form", func() {
			g.Assert(MustParseConstraint("=1.2.3").Equal(MustParseConstraint("1.2.3"))).IsTrue()
		})

		g.It("Should treat wildcard spellings alike", func() {
			g.Assert(MustParseConstraint("1.2.x").Equal(MustParseConstraint("1.2.*"))).IsTrue()
			g.Assert(MustParseConstraint("1.2.X").Equal(MustParseConstraint("1.2.x"))).IsTrue()
		})

		g.It("Should not equate different spellings of the same set", func() {
			g.Assert(MustParseConstraint("1.2.3 - 1.2.4").Equal(MustParseConstraint(">=1.2.3 <=1.2.4"))).IsFalse()
		})
	})
}

func TestRenderConstraint(t *testing.T) {
	g := Goblin(t)
	g.Describe("Constraint rendering", func() {
		g.It("Should drop the equals operator", func() {
			g.Assert(MustParseConstraint("=1.2.3").String()).Equal("1.2.3")
		})

		g.It("Should print operators flush against their operands", func() {
			g.Assert(MustParseConstraint("> 1.2.3").String()).Equal(">1.2.3")
			g.Assert(MustParseConstraint("<= 1.2.3").String()).Equal("<=1.2.3")
			g.Assert(MustParseConstraint("~ 1.2.3").String()).Equal("~1.2.3")
		})

		g.It("Should lowercase every wildcard spelling to x", func() {
			g.Assert(MustParseConstraint("1.2.X").String()).Equal("1.2.x")
			g.Assert(MustParseConstraint("1.2.*").String()).Equal("1.2.x")
			g.Assert(MustParseConstraint("*.*.*").String()).Equal("x.x.x")
			g.Assert(MustParseConstraint("1.X.*").String()).Equal("1.x.x")
		})

		g.It("Should render the kitchen sink canonically", func() {
			in := "<1.2.0 <=1.2.1 =1.2.2 >=1.2.3 >1.2.4 1.2.5 1.2.6 - 1.2.7 ~1.2.8 ^1.2.9 1.2.x"
			want := "<1.2.0 <=1.2.1 1.2.2 >=1.2.3 >1.2.4 1.2.5 1.2.6 - 1.2.7 ~1.2.8 ^1.2.9 1.2.x"
			g.Assert(MustParseConstraint(in).String()).Equal(want)
		})

		g.It("Should round-trip the rendered form", func() {
			for _, s := range []string{
				"  =1.2.3 ||1.2.X  ",
				"1.2.3  -  1.4.0",
				"^ 0.2.3 || ~ 0.0.1",
				"*.*.* || 2.x.X",
			} {
				c := MustParseConstraint(s)
				again := MustParseConstraint(c.String())
				g.Assert(again.Equal(c)).IsTrue()
				g.Assert(again.String()).Equal(c.String())
			}
		})
	})
}
