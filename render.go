package semver

import (
	"fmt"
	"strings"
)

/*
String returns the constraint in canonical form: atoms joined by single
spaces, conjunctions joined by " || ", operators flush against their
operands, "=" dropped, and wildcard slots printed as a lowercase "x"
regardless of how they were written.

Parsing a rendered constraint yields the same AST, so rendering is
idempotent after one pass.
*/
func (c Constraint) String() string {
	parts := make([]string, len(c.anyOf))
	for i, cj := range c.anyOf {
		parts[i] = cj.String()
	}
	return strings.Join(parts, " || ")
}

func (cj conjunction) String() string {
	parts := make([]string, len(cj))
	for i, a := range cj {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func (a atom) String() string {
	switch a.kind {
	case atomLess:
		return "<" + a.ver.String()
	case atomLessEq:
		return "<=" + a.ver.String()
	case atomGreaterEq:
		return ">=" + a.ver.String()
	case atomGreater:
		return ">" + a.ver.String()
	case atomTilde:
		return "~" + a.ver.String()
	case atomCaret:
		return "^" + a.ver.String()
	case atomHyphen:
		return a.ver.String() + " - " + a.upper.String()
	case atomWildcard:
		return a.wild.String()
	}
	return a.ver.String() // atomExact
}

func (w wildcard) String() string {
	switch w.level {
	case wildAny:
		return "x.x.x"
	case wildMinor:
		return fmt.Sprintf("%d.x.x", w.major)
	}
	return fmt.Sprintf("%d.%d.x", w.major, w.minor)
}
