package semver

// Satisfies reports whether version v lies in the set denoted by c: every
// atom of at least one conjunction must accept it.
func Satisfies(v Version, c Constraint) bool {
	for _, cj := range c.anyOf {
		if cj.matches(v) {
			return true
		}
	}
	return false
}

func (cj conjunction) matches(v Version) bool {
	for _, a := range cj {
		if !a.matches(v) {
			return false
		}
	}
	return true
}

// matches evaluates one atom against a version.
//
// The five operator forms compare directly under SemVer precedence, so
// 1.2.3-pre satisfies "<1.2.3" and fails "=1.2.3". The compact forms are
// stricter: beyond their expanded bounds all holding, a version carrying
// pre-release identifiers is accepted only when one of the written
// endpoints names the same major.minor.patch triple with pre-release
// identifiers of its own. Without that gate every pre-release of 1.3.0
// would slip into "~1.2.0" through the strict upper bound, which is not
// how npm ranges behave.
func (a atom) matches(v Version) bool {
	bounds := a.desugar()
	for _, b := range bounds {
		if !b.holds(v) {
			return false
		}
	}
	if a.compact() && len(v.pre) > 0 {
		return gatesPreRelease(bounds, v)
	}
	return true
}

// compact reports whether the atom is a sugar form whose bounds were
// synthesised rather than written as primitives.
func (a atom) compact() bool {
	switch a.kind {
	case atomTilde, atomCaret, atomHyphen, atomWildcard:
		return true
	}
	return false
}

// gatesPreRelease reports whether any bound names v's release triple with
// pre-release identifiers of its own.
func gatesPreRelease(bounds []bound, v Version) bool {
	for _, b := range bounds {
		if len(b.ver.pre) > 0 && b.ver.sameTriple(v) {
			return true
		}
	}
	return false
}

func (b bound) holds(v Version) bool {
	c := v.Compare(b.ver)
	switch b.op {
	case opLess:
		return c < 0
	case opLessEq:
		return c <= 0
	case opExact:
		return c == 0
	case opGreaterEq:
		return c >= 0
	case opGreater:
		return c > 0
	}
	return false
}
