package semver

import (
	"fmt"
	"strings"
)

/*
ParseConstraint parses an npm-style range expression: atoms joined by
spaces form a conjunction, conjunctions joined by "||" form the
constraint. Atoms are primitive bounds ("<", "<=", "=", ">=", ">"), tilde
and caret forms, inclusive hyphen ranges ("1.2.3 - 1.4.0") and
right-aligned wildcards ("1.2.x"), or a bare version.

Any deviation from the grammar reports false: misaligned wildcards
("1.x.3"), operator prefixes on wildcards, parentheses, tabs, and every
string ParseVersion would reject in version position.
*/
func ParseConstraint(s string) (Constraint, bool) {
	var c Constraint
	for _, part := range splitDisjunction(s) {
		cj, ok := parseConjunction(part)
		if !ok {
			return Constraint{}, false
		}
		c.anyOf = append(c.anyOf, cj)
	}
	return c, true
}

// MustParseConstraint is ParseConstraint for known-good input. It panics,
// quoting the offending string, on anything ParseConstraint rejects.
func MustParseConstraint(s string) Constraint {
	c, ok := ParseConstraint(s)
	if !ok {
		panic(fmt.Sprintf("semver: invalid constraint %q", s))
	}
	return c
}

func parseConjunction(s string) (conjunction, bool) {
	toks := tokenize(s)
	if len(toks) == 0 {
		return nil, false
	}
	var cj conjunction
	for i := 0; i < len(toks); {
		if i+2 < len(toks) && toks[i+1] == "-" {
			lo, ok := ParseVersion(toks[i])
			if !ok {
				return nil, false
			}
			hi, ok := ParseVersion(toks[i+2])
			if !ok {
				return nil, false
			}
			cj = append(cj, atom{kind: atomHyphen, ver: lo, upper: hi})
			i += 3
			continue
		}

		op, rest := splitOperator(toks[i])
		if op != "" && rest == "" {
			// The operand stands one or more spaces after its operator.
			if i+1 == len(toks) {
				return nil, false
			}
			i++
			rest = toks[i]
		}
		i++

		a, ok := parseAtom(op, rest)
		if !ok {
			return nil, false
		}
		cj = append(cj, a)
	}
	return cj, true
}

var opKinds = map[string]atomKind{
	"":   atomExact,
	"=":  atomExact,
	"<":  atomLess,
	"<=": atomLessEq,
	">=": atomGreaterEq,
	">":  atomGreater,
	"~":  atomTilde,
	"^":  atomCaret,
}

func parseAtom(op, operand string) (atom, bool) {
	if w, ok := parseWildcard(operand); ok {
		// Wildcards take no operator prefix and no identifier tags.
		if op != "" {
			return atom{}, false
		}
		return atom{kind: atomWildcard, wild: w}, true
	}
	v, ok := ParseVersion(operand)
	if !ok {
		return atom{}, false
	}
	return atom{kind: opKinds[op], ver: v}, true
}

// parseWildcard recognises the three-slot x-range forms. A token with no
// wildcard slot is not an x-range and is left for the version parser to
// judge; one with a wildcard anywhere must be wild in every slot to its
// right.
func parseWildcard(tok string) (wildcard, bool) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return wildcard{}, false
	}
	switch {
	case isWildSlot(parts[0]):
		if !isWildSlot(parts[1]) || !isWildSlot(parts[2]) {
			return wildcard{}, false
		}
		return wildcard{level: wildAny}, true
	case isWildSlot(parts[1]):
		if !isWildSlot(parts[2]) || !isNumericIdent(parts[0]) {
			return wildcard{}, false
		}
		major, ok := parseNumber(parts[0])
		if !ok {
			return wildcard{}, false
		}
		return wildcard{level: wildMinor, major: major}, true
	case isWildSlot(parts[2]):
		if !isNumericIdent(parts[0]) || !isNumericIdent(parts[1]) {
			return wildcard{}, false
		}
		major, ok := parseNumber(parts[0])
		if !ok {
			return wildcard{}, false
		}
		minor, ok := parseNumber(parts[1])
		if !ok {
			return wildcard{}, false
		}
		return wildcard{level: wildPatch, major: major, minor: minor}, true
	}
	return wildcard{}, false
}
