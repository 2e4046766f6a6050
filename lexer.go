package semver

import "strings"

// The constraint grammar is flat enough that a token stream does the work
// of a lexer: a conjunction is a run of space-separated tokens, an
// operator may stand spaces apart from its operand, and a lone "-"
// joins its two neighbours into a hyphen range. Only the ASCII space
// character separates tokens; a tab or newline stays glued to its
// neighbours and makes them unparseable, which is how the grammar rejects
// non-space whitespace.

// splitDisjunction cuts a constraint string on "||". The pieces keep
// their surrounding spaces; emptiness is diagnosed by the conjunction
// parser.
func splitDisjunction(s string) []string {
	return strings.Split(s, "||")
}

// tokenize splits one conjunction on runs of spaces.
func tokenize(s string) []string {
	var toks []string
	for _, f := range strings.Split(s, " ") {
		if f != "" {
			toks = append(toks, f)
		}
	}
	return toks
}

// operators is ordered longest first so ">=" wins over ">".
var operators = []string{"<=", ">=", "<", "=", ">", "~", "^"}

// splitOperator cuts a leading comparison operator off a token.
func splitOperator(tok string) (op, rest string) {
	for _, o := range operators {
		if strings.HasPrefix(tok, o) {
			return o, tok[len(o):]
		}
	}
	return "", tok
}

// isWildSlot reports whether a version slot is one of the wildcard
// spellings.
func isWildSlot(s string) bool {
	return s == "x" || s == "X" || s == "*"
}
