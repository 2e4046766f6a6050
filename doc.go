/*
Package semver provides methods for parsing, rendering and comparing
semantic versions following the https://semver.org specification, as well
as support for deciding whether a version satisfies a range constraint
written in the npm ecosystem's grammar.

The following constraint forms are recognised:

>= <= < > = - primitive comparison bounds.

~ - allows patch-level changes from the named version.

^ - allows changes that keep the left-most non-zero component.

1.2.3 - 1.4.0 - the inclusive hyphen range.

1.2.x - right-aligned wildcard slots (x, X and * are interchangeable).

|| - alternation between space-separated conjunctions.

Versions and constraints are immutable values. Parsing either returns the
value together with an ok report; the Must variants exist for static
strings and panic on input the safe parsers reject.
*/
package semver
