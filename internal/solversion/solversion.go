// Package solversion parses the version expression of a solidity pragma,
// e.g. "^0.8.0" or ">=0.8.0 <0.9.0", and can check concrete compiler
// versions against it. The analyzer treats pragmas opaquely; this is used by
// the CLI to warn when a file targets a pre-0.8 compiler, where several rules
// (unchecked arithmetic, custom errors) do not apply.
package solversion

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var versionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Operator", Pattern: `\^|~|>=|<=|>|<|=`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Constraint is a parsed version expression: one or more operator-version
// pairs that must all hold.
type Constraint struct {
	Terms []*Term `parser:"@@+"`
}

// Term is a single comparison, e.g. ">=0.8.0". A missing operator means
// exact match, a caret pins the leftmost nonzero component.
type Term struct {
	Op      string   `parser:"@Operator?"`
	Version *Version `parser:"@@"`
}

// Version is a dotted version number; minor and patch default to zero.
type Version struct {
	Major int  `parser:"@Number"`
	Minor *int `parser:"(\".\" @Number)?"`
	Patch *int `parser:"(\".\" @Number)?"`
}

var constraintParser = participle.MustBuild[Constraint](
	participle.Lexer(versionLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a pragma version expression into a Constraint.
func Parse(expr string) (*Constraint, error) {
	c, err := constraintParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("parsing version expression %q: %w", expr, err)
	}
	return c, nil
}

func (v *Version) parts() (int, int, int) {
	minor, patch := 0, 0
	if v.Minor != nil {
		minor = *v.Minor
	}
	if v.Patch != nil {
		patch = *v.Patch
	}
	return v.Major, minor, patch
}

func compare(aMajor, aMinor, aPatch, bMajor, bMinor, bPatch int) int {
	switch {
	case aMajor != bMajor:
		return sign(aMajor - bMajor)
	case aMinor != bMinor:
		return sign(aMinor - bMinor)
	default:
		return sign(aPatch - bPatch)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Allows reports whether the given concrete version satisfies every term of
// the constraint.
func (c *Constraint) Allows(major, minor, patch int) bool {
	for _, term := range c.Terms {
		if !term.allows(major, minor, patch) {
			return false
		}
	}
	return true
}

func (t *Term) allows(major, minor, patch int) bool {
	tMajor, tMinor, tPatch := t.Version.parts()
	cmp := compare(major, minor, patch, tMajor, tMinor, tPatch)

	switch t.Op {
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case "", "=":
		return cmp == 0
	case "^":
		// Compatible within the leftmost nonzero component.
		if cmp < 0 {
			return false
		}
		if tMajor != 0 {
			return major == tMajor
		}
		return major == 0 && minor == tMinor
	case "~":
		// Patch-level changes only.
		return cmp >= 0 && major == tMajor && minor == tMinor
	default:
		return false
	}
}

// AtLeast reports whether every version the constraint allows is >= the
// given floor. It is approximate: it checks the constraint's lower bound
// terms rather than enumerating versions.
func (c *Constraint) AtLeast(major, minor int) bool {
	for _, term := range c.Terms {
		tMajor, tMinor, _ := term.Version.parts()
		switch term.Op {
		case "", "=", "^", "~", ">=":
			if compare(tMajor, tMinor, 0, major, minor, 0) >= 0 {
				return true
			}
		case ">":
			if compare(tMajor, tMinor, 0, major, minor, 0) >= 0 {
				return true
			}
		}
	}
	return false
}
