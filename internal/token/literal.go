package token

import "strconv"

type literalKind int

const (
	literalNone literalKind = iota
	literalString
	literalNumber
)

// Literal is the decoded value attached to STRING and NUMBER tokens. It is a
// variant over {absent, string, number}; the zero value is absent. Plain
// fields keep it comparable, so whole Tokens compare with ==.
type Literal struct {
	kind literalKind
	str  string
	num  float64
}

// NoLiteral is the absent literal carried by every non-STRING, non-NUMBER token.
var NoLiteral = Literal{}

func StringLiteral(s string) Literal {
	return Literal{kind: literalString, str: s}
}

func NumberLiteral(n float64) Literal {
	return Literal{kind: literalNumber, num: n}
}

func (l Literal) IsNone() bool {
	return l.kind == literalNone
}

func (l Literal) AsString() (string, bool) {
	return l.str, l.kind == literalString
}

func (l Literal) AsNumber() (float64, bool) {
	return l.num, l.kind == literalNumber
}

// Value unwraps to nil, string or float64, for callers that serialize tokens.
func (l Literal) Value() any {
	switch l.kind {
	case literalString:
		return l.str
	case literalNumber:
		return l.num
	default:
		return nil
	}
}

func (l Literal) String() string {
	switch l.kind {
	case literalString:
		return l.str
	case literalNumber:
		return strconv.FormatFloat(l.num, 'g', -1, 64)
	default:
		return "<nil>"
	}
}
