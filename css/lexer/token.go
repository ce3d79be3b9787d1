package lexer

import "fmt"

// TokenType is the kind of a selector or declaration level token.
type TokenType int

const (
	EndOfStream TokenType = iota
	BlockStart
	BlockEnd
	Comma
	UniversalSelector
	TypeSelector
	IDSelector
	ClassSelector
	Combinator
	PseudoClass
	Declaration
	Attribute
	LangAttribute
	AtRule
)

var tokenNames = [...]string{
	EndOfStream:       "end of stream",
	BlockStart:        "block start",
	BlockEnd:          "block end",
	Comma:             "comma",
	UniversalSelector: "universal selector",
	TypeSelector:      "type selector",
	IDSelector:        "id selector",
	ClassSelector:     "class selector",
	Combinator:        "combinator",
	PseudoClass:       "pseudo-class",
	Declaration:       "declaration",
	Attribute:         "attribute selector",
	LangAttribute:     "lang selector",
	AtRule:            "at-rule",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

// CombinatorKind distinguishes the two supported combinators.
type CombinatorKind int

const (
	Space CombinatorKind = iota
	GreaterThan
)

func (c CombinatorKind) String() string {
	if c == GreaterThan {
		return ">"
	}
	return " "
}

// Token is a single lexer output. Text holds the selector name (without
// '#' or '.'), the pseudo-class text (without ':'), or the source of an
// ignored attribute, lang or at-rule construct. Key and Value are only set
// for declarations, Value is the raw untrimmed source text.
type Token struct {
	Type       TokenType
	Text       string
	Combinator CombinatorKind
	Key        string
	Value      string
	Offset     int
}

func (t Token) String() string {
	switch t.Type {
	case Declaration:
		return fmt.Sprintf("%s %q: %q", t.Type, t.Key, t.Value)
	case Combinator:
		return fmt.Sprintf("%s %q", t.Type, t.Combinator.String())
	case EndOfStream, BlockStart, BlockEnd, Comma, UniversalSelector:
		return t.Type.String()
	default:
		return fmt.Sprintf("%s %q", t.Type, t.Text)
	}
}
