package css

import (
	"strconv"
	"strings"
)

// ParsePseudo parses the text of a pseudo-class without the leading ':'.
func ParsePseudo(text string) (PseudoSelector, error) {
	switch text {
	case "first":
		return PseudoSelector{Kind: PseudoFirst}, nil
	case "last":
		return PseudoSelector{Kind: PseudoLast}, nil
	case "hover":
		return PseudoSelector{Kind: PseudoHover}, nil
	case "active":
		return PseudoSelector{Kind: PseudoActive}, nil
	case "focus":
		return PseudoSelector{Kind: PseudoFocus}, nil
	}

	rest, ok := strings.CutPrefix(text, "nth-child")
	if !ok {
		return PseudoSelector{}, &PseudoSelectorError{Text: text, Err: ErrUnknownSelector}
	}

	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '(' || rest[len(rest)-1] != ')' {
		return PseudoSelector{}, &PseudoSelectorError{Text: text, Err: ErrUnclosedBracesNthChild}
	}

	// a single explicit plus sign is allowed, "+4" is 4
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(rest[1:len(rest)-1]), "+"), 10, 0)
	if err != nil {
		return PseudoSelector{}, &PseudoSelectorError{Text: text, Err: ErrInvalidNthChild, Cause: err}
	}
	return PseudoSelector{Kind: PseudoNthChild, N: uint(n)}, nil
}
