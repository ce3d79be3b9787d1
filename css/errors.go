package css

import (
	"errors"
	"fmt"
)

var (
	ErrUnclosedBlock = errors.New("unclosed block")
	ErrMalformedCSS  = errors.New("malformed css")

	ErrUnknownSelector        = errors.New("unknown pseudo-selector")
	ErrInvalidNthChild        = errors.New("invalid nth-child argument")
	ErrUnclosedBracesNthChild = errors.New("unclosed braces in nth-child")

	ErrUnclosedBraces  = errors.New("unclosed braces")
	ErrEmptyBraces     = errors.New("empty braces")
	ErrNoID            = errors.New("missing dynamic id")
	ErrNoDefaultCase   = errors.New("missing default case")
	ErrInvalidID       = errors.New("invalid dynamic id")
	ErrUnexpectedValue = errors.New("unexpected value")
)

// ParseError is returned by Parse. Offset is the byte position of the token
// which caused the failure, Err is one of the errors below, a sentinel or a
// *lexer.SyntaxError.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("css: offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedError describes a token which is not allowed in the current parser
// state.
type MalformedError struct {
	Token string
	State string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrMalformedCSS, e.Token, e.State)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedCSS
}

// NodeTypeError reports a type selector naming an unsupported element.
type NodeTypeError struct {
	Text string
}

func (e *NodeTypeError) Error() string {
	return fmt.Sprintf("unknown node type %q, expected one of %v", e.Text, NodeTypeNames())
}

func (e *NodeTypeError) Unwrap() error {
	return ErrInvalidNodeType
}

// PseudoSelectorError reports an unsupported or malformed pseudo-class. Cause
// is the integer conversion failure for an invalid nth-child argument.
type PseudoSelectorError struct {
	Text  string
	Err   error
	Cause error
}

func (e *PseudoSelectorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v %q: %v", e.Err, e.Text, e.Cause)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Text)
}

func (e *PseudoSelectorError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// DeclarationError reports a declaration which could not be classified.
// Cause is the value parser failure behind ErrUnexpectedValue.
type DeclarationError struct {
	Key   string
	Value string
	Err   error
	Cause error
}

func (e *DeclarationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q: %v: %v", e.Key, e.Value, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s: %q: %v", e.Key, e.Value, e.Err)
}

func (e *DeclarationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}
