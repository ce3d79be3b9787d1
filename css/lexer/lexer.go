// Package lexer splits CSS text into the selector and declaration tokens
// consumed by the stylesheet builder. Low level tokenization is done by
// tdewolff's CSS3 lexer, this package only groups its output.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SyntaxError is a lexer level error. Err carries line, column and the
// offending source line.
type SyntaxError struct {
	Offset int
	Err    *parse.Error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s on line %d and column %d", e.Err.Message, e.Err.Line, e.Err.Column)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type lexeme struct {
	tt     css.TokenType
	data   string
	offset int
}

// Lexer produces Tokens from CSS text. It is not safe for concurrent use.
type Lexer struct {
	src   string
	items []lexeme
	end   int
	err   error

	pos   int
	depth int
	queue []Token

	// compound is set while the last emitted token belongs to a compound
	// selector, universal when that compound is a lone '*'.
	compound  bool
	universal bool
	// inside a block, items before selectorsUntil form a nested rule prelude
	selectorsUntil int
}

// New prepares a lexer for text. The whole input is tokenized upfront, errors
// are reported by Next once the tokens preceding them have been consumed.
func New(text string) *Lexer {
	l := &Lexer{src: text}

	lx := css.NewLexer(parse.NewInputString(text))
	offset := 0
	for {
		tt, data := lx.Next()
		if tt == css.ErrorToken {
			if err := lx.Err(); err != nil && !errors.Is(err, io.EOF) {
				l.err = l.errorf(offset, "%v", err)
			} else if offset < len(text) {
				l.err = l.errorf(offset, "unexpected character %q", text[offset])
			}
			break
		}
		if tt != css.CommentToken {
			l.items = append(l.items, lexeme{tt: tt, data: string(data), offset: offset})
		}
		offset += len(data)
	}
	l.end = offset
	return l
}

// Next returns the next token. After the input is exhausted it keeps
// returning EndOfStream, after an error it keeps returning that error.
func (l *Lexer) Next() (Token, error) {
	for len(l.queue) == 0 {
		if err := l.advance(); err != nil {
			return Token{}, err
		}
	}
	tok := l.queue[0]
	l.queue = l.queue[1:]
	return tok, nil
}

func (l *Lexer) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{
		Offset: offset,
		Err:    parse.NewError(strings.NewReader(l.src), offset, format, args...),
	}
}

func (l *Lexer) emit(tok Token, compound bool) {
	l.queue = append(l.queue, tok)
	l.compound = compound
	l.universal = tok.Type == UniversalSelector
}

func (l *Lexer) advance() error {
	if l.pos >= len(l.items) {
		if l.err != nil {
			return l.err
		}
		l.emit(Token{Type: EndOfStream, Offset: l.end}, false)
		return nil
	}
	if l.depth == 0 || l.pos < l.selectorsUntil {
		return l.selector()
	}
	return l.statement()
}

func (l *Lexer) selector() error {
	it := l.items[l.pos]
	l.pos++

	switch it.tt {
	case css.WhitespaceToken:
		// "* div" stays [*, div]: whitespace after a lone universal selector
		// is not a combinator
		if l.compound && !l.universal && l.startsCompound() {
			l.emit(Token{Type: Combinator, Combinator: Space, Offset: it.offset}, false)
		}
	case css.IdentToken:
		l.emit(Token{Type: TypeSelector, Text: it.data, Offset: it.offset}, true)
	case css.HashToken:
		l.emit(Token{Type: IDSelector, Text: it.data[1:], Offset: it.offset}, true)
	case css.DelimToken:
		return l.delim(it)
	case css.ColonToken:
		return l.pseudo(it)
	case css.LeftBracketToken:
		return l.attribute(it)
	case css.AtKeywordToken:
		return l.atRule(it)
	case css.CommaToken:
		l.emit(Token{Type: Comma, Offset: it.offset}, false)
	case css.LeftBraceToken:
		l.depth++
		l.emit(Token{Type: BlockStart, Offset: it.offset}, false)
	case css.RightBraceToken:
		l.closeBlock(it)
	case css.CDOToken, css.CDCToken:
	default:
		return l.errorf(it.offset, "unexpected %s %q in selector", it.tt, it.data)
	}
	return nil
}

// startsCompound reports whether the next non whitespace item begins a
// compound selector.
func (l *Lexer) startsCompound() bool {
	for _, it := range l.items[l.pos:] {
		switch it.tt {
		case css.WhitespaceToken:
			continue
		case css.IdentToken, css.HashToken, css.ColonToken:
			return true
		case css.DelimToken:
			return it.data == "." || it.data == "*"
		}
		return false
	}
	return false
}

func (l *Lexer) delim(it lexeme) error {
	switch it.data {
	case ".":
		if l.pos < len(l.items) && l.items[l.pos].tt == css.IdentToken {
			name := l.items[l.pos]
			l.pos++
			l.emit(Token{Type: ClassSelector, Text: name.data, Offset: it.offset}, true)
			return nil
		}
		return l.errorf(it.offset, "expected class name after '.'")
	case "*":
		l.emit(Token{Type: UniversalSelector, Offset: it.offset}, true)
	case ">":
		l.emit(Token{Type: Combinator, Combinator: GreaterThan, Offset: it.offset}, false)
	case "+", "~":
		return l.errorf(it.offset, "unsupported combinator %q", it.data)
	default:
		return l.errorf(it.offset, "unexpected %q in selector", it.data)
	}
	return nil
}

func (l *Lexer) pseudo(colon lexeme) error {
	prefix := ""
	if l.pos < len(l.items) && l.items[l.pos].tt == css.ColonToken {
		// pseudo-elements are passed on and rejected as unknown pseudo-classes
		prefix = ":"
		l.pos++
	}
	if l.pos >= len(l.items) {
		return l.errorf(colon.offset, "expected pseudo-class after ':'")
	}

	it := l.items[l.pos]
	l.pos++
	switch it.tt {
	case css.IdentToken:
		l.emit(Token{Type: PseudoClass, Text: prefix + it.data, Offset: colon.offset}, true)
	case css.FunctionToken:
		tt := PseudoClass
		if prefix == "" && strings.EqualFold(it.data, "lang(") {
			tt = LangAttribute
		}
		l.emit(Token{Type: tt, Text: prefix + l.arguments(it), Offset: colon.offset}, true)
	default:
		return l.errorf(it.offset, "expected pseudo-class name after ':', got %q", it.data)
	}
	return nil
}

// arguments collects the raw text of a functional pseudo-class up to the
// matching ')'. At a brace, a comma or the end of input it stops with the
// parenthesis left open.
func (l *Lexer) arguments(fn lexeme) string {
	var sb strings.Builder
	sb.WriteString(fn.data)
	for depth := 1; depth > 0 && l.pos < len(l.items); l.pos++ {
		it := l.items[l.pos]
		switch it.tt {
		case css.LeftBraceToken, css.RightBraceToken, css.CommaToken:
			return sb.String()
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
		sb.WriteString(it.data)
	}
	return sb.String()
}

func (l *Lexer) attribute(open lexeme) error {
	var sb strings.Builder
	sb.WriteString(open.data)
	for l.pos < len(l.items) {
		it := l.items[l.pos]
		if it.tt == css.LeftBraceToken || it.tt == css.RightBraceToken {
			break
		}
		l.pos++
		sb.WriteString(it.data)
		if it.tt == css.RightBracketToken {
			l.emit(Token{Type: Attribute, Text: sb.String(), Offset: open.offset}, true)
			return nil
		}
	}
	return l.errorf(open.offset, "unclosed attribute selector")
}

// atRule skips an at-rule: up to ';' or through its balanced block.
func (l *Lexer) atRule(at lexeme) error {
	tok := Token{Type: AtRule, Text: at.data, Offset: at.offset}
	depth := 0
	for l.pos < len(l.items) {
		it := l.items[l.pos]
		l.pos++
		switch it.tt {
		case css.SemicolonToken:
			if depth == 0 {
				l.emit(tok, false)
				return nil
			}
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			if depth == 0 {
				// closes the enclosing declaration block
				l.pos--
				l.emit(tok, false)
				return nil
			}
			if depth--; depth == 0 {
				l.emit(tok, false)
				return nil
			}
		}
	}
	if depth > 0 {
		return l.errorf(at.offset, "unclosed %s block", at.data)
	}
	l.emit(tok, false)
	return nil
}

func (l *Lexer) closeBlock(it lexeme) {
	if l.depth > 0 {
		l.depth--
	}
	l.emit(Token{Type: BlockEnd, Offset: it.offset}, false)
}

// statement lexes one item of a declaration block.
func (l *Lexer) statement() error {
	it := l.items[l.pos]
	switch it.tt {
	case css.WhitespaceToken, css.SemicolonToken, css.CDOToken, css.CDCToken:
		l.pos++
		return nil
	case css.RightBraceToken:
		l.pos++
		l.closeBlock(it)
		return nil
	case css.AtKeywordToken:
		l.pos++
		return l.atRule(it)
	}

	end := l.pos
	for end < len(l.items) && !isStatementEnd(l.items[end].tt) {
		end++
	}
	if end < len(l.items) && l.items[end].tt == css.LeftBraceToken {
		// nested rule, its prelude is passed on as selectors
		l.compound, l.universal = false, false
		l.selectorsUntil = end + 1
		return l.selector()
	}
	return l.declaration(end)
}

func isStatementEnd(tt css.TokenType) bool {
	return tt == css.SemicolonToken || tt == css.RightBraceToken || tt == css.LeftBraceToken
}

func (l *Lexer) declaration(end int) error {
	name := l.items[l.pos]
	if name.tt != css.IdentToken {
		return l.errorf(name.offset, "expected property name, got %q", name.data)
	}

	i := l.pos + 1
	for i < end && l.items[i].tt == css.WhitespaceToken {
		i++
	}
	if i >= end || l.items[i].tt != css.ColonToken {
		return l.errorf(name.offset, "expected ':' after property name %q", name.data)
	}

	var sb strings.Builder
	for _, it := range l.items[i+1 : end] {
		sb.WriteString(it.data)
	}
	l.emit(Token{Type: Declaration, Key: name.data, Value: sb.String(), Offset: name.offset}, false)

	l.pos = end
	if end < len(l.items) && l.items[end].tt == css.SemicolonToken {
		l.pos++
	}
	return nil
}
