package css

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"dynstyle/css/lexer"
	"dynstyle/css/property"
)

// Parser turns CSS text into a Stylesheet. It keeps no state between calls
// and may be used from several goroutines.
type Parser struct {
	log    *zap.Logger
	values ValueParser
}

// Option configures a Parser.
type Option func(*Parser)

// WithValueParser replaces property.FromKV as the typed value parser.
func WithValueParser(vp ValueParser) Option {
	return func(p *Parser) {
		if vp != nil {
			p.values = vp
		}
	}
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser"), values: property.FromKV}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser(nil)

// Parse parses text with a parser which does not log.
func Parse(text string) (*Stylesheet, error) {
	return defaultParser.Parse([]byte(text))
}

// Parse parses CSS text into a Stylesheet. The optional source parameter
// identifies what's being parsed (for debug logging). The first error aborts
// parsing, it is always a *ParseError.
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
	}
	log.Debug("Parsing CSS", zap.Int("bytes", len(data)))

	b := &builder{log: log, values: p.values, sheet: &Stylesheet{}}
	lx := lexer.New(string(data))
	for {
		tok, err := lx.Next()
		if err != nil {
			offset := len(data)
			var se *lexer.SyntaxError
			if errors.As(err, &se) {
				offset = se.Offset
			}
			return nil, &ParseError{Offset: offset, Err: err}
		}
		if tok.Type == lexer.EndOfStream {
			break
		}
		if err := b.transition(tok); err != nil {
			return nil, &ParseError{Offset: tok.Offset, Err: err}
		}
	}
	if b.nesting != 0 {
		return nil, &ParseError{Offset: len(data), Err: ErrUnclosedBlock}
	}

	log.Debug("Parsed CSS", zap.Int("rules", len(b.sheet.Rules)))
	return b.sheet, nil
}

type blockState int

const (
	outsideBlock blockState = iota
	insideBlock
)

func (s blockState) String() string {
	if s == insideBlock {
		return "inside block"
	}
	return "outside block"
}

// builder accumulates rule blocks while tokens are fed to transition.
type builder struct {
	log    *zap.Logger
	values ValueParser

	state   blockState
	nesting int
	pending []Path // comma separated paths of the current rule
	path    Path
	decls   []Declaration
	sheet   *Stylesheet
}

func (b *builder) transition(tok lexer.Token) error {
	switch tok.Type {
	case lexer.Attribute, lexer.LangAttribute, lexer.AtRule:
		b.log.Debug("Ignoring unsupported CSS construct", zap.Stringer("token", tok), zap.Int("offset", tok.Offset))
		return nil
	}

	switch b.state {
	case outsideBlock:
		switch tok.Type {
		case lexer.BlockStart:
			b.pushPath()
			b.state = insideBlock
			b.nesting++
			return nil
		case lexer.Comma:
			b.pushPath()
			return nil
		case lexer.UniversalSelector, lexer.TypeSelector, lexer.IDSelector, lexer.ClassSelector,
			lexer.Combinator, lexer.PseudoClass:
			step, err := selectorStep(tok)
			if err != nil {
				return err
			}
			b.path = append(b.path, step)
			return nil
		case lexer.Declaration, lexer.BlockEnd:
			return b.malformed(tok)
		}

	case insideBlock:
		switch tok.Type {
		case lexer.Declaration:
			decl, err := classify(tok.Key, tok.Value, b.values)
			if err != nil {
				return err
			}
			b.decls = append(b.decls, decl)
			return nil
		case lexer.BlockEnd:
			b.closeBlock()
			return nil
		case lexer.BlockStart, lexer.Comma, lexer.UniversalSelector, lexer.TypeSelector, lexer.IDSelector,
			lexer.ClassSelector, lexer.Combinator, lexer.PseudoClass:
			return b.malformed(tok)
		}
	}
	return fmt.Errorf("%w: unexpected %s %s", ErrMalformedCSS, tok.Type, b.state)
}

func (b *builder) pushPath() {
	b.pending = append(b.pending, b.path)
	b.path = nil
}

// closeBlock emits one rule block per pending path, each with its own copy
// of the declarations.
func (b *builder) closeBlock() {
	b.nesting--
	for _, path := range b.pending {
		b.sheet.Rules = append(b.sheet.Rules, RuleBlock{Path: path, Declarations: cloneDeclarations(b.decls)})
	}
	b.pending, b.path, b.decls = nil, nil, nil
	b.state = outsideBlock
}

func (b *builder) malformed(tok lexer.Token) error {
	return &MalformedError{Token: tok.Type.String(), State: b.state.String()}
}

func selectorStep(tok lexer.Token) (SelectorStep, error) {
	switch tok.Type {
	case lexer.UniversalSelector:
		return Universal(), nil
	case lexer.TypeSelector:
		nt, err := ParseNodeType(tok.Text)
		if err != nil {
			return SelectorStep{}, &NodeTypeError{Text: tok.Text}
		}
		return TypeStep(nt), nil
	case lexer.IDSelector:
		return ID(tok.Text), nil
	case lexer.ClassSelector:
		return Class(tok.Text), nil
	case lexer.Combinator:
		if tok.Combinator == lexer.GreaterThan {
			return DirectChild(), nil
		}
		return Descendant(), nil
	case lexer.PseudoClass:
		ps, err := ParsePseudo(tok.Text)
		if err != nil {
			return SelectorStep{}, err
		}
		return Pseudo(ps), nil
	}
	return SelectorStep{}, fmt.Errorf("%w: %s is not a selector", ErrMalformedCSS, tok.Type)
}
