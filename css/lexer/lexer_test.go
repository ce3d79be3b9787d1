package lexer_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"dynstyle/css/lexer"
)

func collect(t *testing.T, text string) ([]lexer.Token, error) {
	t.Helper()

	l := lexer.New(text)
	var toks []lexer.Token
	for range 1000 {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if tok.Type == lexer.EndOfStream {
			return toks, nil
		}
		toks = append(toks, tok)
	}
	t.Fatal("lexer did not terminate")
	return nil, nil
}

func summary(toks []lexer.Token) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.String())
	}
	return out
}

func TestLexer_Selectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []lexer.TokenType
	}{
		{"type", "div {}", []lexer.TokenType{lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd}},
		{"compound", "div#a.b:hover{}", []lexer.TokenType{
			lexer.TypeSelector, lexer.IDSelector, lexer.ClassSelector, lexer.PseudoClass, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"descendant", "div .b {}", []lexer.TokenType{
			lexer.TypeSelector, lexer.Combinator, lexer.ClassSelector, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"child", "div > p {}", []lexer.TokenType{
			lexer.TypeSelector, lexer.Combinator, lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"lone universal", "* div {}", []lexer.TokenType{
			lexer.UniversalSelector, lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"comma", "div, p {}", []lexer.TokenType{
			lexer.TypeSelector, lexer.Comma, lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"attribute and lang", "div[x=\"1\"]:lang(en) {}", []lexer.TokenType{
			lexer.TypeSelector, lexer.Attribute, lexer.LangAttribute, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"at-rule skipped", "@media screen { div { color: red; } } p {}", []lexer.TokenType{
			lexer.AtRule, lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd,
		}},
		{"comments", "/* a */ div /* b */ { /* c */ }", []lexer.TokenType{
			lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := collect(t, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]lexer.TokenType, 0, len(toks))
			for _, tok := range toks {
				got = append(got, tok.Type)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", summary(toks), tt.want)
			}
		})
	}
}

func TestLexer_TokenText(t *testing.T) {
	toks, err := collect(t, "div#my_id > .my_class:nth-child(4)::after {}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []lexer.Token{
		{Type: lexer.TypeSelector, Text: "div", Offset: 0},
		{Type: lexer.IDSelector, Text: "my_id", Offset: 3},
		{Type: lexer.Combinator, Combinator: lexer.GreaterThan, Offset: 10},
		{Type: lexer.ClassSelector, Text: "my_class", Offset: 12},
		{Type: lexer.PseudoClass, Text: "nth-child(4)", Offset: 21},
		{Type: lexer.PseudoClass, Text: ":after", Offset: 34},
		{Type: lexer.BlockStart, Offset: 42},
		{Type: lexer.BlockEnd, Offset: 43},
	}
	if !slices.Equal(toks, want) {
		t.Errorf("got %v\nwant %v", summary(toks), summary(want))
	}
}

func TestLexer_UnclosedPseudoArguments(t *testing.T) {
	toks, err := collect(t, "div:nth-child(5 { }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) < 2 || toks[1].Type != lexer.PseudoClass || toks[1].Text != "nth-child(5 " {
		t.Errorf("unexpected tokens %v", summary(toks))
	}
}

func TestLexer_Declarations(t *testing.T) {
	toks, err := collect(t, "div { color: red; width : [[ w | 5px ]] ; font-family: \"Times New Roman\", serif }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got [][2]string
	for _, tok := range toks {
		if tok.Type == lexer.Declaration {
			got = append(got, [2]string{tok.Key, strings.TrimSpace(tok.Value)})
		}
	}
	want := [][2]string{
		{"color", "red"},
		{"width", "[[ w | 5px ]]"},
		{"font-family", "\"Times New Roman\", serif"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if last := toks[len(toks)-1]; last.Type != lexer.BlockEnd {
		t.Errorf("last token %v, want BlockEnd", last)
	}
}

func TestLexer_NestedRuleIsLexedAsSelectors(t *testing.T) {
	toks, err := collect(t, "div { p { } }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []lexer.TokenType{
		lexer.TypeSelector, lexer.BlockStart, lexer.TypeSelector, lexer.BlockStart, lexer.BlockEnd, lexer.BlockEnd,
	}
	got := make([]lexer.TokenType, 0, len(toks))
	for _, tok := range toks {
		got = append(got, tok.Type)
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", summary(toks), want)
	}
}

func TestLexer_EndOfStreamRepeats(t *testing.T) {
	l := lexer.New("")
	for range 3 {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Type != lexer.EndOfStream {
			t.Fatalf("got %v, want EndOfStream", tok)
		}
	}
}

func TestLexer_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		line   int
		substr string
	}{
		{"sibling combinator", "div + p {}", 1, "unsupported combinator"},
		{"general sibling", "div ~ p {}", 1, "unsupported combinator"},
		{"missing colon", "div {\n  color red;\n}", 2, "expected ':'"},
		{"bad property name", "div { 12px: red; }", 1, "expected property name"},
		{"dangling dot", "div . {}", 1, "expected class name"},
		{"unclosed attribute", "div[x {}", 1, "unclosed attribute"},
		{"unclosed at-rule", "@media screen { div {}", 1, "unclosed @media"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			var se *lexer.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
			if se.Err.Line != tt.line {
				t.Errorf("line = %d, want %d", se.Err.Line, tt.line)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}
