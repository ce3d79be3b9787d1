package css_test

import (
	"reflect"
	"strings"
	"testing"

	"dynstyle/css"
)

const roundTripCSS = `
* { }
div#main > p.note:nth-child(3), img:hover {
    background-color: rgba(10, 20, 30, 0.5);
    color: red;
    text-align: [[ align | center ]];
    width: [[ w | auto ]];
    font-family: "Times New Roman", serif;
    margin-left: -4.5em;
    line-height: 1.25;
    max-width: 50%;
    flex-grow: 2;
    cursor: pointer;
    float: [[ side | auto ]];
}
.a .b:focus {
    border-color: #01020380;
}
`

func TestStylesheet_RoundTrip(t *testing.T) {
	first, err := css.Parse(roundTripCSS)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	text := first.String()
	second, err := css.Parse(text)
	if err != nil {
		t.Fatalf("re-Parse() error = %v\n%s", err, text)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip mismatch:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
	if again := second.String(); again != text {
		t.Errorf("serialization not stable:\n%s\n---\n%s", text, again)
	}
}

func TestStylesheet_RoundTripAdjacentCompounds(t *testing.T) {
	tests := []struct {
		in   string
		want string
		path css.Path
	}{
		{"#a/**/div { }", "#a/**/div {\n}\n", css.Path{css.ID("a"), css.TypeStep(css.NodeTypeDiv)}},
		{"div/**/p { color: red; }", "div/**/p {\n\tcolor: #ff0000;\n}\n", css.Path{css.TypeStep(css.NodeTypeDiv), css.TypeStep(css.NodeTypeP)}},
		{".a/**/*:hover { }", ".a/**/*:hover {\n}\n", css.Path{css.Class("a"), css.Universal(), css.Pseudo(css.PseudoSelector{Kind: css.PseudoHover})}},
		{"div > p { }", "div > p {\n}\n", css.Path{css.TypeStep(css.NodeTypeDiv), css.DirectChild(), css.TypeStep(css.NodeTypeP)}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			first, err := css.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(first.Rules[0].Path, tt.path) {
				t.Fatalf("path = %#v, want %#v", first.Rules[0].Path, tt.path)
			}
			text := first.String()
			if text != tt.want {
				t.Errorf("String() = %q, want %q", text, tt.want)
			}
			second, err := css.Parse(text)
			if err != nil {
				t.Fatalf("re-Parse() error = %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip mismatch:\n%s\n---\n%s", first, second)
			}
		})
	}
}

func TestStylesheet_String(t *testing.T) {
	sheet, err := css.Parse("div#a > p:first { color: red; text-align: [[ t | auto ]]; } { }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := "div#a > p:first {\n" +
		"\tcolor: #ff0000;\n" +
		"\ttext-align: [[ t | auto ]];\n" +
		"}\n" +
		"\n" +
		"{\n" +
		"}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestStylesheet_WriteToCount(t *testing.T) {
	sheet, err := css.Parse("p { width: 10px; } img { height: 0; }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var b strings.Builder
	n, err := sheet.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != b.Len() {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, b.Len())
	}
}
