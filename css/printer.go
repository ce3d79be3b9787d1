package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

func (s SelectorStep) String() string {
	switch s.Kind {
	case StepUniversal:
		return "*"
	case StepType:
		return s.Type.String()
	case StepID:
		return "#" + s.Name
	case StepClass:
		return "." + s.Name
	case StepDirectChild:
		return " > "
	case StepDescendant:
		return " "
	case StepPseudo:
		return ":" + s.Pseudo.String()
	default:
		return fmt.Sprintf("SelectorStep(%d)", int(s.Kind))
	}
}

func (p PseudoSelector) String() string {
	if p.Kind == PseudoNthChild {
		return fmt.Sprintf("nth-child(%d)", p.N)
	}
	return p.Kind.String()
}

// compoundBreak separates two compound selectors which have no combinator
// between them, e.g. "div/**/p". Comments are dropped by the lexer.
const compoundBreak = "/**/"

func (p Path) String() string {
	var b strings.Builder
	for i, step := range p {
		if i > 0 && (step.Kind == StepType || step.Kind == StepUniversal) && !p[i-1].isCombinator() {
			b.WriteString(compoundBreak)
		}
		b.WriteString(step.String())
	}
	return b.String()
}

func (d Declaration) String() string {
	switch {
	case d.Static != nil:
		return d.Static.String()
	case d.Dynamic != nil:
		return d.Dynamic.String()
	}
	return ""
}

func (dp DynamicProperty) String() string {
	def := autoDefault
	if !dp.Auto {
		def = dp.Default.Value.String()
	}
	return fmt.Sprintf("%s: %s %s %s %s %s", dp.PropertyName(), dynamicOpen, dp.ID, dynamicSep, def, dynamicClose)
}

func (r RuleBlock) String() string {
	var b strings.Builder
	_, _ = writeRule(&b, r)
	return b.String()
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Parsing the output yields a stylesheet equal to s.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		n, err := writeRule(w, rule)
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the stylesheet as CSS text.
func (s *Stylesheet) String() string {
	var b bytes.Buffer
	_, _ = s.WriteTo(&b)
	return b.String()
}

func writeRule(w io.Writer, r RuleBlock) (int, error) {
	var b strings.Builder
	if path := r.Path.String(); path != "" {
		b.WriteString(path)
		b.WriteByte(' ')
	}
	b.WriteString("{\n")
	for _, d := range r.Declarations {
		b.WriteString("\t")
		b.WriteString(d.String())
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return io.WriteString(w, b.String())
}
