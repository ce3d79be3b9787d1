package property

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Value is a strongly typed property value. Its String form parses back to
// an equal value for the same key.
type Value interface {
	fmt.Stringer
}

// Property is a single typed declaration, e.g. "text-align: center".
type Property struct {
	Key   Key
	Value Value
}

func (p Property) String() string {
	return p.Key.String() + ": " + p.Value.String()
}

// Clone returns a copy of p sharing no memory with it.
func (p Property) Clone() Property {
	if ff, ok := p.Value.(FontFamily); ok {
		p.Value = slices.Clone(ff)
	}
	return p
}

// Color is a non premultiplied 8 bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// TextAlignment is the horizontal alignment of text.
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var alignments = []string{"left", "center", "right", "justify"}

func (a TextAlignment) String() string {
	if a < 0 || int(a) >= len(alignments) {
		return fmt.Sprintf("TextAlignment(%d)", int(a))
	}
	return alignments[a]
}

// Metric is the unit of a PixelValue.
type Metric int

const (
	MetricNone Metric = iota
	MetricPx
	MetricEm
	MetricPt
	MetricPercent
)

var metrics = []string{"", "px", "em", "pt", "%"}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metrics) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metrics[m]
}

// PixelValue is a length. MetricNone is only produced for unitless
// line-height values.
type PixelValue struct {
	Number float64
	Metric Metric
}

func (v PixelValue) String() string {
	return strconv.FormatFloat(v.Number, 'f', -1, 64) + v.Metric.String()
}

// FontFamily is an ordered list of font names, most preferred first.
type FontFamily []string

func (f FontFamily) String() string {
	names := make([]string, 0, len(f))
	for _, name := range f {
		if strings.ContainsFunc(name, func(r rune) bool {
			return !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
		}) {
			name = `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// Keyword is a value taken from a closed per-property vocabulary.
type Keyword string

func (k Keyword) String() string {
	return string(k)
}

// Number is a plain non-negative number (flex factors).
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
