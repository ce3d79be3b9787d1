package property

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid value")
)

// ValueError reports a key/value pair which could not be converted into a
// typed Property.
type ValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Key, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// LookupKey resolves a property name, ignoring case and surrounding space.
func LookupKey(key string) (Key, error) {
	k, err := ParseKey(strings.ToLower(strings.TrimSpace(key)))
	if err != nil {
		return k, fmt.Errorf("%w: %w", ErrUnknownProperty, err)
	}
	return k, nil
}

// FromKV converts a raw CSS key and value into a typed Property.
func FromKV(key, value string) (Property, error) {
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)

	k, err := LookupKey(key)
	if err != nil {
		return Property{}, &ValueError{Key: key, Value: value, Err: err}
	}
	if value == "" {
		return Property{}, &ValueError{Key: key, Value: value, Err: fmt.Errorf("%w: empty", ErrInvalidValue)}
	}

	var v Value
	switch k.kind() {
	case kindColor:
		v, err = parseColor(value)
	case kindAlignment:
		v, err = parseAlignment(value)
	case kindFontFamily:
		v, err = parseFontFamily(value)
	case kindLength:
		v, err = parseLength(k, value)
	case kindKeyword:
		v, err = parseKeyword(k, value)
	case kindNumber:
		v, err = parseNumber(value)
	}
	if err != nil {
		return Property{}, &ValueError{Key: key, Value: value, Err: err}
	}
	return Property{Key: k, Value: v}, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

func parseColor(value string) (Value, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return Color{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}, nil
}

// channel rounds instead of truncating so that hex output parses back to the
// same byte.
func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func parseAlignment(value string) (Value, error) {
	if i := slices.Index(alignments, strings.ToLower(value)); i >= 0 {
		return TextAlignment(i), nil
	}
	return nil, invalid("expected one of %s", strings.Join(alignments, ", "))
}

func parseFontFamily(value string) (Value, error) {
	var ff FontFamily
	for name := range strings.SplitSeq(value, ",") {
		name = unquote(strings.TrimSpace(name))
		if name == "" {
			return nil, invalid("empty font name")
		}
		ff = append(ff, name)
	}
	return ff, nil
}

// parseLength accepts px, em, pt and percentages. A bare zero is read as
// pixels, other bare numbers only make sense for line-height.
func parseLength(k Key, value string) (Value, error) {
	b := []byte(value)
	n, u := parse.Dimension(b)
	if n == 0 || n+u != len(b) {
		return nil, invalid("not a length")
	}
	num, m := strconv.ParseFloat(b[:n])
	if m != n {
		return nil, invalid("not a number")
	}
	if num < 0 && k != KeyLetterSpacing && !strings.HasPrefix(k.String(), "margin-") {
		return nil, invalid("negative length")
	}

	var metric Metric
	switch unit := strings.ToLower(string(b[n:])); unit {
	case "px":
		metric = MetricPx
	case "em":
		metric = MetricEm
	case "pt":
		metric = MetricPt
	case "%":
		metric = MetricPercent
	case "":
		switch {
		case k == KeyLineHeight:
			metric = MetricNone
		case num == 0:
			metric = MetricPx
		default:
			return nil, invalid("missing unit")
		}
	default:
		return nil, invalid("unsupported unit %q", unit)
	}
	return PixelValue{Number: num, Metric: metric}, nil
}

func parseKeyword(k Key, value string) (Value, error) {
	value = strings.ToLower(value)
	if slices.Contains(keywords[k], value) {
		return Keyword(value), nil
	}
	return nil, invalid("expected one of %s", strings.Join(keywords[k], ", "))
}

func parseNumber(value string) (Value, error) {
	num, n := strconv.ParseFloat([]byte(value))
	if n == 0 || n != len(value) {
		return nil, invalid("not a number")
	}
	if num < 0 {
		return nil, invalid("negative number")
	}
	return Number(num), nil
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return strings.ReplaceAll(s[1:len(s)-1], `\`+s[:1], s[:1])
	}
	return s
}
