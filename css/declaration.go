package css

import (
	"strings"

	"dynstyle/css/property"
)

// ValueParser converts a raw key and value into a typed property. It is used
// for static declarations, dynamic defaults and to decide whether a dynamic
// id could be mistaken for a literal value.
type ValueParser func(key, value string) (property.Property, error)

const (
	dynamicOpen  = "[["
	dynamicClose = "]]"
	dynamicSep   = "|"
	autoDefault  = "auto"
)

// ClassifyDeclaration decides whether value is a literal or a dynamic
// "[[ id | default ]]" placeholder and parses it accordingly.
func ClassifyDeclaration(key, value string) (Declaration, error) {
	return classify(key, value, property.FromKV)
}

func classify(key, value string, parseValue ValueParser) (Declaration, error) {
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)

	fail := func(err, cause error) (Declaration, error) {
		return Declaration{}, &DeclarationError{Key: key, Value: value, Err: err, Cause: cause}
	}

	opened := strings.HasPrefix(value, dynamicOpen)
	closed := strings.HasSuffix(value, dynamicClose)
	switch {
	case opened != closed:
		return fail(ErrUnclosedBraces, nil)
	case !opened:
		prop, err := parseValue(key, value)
		if err != nil {
			return fail(ErrUnexpectedValue, err)
		}
		return Declaration{Static: &prop}, nil
	}

	inner := strings.TrimSpace(value[len(dynamicOpen) : len(value)-len(dynamicClose)])
	isLiteral := func(s string) bool {
		_, err := parseValue(key, s)
		return err == nil
	}

	id, def, found := strings.Cut(inner, dynamicSep)
	if !found {
		switch {
		case id == "":
			return fail(ErrEmptyBraces, nil)
		case isLiteral(id):
			return fail(ErrNoID, nil)
		}
		return fail(ErrNoDefaultCase, nil)
	}

	id, def = strings.TrimSpace(id), strings.TrimSpace(def)
	switch {
	case id == "" && def == "":
		return fail(ErrEmptyBraces, nil)
	case id == "":
		return fail(ErrNoID, nil)
	case def == "":
		return fail(ErrNoDefaultCase, nil)
	}

	if id[0] >= '0' && id[0] <= '9' || isLiteral(id) {
		return fail(ErrInvalidID, nil)
	}

	if def == autoDefault {
		dp := &DynamicProperty{ID: id, Auto: true}
		if k, err := property.LookupKey(key); err == nil {
			dp.Key = k
		} else {
			dp.Name = strings.ToLower(key)
		}
		return Declaration{Dynamic: dp}, nil
	}

	prop, err := parseValue(key, def)
	if err != nil {
		return fail(ErrUnexpectedValue, err)
	}
	return Declaration{Dynamic: &DynamicProperty{ID: id, Key: prop.Key, Default: prop}}, nil
}
