package css

import (
	"fmt"

	"dynstyle/css/property"
)

// Stylesheet is an ordered list of rule blocks. Order is cascade order and
// equals source order.
type Stylesheet struct {
	Rules []RuleBlock
}

// RuleBlock is one selector path with the declarations applying to it.
type RuleBlock struct {
	Path         Path
	Declarations []Declaration
}

// Path is a selector read left to right, ancestor to target.
type Path []SelectorStep

// StepKind tells which field of SelectorStep is meaningful.
type StepKind int

const (
	StepUniversal StepKind = iota
	StepType
	StepID
	StepClass
	StepDirectChild
	StepDescendant
	StepPseudo
)

// SelectorStep is a single element of a Path. Type is set for StepType, Name
// for StepID and StepClass, Pseudo for StepPseudo.
type SelectorStep struct {
	Kind   StepKind
	Type   NodeType
	Name   string
	Pseudo PseudoSelector
}

// Universal returns the "*" step.
func Universal() SelectorStep { return SelectorStep{Kind: StepUniversal} }

// TypeStep returns a node type step, e.g. "div".
func TypeStep(t NodeType) SelectorStep { return SelectorStep{Kind: StepType, Type: t} }

// ID returns a "#name" step.
func ID(name string) SelectorStep { return SelectorStep{Kind: StepID, Name: name} }

// Class returns a ".name" step.
func Class(name string) SelectorStep { return SelectorStep{Kind: StepClass, Name: name} }

// DirectChild returns the ">" combinator step.
func DirectChild() SelectorStep { return SelectorStep{Kind: StepDirectChild} }

// Descendant returns the whitespace combinator step.
func Descendant() SelectorStep { return SelectorStep{Kind: StepDescendant} }

// Pseudo returns a pseudo-class step.
func Pseudo(ps PseudoSelector) SelectorStep { return SelectorStep{Kind: StepPseudo, Pseudo: ps} }

func (s SelectorStep) isCombinator() bool {
	return s.Kind == StepDirectChild || s.Kind == StepDescendant
}

// PseudoKind enumerates supported pseudo-classes.
type PseudoKind int

const (
	PseudoFirst PseudoKind = iota
	PseudoLast
	PseudoHover
	PseudoActive
	PseudoFocus
	PseudoNthChild
)

var pseudoNames = []string{"first", "last", "hover", "active", "focus", "nth-child"}

func (k PseudoKind) String() string {
	if k < 0 || int(k) >= len(pseudoNames) {
		return fmt.Sprintf("PseudoKind(%d)", int(k))
	}
	return pseudoNames[k]
}

// PseudoSelector is a parsed pseudo-class. N is only used by PseudoNthChild.
type PseudoSelector struct {
	Kind PseudoKind
	N    uint
}

// Declaration holds exactly one of Static or Dynamic. A zero Declaration sets
// nothing.
type Declaration struct {
	Static  *property.Property
	Dynamic *DynamicProperty
}

// Key returns the property key the declaration sets. It is the zero Key for
// a zero Declaration and for a dynamic declaration of a property without a
// Key, see PropertyName.
func (d Declaration) Key() property.Key {
	switch {
	case d.Static != nil:
		return d.Static.Key
	case d.Dynamic != nil:
		return d.Dynamic.Key
	}
	return property.Key(0)
}

// PropertyName returns the name of the property the declaration sets, empty
// for a zero Declaration.
func (d Declaration) PropertyName() string {
	switch {
	case d.Static != nil:
		return d.Static.Key.String()
	case d.Dynamic != nil:
		return d.Dynamic.PropertyName()
	}
	return ""
}

// Clone returns a deep copy of d.
func (d Declaration) Clone() Declaration {
	switch {
	case d.Static != nil:
		p := d.Static.Clone()
		return Declaration{Static: &p}
	case d.Dynamic != nil:
		dp := *d.Dynamic
		dp.Default = dp.Default.Clone()
		return Declaration{Dynamic: &dp}
	}
	return d
}

// DynamicProperty is a declaration whose value is bound at runtime to ID. When
// no binding exists Default is used unless Auto is set, in which case the
// property is left to the layout.
//
// An auto default is accepted for any property name. Name keeps the
// lower-cased name when it is not a known property.Key, Key is zero then and
// no binding applies.
type DynamicProperty struct {
	ID      string
	Key     property.Key
	Name    string
	Auto    bool
	Default property.Property
}

// PropertyName returns Name when set and the name of Key otherwise.
func (dp DynamicProperty) PropertyName() string {
	if dp.Name != "" {
		return dp.Name
	}
	return dp.Key.String()
}

func cloneDeclarations(decls []Declaration) []Declaration {
	if decls == nil {
		return nil
	}
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		out[i] = d.Clone()
	}
	return out
}
