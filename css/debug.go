package css

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"

	"dynstyle/utils/debug"
)

func (s SelectorStep) describe() string {
	switch s.Kind {
	case StepUniversal:
		return "universal"
	case StepType:
		return "type " + s.Type.String()
	case StepID:
		return "id " + s.Name
	case StepClass:
		return "class " + s.Name
	case StepDirectChild:
		return "direct child"
	case StepDescendant:
		return "descendant"
	case StepPseudo:
		return "pseudo " + s.Pseudo.String()
	}
	return s.String()
}

// Dump returns a readable tree of the stylesheet.
// It exists solely for manual inspection during debugging and debug reports.
func (s *Stylesheet) Dump() string {
	if s == nil {
		return "<nil Stylesheet>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Stylesheet (%d rules)", len(s.Rules))
	for i, rule := range s.Rules {
		tw.Node(1, fmt.Sprintf("Rule[%d]", i), func(depth int) {
			tw.TextBlock(depth, "Selector", rule.Path.String())
			steps := make([]string, 0, len(rule.Path))
			for _, step := range rule.Path {
				steps = append(steps, step.describe())
			}
			tw.List(depth, "Path", steps)
			decls := make([]string, 0, len(rule.Declarations))
			for _, d := range rule.Declarations {
				switch {
				case d.Dynamic != nil:
					decls = append(decls, "dynamic "+d.String())
				case d.Static != nil:
					decls = append(decls, "static "+d.String())
				}
			}
			tw.List(depth, "Declarations", decls)
		})
	}

	if ids := s.DynamicIDs(); len(ids) > 0 {
		tw.List(0, "Dynamic IDs", ids)
	}
	return tw.String()
}

// DynamicIDs returns distinct ids of all dynamic declarations in natural
// order.
func (s *Stylesheet) DynamicIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, rule := range s.Rules {
		for _, d := range rule.Declarations {
			if d.Dynamic == nil {
				continue
			}
			if _, ok := seen[d.Dynamic.ID]; !ok {
				seen[d.Dynamic.ID] = struct{}{}
				ids = append(ids, d.Dynamic.ID)
			}
		}
	}
	sort.Sort(natural.StringSlice(ids))
	return ids
}

type yamlDeclaration struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value,omitempty"`
	ID       string `yaml:"id,omitempty"`
	Default  string `yaml:"default,omitempty"`
}

type yamlRule struct {
	Selector     string            `yaml:"selector"`
	Path         []string          `yaml:"path,flow"`
	Declarations []yamlDeclaration `yaml:"declarations,omitempty"`
}

type yamlStylesheet struct {
	Rules      []yamlRule `yaml:"rules"`
	DynamicIDs []string   `yaml:"dynamic_ids,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (s *Stylesheet) MarshalYAML() (any, error) {
	out := yamlStylesheet{Rules: make([]yamlRule, 0, len(s.Rules)), DynamicIDs: s.DynamicIDs()}
	for _, rule := range s.Rules {
		yr := yamlRule{Selector: rule.Path.String(), Path: make([]string, 0, len(rule.Path))}
		for _, step := range rule.Path {
			yr.Path = append(yr.Path, step.describe())
		}
		for _, d := range rule.Declarations {
			yd := yamlDeclaration{Property: d.PropertyName()}
			switch {
			case d.Static != nil:
				yd.Value = d.Static.Value.String()
			case d.Dynamic == nil:
				continue
			case d.Dynamic.Auto:
				yd.ID, yd.Default = d.Dynamic.ID, autoDefault
			default:
				yd.ID, yd.Default = d.Dynamic.ID, d.Dynamic.Default.Value.String()
			}
			yr.Declarations = append(yr.Declarations, yd)
		}
		out.Rules = append(out.Rules, yr)
	}
	return out, nil
}
