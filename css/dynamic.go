package css

import (
	"dynstyle/css/property"
)

// Resolve returns the effective property for dp. A binding for dp.ID wins
// when it sets the same key, otherwise the exact default is used. For an
// auto default without a binding ok is false and the layout decides. Bindings
// never apply to a property without a Key.
func (dp *DynamicProperty) Resolve(bindings map[string]property.Property) (prop property.Property, ok bool) {
	if b, found := bindings[dp.ID]; found && dp.Name == "" && b.Key == dp.Key && b.Value != nil {
		return b.Clone(), true
	}
	if dp.Auto {
		return property.Property{}, false
	}
	return dp.Default.Clone(), true
}

// Resolve applies bindings to every declaration of the block, in order.
// Auto declarations without a binding are left out.
func (r RuleBlock) Resolve(bindings map[string]property.Property) []property.Property {
	out := make([]property.Property, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		switch {
		case d.Static != nil:
			out = append(out, d.Static.Clone())
		case d.Dynamic != nil:
			if p, ok := d.Dynamic.Resolve(bindings); ok {
				out = append(out, p)
			}
		}
	}
	return out
}
