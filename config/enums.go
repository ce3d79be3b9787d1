package config

// Specification of stylesheet dump format.
// ENUM(tree, css, yaml)
type DumpFormat int

// Ext returns file name extension for dumps in this format.
func (f DumpFormat) Ext() string {
	switch f {
	case DumpFormatTree:
		return ".txt"
	case DumpFormatCss:
		return ".css"
	case DumpFormatYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported dump format requested")
	}
}
