package css

// NodeType is the closed set of element names a type selector may use.
//
// ENUM(div, p, img, texture, iframe)
type NodeType int
