package component

import "strings"

// Separator joins the segments of a dotted unit name.
const Separator = "."

// Descriptor identifies one loadable unit by its fully-qualified name.
type Descriptor struct {
	Name string
}

// New returns a descriptor for the given fully-qualified name.
func New(name string) Descriptor {
	return Descriptor{Name: name}
}

// Join builds the fully-qualified name of a direct child of namespace.
func Join(namespace, simple string) string {
	return namespace + Separator + simple
}

// SimpleName returns the last segment of the descriptor's name.
func (d Descriptor) SimpleName() string {
	if i := strings.LastIndex(d.Name, Separator); i >= 0 {
		return d.Name[i+1:]
	}
	return d.Name
}

// Within reports whether the descriptor lives under namespace, that is whether
// its name starts with the namespace followed by a separator.
func (d Descriptor) Within(namespace string) bool {
	return strings.HasPrefix(d.Name, namespace+Separator)
}

func (d Descriptor) String() string {
	return d.Name
}

// ValidSegment reports whether s can be used as one segment of a unit name:
// a letter or underscore followed by letters, digits or underscores.
func ValidSegment(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
