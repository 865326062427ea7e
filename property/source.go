// Package property exposes parsed options and other settings as string
// properties looked up by exact name.
package property

// Source is a named set of properties.
type Source interface {
	Name() string
	// Property returns the value stored under name.
	Property(name string) (string, bool)
}

// Enumerable is a Source that can list its property names.
type Enumerable interface {
	Source
	PropertyNames() []string
}
