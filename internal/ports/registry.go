package ports

// Registry is one catalog source. A registry explicitly enumerates the
// port names it owns and resolves a name to the directory holding the
// baseline version. Ownership of a name does not guarantee a baseline
// path can be resolved for it.
type Registry interface {
	Name() string

	// Packages returns the port names this registry explicitly
	// enumerates. Enumerating a name is not the same as owning it.
	Packages() []string

	// Owns reports whether this registry owns the port name.
	Owns(name string) bool

	// AllPortNames enumerates every port the registry can supply. Only
	// consulted on a default registry.
	AllPortNames() ([]string, error)

	// BaselinePath resolves the directory of the baseline version of a
	// port. ok is false when the registry cannot materialize the port,
	// which callers treat as a silent skip, not an error.
	BaselinePath(port string) (path string, ok bool)
}
