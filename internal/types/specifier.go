package types

// PackageSpec identifies one built package: a port name qualified by the
// triplet it was built for.
type PackageSpec struct {
	Name    string
	Triplet string
}

func (s PackageSpec) String() string {
	if s.Triplet == "" {
		return s.Name
	}
	return s.Name + ":" + s.Triplet
}

// ParsedQualifiedSpecifier is the raw result of parsing a qualified
// specifier string: NAME[features]:triplet(platform). Features, Platform
// and Triplet are optional; absence is the zero value.
type ParsedQualifiedSpecifier struct {
	Name     string
	Features []string
	Platform string
	Triplet  string
}

// Dependency is a qualified specifier restricted to dependency position,
// where triplet qualifiers are not allowed.
type Dependency struct {
	Name     string
	Features []string
	Platform string
}
