package types

// BinaryParagraph describes one paragraph of an already-built cached
// package: the core package or one of its features.
type BinaryParagraph struct {
	Spec        PackageSpec
	Version     string
	Description string
	MultiArch   string
	Feature     string
	Depends     []string
}

// BinaryControlFile is the CONTROL contents of a cached package tree.
type BinaryControlFile struct {
	Core     BinaryParagraph
	Features []BinaryParagraph
}
