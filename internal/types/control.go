package types

// SourceParagraph is the core description of a port: the first paragraph
// of a CONTROL file or the top-level fields of a manifest.
type SourceParagraph struct {
	Name            string
	Version         string
	Description     string
	Maintainer      string
	Homepage        string
	Supports        string
	Dependencies    []Dependency
	DefaultFeatures []string
}

// FeatureParagraph describes one optional named sub-component of a port.
type FeatureParagraph struct {
	Name         string
	Description  string
	Dependencies []Dependency
}

// SourceControlFile is the normalized port description produced by the
// loader, immutable once parsed.
type SourceControlFile struct {
	Core     SourceParagraph
	Features []FeatureParagraph
}

// FeatureDescriptions maps feature name to its description text.
func (f *SourceControlFile) FeatureDescriptions() map[string]string {
	out := make(map[string]string, len(f.Features))
	for _, feature := range f.Features {
		out[feature.Name] = feature.Description
	}
	return out
}

// FindFeature returns the named feature paragraph, or nil.
func (f *SourceControlFile) FindFeature(name string) *FeatureParagraph {
	for i := range f.Features {
		if f.Features[i].Name == name {
			return &f.Features[i]
		}
	}
	return nil
}

// SourceControlFileAndLocation pairs a parsed port with the directory it
// was loaded from.
type SourceControlFileAndLocation struct {
	SourceControlFile *SourceControlFile
	Location          string
}
