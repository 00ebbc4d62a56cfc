package core

import (
	"strings"

	"portcullis/internal/types"
)

// Field names of the legacy CONTROL format.
const (
	fieldSource          = "Source"
	fieldVersion         = "Version"
	fieldDescription     = "Description"
	fieldMaintainer      = "Maintainer"
	fieldHomepage        = "Homepage"
	fieldSupports        = "Supports"
	fieldBuildDepends    = "Build-Depends"
	fieldDefaultFeatures = "Default-Features"
	fieldFeature         = "Feature"
)

const (
	typeDependencyList  = "a dependency list"
	typeFeatureNameList = "a feature name list"
)

// ParseControlFile assembles a SourceControlFile from tokenized
// paragraphs: the first paragraph is the core port description, each
// following paragraph one named feature. Schema violations across all
// paragraphs are merged into a single error.
func ParseControlFile(origin string, paragraphs []types.Paragraph) (*types.SourceControlFile, *types.ParseControlErrorInfo) {
	if len(paragraphs) == 0 {
		return nil, &types.ParseControlErrorInfo{
			Name:  origin,
			Error: "a CONTROL file must have at least one paragraph",
		}
	}

	merged := &types.ParseControlErrorInfo{Name: origin}
	var grammarErrors []string

	scf := &types.SourceControlFile{}
	scf.Core = parseSourceParagraph(origin, paragraphs[0], merged, &grammarErrors)
	for _, paragraph := range paragraphs[1:] {
		scf.Features = append(scf.Features, parseFeatureParagraph(origin, paragraph, merged, &grammarErrors))
	}

	merged.Error = strings.Join(grammarErrors, "\n")
	if merged.HasError() {
		return nil, merged
	}
	return scf, nil
}

func parseSourceParagraph(origin string, fields types.Paragraph, merged *types.ParseControlErrorInfo, grammarErrors *[]string) types.SourceParagraph {
	reader := NewFieldReader(fields)
	var out types.SourceParagraph
	out.Name, _ = reader.Required(fieldSource)
	out.Version, _ = reader.Required(fieldVersion)
	out.Description, _ = reader.Optional(fieldDescription)
	out.Maintainer, _ = reader.Optional(fieldMaintainer)
	out.Homepage, _ = reader.Optional(fieldHomepage)
	out.Supports, _ = reader.Optional(fieldSupports)
	out.Dependencies = readDependencyList(reader, fieldBuildDepends, origin, grammarErrors)

	if text, pos := reader.Optional(fieldDefaultFeatures); text != "" {
		features, err := ParseFeatureNameList(text, origin, pos)
		if err != nil {
			reader.TypeMismatch(fieldDefaultFeatures, typeFeatureNameList)
			*grammarErrors = append(*grammarErrors, err.Error())
		} else {
			out.DefaultFeatures = features
		}
	}

	mergeErrorInfo(merged, reader.Finalize(origin))
	return out
}

func parseFeatureParagraph(origin string, fields types.Paragraph, merged *types.ParseControlErrorInfo, grammarErrors *[]string) types.FeatureParagraph {
	reader := NewFieldReader(fields)
	var out types.FeatureParagraph
	out.Name, _ = reader.Required(fieldFeature)
	out.Description, _ = reader.Optional(fieldDescription)
	out.Dependencies = readDependencyList(reader, fieldBuildDepends, origin, grammarErrors)

	mergeErrorInfo(merged, reader.Finalize(origin))
	return out
}

func readDependencyList(reader *FieldReader, field string, origin string, grammarErrors *[]string) []types.Dependency {
	text, pos := reader.Optional(field)
	if text == "" {
		return nil
	}
	deps, err := ParseDependencyList(text, origin, pos)
	if err != nil {
		reader.TypeMismatch(field, typeDependencyList)
		*grammarErrors = append(*grammarErrors, err.Error())
		return nil
	}
	return deps
}

func mergeErrorInfo(into *types.ParseControlErrorInfo, from *types.ParseControlErrorInfo) {
	if from == nil {
		return
	}
	into.MissingFields = append(into.MissingFields, from.MissingFields...)
	into.ExtraFields = append(into.ExtraFields, from.ExtraFields...)
	for field, kind := range from.ExpectedTypes {
		if into.ExpectedTypes == nil {
			into.ExpectedTypes = map[string]string{}
		}
		into.ExpectedTypes[field] = kind
	}
}
