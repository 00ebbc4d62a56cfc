package core

import (
	"strings"

	"portcullis/internal/types"
)

const (
	fieldPackage      = "Package"
	fieldArchitecture = "Architecture"
	fieldMultiArch    = "Multi-Arch"
	fieldDepends      = "Depends"
)

// ParseBinaryParagraph reads one paragraph of a cached package CONTROL
// file. The Feature field is present only on feature paragraphs.
func ParseBinaryParagraph(origin string, fields types.Paragraph) (types.BinaryParagraph, *types.ParseControlErrorInfo) {
	reader := NewFieldReader(fields)
	var out types.BinaryParagraph
	out.Spec.Name, _ = reader.Required(fieldPackage)
	out.Version, _ = reader.Required(fieldVersion)
	out.Spec.Triplet, _ = reader.Required(fieldArchitecture)
	out.MultiArch, _ = reader.Optional(fieldMultiArch)
	out.Description, _ = reader.Optional(fieldDescription)
	out.Feature, _ = reader.Optional(fieldFeature)

	if text, _ := reader.Optional(fieldDepends); text != "" {
		for _, name := range strings.Split(text, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				out.Depends = append(out.Depends, name)
			}
		}
	}

	if err := reader.Finalize(origin); err != nil {
		return types.BinaryParagraph{}, err
	}
	return out, nil
}

// ParseBinaryControlFile treats the first paragraph as the core package
// and every following paragraph as one installed feature.
func ParseBinaryControlFile(origin string, paragraphs []types.Paragraph) (*types.BinaryControlFile, *types.ParseControlErrorInfo) {
	if len(paragraphs) == 0 {
		return nil, &types.ParseControlErrorInfo{
			Name:  origin,
			Error: "a package CONTROL file must have at least one paragraph",
		}
	}
	bcf := &types.BinaryControlFile{}
	core, err := ParseBinaryParagraph(origin, paragraphs[0])
	if err != nil {
		return nil, err
	}
	bcf.Core = core
	for _, paragraph := range paragraphs[1:] {
		feature, err := ParseBinaryParagraph(origin, paragraph)
		if err != nil {
			return nil, err
		}
		bcf.Features = append(bcf.Features, feature)
	}
	return bcf, nil
}
