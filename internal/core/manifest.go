package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"portcullis/internal/types"
)

// Manifest keys understood by the mapping below. Keys beginning with '$'
// are author comments and ignored.
const (
	manifestName            = "name"
	manifestVersion         = "version"
	manifestVersionSemver   = "version-semver"
	manifestVersionDate     = "version-date"
	manifestVersionString   = "version-string"
	manifestDescription     = "description"
	manifestMaintainers     = "maintainers"
	manifestHomepage        = "homepage"
	manifestSupports        = "supports"
	manifestDependencies    = "dependencies"
	manifestDefaultFeatures = "default-features"
	manifestFeatures        = "features"
)

// ParseManifestDocument parses manifest text as a structured JSON
// document and maps it onto a SourceControlFile. The document must have
// a keyed object at the top level.
func ParseManifestDocument(origin string, text string) (*types.SourceControlFile, *types.ParseControlErrorInfo) {
	if !gjson.Valid(text) {
		return nil, &types.ParseControlErrorInfo{
			Name:  origin,
			Error: fmt.Sprintf("%s: failed to parse manifest as a JSON document", origin),
		}
	}
	document := gjson.Parse(text)
	if !document.IsObject() {
		return nil, &types.ParseControlErrorInfo{
			Name:  origin,
			Error: "Manifest files must have a top-level object",
		}
	}
	return ParseManifestObject(origin, document)
}

// manifestReader mirrors the accumulate-then-report protocol of
// FieldReader for a JSON object: every field is inspected regardless of
// earlier failures and one composite error is produced at the end.
type manifestReader struct {
	origin  string
	object  map[string]gjson.Result
	claimed map[string]bool
	info    *types.ParseControlErrorInfo
	errors  []string
}

func newManifestReader(origin string, document gjson.Result) *manifestReader {
	object := map[string]gjson.Result{}
	document.ForEach(func(key, value gjson.Result) bool {
		object[key.String()] = value
		return true
	})
	return &manifestReader{
		origin:  origin,
		object:  object,
		claimed: map[string]bool{},
		info:    &types.ParseControlErrorInfo{Name: origin},
	}
}

func (r *manifestReader) get(key string) (gjson.Result, bool) {
	value, ok := r.object[key]
	if ok {
		r.claimed[key] = true
	}
	return value, ok
}

func (r *manifestReader) requiredString(key string) string {
	value, ok := r.get(key)
	if !ok {
		r.info.MissingFields = append(r.info.MissingFields, key)
		return ""
	}
	if value.Type != gjson.String {
		r.typeMismatch(key, "a string")
		return ""
	}
	return value.String()
}

func (r *manifestReader) optionalString(key string) string {
	value, ok := r.get(key)
	if !ok {
		return ""
	}
	if value.Type != gjson.String {
		r.typeMismatch(key, "a string")
		return ""
	}
	return value.String()
}

// optionalParagraph accepts a string or an array of strings joined with
// newlines, the manifest encoding for multi-line description fields.
func (r *manifestReader) optionalParagraph(key string) string {
	value, ok := r.get(key)
	if !ok {
		return ""
	}
	switch {
	case value.Type == gjson.String:
		return value.String()
	case value.IsArray():
		var lines []string
		bad := false
		value.ForEach(func(_, line gjson.Result) bool {
			if line.Type != gjson.String {
				bad = true
				return false
			}
			lines = append(lines, line.String())
			return true
		})
		if bad {
			r.typeMismatch(key, "a string or array of strings")
			return ""
		}
		return strings.Join(lines, "\n")
	default:
		r.typeMismatch(key, "a string or array of strings")
		return ""
	}
}

func (r *manifestReader) typeMismatch(key string, kind string) {
	if r.info.ExpectedTypes == nil {
		r.info.ExpectedTypes = map[string]string{}
	}
	r.info.ExpectedTypes[key] = kind
}

func (r *manifestReader) addError(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *manifestReader) finalize() *types.ParseControlErrorInfo {
	for key := range r.object {
		if r.claimed[key] || strings.HasPrefix(key, "$") {
			continue
		}
		r.info.ExtraFields = append(r.info.ExtraFields, key)
	}
	sort.Strings(r.info.ExtraFields)
	r.info.Error = strings.Join(r.errors, "\n")
	if r.info.HasError() {
		return r.info
	}
	return nil
}

// ParseManifestObject maps a top-level manifest object onto a
// SourceControlFile. Exactly one of the version keys must be present.
func ParseManifestObject(origin string, document gjson.Result) (*types.SourceControlFile, *types.ParseControlErrorInfo) {
	reader := newManifestReader(origin, document)

	scf := &types.SourceControlFile{}
	scf.Core.Name = reader.requiredString(manifestName)
	scf.Core.Version = reader.readVersion()
	scf.Core.Description = reader.optionalParagraph(manifestDescription)
	scf.Core.Maintainer = reader.optionalParagraph(manifestMaintainers)
	scf.Core.Homepage = reader.optionalString(manifestHomepage)
	scf.Core.Supports = reader.optionalString(manifestSupports)
	scf.Core.Dependencies = reader.readDependencies(manifestDependencies)
	scf.Core.DefaultFeatures = reader.readFeatureNames(manifestDefaultFeatures)
	scf.Features = reader.readFeatures()

	if err := reader.finalize(); err != nil {
		return nil, err
	}
	return scf, nil
}

// readVersion claims whichever version key is present. Missing and
// duplicated version keys are both schema errors.
func (r *manifestReader) readVersion() string {
	keys := []string{manifestVersion, manifestVersionSemver, manifestVersionDate, manifestVersionString}
	version := ""
	seen := 0
	for _, key := range keys {
		value, ok := r.get(key)
		if !ok {
			continue
		}
		seen++
		if value.Type != gjson.String {
			r.typeMismatch(key, "a string")
			continue
		}
		version = value.String()
	}
	switch {
	case seen == 0:
		r.info.MissingFields = append(r.info.MissingFields, manifestVersion)
	case seen > 1:
		r.addError("manifest specifies more than one version field")
	}
	return version
}

func (r *manifestReader) readFeatureNames(key string) []string {
	value, ok := r.get(key)
	if !ok {
		return nil
	}
	if !value.IsArray() {
		r.typeMismatch(key, "an array of feature names")
		return nil
	}
	var names []string
	value.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			r.typeMismatch(key, "an array of feature names")
			return false
		}
		names = append(names, item.String())
		return true
	})
	return names
}

// readDependencies accepts the two manifest encodings of a dependency:
// a bare name string or an object with name/features/platform keys.
func (r *manifestReader) readDependencies(key string) []types.Dependency {
	value, ok := r.get(key)
	if !ok {
		return nil
	}
	if !value.IsArray() {
		r.typeMismatch(key, "an array of dependencies")
		return nil
	}
	var deps []types.Dependency
	value.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.Type == gjson.String:
			deps = append(deps, types.Dependency{Name: item.String()})
		case item.IsObject():
			dep := types.Dependency{Name: item.Get("name").String()}
			if dep.Name == "" {
				r.addError("a dependency object must have a name")
				return true
			}
			item.Get("features").ForEach(func(_, feature gjson.Result) bool {
				dep.Features = append(dep.Features, feature.String())
				return true
			})
			dep.Platform = item.Get("platform").String()
			deps = append(deps, dep)
		default:
			r.typeMismatch(key, "an array of dependency names or objects")
			return false
		}
		return true
	})
	return deps
}

func (r *manifestReader) readFeatures() []types.FeatureParagraph {
	value, ok := r.get(manifestFeatures)
	if !ok {
		return nil
	}
	if !value.IsObject() {
		r.typeMismatch(manifestFeatures, "an object of feature name to feature")
		return nil
	}
	var features []types.FeatureParagraph
	value.ForEach(func(name, feature gjson.Result) bool {
		if !feature.IsObject() {
			r.typeMismatch(manifestFeatures, "an object of feature name to feature")
			return false
		}
		parsed := types.FeatureParagraph{Name: name.String()}
		description := feature.Get("description")
		if description.IsArray() {
			var lines []string
			description.ForEach(func(_, line gjson.Result) bool {
				lines = append(lines, line.String())
				return true
			})
			parsed.Description = strings.Join(lines, "\n")
		} else {
			parsed.Description = description.String()
		}
		feature.Get("dependencies").ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.String {
				parsed.Dependencies = append(parsed.Dependencies, types.Dependency{Name: item.String()})
				return true
			}
			dep := types.Dependency{Name: item.Get("name").String(), Platform: item.Get("platform").String()}
			item.Get("features").ForEach(func(_, f gjson.Result) bool {
				dep.Features = append(dep.Features, f.String())
				return true
			})
			parsed.Dependencies = append(parsed.Dependencies, dep)
			return true
		})
		features = append(features, parsed)
		return true
	})
	return features
}
