package core

import (
	"sort"

	"portcullis/internal/types"
)

// FieldReader consumes one paragraph record against a caller-declared
// schema. Required and Optional remove fields as they are claimed;
// problems accumulate instead of aborting, so every schema violation in
// a record surfaces in one Finalize result. A reader is collecting until
// Finalize runs, after which further reads are a programming error.
type FieldReader struct {
	fields        types.Paragraph
	missingFields []string
	expectedTypes map[string]string
	finalized     bool
	result        *types.ParseControlErrorInfo
}

// NewFieldReader wraps fields for the duration of one schema pass. The
// paragraph is consumed destructively; callers should not reuse it.
func NewFieldReader(fields types.Paragraph) *FieldReader {
	return &FieldReader{fields: fields, expectedTypes: map[string]string{}}
}

// Required removes and returns the named field. Absence is recorded in
// the missing-fields list and the zero value returned; processing
// continues so later problems are still collected.
func (r *FieldReader) Required(name string) (string, types.TextRowCol) {
	field, ok := r.fields[name]
	if !ok {
		r.missingFields = append(r.missingFields, name)
		return "", types.TextRowCol{}
	}
	delete(r.fields, name)
	return field.Text, field.Position
}

// Optional removes and returns the named field, or the zero value when
// absent. Absence is not an error.
func (r *FieldReader) Optional(name string) (string, types.TextRowCol) {
	field, ok := r.fields[name]
	if !ok {
		return "", types.TextRowCol{}
	}
	delete(r.fields, name)
	return field.Text, field.Position
}

// TypeMismatch records that a claimed field's value failed coercion to
// the expected shape, described in kind (e.g. "a dependency list").
func (r *FieldReader) TypeMismatch(name string, kind string) {
	r.expectedTypes[name] = kind
}

// Finalize reports the accumulated outcome: nil when the record matched
// the schema, otherwise one composite error naming every missing field,
// every unclaimed leftover field, and every type mismatch. Finalize is
// idempotent; repeated calls return the first result.
func (r *FieldReader) Finalize(origin string) *types.ParseControlErrorInfo {
	if r.finalized {
		return r.result
	}
	r.finalized = true

	if len(r.fields) == 0 && len(r.missingFields) == 0 && len(r.expectedTypes) == 0 {
		return nil
	}
	info := &types.ParseControlErrorInfo{
		Name:          origin,
		MissingFields: r.missingFields,
	}
	for name := range r.fields {
		info.ExtraFields = append(info.ExtraFields, name)
	}
	sort.Strings(info.ExtraFields)
	if len(r.expectedTypes) > 0 {
		info.ExpectedTypes = r.expectedTypes
	}
	r.result = info
	return info
}
