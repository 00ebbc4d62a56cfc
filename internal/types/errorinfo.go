package types

import (
	"fmt"
	"strings"
)

// ParseControlErrorInfo captures everything that went wrong while
// parsing one port. Exactly one value is produced per failed parse unit.
type ParseControlErrorInfo struct {
	// Name is the port or origin the failure is tagged with.
	Name string
	// Error is free-text detail: tokenizer/grammar messages (which carry
	// origin and row/col), I/O messages, or manifest diagnostics.
	Error string
	// MissingFields lists required fields absent from the record.
	MissingFields []string
	// ExtraFields lists fields present in the record that no schema
	// field claimed.
	ExtraFields []string
	// ExpectedTypes annotates fields whose value failed type coercion,
	// mapping field name to a description of the expected shape.
	ExpectedTypes map[string]string
}

// HasError reports whether any failure detail was recorded.
func (e *ParseControlErrorInfo) HasError() bool {
	return e != nil && (e.Error != "" || len(e.MissingFields) > 0 ||
		len(e.ExtraFields) > 0 || len(e.ExpectedTypes) > 0)
}

// Format renders the full diagnostic for high-verbosity output.
func (e *ParseControlErrorInfo) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: while loading %s:\n", e.Name)
	if len(e.MissingFields) > 0 {
		fmt.Fprintf(&b, "Missing fields: %s\n", strings.Join(e.MissingFields, ", "))
	}
	if len(e.ExtraFields) > 0 {
		fmt.Fprintf(&b, "Unexpected fields: %s\n", strings.Join(e.ExtraFields, ", "))
	}
	for field, kind := range e.ExpectedTypes {
		fmt.Fprintf(&b, "%s was expected to be %s\n", field, kind)
	}
	if e.Error != "" {
		b.WriteString(e.Error)
		if !strings.HasSuffix(e.Error, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// LoadResults accumulates the outcome of loading many ports. It is
// always returned whole: detected failures are never discarded.
type LoadResults struct {
	Ports  []SourceControlFileAndLocation
	Errors []*ParseControlErrorInfo
}
