package types

// TextRowCol is a 1-based position inside a source file. The zero value
// means "position unknown".
type TextRowCol struct {
	Row int
	Col int
}

func (p TextRowCol) Known() bool {
	return p.Row != 0
}

// FieldValue is one field's text together with the position where the
// value starts in the source file.
type FieldValue struct {
	Text     string
	Position TextRowCol
}

// Paragraph is one key/value record block from the legacy control
// format. Field names are unique within a paragraph; the tokenizer
// rejects duplicates before a Paragraph is ever built.
type Paragraph map[string]FieldValue
