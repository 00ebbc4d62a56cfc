package core

import (
	"portcullis/internal/ports"
	"portcullis/internal/types"
)

// paragraphParser tokenizes the legacy line-oriented control format:
// "Name: value" fields, '#' comment lines, blank-line record separators,
// and single-space continuation lines.
type paragraphParser struct {
	*textParser
}

// ParseParagraphs splits legacy control text into its ordered paragraph
// records. Parsing is fail-fast: the first syntax error aborts and is
// returned with origin and row/col.
func ParseParagraphs(text string, origin string) ([]types.Paragraph, error) {
	p := paragraphParser{newTextParser(text, origin, types.TextRowCol{})}

	var paragraphs []types.Paragraph
	p.skipWhitespace()
	for !p.atEOF() {
		paragraphs = append(paragraphs, p.parseParagraph())
		p.matchWhile(func(c byte) bool { return c == '\r' || c == '\n' })
	}
	if err := p.error(); err != nil {
		return nil, err
	}
	return paragraphs, nil
}

// ParseSingleParagraph parses text that must contain exactly one
// paragraph record.
func ParseSingleParagraph(text string, origin string) (types.Paragraph, error) {
	paragraphs, err := ParseParagraphs(text, origin)
	if err != nil {
		return nil, err
	}
	if len(paragraphs) != 1 {
		return nil, &ParseError{
			Origin:   origin,
			Position: types.TextRowCol{Row: 1, Col: 1},
			Message:  "there should be exactly one paragraph",
		}
	}
	return paragraphs[0], nil
}

// GetSingleParagraph reads path and parses it as a single paragraph
// record. Read failures surface with the underlying message.
func GetSingleParagraph(fs ports.Filesystem, path string) (types.Paragraph, error) {
	text, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSingleParagraph(text, path)
}

func (p *paragraphParser) parseParagraph() types.Paragraph {
	fields := types.Paragraph{}
	for {
		if p.cur() == '#' {
			p.skipLine()
			if isLineEnd(p.cur()) {
				return fields
			}
			continue
		}

		nameLoc := p.loc()
		name := p.parseFieldName()
		if p.cur() != ':' {
			p.addError("expected ':' after field name")
			return fields
		}
		if _, exists := fields[name]; exists {
			p.addErrorAt("duplicate field", nameLoc)
			return fields
		}
		p.next()
		p.skipTabsSpaces()
		valueLoc := p.loc()
		value := p.parseFieldValue()

		fields[name] = types.FieldValue{Text: value, Position: valueLoc}

		if isLineEnd(p.cur()) {
			return fields
		}
	}
}

func (p *paragraphParser) parseFieldName() string {
	name := p.matchWhile(isAlphaNumDash)
	if name == "" {
		p.addError("expected fieldname")
	}
	return name
}

// parseFieldValue scans to end of line and folds in continuation lines.
// A continuation starts with a single leading space; the remainder after
// that space is appended behind a newline. A blank continuation must be
// written as a literal period.
func (p *paragraphParser) parseFieldValue() string {
	var value []byte
	for {
		value = append(value, p.matchUntil(isLineEnd)...)
		p.skipNewline()

		if p.cur() != ' ' {
			return string(value)
		}
		p.next()
		spacing := p.skipTabsSpaces()
		if isLineEnd(p.cur()) {
			p.addError("unexpected end of line, to span a blank line use \"  .\"")
			return string(value)
		}
		value = append(value, '\n')
		value = append(value, spacing...)
	}
}
