package core

import (
	"fmt"

	"portcullis/internal/types"
)

// ParseError is a syntax error raised while scanning text. It always
// carries the origin (file or field name) and the 1-based row/col the
// failure was detected at.
type ParseError struct {
	Origin   string
	Position types.TextRowCol
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Origin, e.Position.Row, e.Position.Col, e.Message)
}

// textParser is a byte cursor over an immutable input buffer. The first
// recorded error wins and moves the cursor to end-of-input so callers
// unwind without extra checks.
type textParser struct {
	text   string
	origin string
	offset int
	row    int
	col    int
	err    *ParseError
}

func newTextParser(text string, origin string, start types.TextRowCol) *textParser {
	row, col := start.Row, start.Col
	if row == 0 {
		row, col = 1, 1
	}
	return &textParser{text: text, origin: origin, row: row, col: col}
}

func (p *textParser) atEOF() bool {
	return p.offset >= len(p.text)
}

// cur returns the current byte, or 0 at end of input.
func (p *textParser) cur() byte {
	if p.atEOF() {
		return 0
	}
	return p.text[p.offset]
}

func (p *textParser) next() {
	if p.atEOF() {
		return
	}
	if p.text[p.offset] == '\n' {
		p.row++
		p.col = 1
	} else {
		p.col++
	}
	p.offset++
}

func (p *textParser) loc() types.TextRowCol {
	return types.TextRowCol{Row: p.row, Col: p.col}
}

// addError records the first error and stops further scanning.
func (p *textParser) addError(message string) {
	p.addErrorAt(message, p.loc())
}

func (p *textParser) addErrorAt(message string, at types.TextRowCol) {
	if p.err == nil {
		p.err = &ParseError{Origin: p.origin, Position: at, Message: message}
	}
	p.offset = len(p.text)
}

func (p *textParser) error() *ParseError {
	return p.err
}

// matchWhile consumes and returns the longest run satisfying pred.
func (p *textParser) matchWhile(pred func(byte) bool) string {
	start := p.offset
	for !p.atEOF() && pred(p.cur()) {
		p.next()
	}
	return p.text[start:p.offset]
}

// matchUntil consumes up to (not including) the first byte satisfying pred.
func (p *textParser) matchUntil(pred func(byte) bool) string {
	return p.matchWhile(func(c byte) bool { return !pred(c) })
}

func (p *textParser) skipWhitespace() {
	p.matchWhile(isWhitespace)
}

// skipTabsSpaces consumes horizontal whitespace and returns it.
func (p *textParser) skipTabsSpaces() string {
	return p.matchWhile(func(c byte) bool { return c == ' ' || c == '\t' })
}

// skipNewline consumes one line ending, treating \r\n as a single one.
func (p *textParser) skipNewline() {
	if p.cur() == '\r' {
		p.next()
	}
	if p.cur() == '\n' {
		p.next()
	}
}

func (p *textParser) skipLine() {
	p.matchUntil(isLineEnd)
	p.skipNewline()
}

func isLineEnd(c byte) bool {
	return c == '\r' || c == '\n' || c == 0
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlphaNumDash(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
}

func isPackageNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

func isFeatureNameChar(c byte) bool {
	return isPackageNameChar(c) || c == '*'
}
