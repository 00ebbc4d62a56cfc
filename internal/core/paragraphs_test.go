package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"portcullis/internal/types"
)

func TestParseParagraphsFieldsAndPositions(t *testing.T) {
	text := "Source: zlib\nVersion: 1.2.13\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)

	want := types.Paragraph{
		"Source":  {Text: "zlib", Position: types.TextRowCol{Row: 1, Col: 9}},
		"Version": {Text: "1.2.13", Position: types.TextRowCol{Row: 2, Col: 10}},
	}
	if diff := cmp.Diff(want, paragraphs[0]); diff != "" {
		t.Fatalf("unexpected paragraph (-want +got):\n%s", diff)
	}
}

func TestParseParagraphsMultipleRecords(t *testing.T) {
	text := "Source: zlib\nVersion: 1.0\n\nFeature: static\nDescription: static build\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)
	require.Equal(t, "static", paragraphs[1]["Feature"].Text)
}

func TestParseParagraphsSkipsComments(t *testing.T) {
	text := "# header comment\nSource: zlib\n# interleaved\nVersion: 1.0\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)
	require.Len(t, paragraphs[0], 2)
}

func TestParseParagraphsCommentEndsRecord(t *testing.T) {
	text := "Source: zlib\n# trailing comment\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)
	require.Equal(t, "zlib", paragraphs[0]["Source"].Text)
}

func TestParseParagraphsCommentBeforeBlankLine(t *testing.T) {
	text := "Source: zlib\n# comment\n\nFeature: static\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)
	require.Equal(t, "zlib", paragraphs[0]["Source"].Text)
	require.Equal(t, "static", paragraphs[1]["Feature"].Text)
}

func TestParseParagraphsContinuation(t *testing.T) {
	text := "Description: first line\n second line\n \tindented\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Equal(t, "first line\nsecond line\n\tindented", paragraphs[0]["Description"].Text)
}

func TestParseParagraphsContinuationLiteralPeriod(t *testing.T) {
	text := "Description: first\n .\n second\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Equal(t, "first\n.\nsecond", paragraphs[0]["Description"].Text)
}

func TestParseParagraphsBlankContinuationIsError(t *testing.T) {
	text := "Description: first\n \nVersion: 1\n"
	_, err := ParseParagraphs(text, "CONTROL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected end of line")
}

func TestParseParagraphsDuplicateField(t *testing.T) {
	text := "Source: a\nSource: b\n"
	_, err := ParseParagraphs(text, "CONTROL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate field")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, types.TextRowCol{Row: 2, Col: 1}, parseErr.Position)
	require.Equal(t, "CONTROL", parseErr.Origin)
}

func TestParseParagraphsMissingColon(t *testing.T) {
	_, err := ParseParagraphs("Source zlib\n", "CONTROL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected ':' after field name")
}

func TestParseParagraphsEmptyFieldName(t *testing.T) {
	_, err := ParseParagraphs(": no name\n", "CONTROL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected fieldname")
}

func TestParseParagraphsCRLF(t *testing.T) {
	text := "Source: zlib\r\nVersion: 1.0\r\n\r\nFeature: f\r\n"
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)
	require.Equal(t, "zlib", paragraphs[0]["Source"].Text)
}

func TestParseParagraphsNoTrailingNewline(t *testing.T) {
	paragraphs, err := ParseParagraphs("Source: zlib", "CONTROL")
	require.NoError(t, err)
	require.Equal(t, "zlib", paragraphs[0]["Source"].Text)
}

func TestParseSingleParagraph(t *testing.T) {
	paragraph, err := ParseSingleParagraph("Source: zlib\n", "CONTROL")
	require.NoError(t, err)
	require.Equal(t, "zlib", paragraph["Source"].Text)

	_, err = ParseSingleParagraph("A: 1\n\nB: 2\n", "CONTROL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one paragraph")
}

type singleFileFilesystem struct {
	path string
	text string
}

func (f singleFileFilesystem) ReadFile(path string) (string, error) {
	if path != f.path {
		return "", errors.New("open " + path + ": no such file or directory")
	}
	return f.text, nil
}

func (f singleFileFilesystem) Exists(path string) bool {
	return path == f.path
}

func (f singleFileFilesystem) ListDirectories(string) ([]string, error) {
	return nil, nil
}

func TestGetSingleParagraph(t *testing.T) {
	fs := singleFileFilesystem{path: "ports/zlib/CONTROL", text: "Source: zlib\nVersion: 1.0\n"}

	paragraph, err := GetSingleParagraph(fs, "ports/zlib/CONTROL")
	require.NoError(t, err)
	require.Equal(t, "zlib", paragraph["Source"].Text)

	_, err = GetSingleParagraph(fs, "ports/absent/CONTROL")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such file or directory")
}
