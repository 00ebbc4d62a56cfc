package app

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"portcullis/internal/types"
)

func TestPrintLoadErrorsUsesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(t.Context())

	results := types.LoadResults{
		Errors: []*types.ParseControlErrorInfo{
			{Name: "broken", Error: "CONTROL:1:8: error: expected ':' after field name"},
		},
	}

	PrintLoadErrors(ctx, results, false)
	out := buf.String()
	require.Contains(t, out, "broken")
	require.Contains(t, out, "an error occurred while parsing the port")
	require.Contains(t, out, "use '--debug' to get more information about the parse failures")
	require.NotContains(t, out, "expected ':'")
}

func TestPrintLoadErrorsDebugEmitsFullDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(t.Context())

	results := types.LoadResults{
		Errors: []*types.ParseControlErrorInfo{
			{Name: "broken", MissingFields: []string{"Source"}},
		},
	}

	PrintLoadErrors(ctx, results, true)
	out := buf.String()
	require.Contains(t, out, "while loading broken")
	require.Contains(t, out, "Missing fields: Source")
}

func TestPrintLoadErrorsQuietOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(t.Context())

	PrintLoadErrors(ctx, types.LoadResults{}, false)
	require.Empty(t, buf.String())
}
