package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"portcullis/internal/types"
)

func parseControlText(t *testing.T, text string) (*types.SourceControlFile, *types.ParseControlErrorInfo) {
	t.Helper()
	paragraphs, err := ParseParagraphs(text, "CONTROL")
	require.NoError(t, err)
	return ParseControlFile("CONTROL", paragraphs)
}

func TestParseControlFileCorePort(t *testing.T) {
	scf, errInfo := parseControlText(t, `Source: curl
Version: 8.4.0
Description: command line transfer tool
Maintainer: someone@example.com
Homepage: https://curl.se
Supports: !uwp
Build-Depends: zlib, openssl[tools] (!windows)
Default-Features: ssl
`)
	require.Nil(t, errInfo)

	want := types.SourceParagraph{
		Name:        "curl",
		Version:     "8.4.0",
		Description: "command line transfer tool",
		Maintainer:  "someone@example.com",
		Homepage:    "https://curl.se",
		Supports:    "!uwp",
		Dependencies: []types.Dependency{
			{Name: "zlib"},
			{Name: "openssl", Features: []string{"tools"}, Platform: "!windows"},
		},
		DefaultFeatures: []string{"ssl"},
	}
	if diff := cmp.Diff(want, scf.Core); diff != "" {
		t.Fatalf("unexpected core paragraph (-want +got):\n%s", diff)
	}
}

func TestParseControlFileFeatureParagraphs(t *testing.T) {
	scf, errInfo := parseControlText(t, `Source: curl
Version: 8.4.0

Feature: ssl
Description: TLS support
Build-Depends: openssl

Feature: brotli
Description: brotli decompression
`)
	require.Nil(t, errInfo)
	require.Len(t, scf.Features, 2)
	require.Equal(t, "ssl", scf.Features[0].Name)
	require.Equal(t, []types.Dependency{{Name: "openssl"}}, scf.Features[0].Dependencies)

	descriptions := scf.FeatureDescriptions()
	require.Equal(t, "brotli decompression", descriptions["brotli"])
	require.NotNil(t, scf.FindFeature("ssl"))
	require.Nil(t, scf.FindFeature("absent"))
}

func TestParseControlFileMissingRequiredFields(t *testing.T) {
	_, errInfo := parseControlText(t, "Description: no name or version\n")
	require.NotNil(t, errInfo)
	require.Equal(t, []string{"Source", "Version"}, errInfo.MissingFields)
}

func TestParseControlFileExtraField(t *testing.T) {
	_, errInfo := parseControlText(t, "Source: a\nVersion: 1\nBogus: nope\n")
	require.NotNil(t, errInfo)
	require.Equal(t, []string{"Bogus"}, errInfo.ExtraFields)
}

func TestParseControlFileBadDependencyList(t *testing.T) {
	_, errInfo := parseControlText(t, "Source: a\nVersion: 1\nBuild-Depends: zlib:x64-linux\n")
	require.NotNil(t, errInfo)
	require.Equal(t, "a dependency list", errInfo.ExpectedTypes["Build-Depends"])
	require.Contains(t, errInfo.Error, "triplet specifier not allowed in this context")
}

func TestParseControlFileMergesProblemsAcrossParagraphs(t *testing.T) {
	_, errInfo := parseControlText(t, `Source: a
Version: 1

Description: feature without a name
`)
	require.NotNil(t, errInfo)
	require.Equal(t, []string{"Feature"}, errInfo.MissingFields)
}

func TestParseControlFileEmpty(t *testing.T) {
	_, errInfo := ParseControlFile("CONTROL", nil)
	require.NotNil(t, errInfo)
	require.Contains(t, errInfo.Error, "at least one paragraph")
}
