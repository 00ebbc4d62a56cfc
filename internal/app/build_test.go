package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func writePort(t *testing.T, root, name, control string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CONTROL"), []byte(control), 0o644))
}

func TestServiceBuildCatalogEndToEnd(t *testing.T) {
	workdir := t.TempDir()
	portsDir := filepath.Join(workdir, "ports")
	overlayDir := filepath.Join(workdir, "overlay")

	writePort(t, portsDir, "zlib", "Source: zlib\nVersion: 1.2.13\nDescription: compression\n")
	writePort(t, portsDir, "fmt", "Source: fmt\nVersion: 10.0.0\nBuild-Depends: zlib\n")
	writePort(t, portsDir, "broken", "Source broken\n")
	writePort(t, overlayDir, "extra", "Source: extra\nVersion: 0.1\n")

	config := filepath.Join(workdir, "registries.yaml")
	yaml := fmt.Sprintf("registries:\n  - name: main\n    path: %s\n    default: true\noverlays:\n  - %s\n", portsDir, overlayDir)
	require.NoError(t, os.WriteFile(config, []byte(yaml), 0o644))

	service := NewService()
	result, err := service.BuildCatalog(t.Context(), BuildCatalogRequest{
		ConfigPath: config,
		Workers:    2,
	})
	require.NoError(t, err)

	var names []string
	for _, port := range result.Results.Ports {
		names = append(names, port.SourceControlFile.Core.Name)
	}
	require.Equal(t, []string{"fmt", "zlib", "extra"}, names)
	require.Len(t, result.Results.Errors, 1)
	require.Contains(t, result.Results.Errors[0].Error, "expected ':' after field name")
	require.Equal(t, uint64(4), result.PortsLoaded)
}

func TestServiceBuildCatalogRequiresConfig(t *testing.T) {
	service := NewService()
	_, err := service.BuildCatalog(t.Context(), BuildCatalogRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestServiceBuildCatalogMissingConfig(t *testing.T) {
	service := NewService()
	_, err := service.BuildCatalog(t.Context(), BuildCatalogRequest{
		ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestServiceParsePortEndToEnd(t *testing.T) {
	root := t.TempDir()
	writePort(t, root, "zlib", "Source: zlib\nVersion: 1.2.13\nDescription: compression\n")

	service := NewService()
	result, err := service.ParsePort(t.Context(), ParsePortRequest{Dir: filepath.Join(root, "zlib")})
	require.NoError(t, err)
	require.Equal(t, "zlib", result.Port.Core.Name)
	require.Equal(t, "compression", result.Port.Core.Description)
}

func TestServiceParsePortFailure(t *testing.T) {
	root := t.TempDir()
	writePort(t, root, "broken", "Source broken\n")

	service := NewService()
	_, err := service.ParsePort(t.Context(), ParsePortRequest{Dir: filepath.Join(root, "broken")})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestServiceCheckEndToEnd(t *testing.T) {
	workdir := t.TempDir()
	portsDir := filepath.Join(workdir, "ports")
	writePort(t, portsDir, "zlib", "Source: zlib\nVersion: 1.2.13\n")
	writePort(t, portsDir, "broken", "Source broken\n")

	config := filepath.Join(workdir, "registries.yaml")
	yaml := fmt.Sprintf("registries:\n  - name: main\n    path: %s\n    default: true\n", portsDir)
	require.NoError(t, os.WriteFile(config, []byte(yaml), 0o644))

	service := NewService()
	result, err := service.Check(t.Context(), CheckRequest{ConfigPath: config})
	require.NoError(t, err)
	require.Equal(t, 1, result.Loaded)
	require.Equal(t, 1, result.Failed)
	require.Equal(t, []string{"broken"}, result.FailedNames)
}
