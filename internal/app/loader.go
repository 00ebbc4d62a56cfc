package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	gocache "github.com/patrickmn/go-cache"

	"portcullis/internal/core"
	"portcullis/internal/ports"
	"portcullis/internal/types"
)

const (
	manifestFileName = "vcpkg.json"
	controlFileName  = "CONTROL"
)

// PortLoader turns one port directory into a normalized port
// description. Per-port parse failures come back as data
// (ParseControlErrorInfo); the returned error is reserved for hard
// failures that must abort the whole operation.
type PortLoader struct {
	fs    ports.Filesystem
	cache *gocache.Cache
	loads atomic.Uint64
}

// cachedLoad is a memoized per-directory outcome, success or failure.
type cachedLoad struct {
	scf     *types.SourceControlFile
	errInfo *types.ParseControlErrorInfo
}

func NewPortLoader(fs ports.Filesystem) *PortLoader {
	return &PortLoader{
		fs:    fs,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Loads reports how many port-load operations ran, cached or not.
func (l *PortLoader) Loads() uint64 {
	return l.loads.Load()
}

// IsPortDirectory reports whether dir holds either port input format.
func (l *PortLoader) IsPortDirectory(dir string) bool {
	return l.fs.Exists(filepath.Join(dir, controlFileName)) ||
		l.fs.Exists(filepath.Join(dir, manifestFileName))
}

// TryLoadPort loads the port at portDir. Exactly one of the three
// outcomes is set: a parsed port, a per-port structured failure, or a
// hard error (both input formats present in one directory).
func (l *PortLoader) TryLoadPort(ctx context.Context, portDir string) (*types.SourceControlFile, *types.ParseControlErrorInfo, error) {
	assert.NotEmpty(ctx, portDir, "port directory must be set")
	l.loads.Add(1)

	if hit, ok := l.cache.Get(portDir); ok {
		cached := hit.(cachedLoad)
		return cached.scf, cached.errInfo, nil
	}
	scf, errInfo, err := l.loadPort(portDir)
	if err == nil {
		l.cache.Set(portDir, cachedLoad{scf: scf, errInfo: errInfo}, gocache.DefaultExpiration)
	}
	return scf, errInfo, err
}

func (l *PortLoader) loadPort(portDir string) (*types.SourceControlFile, *types.ParseControlErrorInfo, error) {
	portName := filepath.Base(portDir)
	manifestPath := filepath.Join(portDir, manifestFileName)
	controlPath := filepath.Join(portDir, controlFileName)

	manifestText, err := l.fs.ReadFile(manifestPath)
	if err == nil {
		if l.fs.Exists(controlPath) {
			// Ambiguous authoring intent is a defect in the environment,
			// not in one port's data.
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("Found both manifest and CONTROL file in port %s; please rename one or the other", portDir))
		}
		scf, errInfo := core.ParseManifestDocument(manifestPath, manifestText)
		return scf, errInfo, nil
	}
	if l.fs.Exists(manifestPath) {
		return nil, &types.ParseControlErrorInfo{
			Name:  portName,
			Error: fmt.Sprintf("Failed to load manifest file for port: %s", err.Error()),
		}, nil
	}

	if l.fs.Exists(controlPath) {
		text, err := l.fs.ReadFile(controlPath)
		if err != nil {
			return nil, &types.ParseControlErrorInfo{Name: portName, Error: err.Error()}, nil
		}
		paragraphs, perr := core.ParseParagraphs(text, controlPath)
		if perr != nil {
			return nil, &types.ParseControlErrorInfo{Name: portName, Error: perr.Error()}, nil
		}
		scf, errInfo := core.ParseControlFile(controlPath, paragraphs)
		return scf, errInfo, nil
	}

	errInfo := &types.ParseControlErrorInfo{Name: portName}
	if l.fs.Exists(portDir) {
		errInfo.Error = "Failed to find either a CONTROL file or vcpkg.json file."
	} else {
		errInfo.Error = fmt.Sprintf("The port directory (%s) does not exist", portDir)
	}
	return nil, errInfo, nil
}

// TryLoadCachedPackage loads the CONTROL of an already-built package and
// validates it against the specifier the caller asked for.
func (l *PortLoader) TryLoadCachedPackage(ctx context.Context, packageDir string, spec types.PackageSpec) (*types.BinaryControlFile, error) {
	assert.NotEmpty(ctx, spec.Name, "package spec name must be set")
	l.loads.Add(1)

	controlPath := filepath.Join(packageDir, controlFileName)
	text, err := l.fs.ReadFile(controlPath)
	if err != nil {
		return nil, err
	}
	paragraphs, perr := core.ParseParagraphs(text, controlPath)
	if perr != nil {
		return nil, perr
	}
	bcf, errInfo := core.ParseBinaryControlFile(controlPath, paragraphs)
	if errInfo != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(errInfo.Format())
	}
	if bcf.Core.Spec != spec {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("Mismatched spec in package at %s: expected %s, actual %s", packageDir, spec, bcf.Core.Spec))
	}
	return bcf, nil
}
