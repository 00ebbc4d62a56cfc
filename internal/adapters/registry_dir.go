package adapters

import (
	"path/filepath"
	"slices"
	"sort"

	debversion "github.com/knqyf263/go-deb-version"

	"portcullis/internal/ports"
)

// DirRegistry is a registry backed by a directory tree. Each port is a
// subdirectory of the root, either flat (root/<name>/CONTROL or
// vcpkg.json directly) or versioned (root/<name>/<version>/...). The
// baseline of a versioned port is the pinned version when the config
// names one, otherwise the highest version directory.
type DirRegistry struct {
	name     string
	root     string
	packages []string
	baseline map[string]string
	fs       ports.Filesystem
}

func NewDirRegistry(name string, root string, packages []string, baseline map[string]string, fs ports.Filesystem) *DirRegistry {
	return &DirRegistry{
		name:     name,
		root:     root,
		packages: packages,
		baseline: baseline,
		fs:       fs,
	}
}

func (r *DirRegistry) Name() string {
	return r.name
}

func (r *DirRegistry) Packages() []string {
	return r.packages
}

func (r *DirRegistry) Owns(name string) bool {
	return slices.Contains(r.packages, name)
}

func (r *DirRegistry) AllPortNames() ([]string, error) {
	dirs, err := r.fs.ListDirectories(r.root)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		names = append(names, filepath.Base(dir))
	}
	return names, nil
}

func (r *DirRegistry) BaselinePath(port string) (string, bool) {
	portDir := filepath.Join(r.root, port)
	if !r.fs.Exists(portDir) {
		return "", false
	}

	if pinned, ok := r.baseline[port]; ok {
		versionDir := filepath.Join(portDir, pinned)
		if !r.fs.Exists(versionDir) {
			return "", false
		}
		return versionDir, true
	}

	// A flat port directory is its own baseline.
	if r.fs.Exists(filepath.Join(portDir, "CONTROL")) || r.fs.Exists(filepath.Join(portDir, "vcpkg.json")) {
		return portDir, true
	}

	best, ok := r.highestVersionDir(portDir)
	if !ok {
		return "", false
	}
	return best, true
}

// highestVersionDir orders version subdirectories with Debian version
// semantics and returns the greatest. Directory names that do not parse
// as versions are ignored.
func (r *DirRegistry) highestVersionDir(portDir string) (string, bool) {
	dirs, err := r.fs.ListDirectories(portDir)
	if err != nil || len(dirs) == 0 {
		return "", false
	}
	type candidate struct {
		path    string
		version debversion.Version
	}
	var candidates []candidate
	for _, dir := range dirs {
		parsed, err := debversion.NewVersion(filepath.Base(dir))
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: dir, version: parsed})
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].version.LessThan(candidates[j].version)
	})
	return candidates[len(candidates)-1].path, true
}

var _ ports.Registry = (*DirRegistry)(nil)
