package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portcullis/internal/ports"
)

type FilesystemAdapter struct{}

func NewFilesystemAdapter() FilesystemAdapter {
	return FilesystemAdapter{}
}

func (a FilesystemAdapter) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(err.Error()).
			WithCause(err)
	}
	return string(data), nil
}

func (a FilesystemAdapter) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (a FilesystemAdapter) ListDirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(err.Error()).
			WithCause(err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(path, entry.Name()))
		}
	}
	return dirs, nil
}

var _ ports.Filesystem = FilesystemAdapter{}
