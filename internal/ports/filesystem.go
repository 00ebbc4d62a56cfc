package ports

// Filesystem is the read-only file access the loaders depend on. Every
// method reports failure through its return values; none panic.
type Filesystem interface {
	// ReadFile returns the file contents as text. The error carries the
	// underlying operating-system message.
	ReadFile(path string) (string, error)

	// Exists reports whether the path exists at all.
	Exists(path string) bool

	// ListDirectories returns the full paths of the immediate
	// subdirectories of path.
	ListDirectories(path string) ([]string, error)
}
