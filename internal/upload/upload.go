// Package upload stores listing images under a fixed directory. Filenames
// are sanitized for path safety; same-named uploads overwrite silently.
package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// EnsureDir creates the upload directory when absent.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SecureFilename strips any path components and characters that could
// escape the upload directory.
func SecureFilename(filename string) string {
	filename = filepath.Base(filepath.ToSlash(filename))
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// Save writes the uploaded content and returns the stored filename, or ""
// when the extension is not allowed or the name sanitizes to nothing.
func (s *Store) Save(filename string, src io.Reader) (string, error) {
	if !Allowed(filename) {
		return "", nil
	}
	name := SecureFilename(filename)
	if name == "" {
		return "", nil
	}
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) Dir() string {
	return s.dir
}
