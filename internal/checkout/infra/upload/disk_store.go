package upload

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore writes uploaded blobs into a public directory under
// collision-resistant names: a random token joined to the sanitized
// original filename. Content is stored as-is, with no type validation.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Store(filename string, r io.Reader) (string, error) {
	u := uuid.New()
	stored := hex.EncodeToString(u[:]) + "_" + SanitizeFilename(filename)

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create upload %s: %w", stored, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload %s: %w", stored, err)
	}
	return stored, nil
}

// SanitizeFilename strips directory components and replaces anything outside
// [A-Za-z0-9._-] so the result is always safe to join into the upload dir.
func SanitizeFilename(name string) string {
	// Browsers on some platforms send full client-side paths with
	// backslash separators.
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "upload"
	}
	return out
}
