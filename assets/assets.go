// Package assets resolves catalog image and drawing references against the
// assets root. A reference that is empty, escapes the root or names a file
// that does not exist resolves to nothing; absence is never an error.
package assets

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver resolves relative asset paths under Root.
type Resolver struct {
	Root string
}

// New returns a Resolver rooted at root.
func New(root string) *Resolver {
	return &Resolver{Root: root}
}

// Resolve returns the absolute path of rel if it lies inside the root and
// names a readable regular file.
func (r *Resolver) Resolve(rel string) (string, bool) {
	if r == nil || strings.TrimSpace(rel) == "" {
		return "", false
	}
	root, err := filepath.Abs(r.Root)
	if err != nil {
		return "", false
	}
	rel = filepath.FromSlash(strings.TrimPrefix(filepath.ToSlash(rel), "/"))
	target := filepath.Join(root, rel)
	if !Within(target, root) {
		return "", false
	}
	if !Exists(target) {
		return "", false
	}
	return target, true
}

// Within reports whether target is base or lies below it, after both are
// cleaned and made absolute.
func Within(target, base string) bool {
	t, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	b, err := filepath.Abs(base)
	if err != nil {
		return false
	}
	if t == b {
		return true
	}
	rel, err := filepath.Rel(b, t)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Exists reports whether path names a readable regular file.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}

// Ext returns the lower-case extension of path including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
