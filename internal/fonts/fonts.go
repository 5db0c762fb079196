// Package fonts finds font files for the theme's font name.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font file matches.
var ErrNotFound = errors.New("font not found")

// BaseDirs returns the directories searched when Find is given none,
// relative to the process working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the font files under dir as slash separated paths
// relative to dir (e.g. "Inter/Inter-Regular.ttf"). A missing dir yields
// no files and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores so
// "Open Sans" matches "OpenSans-Regular.ttf".
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Candidates returns the search terms tried in order for name: the name
// itself, its first path segment, the part before the first dash and the
// name without its extension.
func Candidates(name string) []string {
	name = strings.TrimSpace(name)
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	add(name)
	if i := strings.IndexAny(name, "/\\"); i > 0 {
		add(name[:i])
	}
	if i := strings.Index(name, "-"); i > 0 {
		add(name[:i])
	}
	if ext := filepath.Ext(name); isFont(name) {
		add(strings.TrimSuffix(name, ext))
	}
	return out
}

// Find resolves name to a font file. A name that is already a readable
// path is returned as is. Otherwise every candidate term is matched
// against the files in dirs (BaseDirs when empty), preferring a "Regular"
// face when several files match.
func Find(name string, dirs ...string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return name, nil
	}
	if len(dirs) == 0 {
		dirs = BaseDirs()
	}
	for _, term := range Candidates(name) {
		if full, ok := match(normalize(term), dirs); ok {
			return full, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrNotFound)
}

func match(norm string, dirs []string) (string, bool) {
	if norm == "" {
		return "", false
	}
	var hits []string
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				hits = append(hits, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(hits) == 0 {
		return "", false
	}
	for _, h := range hits {
		if strings.Contains(strings.ToLower(filepath.Base(h)), "regular") {
			return h, true
		}
	}
	return hits[0], true
}
