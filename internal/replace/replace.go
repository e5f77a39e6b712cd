// Package replace is the bulk find/replace companion: ordered literal
// substitutions applied across an allow-listed slice of the tree, writing
// back only files whose content actually changed. It shares nothing with
// the catalog generator and can run independently.
package replace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule is one literal substitution, applied in order.
type Rule struct {
	Old string
	New string
}

// Config scopes a replacement run.
type Config struct {
	Allow      []string // doublestar patterns a path must match (empty means everything)
	Deny       []string // doublestar patterns that exclude a path
	Extensions []string // lowercase extensions eligible for rewriting
	Rules      []Rule
}

// Run applies cfg's rules under root and returns the sorted relative slash
// paths of every file rewritten. Files that are not valid UTF-8 are left
// untouched.
func Run(root string, cfg Config) ([]string, error) {
	extSet := make(map[string]struct{}, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}

	var modified []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matchesAny(cfg.Deny, rel) {
			return nil
		}
		if len(cfg.Allow) > 0 && !matchesAny(cfg.Allow, rel) {
			return nil
		}
		if _, ok := extSet[strings.ToLower(filepath.Ext(rel))]; !ok {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil || !utf8.Valid(data) {
			return nil
		}

		text := string(data)
		updated := text
		for _, r := range cfg.Rules {
			updated = strings.ReplaceAll(updated, r.Old, r.New)
		}
		if updated == text {
			return nil
		}

		info, statErr := d.Info()
		mode := fs.FileMode(0o644)
		if statErr == nil {
			mode = info.Mode()
		}
		if writeErr := os.WriteFile(path, []byte(updated), mode); writeErr != nil {
			return writeErr
		}
		modified = append(modified, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(modified)
	return modified, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
