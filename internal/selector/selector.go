// Package selector walks a source tree and picks out the files worth
// cataloging, dropping version-control state, dependency caches, build
// output, binary assets, and generated records.
package selector

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Rules holds the exclusion sets applied during selection.
type Rules struct {
	SkipDirs        map[string]struct{} // directory names skipped anywhere in the tree
	SkipNames       map[string]struct{} // exact lowercase file names
	SkipExtensions  map[string]struct{} // lowercase extensions, dot included
	ExcludePatterns []string            // doublestar patterns against the relative path
}

// DefaultRules returns the stock exclusion sets.
func DefaultRules() Rules {
	return Rules{
		SkipDirs: set(
			".git", "node_modules", ".next", ".turbo", ".idea", ".vscode",
			"__pycache__", ".pytest_cache", ".venv",
		),
		SkipNames: set(
			".ds_store", "thumbs.db",
			"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
			".env", ".env.example", ".env.development",
			".gitignore", "readme.md", "file_status_report.txt",
		),
		SkipExtensions: set(
			".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".svg",
			".mp4", ".mov", ".avi", ".mp3", ".wav",
			".pdf", ".zip", ".7z", ".rar",
			".map", ".lock", ".woff", ".woff2", ".ttf", ".eot",
			".log", ".bak",
		),
		ExcludePatterns: []string{
			"frontend/build/**",
			"frontend/public/**",
			"backend/data/**",
			"backend/test/**",
			"backend/uploads/**",
			"docs/**",
			"scripts/**",
		},
	}
}

// Extend adds exclusions on top of the existing sets and returns the
// result. Names and extensions are matched lowercased, so they are stored
// that way here.
func (r Rules) Extend(dirs, names, exts, patterns []string) Rules {
	for _, d := range dirs {
		r.SkipDirs[d] = struct{}{}
	}
	for _, n := range names {
		r.SkipNames[strings.ToLower(n)] = struct{}{}
	}
	for _, e := range exts {
		r.SkipExtensions[strings.ToLower(e)] = struct{}{}
	}
	r.ExcludePatterns = append(r.ExcludePatterns, patterns...)
	return r
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Select walks root and returns the relative slash paths of all program
// files surviving the exclusion rules. Order is not specified; callers sort.
// Unreadable directories are skipped rather than failing the walk.
func Select(root string, rules Rules) ([]string, error) {
	gi := loadGitignore(root)

	var selected []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := rules.SkipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !keep(rel, d.Name(), rules) {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		selected = append(selected, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}

// keep reports whether a single file passes every name, extension, and
// prefix rule.
func keep(rel, name string, rules Rules) bool {
	lowerName := strings.ToLower(name)
	if _, skip := rules.SkipNames[lowerName]; skip {
		return false
	}

	ext := strings.ToLower(filepath.Ext(name))
	if _, skip := rules.SkipExtensions[ext]; skip {
		return false
	}

	// Backup naming convention, e.g. server.bak.js
	if strings.Contains(lowerName, ".bak.") {
		return false
	}

	lowerRel := strings.ToLower(rel)
	for _, pattern := range rules.ExcludePatterns {
		if ok, _ := doublestar.Match(pattern, lowerRel); ok {
			return false
		}
	}
	return true
}

// loadGitignore returns a matcher for the root .gitignore, or nil when the
// tree has none.
func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
