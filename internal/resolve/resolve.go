// Package resolve infers cross-file relationships from raw text: which data
// collections a file touches, and which other files appear to reference it.
//
// Both inferences are textual heuristics against a small fixed set of
// reference idioms, not semantic resolution. A match proves the text looks
// like a reference, nothing more; unrelated files sharing a stem will
// over-match. Upgrading this to real import parsing would change which
// files get reported and is deliberately out of scope.
package resolve

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"proglist/internal/corpus"
)

// None is the sentinel reported when no match is found.
const None = "None"

// TablesUsed returns the sorted, de-duplicated, comma-joined vocabulary
// entries appearing as substrings of the file's lowercased relative path or
// stem, or None when nothing matches.
func TablesUsed(rel, stem string, vocab []string) string {
	relLower := strings.ToLower(rel)
	stemLower := strings.ToLower(stem)

	seen := make(map[string]struct{})
	var matches []string
	for _, name := range vocab {
		if !strings.Contains(relLower, name) && !strings.Contains(stemLower, name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		matches = append(matches, name)
	}
	if len(matches) == 0 {
		return None
	}
	sort.Strings(matches)
	return strings.Join(matches, ", ")
}

// callerPatterns compiles the reference idioms for a target file: module
// loads and import-from clauses naming its filename or stem, plus its exact
// quoted relative path with or without extension.
func callerPatterns(target corpus.File) []*regexp.Regexp {
	relNoExt := target.RelPath
	if i := strings.LastIndex(relNoExt, "."); i >= 0 {
		relNoExt = relNoExt[:i]
	}

	var patterns []*regexp.Regexp
	for _, name := range []string{target.Name, target.Stem} {
		q := regexp.QuoteMeta(name)
		patterns = append(patterns,
			regexp.MustCompile(fmt.Sprintf(`require\(\s*['"][^'"]*%s['"]\s*\)`, q)),
			regexp.MustCompile(fmt.Sprintf(`from\s+['"][^'"]*%s['"]`, q)),
			regexp.MustCompile(fmt.Sprintf(`import\s+[^;]*from\s+['"][^'"]*%s['"]`, q)),
		)
	}
	patterns = append(patterns,
		regexp.MustCompile(fmt.Sprintf(`['"]%s['"]`, regexp.QuoteMeta(target.RelPath))),
		regexp.MustCompile(fmt.Sprintf(`['"]%s['"]`, regexp.QuoteMeta(relNoExt))),
	)
	return patterns
}

// CalledBy scans every other file in the corpus for text referencing target
// and returns the case-insensitively sorted, de-duplicated caller filenames,
// comma-joined, or None. The target never appears in its own caller list.
func CalledBy(target corpus.File, c *corpus.Corpus) string {
	patterns := callerPatterns(target)

	seen := make(map[string]struct{})
	var callers []string
	for _, f := range c.Files {
		if f.RelPath == target.RelPath {
			continue
		}
		if !anyMatch(patterns, f.Text) {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		callers = append(callers, f.Name)
	}
	if len(callers) == 0 {
		return None
	}
	sort.Slice(callers, func(i, j int) bool {
		return strings.ToLower(callers[i]) < strings.ToLower(callers[j])
	})
	return strings.Join(callers, ", ")
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
