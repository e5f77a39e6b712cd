// Package normalize produces the display rendition of a file's source:
// comments stripped per extension, whitespace tightened.
//
// Stripping is pattern based, not a lexer. Comment-like sequences inside
// string literals get stripped too; that is a known limitation of the
// approach, kept so the output stays predictable.
package normalize

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)^\s*//.*$`)
	hashComment  = regexp.MustCompile(`(?m)^\s*#.*$`)
	batchComment = regexp.MustCompile(`(?im)^\s*(rem\s+.*|::.*)$`)
)

// cFamilyExts get both block and line comment stripping.
var cFamilyExts = map[string]struct{}{
	".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".css": {}, ".scss": {},
}

// hashExts get full-line # comment stripping.
var hashExts = map[string]struct{}{
	".py": {}, ".ps1": {}, ".yml": {}, ".yaml": {},
}

// Clean strips comments appropriate to ext from text and normalizes
// whitespace. Unrecognized extensions pass through with only whitespace
// normalization. Empty input yields an empty string.
func Clean(ext, text string) string {
	ext = strings.ToLower(ext)
	cleaned := text

	if _, ok := cFamilyExts[ext]; ok {
		cleaned = blockComment.ReplaceAllString(cleaned, "")
		cleaned = lineComment.ReplaceAllString(cleaned, "")
	}
	if _, ok := hashExts[ext]; ok {
		cleaned = hashComment.ReplaceAllString(cleaned, "")
	}
	if ext == ".bat" {
		cleaned = batchComment.ReplaceAllString(cleaned, "")
	}
	// JSON with comments shows up in editor config files.
	if ext == ".json" {
		cleaned = blockComment.ReplaceAllString(cleaned, "")
		cleaned = lineComment.ReplaceAllString(cleaned, "")
	}

	return tidy(cleaned)
}

// tidy trims trailing whitespace per line, collapses runs of blank lines to
// one, and trims leading/trailing blank lines. Idempotent.
func tidy(text string) string {
	lines := strings.Split(text, "\n")
	collapsed := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if !blank {
				collapsed = append(collapsed, "")
			}
			blank = true
		} else {
			collapsed = append(collapsed, line)
			blank = false
		}
	}
	return strings.Trim(strings.Join(collapsed, "\n"), "\n")
}

var fenceLangs = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".json": "json",
	".yml":  "yaml",
	".yaml": "yaml",
	".css":  "css",
	".scss": "scss",
	".html": "html",
	".bat":  "bat",
	".ps1":  "powershell",
	".py":   "python",
}

// FenceLang returns the fenced-code-block language tag for an extension, or
// "" for an untagged fence.
func FenceLang(ext string) string {
	return fenceLangs[strings.ToLower(ext)]
}
