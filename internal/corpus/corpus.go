// Package corpus loads the selected files into memory once, so later stages
// can cross-reference the whole tree without touching the filesystem again.
package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// File is one candidate program file. Immutable after loading.
type File struct {
	RelPath string // slash-separated path relative to the scan root
	Name    string // base name, extension included
	Stem    string // base name without extension
	Ext     string // lowercase extension, dot included
	Text    string // decoded content; empty when the file could not be read
}

// Corpus is the full set of loaded files, keyed by relative path.
type Corpus struct {
	Files []File
	byRel map[string]int
}

// Load reads every path under root into a Corpus. A file that cannot be
// opened is kept with empty text; invalid UTF-8 bytes are dropped. Loading
// never fails: partial results beat an aborted scan.
func Load(root string, relPaths []string) *Corpus {
	c := &Corpus{byRel: make(map[string]int, len(relPaths))}
	for _, rel := range relPaths {
		if _, dup := c.byRel[rel]; dup {
			continue
		}
		name := filepath.Base(rel)
		ext := strings.ToLower(filepath.Ext(name))
		f := File{
			RelPath: rel,
			Name:    name,
			Stem:    strings.TrimSuffix(name, filepath.Ext(name)),
			Ext:     ext,
			Text:    readLenient(filepath.Join(root, filepath.FromSlash(rel))),
		}
		c.byRel[rel] = len(c.Files)
		c.Files = append(c.Files, f)
	}
	return c
}

// FromFiles builds a Corpus from already-loaded files, for callers whose
// content does not come from the filesystem. Later duplicates of a relative
// path are dropped.
func FromFiles(files ...File) *Corpus {
	c := &Corpus{byRel: make(map[string]int, len(files))}
	for _, f := range files {
		if _, dup := c.byRel[f.RelPath]; dup {
			continue
		}
		c.byRel[f.RelPath] = len(c.Files)
		c.Files = append(c.Files, f)
	}
	return c
}

// Get returns the file at rel, if loaded.
func (c *Corpus) Get(rel string) (File, bool) {
	i, ok := c.byRel[rel]
	if !ok {
		return File{}, false
	}
	return c.Files[i], true
}

// readLenient reads a file's text, dropping undecodable bytes and absorbing
// open/read failures into empty content.
func readLenient(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	if utf8.Valid(data) {
		return string(data)
	}
	// Strip invalid sequences byte by byte.
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r != utf8.RuneError || size > 1 {
			b.WriteRune(r)
		}
		data = data[size:]
	}
	return b.String()
}

// Vocabulary returns the lowercase stems of every *.json file directly in
// dataDir, sorted. A missing directory yields an empty vocabulary.
func Vocabulary(dataDir string) []string {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		names = append(names, strings.ToLower(stem))
	}
	sort.Strings(names)
	return names
}
