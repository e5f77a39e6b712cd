// Package report assembles the program listing document: files grouped by
// module, deterministically ordered, each with a metadata table and an
// optional fenced source excerpt.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"proglist/internal/classify"
	"proglist/internal/corpus"
	"proglist/internal/normalize"
	"proglist/internal/resolve"
)

// Meta supplies the static authorship fields of each entry's table.
type Meta struct {
	Programmer  string
	DateCreated string
}

// Build renders the full listing for a loaded corpus. Module sections come
// out in alphabetical label order, files within a module in
// case-insensitive filename order, so identical inputs always produce an
// identical document.
func Build(c *corpus.Corpus, vocab []string, meta Meta, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Program Listing\n\n")
	timestamp := now.UTC().Format("2006-01-02 15:04:05Z")
	fmt.Fprintf(&b, "_Formatted to match the program-listing template. Generated on %s UTC._\n\n", timestamp)

	grouped := make(map[string][]corpus.File)
	for _, f := range c.Files {
		label := classify.Module(f.RelPath)
		grouped[label] = append(grouped[label], f)
	}

	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		fmt.Fprintf(&b, "# %s\n\n", label)

		files := grouped[label]
		sort.SliceStable(files, func(i, j int) bool {
			ni, nj := strings.ToLower(files[i].Name), strings.ToLower(files[j].Name)
			if ni != nj {
				return ni < nj
			}
			// Case-insensitive basename ties break on the full path, so the
			// order never depends on how the corpus was loaded.
			return files[i].RelPath < files[j].RelPath
		})

		for _, f := range files {
			writeEntry(&b, f, c, vocab, meta)
		}
	}

	return b.String()
}

func writeEntry(b *strings.Builder, f corpus.File, c *corpus.Corpus, vocab []string, meta Meta) {
	fmt.Fprintf(b, "## %s\n\n", f.Name)
	b.WriteString(metadataTable(
		f.Name,
		classify.Describe(f.RelPath),
		resolve.TablesUsed(f.RelPath, f.Stem, vocab),
		resolve.CalledBy(f, c),
		meta,
	))
	b.WriteString("\n")

	cleaned := normalize.Clean(f.Ext, f.Text)
	if cleaned != "" {
		b.WriteString("\n")
		fmt.Fprintf(b, "```%s\n", normalize.FenceLang(f.Ext))
		b.WriteString(cleaned)
		b.WriteString("\n```\n")
	}
	b.WriteString("\n")
}

// metadataTable renders the fixed-shape entry table. Field order never
// changes; the blank row separates usage fields from authorship fields.
func metadataTable(name, description, tableUsed, calledBy string, meta Meta) string {
	rows := []string{
		"| Field | Details |",
		"| --- | --- |",
		fmt.Sprintf("| Program Name | %s |", name),
		fmt.Sprintf("| Description | %s |", description),
		fmt.Sprintf("| Called by | %s |", calledBy),
		fmt.Sprintf("| Table used | %s |", tableUsed),
		"|  |  |",
		fmt.Sprintf("| Programmer | %s |", meta.Programmer),
		fmt.Sprintf("| Date created | %s |", meta.DateCreated),
		"| Revision Date | TBD |",
		"| Revision / description of change | None |",
	}
	return strings.Join(rows, "\n") + "\n"
}
