package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/kingrea/flowlist-restore/internal/tierlist"
)

// Report captures the verification outcome for one archive.
type Report struct {
	Path    string
	Entries int
	Errors  []error
}

// IsValid reports whether the archive matched the builder's table exactly.
func (r *Report) IsValid() bool {
	return r != nil && len(r.Errors) == 0
}

// Verify reopens an archive and checks it against the builder's table:
// every expected entry must appear exactly once with exactly the configured
// body, and nothing else may appear. Mismatches accumulate in the report;
// only IO failures abort early.
func (b *Builder) Verify(archivePath string) (*Report, error) {
	if err := b.table.Validate(); err != nil {
		return nil, err
	}
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: archivePath, Err: err}
	}
	defer reader.Close()

	expected := make(map[string]struct{}, b.table.FolderCount())
	for _, tier := range b.table {
		for _, folder := range tier.Folders {
			expected[tierlist.EntryPath(tier.Name, folder)] = struct{}{}
		}
	}

	report := &Report{Path: archivePath, Entries: len(reader.File)}
	found := make(map[string]struct{}, len(reader.File))
	for _, entry := range reader.File {
		if _, ok := expected[entry.Name]; !ok {
			report.Errors = append(report.Errors, fmt.Errorf("unexpected entry %s", entry.Name))
			continue
		}
		if _, dup := found[entry.Name]; dup {
			report.Errors = append(report.Errors, fmt.Errorf("entry %s appears more than once", entry.Name))
			continue
		}
		found[entry.Name] = struct{}{}
		body, readErr := readEntry(entry)
		if readErr != nil {
			return nil, &IOError{Op: "read entry", Path: entry.Name, Err: readErr}
		}
		if string(body) != b.placeholder {
			report.Errors = append(report.Errors, fmt.Errorf("entry %s body does not match the placeholder task", entry.Name))
		}
	}
	for _, tier := range b.table {
		for _, folder := range tier.Folders {
			path := tierlist.EntryPath(tier.Name, folder)
			if _, ok := found[path]; !ok {
				report.Errors = append(report.Errors, fmt.Errorf("missing entry %s", path))
			}
		}
	}
	return report, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
