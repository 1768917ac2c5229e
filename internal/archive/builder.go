// Package archive materializes a tier table into a zip archive, one
// placeholder task file per folder, and verifies archives it has written.
package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"time"

	"github.com/kingrea/flowlist-restore/internal/tierlist"
)

// IOError wraps a filesystem or zip-layer failure with the operation that
// produced it and the path it touched.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("archive: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *IOError) Unwrap() error { return e.Err }

// Builder writes and verifies restore archives for a single table.
type Builder struct {
	table       tierlist.Table
	placeholder string
	now         func() time.Time
}

// Option customizes a Builder during construction.
type Option func(*Builder)

// WithClock overrides the clock used to stamp archive entries.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.now = clock
		}
	}
}

// WithPlaceholder overrides the body written into every entry.
func WithPlaceholder(content string) Option {
	return func(b *Builder) {
		b.placeholder = content
	}
}

// New builds a Builder for the given table.
func New(table tierlist.Table, opts ...Option) *Builder {
	builder := &Builder{
		table:       table,
		placeholder: tierlist.PlaceholderTask,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder
}

// Result summarizes a completed build.
type Result struct {
	Path        string
	Entries     int
	CompletedAt time.Time
}

// Build creates or truncates outputPath and writes one entry per
// (tier, folder) pair in declaration order. The zip writer and file handle
// are released on every exit path; a failure partway through may leave a
// partial archive on disk, which the next run truncates.
func (b *Builder) Build(outputPath string) (result Result, err error) {
	if validateErr := b.table.Validate(); validateErr != nil {
		return Result{}, validateErr
	}
	file, createErr := os.Create(outputPath)
	if createErr != nil {
		return Result{}, &IOError{Op: "create", Path: outputPath, Err: createErr}
	}
	writer := zip.NewWriter(file)
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "finalize", Path: outputPath, Err: closeErr}
		}
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Path: outputPath, Err: closeErr}
		}
		if err != nil {
			result = Result{}
		}
	}()

	// One stamp per build keeps every entry's timestamp identical.
	stamp := b.now().UTC()
	written := 0
	for _, tier := range b.table {
		for _, folder := range tier.Folders {
			entryPath := tierlist.EntryPath(tier.Name, folder)
			header := &zip.FileHeader{
				Name:     entryPath,
				Method:   zip.Deflate,
				Modified: stamp,
			}
			entry, entryErr := writer.CreateHeader(header)
			if entryErr != nil {
				return Result{}, &IOError{Op: "write entry", Path: entryPath, Err: entryErr}
			}
			if _, writeErr := entry.Write([]byte(b.placeholder)); writeErr != nil {
				return Result{}, &IOError{Op: "write entry", Path: entryPath, Err: writeErr}
			}
			written++
		}
	}
	result = Result{Path: outputPath, Entries: written, CompletedAt: stamp}
	return result, nil
}
