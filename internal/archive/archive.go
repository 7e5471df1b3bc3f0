// Package archive bundles converted saves into a single ZIP file.
package archive

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"
)

// ErrEmpty is returned when there is nothing to archive.
var ErrEmpty = errors.New("nothing to output")

// Entry is one file in the archive.
type Entry struct {
	Name string
	Data []byte
}

// Write writes entries to w as a ZIP archive, in order.  Entries are stored
// uncompressed, since huf28 output does not shrink further and decompressed
// saves are meant to be edited in place.
func Write(w io.Writer, entries []Entry, modified time.Time) error {
	if len(entries) == 0 {
		return ErrEmpty
	}

	zw := zip.NewWriter(w)
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, found := seen[entry.Name]; found {
			return fmt.Errorf("duplicate archive entry %q", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entry.Name,
			Method:   zip.Store,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("failed to add %q: %w", entry.Name, err)
		}
		if _, err := fw.Write(entry.Data); err != nil {
			return fmt.Errorf("failed to write %q: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}
