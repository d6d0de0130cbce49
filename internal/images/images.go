// Package images reads the pre-built celebrity image lookup table. The
// table is produced out of band by the Wikipedia fetch command; this layer
// only ever reads it.
package images

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tallerthan/content/internal/logging"
	"github.com/tallerthan/content/pkg/interfaces"
)

// Index is an immutable slug-keyed image lookup loaded once at startup.
type Index struct {
	records map[string]interfaces.ImageRecord
}

var _ interfaces.ImageIndex = (*Index)(nil)

// Load reads the JSON lookup table at path. A missing file is a soft
// condition producing an empty index; malformed JSON is an environment
// problem and propagates.
func Load(path string, logger interfaces.Logger) (*Index, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("images.table.missing", "path", path)
			return &Index{records: map[string]interfaces.ImageRecord{}}, nil
		}
		return nil, fmt.Errorf("images: read table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse builds an index from raw JSON table bytes.
func Parse(data []byte) (*Index, error) {
	records := map[string]interfaces.ImageRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("images: parse table: %w", err)
	}
	return &Index{records: records}, nil
}

// Empty returns an index with no entries; every lookup misses.
func Empty() *Index {
	return &Index{records: map[string]interfaces.ImageRecord{}}
}

// Lookup returns the image record for slug, reporting whether one exists.
func (i *Index) Lookup(slug string) (interfaces.ImageRecord, bool) {
	record, ok := i.records[slug]
	return record, ok
}

// Len reports the number of table entries.
func (i *Index) Len() int {
	return len(i.records)
}
