// Package exporters serializes the catalog to files.
package exporters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mrlokans/libraryman/internal/entities"
)

// ErrEmptyLibrary is returned when there are no books to export. It is
// a normal "nothing to export" outcome, not a storage fault.
var ErrEmptyLibrary = errors.New("library is empty, nothing to export")

// BookReader provides the books to serialize.
// Implemented by books.Repository.
type BookReader interface {
	GetAll() ([]entities.Book, error)
}

// JSONExporter writes the full catalog as an indented JSON array.
type JSONExporter struct {
	reader BookReader
}

// NewJSONExporter creates an exporter reading from the given store.
func NewJSONExporter(reader BookReader) *JSONExporter {
	return &JSONExporter{reader: reader}
}

// Export writes every book, including its ID and boolean read status,
// to path. Returns the number of books written.
func (e *JSONExporter) Export(path string) (int, error) {
	books, err := e.reader.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read books for export: %w", err)
	}
	if len(books) == 0 {
		return 0, ErrEmptyLibrary
	}

	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return 0, fmt.Errorf("failed to serialize books: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return len(books), nil
}
