// Package importers restores a catalog from an export file.
//
// Import is a destructive replace: the whole current catalog is deleted
// and the file's records are inserted in its place, inside one
// transaction. It never runs without an explicit confirmation signal.
package importers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mrlokans/libraryman/internal/entities"
)

var (
	// ErrNotConfirmed is returned when Import is called without the
	// caller having confirmed the destructive replace.
	ErrNotConfirmed = errors.New("import not confirmed")
	// ErrNoRecords is returned for an import file with an empty record list.
	ErrNoRecords = errors.New("import file contains no records")
)

// BookReplacer swaps the entire catalog for a new set of books.
// Implemented by books.Repository.
type BookReplacer interface {
	ReplaceAll(books []entities.Book) error
}

// record mirrors one export entry. Every field is a pointer so a key
// that is absent (or null) in the file can be told apart from a zero
// value; a record missing any key fails the whole import.
type record struct {
	ID              *uint   `json:"id"`
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	PublicationYear *int    `json:"publication_year"`
	Genre           *string `json:"genre"`
	ReadStatus      *bool   `json:"read_status"`
	AddedDate       *string `json:"added_date"`
}

func (r record) validate() error {
	switch {
	case r.ID == nil:
		return errors.New("missing field: id")
	case r.Title == nil:
		return errors.New("missing field: title")
	case r.Author == nil:
		return errors.New("missing field: author")
	case r.PublicationYear == nil:
		return errors.New("missing field: publication_year")
	case r.Genre == nil:
		return errors.New("missing field: genre")
	case r.ReadStatus == nil:
		return errors.New("missing field: read_status")
	case r.AddedDate == nil:
		return errors.New("missing field: added_date")
	}
	return nil
}

// JSONImporter reads an export file and replaces the catalog with it.
type JSONImporter struct {
	store BookReplacer
}

// NewJSONImporter creates an importer writing to the given store.
func NewJSONImporter(store BookReplacer) *JSONImporter {
	return &JSONImporter{store: store}
}

// Load parses and validates the import file without touching the
// catalog. The returned books carry the file's field values; their
// original IDs are discarded so the store assigns fresh ones.
func (i *JSONImporter) Load(path string) ([]entities.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse import file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	books := make([]entities.Book, 0, len(records))
	for n, rec := range records {
		if err := rec.validate(); err != nil {
			return nil, fmt.Errorf("invalid record %d: %w", n+1, err)
		}
		books = append(books, entities.Book{
			Title:           *rec.Title,
			Author:          *rec.Author,
			PublicationYear: *rec.PublicationYear,
			Genre:           *rec.Genre,
			ReadStatus:      *rec.ReadStatus,
			AddedDate:       *rec.AddedDate,
		})
	}
	return books, nil
}

// Import replaces the whole catalog with the file's records. Without
// confirmed the catalog is left untouched and ErrNotConfirmed is
// returned. Returns the number of books imported.
func (i *JSONImporter) Import(path string, confirmed bool) (int, error) {
	books, err := i.Load(path)
	if err != nil {
		return 0, err
	}
	if !confirmed {
		return 0, ErrNotConfirmed
	}

	if err := i.store.ReplaceAll(books); err != nil {
		return 0, fmt.Errorf("failed to replace catalog: %w", err)
	}
	return len(books), nil
}
