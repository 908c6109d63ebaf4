package exporters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/libraryman/internal/entities"
)

type stubReader struct {
	books []entities.Book
	err   error
}

func (s *stubReader) GetAll() ([]entities.Book, error) {
	return s.books, s.err
}

func TestJSONExporter_EmptyLibrary(t *testing.T) {
	exporter := NewJSONExporter(&stubReader{})
	path := filepath.Join(t.TempDir(), "export.json")

	_, err := exporter.Export(path)

	assert.ErrorIs(t, err, ErrEmptyLibrary)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written for an empty library")
}

func TestJSONExporter_WritesAllFields(t *testing.T) {
	reader := &stubReader{books: []entities.Book{
		{
			ID:              7,
			Title:           "Dune",
			Author:          "Herbert",
			PublicationYear: 1965,
			Genre:           "Science Fiction",
			ReadStatus:      true,
			AddedDate:       "2024-01-15 10:30:00",
		},
	}}
	exporter := NewJSONExporter(reader)
	path := filepath.Join(t.TempDir(), "export.json")

	count, err := exporter.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)

	record := records[0]
	assert.EqualValues(t, 7, record["id"])
	assert.Equal(t, "Dune", record["title"])
	assert.Equal(t, "Herbert", record["author"])
	assert.EqualValues(t, 1965, record["publication_year"])
	assert.Equal(t, "Science Fiction", record["genre"])
	assert.Equal(t, true, record["read_status"])
	assert.Equal(t, "2024-01-15 10:30:00", record["added_date"])
}
