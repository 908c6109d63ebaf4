package catalog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/libraryman/internal/analytics"
	"github.com/mrlokans/libraryman/internal/database/books"
	"github.com/mrlokans/libraryman/internal/entities"
)

func setupService(t *testing.T) (*Service, func()) {
	dbPath := "./test_catalog_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{})
	require.NoError(t, err)

	repo := books.NewRepository(db)
	svc := NewService(repo)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return svc, cleanup
}

func TestService_Add_SetsFieldsAndTimestamp(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	book, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)

	assert.NotZero(t, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Herbert", book.Author)
	assert.Equal(t, 1965, book.PublicationYear)
	assert.Equal(t, "Science Fiction", book.Genre)
	assert.False(t, book.ReadStatus)
	assert.NotEmpty(t, book.AddedDate)

	listed, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, book.ID, listed[0].ID)
	assert.Equal(t, book.AddedDate, listed[0].AddedDate)
}

func TestService_Add_AllowsDuplicateTitles(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	first, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)
	second, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	listed, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestService_Add_RejectsEmptyTitleAndAuthor(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Add("", "Herbert", 1965, "Science Fiction", false)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.Add("Dune", "", 1965, "Science Fiction", false)
	assert.ErrorIs(t, err, ErrEmptyAuthor)

	listed, err := svc.ListAll()
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestService_Remove_Present(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	book, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)
	keep, err := svc.Add("Solaris", "Lem", 1961, "Science Fiction", true)
	require.NoError(t, err)

	title, found, err := svc.Remove(book.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Dune", title)

	listed, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keep.ID, listed[0].ID)
}

func TestService_Remove_AbsentIsNotFoundNotError(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)

	_, found, err := svc.Remove(999)
	require.NoError(t, err)
	assert.False(t, found)

	listed, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestService_ToggleReadStatus_IsInvolutive(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	book, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)

	toggled, found, err := svc.ToggleReadStatus(book.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, toggled.ReadStatus)

	toggled, found, err = svc.ToggleReadStatus(book.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, toggled.ReadStatus)
}

func TestService_ToggleReadStatus_Absent(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, found, err := svc.ToggleReadStatus(123)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_Search_RestrictsFields(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Search("2024", "added_date")
	assert.ErrorIs(t, err, ErrInvalidSearchField)

	_, err = svc.Search("x", "id")
	assert.ErrorIs(t, err, ErrInvalidSearchField)
}

func TestService_Search_ReturnsMatchingSubsetSorted(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Add("Dune Messiah", "Herbert", 1969, "Science Fiction", false)
	require.NoError(t, err)
	_, err = svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)
	_, err = svc.Add("Solaris", "Lem", 1961, "Science Fiction", true)
	require.NoError(t, err)

	results, err := svc.Search("Dune", "title")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Dune", results[0].Title)
	assert.Equal(t, "Dune Messiah", results[1].Title)

	empty, err := svc.Search("nothing matches this", "title")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// The full walkthrough: add Dune, list it unread, toggle it read, and
// see it land in the 1960 decade bucket.
func TestService_DuneScenario(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	book, err := svc.Add("Dune", "Herbert", 1965, "Science Fiction", false)
	require.NoError(t, err)

	listed, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Unread", listed[0].StatusLabel())

	toggled, found, err := svc.ToggleReadStatus(book.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Read", toggled.StatusLabel())

	listed, err = svc.ListAll()
	require.NoError(t, err)
	summary := analytics.Summarize(listed)
	require.Len(t, summary.Decades, 1)
	assert.Equal(t, 1960, summary.Decades[0].Decade)
	assert.Equal(t, 1, summary.Decades[0].Count)
}
