// Package catalog implements the business operations of the library:
// adding, removing, searching and listing books and toggling read status.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/libraryman/internal/entities"
)

var (
	// ErrEmptyTitle is returned when a book is added without a title.
	ErrEmptyTitle = errors.New("title cannot be empty")
	// ErrEmptyAuthor is returned when a book is added without an author.
	ErrEmptyAuthor = errors.New("author cannot be empty")
	// ErrInvalidSearchField is returned when a search targets anything
	// other than title, author or genre.
	ErrInvalidSearchField = errors.New("search field must be one of: title, author, genre")
)

// SearchFields lists the fields a search may target.
var SearchFields = []string{"title", "author", "genre"}

// BookStore is the storage contract the catalog operates on.
// Implemented by books.Repository.
type BookStore interface {
	Create(book *entities.Book) error
	GetByID(id uint) (*entities.Book, error)
	GetAll() ([]entities.Book, error)
	Search(field, term string) ([]entities.Book, error)
	SetReadStatus(id uint, status bool) error
	Delete(id uint) error
}

// Service validates inputs and translates catalog operations into
// storage calls.
type Service struct {
	store BookStore
	now   func() time.Time
}

// NewService creates a catalog service on top of a book store.
func NewService(store BookStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Add stamps the current timestamp and persists a new book. Duplicate
// titles are allowed; no dedup check is performed.
func (s *Service) Add(title, author string, year int, genre string, read bool) (*entities.Book, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}

	book := &entities.Book{
		Title:           title,
		Author:          author,
		PublicationYear: year,
		Genre:           genre,
		ReadStatus:      read,
		AddedDate:       s.now().Format(entities.AddedDateLayout),
	}
	if err := s.store.Create(book); err != nil {
		return nil, fmt.Errorf("failed to add book: %w", err)
	}
	return book, nil
}

// Remove deletes the book with the given ID and returns its title for
// confirmation. An absent ID is a normal negative outcome: found is
// false and nothing is deleted.
func (s *Service) Remove(id uint) (title string, found bool, err error) {
	book, err := s.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up book %d: %w", id, err)
	}

	if err := s.store.Delete(id); err != nil {
		return "", false, fmt.Errorf("failed to remove book %d: %w", id, err)
	}
	return book.Title, true, nil
}

// ToggleReadStatus flips the read flag of the book with the given ID and
// returns the book with its new status. Toggling twice restores the
// original status.
func (s *Service) ToggleReadStatus(id uint) (book *entities.Book, found bool, err error) {
	book, err = s.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up book %d: %w", id, err)
	}

	book.ReadStatus = !book.ReadStatus
	if err := s.store.SetReadStatus(id, book.ReadStatus); err != nil {
		return nil, false, fmt.Errorf("failed to update read status of book %d: %w", id, err)
	}
	return book, true, nil
}

// Search matches term as a substring of a single field (title, author or
// genre). Results come back title ascending; an empty result is a normal
// outcome.
func (s *Service) Search(term, field string) ([]entities.Book, error) {
	if !validSearchField(field) {
		return nil, ErrInvalidSearchField
	}
	books, err := s.store.Search(field, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return books, nil
}

// ListAll returns every book, title ascending.
func (s *Service) ListAll() ([]entities.Book, error) {
	books, err := s.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func validSearchField(field string) bool {
	for _, f := range SearchFields {
		if f == field {
			return true
		}
	}
	return false
}
