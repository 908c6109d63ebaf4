// Package books provides database operations for catalog entries.
//
// This package implements the BookStore interface defined in
// internal/catalog/service.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(123)
package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/libraryman/internal/entities"
)

// searchColumns maps caller-facing search fields to the columns a LIKE
// query may touch. Anything outside this map is rejected so the field
// name never reaches the SQL text unchecked.
var searchColumns = map[string]string{
	"title":  "title",
	"author": "author",
	"genre":  "genre",
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book. The store assigns the ID.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a single book by its ID.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves every book, title ascending, ties by ID.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("title ASC, id ASC").Find(&books).Error
	return books, err
}

// Search performs a case-insensitive substring match against a single
// column. field must be one of title, author or genre.
func (r *Repository) Search(field, term string) ([]entities.Book, error) {
	column, ok := searchColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported search field: %q", field)
	}

	var books []entities.Book
	searchPattern := "%" + term + "%"
	err := r.db.
		Where("LOWER("+column+") LIKE LOWER(?)", searchPattern).
		Order("title ASC, id ASC").
		Find(&books).Error
	return books, err
}

// SetReadStatus updates only the read_status column; AddedDate and the
// rest of the row are never touched.
func (r *Repository) SetReadStatus(id uint, status bool) error {
	return r.db.Model(&entities.Book{}).Where("id = ?", id).
		Update("read_status", status).Error
}

// Delete removes the book with the given ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// ReplaceAll wipes the catalog and inserts the given books in a single
// transaction. Incoming IDs are discarded; the store assigns fresh ones.
// If any insert fails the whole replace rolls back.
func (r *Repository) ReplaceAll(incoming []entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM books").Error; err != nil {
			return err
		}
		for i := range incoming {
			book := incoming[i]
			book.ID = 0
			if err := tx.Create(&book).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
