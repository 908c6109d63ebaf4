package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/libraryman/internal/catalog"
	"github.com/mrlokans/libraryman/internal/database/books"
	"github.com/mrlokans/libraryman/internal/exporters"
	"github.com/mrlokans/libraryman/internal/importers"
)

// BookStore implementations
var _ catalog.BookStore = (*books.Repository)(nil)

// BookReader implementations
var _ exporters.BookReader = (*books.Repository)(nil)

// BookReplacer implementations
var _ importers.BookReplacer = (*books.Repository)(nil)
