package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrlokans/libraryman/internal/entities"
)

// ParseYear validates a publication year entry. Empty input falls back
// to currentYear; otherwise the value must be an integer in
// [1000, currentYear].
func ParseYear(input string, currentYear int) (int, error) {
	if input == "" {
		return currentYear, nil
	}
	year, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %q", input)
	}
	if year < 1000 || year > currentYear {
		return 0, fmt.Errorf("year must be between 1000 and %d", currentYear)
	}
	return year, nil
}

// ParseYesNo accepts y/n (case-insensitive).
func ParseYesNo(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	case "":
		return false, ErrEmptyInput
	}
	return false, fmt.Errorf("expected 'y' or 'n', got %q", input)
}

// GenreForChoice resolves a 1-based menu number to a genre name.
func GenreForChoice(input string) (string, error) {
	choice, err := strconv.Atoi(input)
	if err != nil {
		return "", fmt.Errorf("invalid genre choice: %q", input)
	}
	if choice < 1 || choice > len(entities.Genres) {
		return "", fmt.Errorf("genre choice out of range: %d", choice)
	}
	return entities.Genres[choice-1], nil
}

// SearchFieldForOption resolves the search submenu selection to a
// searchable field name.
func SearchFieldForOption(option string) (string, error) {
	switch option {
	case "1":
		return "title", nil
	case "2":
		return "author", nil
	case "3":
		return "genre", nil
	}
	return "", errors.New("invalid search option")
}
