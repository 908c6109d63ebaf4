// Package shell implements the interactive menu loop of the library
// manager: prompting, input validation and tabular rendering. All
// catalog work is delegated to the catalog service; the shell never
// talks to storage directly.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/libraryman/internal/analytics"
	"github.com/mrlokans/libraryman/internal/catalog"
	"github.com/mrlokans/libraryman/internal/entities"
)

// ErrEmptyInput is returned by prompt parsers for blank required input.
var ErrEmptyInput = errors.New("input cannot be empty")

// Shell runs the numbered menu loop against a catalog service.
type Shell struct {
	catalog *catalog.Service
	in      *bufio.Reader
	out     io.Writer
	now     func() time.Time

	// ClearScreen toggles ANSI screen clearing between menu
	// iterations. Disabled in tests.
	ClearScreen bool
}

// New creates a shell reading from in and writing to out.
func New(svc *catalog.Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog:     svc,
		in:          bufio.NewReader(in),
		out:         out,
		now:         time.Now,
		ClearScreen: true,
	}
}

// Run displays the menu until the user exits or input runs out.
func (s *Shell) Run() error {
	for {
		s.clearScreen()
		s.printMenu()
		choice, err := s.readLine()
		if err != nil {
			// EOF on stdin ends the session like an explicit exit.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		s.clearScreen()

		switch strings.TrimSpace(choice) {
		case "1":
			s.viewLibrary()
			s.pause()
		case "2":
			s.addBook()
			s.pause()
		case "3":
			s.removeBook()
			s.pause()
		case "4":
			s.toggleReadStatus()
			s.pause()
		case "5":
			s.searchBooks()
			s.pause()
		case "6":
			s.showStatistics()
			s.pause()
		case "9":
			fmt.Fprintln(s.out, "\nThank you for using Personal Library Manager!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) printMenu() {
	divider := strings.Repeat("=", 50)
	fmt.Fprintln(s.out, "\n"+divider)
	fmt.Fprintln(s.out, centered("PERSONAL LIBRARY MANAGER", 50))
	fmt.Fprintln(s.out, divider)
	fmt.Fprintln(s.out, "1. View Library")
	fmt.Fprintln(s.out, "2. Add New Book")
	fmt.Fprintln(s.out, "3. Remove Book")
	fmt.Fprintln(s.out, "4. Update Read Status")
	fmt.Fprintln(s.out, "5. Search Books")
	fmt.Fprintln(s.out, "6. View Statistics")
	fmt.Fprintln(s.out, "9. Exit")
	fmt.Fprintln(s.out, divider)
	fmt.Fprint(s.out, "Select an option (1-9): ")
}

func (s *Shell) viewLibrary() {
	books, err := s.catalog.ListAll()
	if err != nil {
		fmt.Fprintf(s.out, "Error viewing books: %v\n", err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(s.out, "\n📚 Your library is empty. Add some books to get started!")
		return
	}

	fmt.Fprintln(s.out, "\n📚 Your Library:")
	s.renderBooks(books)
}

func (s *Shell) addBook() {
	fmt.Fprintln(s.out, "\n📝 ADD NEW BOOK")
	fmt.Fprintln(s.out, strings.Repeat("-", 50))

	title, ok := s.promptRequired("Enter book title: ", "Title")
	if !ok {
		return
	}
	author, ok := s.promptRequired("Enter author name: ", "Author")
	if !ok {
		return
	}

	year := s.promptYear()
	genre := s.promptGenre()
	read := s.promptYesNo("Have you read this book? (y/n): ")

	if _, err := s.catalog.Add(title, author, year, genre, read); err != nil {
		fmt.Fprintf(s.out, "Error adding book: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "\n✅ Book added successfully!")
}

func (s *Shell) removeBook() {
	s.viewLibrary()

	id, ok := s.promptBookID("\nEnter the ID of the book to remove (or 0 to cancel): ")
	if !ok {
		return
	}

	title, found, err := s.catalog.Remove(id)
	if err != nil {
		fmt.Fprintf(s.out, "Error removing book: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintf(s.out, "\n❌ No book found with ID %d\n", id)
		return
	}
	fmt.Fprintf(s.out, "\n✅ Book '%s' removed successfully!\n", title)
}

func (s *Shell) toggleReadStatus() {
	s.viewLibrary()

	id, ok := s.promptBookID("\nEnter the ID of the book to update status (or 0 to cancel): ")
	if !ok {
		return
	}

	book, found, err := s.catalog.ToggleReadStatus(id)
	if err != nil {
		fmt.Fprintf(s.out, "Error updating book status: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintf(s.out, "\n❌ No book found with ID %d\n", id)
		return
	}
	fmt.Fprintf(s.out, "\n✅ Status of '%s' updated to %s\n", book.Title, book.StatusLabel())
}

func (s *Shell) searchBooks() {
	fmt.Fprintln(s.out, "\n🔍 SEARCH BOOKS")
	fmt.Fprintln(s.out, strings.Repeat("-", 50))
	fmt.Fprintln(s.out, "Search by:")
	fmt.Fprintln(s.out, "1. Title")
	fmt.Fprintln(s.out, "2. Author")
	fmt.Fprintln(s.out, "3. Genre")
	fmt.Fprint(s.out, "Select an option (1-3): ")

	option, err := s.readLine()
	if err != nil {
		return
	}
	field, err := SearchFieldForOption(strings.TrimSpace(option))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid option. Returning to main menu.")
		return
	}

	term, ok := s.promptRequired(fmt.Sprintf("\nEnter %s to search: ", field), "Search term")
	if !ok {
		return
	}

	books, err := s.catalog.Search(term, field)
	if err != nil {
		fmt.Fprintf(s.out, "Error searching books: %v\n", err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintf(s.out, "\n🔍 No books found matching '%s' in %s\n", term, field)
		return
	}

	fmt.Fprintf(s.out, "\n🔍 Search Results for '%s' in %s:\n", term, field)
	s.renderBooks(books)
}

func (s *Shell) showStatistics() {
	books, err := s.catalog.ListAll()
	if err != nil {
		fmt.Fprintf(s.out, "Error getting statistics: %v\n", err)
		return
	}
	s.renderStatistics(analytics.Summarize(books))
}

// promptRequired re-reads until non-empty input or EOF; on EOF or blank
// input the operation is cancelled.
func (s *Shell) promptRequired(prompt, label string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	value, err := s.readLine()
	if err != nil {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		fmt.Fprintf(s.out, "%s cannot be empty. Operation cancelled.\n", label)
		return "", false
	}
	return value, true
}

func (s *Shell) promptYear() int {
	currentYear := s.now().Year()
	for {
		fmt.Fprint(s.out, "Enter publication year (or press Enter for current year): ")
		input, err := s.readLine()
		if err != nil {
			return currentYear
		}
		year, err := ParseYear(strings.TrimSpace(input), currentYear)
		if err != nil {
			fmt.Fprintf(s.out, "Please enter a year between 1000 and %d.\n", currentYear)
			continue
		}
		return year
	}
}

func (s *Shell) promptGenre() string {
	fmt.Fprintln(s.out, "\nSelect a genre:")
	for i, genre := range entities.Genres {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, genre)
	}

	for {
		fmt.Fprintf(s.out, "\nEnter genre number (1-%d): ", len(entities.Genres))
		input, err := s.readLine()
		if err != nil {
			return "Other"
		}
		genre, err := GenreForChoice(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(entities.Genres))
			continue
		}
		return genre
	}
}

func (s *Shell) promptYesNo(prompt string) bool {
	for {
		fmt.Fprint(s.out, prompt)
		input, err := s.readLine()
		if err != nil {
			return false
		}
		answer, err := ParseYesNo(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintln(s.out, "Please enter 'y' or 'n'.")
			continue
		}
		return answer
	}
}

// promptBookID reads a numeric book ID; 0 cancels the operation.
func (s *Shell) promptBookID(prompt string) (uint, bool) {
	fmt.Fprint(s.out, prompt)
	input, err := s.readLine()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid book ID.")
		return 0, false
	}
	if id == 0 {
		fmt.Fprintln(s.out, "Operation cancelled.")
		return 0, false
	}
	return uint(id), true
}

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) pause() {
	fmt.Fprint(s.out, "\nPress Enter to continue...")
	_, _ = s.readLine()
}

func (s *Shell) clearScreen() {
	if s.ClearScreen {
		fmt.Fprint(s.out, "\033[2J\033[H")
	}
}

func centered(text string, width int) string {
	padding := width - len(text)
	if padding <= 0 {
		return text
	}
	left := padding / 2
	return strings.Repeat(" ", left) + text
}
