package shell

import (
	"fmt"
	"text/tabwriter"

	"github.com/mrlokans/libraryman/internal/analytics"
	"github.com/mrlokans/libraryman/internal/entities"
)

// renderBooks prints the catalog as an aligned table.
func (s *Shell) renderBooks(books []entities.Book) {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tAuthor\tYear\tGenre\tStatus\tDate Added")
	for _, book := range books {
		year := ""
		if book.PublicationYear > 0 {
			year = fmt.Sprintf("%d", book.PublicationYear)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			book.ID, book.Title, book.Author, year,
			book.Genre, book.StatusLabel(), book.AddedDate)
	}
	_ = w.Flush()
}

func (s *Shell) renderStatistics(summary analytics.Summary) {
	if summary.IsEmpty() {
		fmt.Fprintln(s.out, "\n📊 Your library is empty. Add some books to see statistics!")
		return
	}

	fmt.Fprintln(s.out, "\n📊 Library Statistics:")
	fmt.Fprintf(s.out, "Total Books: %d\n", summary.TotalBooks)
	fmt.Fprintf(s.out, "Books Read: %d\n", summary.ReadBooks)
	fmt.Fprintf(s.out, "Percentage Read: %.1f%%\n", summary.PercentRead)

	if len(summary.TopGenres) > 0 {
		fmt.Fprintln(s.out, "\nTop Genres:")
		for _, entry := range summary.TopGenres {
			fmt.Fprintf(s.out, "  %s: %d %s\n", entry.Name, entry.Count, pluralBooks(entry.Count))
		}
	}

	if len(summary.TopAuthors) > 0 {
		fmt.Fprintln(s.out, "\nTop Authors:")
		for _, entry := range summary.TopAuthors {
			fmt.Fprintf(s.out, "  %s: %d %s\n", entry.Name, entry.Count, pluralBooks(entry.Count))
		}
	}

	if len(summary.Decades) > 0 {
		fmt.Fprintln(s.out, "\nBooks by Decade:")
		for _, entry := range summary.Decades {
			fmt.Fprintf(s.out, "  %ds: %d %s\n", entry.Decade, entry.Count, pluralBooks(entry.Count))
		}
	}
}

func pluralBooks(count int) string {
	if count == 1 {
		return "book"
	}
	return "books"
}
