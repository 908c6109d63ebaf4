// Package analytics aggregates catalog statistics: read progress, genre
// and author histograms and publication-decade buckets.
package analytics

import (
	"sort"

	"github.com/mrlokans/libraryman/internal/entities"
)

// TopEntries is how many genre/author histogram entries are surfaced.
const TopEntries = 5

// NameCount is one histogram entry keyed by genre or author name.
type NameCount struct {
	Name  string
	Count int
}

// DecadeCount is one publication-decade bucket.
type DecadeCount struct {
	Decade int
	Count  int
}

// Summary holds every statistic computed over the full catalog.
type Summary struct {
	TotalBooks  int
	ReadBooks   int
	PercentRead float64
	TopGenres   []NameCount
	TopAuthors  []NameCount
	Decades     []DecadeCount
}

// IsEmpty reports whether the catalog had no books. Callers must check
// this before rendering: an empty library is reported distinctly, not as
// a zero percentage.
func (s Summary) IsEmpty() bool {
	return s.TotalBooks == 0
}

// Summarize computes statistics over the full set of books.
func Summarize(books []entities.Book) Summary {
	summary := Summary{TotalBooks: len(books)}
	if summary.IsEmpty() {
		return summary
	}

	genres := make(map[string]int)
	authors := make(map[string]int)
	decades := make(map[int]int)

	for _, book := range books {
		if book.ReadStatus {
			summary.ReadBooks++
		}
		genres[book.Genre]++
		authors[book.Author]++
		// Books with an unknown year are left out of the decade buckets.
		if book.PublicationYear > 0 {
			decades[book.PublicationYear/10*10]++
		}
	}

	summary.PercentRead = float64(summary.ReadBooks) / float64(summary.TotalBooks) * 100
	summary.TopGenres = topCounts(genres, TopEntries)
	summary.TopAuthors = topCounts(authors, TopEntries)
	summary.Decades = decadeCounts(decades)

	return summary
}

// topCounts orders a histogram descending by count, ties by name
// ascending so the order is stable, and truncates to limit entries.
func topCounts(counts map[string]int, limit int) []NameCount {
	entries := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, NameCount{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func decadeCounts(counts map[int]int) []DecadeCount {
	entries := make([]DecadeCount, 0, len(counts))
	for decade, count := range counts {
		entries = append(entries, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Decade < entries[j].Decade
	})
	return entries
}
