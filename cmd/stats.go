package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/libraryman/internal/analytics"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			booksList, err := repo.GetAll()
			if err != nil {
				return err
			}

			summary := analytics.Summarize(booksList)
			out := cmd.OutOrStdout()

			if summary.IsEmpty() {
				fmt.Fprintln(out, "Your library is empty. Add some books to see statistics!")
				return nil
			}

			fmt.Fprintf(out, "Total Books: %d\n", summary.TotalBooks)
			fmt.Fprintf(out, "Books Read: %d\n", summary.ReadBooks)
			fmt.Fprintf(out, "Percentage Read: %.1f%%\n", summary.PercentRead)

			if len(summary.TopGenres) > 0 {
				fmt.Fprintln(out, "\nTop Genres:")
				for _, entry := range summary.TopGenres {
					fmt.Fprintf(out, "  %s: %d\n", entry.Name, entry.Count)
				}
			}
			if len(summary.TopAuthors) > 0 {
				fmt.Fprintln(out, "\nTop Authors:")
				for _, entry := range summary.TopAuthors {
					fmt.Fprintf(out, "  %s: %d\n", entry.Name, entry.Count)
				}
			}
			if len(summary.Decades) > 0 {
				fmt.Fprintln(out, "\nBooks by Decade:")
				for _, entry := range summary.Decades {
					fmt.Fprintf(out, "  %ds: %d\n", entry.Decade, entry.Count)
				}
			}
			return nil
		},
	}
}
