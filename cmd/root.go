package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mrlokans/libraryman/internal/catalog"
	"github.com/mrlokans/libraryman/internal/config"
	"github.com/mrlokans/libraryman/internal/database"
	"github.com/mrlokans/libraryman/internal/database/books"
	"github.com/mrlokans/libraryman/internal/shell"
)

// dbPath overrides the configured database location when set via --db.
var dbPath string

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libraryman",
		Short: "Single-user personal library catalog with an interactive menu",
		Long: `Libraryman keeps a personal book catalog in a local SQLite database.

Run without arguments for the interactive menu (view, add, remove, toggle
read status, search, statistics). Export, import and stats are also
available as standalone subcommands for scripted use.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: runShell,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the catalog database (default $DATABASE_PATH or "+config.DefaultDatabasePath+")")

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newStatsCmd())

	return cmd
}

// openDatabase opens the catalog store. A failure here terminates the
// command: no catalog can be served without the store.
func openDatabase() (*database.Database, *books.Repository, error) {
	path := dbPath
	if path == "" {
		path = config.NewConfig().Database.Path
	}
	db, err := database.NewDatabase(path)
	if err != nil {
		return nil, nil, err
	}
	return db, books.NewRepository(db.DB), nil
}

func runShell(cmd *cobra.Command, args []string) error {
	db, repo, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	sh := shell.New(catalog.NewService(repo), os.Stdin, cmd.OutOrStdout())
	return sh.Run()
}
