package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlokans/libraryman/internal/config"
	"github.com/mrlokans/libraryman/internal/importers"
)

func newImportCmd() *cobra.Command {
	var (
		file string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the catalog with the contents of a JSON export",
		Long: `Import reads a JSON export and replaces the entire catalog with it.

This is destructive: every current book is deleted first. The replace
happens in a single transaction, so a malformed file leaves the catalog
untouched. Use --yes to skip the confirmation prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if file == "" {
				file = config.NewConfig().Export.Path
			}

			importer := importers.NewJSONImporter(repo)

			incoming, err := importer.Load(file)
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Importing %d books will replace your current library. Continue? (y/n): ", len(incoming))
				answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
					return nil
				}
			}

			count, err := importer.Import(file, true)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d books!\n", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Source file (default $EXPORT_PATH or "+config.DefaultExportPath+")")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the destructive replace without prompting")

	return cmd
}
