package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/libraryman/internal/config"
	"github.com/mrlokans/libraryman/internal/exporters"
)

func newExportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole catalog to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if file == "" {
				file = config.NewConfig().Export.Path
			}

			count, err := exporters.NewJSONExporter(repo).Export(file)
			if errors.Is(err, exporters.ErrEmptyLibrary) {
				fmt.Fprintln(cmd.OutOrStdout(), "Your library is empty. Nothing to export!")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d books to %s\n", count, file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Target file (default $EXPORT_PATH or "+config.DefaultExportPath+")")

	return cmd
}
