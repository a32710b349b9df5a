package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/birdr/internal/database"
	"github.com/mrlokans/birdr/internal/services"
)

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [EBIRD_LIST]",
		Short: "Initialize the bird database",
		Long: `Initialize the bird database.

Optionally, use the given EBIRD_LIST (the taxonomy CSV downloaded from
ebird.org) to populate the species and category tables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var list io.Reader
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open eBird list: %w", err)
				}
				defer f.Close()
				list = f
			}

			db, err := database.NewDatabase(a.cfg.Database.Path, a.dbOptions()...)
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := services.NewBirdService(db, a.logger).Init(list)
			if err != nil {
				return err
			}

			a.logger.Info("database initialized", zap.String("path", db.Path()))
			if list != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d species in %d new categories\n",
					result.SpeciesCreated, result.CategoriesCreated)
			}
			return nil
		},
	}
}
