package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/birdr/internal/database"
	"github.com/mrlokans/birdr/internal/services"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show CHECKLIST_NAME",
		Short: "Show the status of a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(s *services.BirdService) error {
				report, err := s.ChecklistReport(args[0])
				if errors.Is(err, database.ErrChecklistNotFound) {
					return fmt.Errorf("%s is not a valid checklist", args[0])
				}
				if err != nil {
					return err
				}
				return RenderReport(cmd.OutOrStdout(), report)
			})
		},
	}
}
