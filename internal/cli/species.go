package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/birdr/internal/services"
)

func newSpeciesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "species [PREFIX]",
		Short: "List catalog species starting with PREFIX",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			return a.withService(func(s *services.BirdService) error {
				names, err := s.MatchingSpecies(prefix)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}
