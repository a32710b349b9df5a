package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/birdr/internal/services"
)

func newChecklistCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist [NAME]",
		Short: "Look up or add a new checklist",
		Long: `Look up or add a new checklist.

If a NAME is provided, create it as a new checklist and interactively add
species to it until end of input. Otherwise, list all existing checklists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(s *services.BirdService) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					names, err := s.ChecklistNames()
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(out, name)
					}
					return nil
				}

				prompter, err := a.newPrompter()
				if err != nil {
					return err
				}
				defer prompter.Close()

				result, err := s.CreateChecklist(args[0], &InteractiveSpecies{Prompter: prompter})
				if err != nil {
					return err
				}
				for _, name := range result.Unrecognized {
					fmt.Fprintf(out, "skipped unrecognized species: %s\n", name)
				}
				fmt.Fprintf(out, "Checklist %q created with %d species\n", args[0], len(result.Added))
				return nil
			})
		},
	}
}
