package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrlokans/birdr/internal/services"
)

func newAddCommand(a *app) *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new series of sightings to the database",
		Long: `Add a new series of sightings to the database.

Sightings may be added either interactively or non-interactively. When adding
interactively, a series of sightings is added for a single date and location.
Species names are prompted (with tab completion); notes are read using $EDITOR.
Leaving the notes empty finishes the series.

When adding non-interactively, sighting data is read from stdin. Each line is a
single entry containing the date (YYYY/MM/DD), location, species name and notes,
separated by NUL characters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(s *services.BirdService) error {
				if nonInteractive {
					return addNonInteractive(s, cmd.InOrStdin())
				}
				return a.addInteractive(s, cmd)
			})
		},
	}

	cmd.Flags().BoolVarP(&nonInteractive, "non-interactive", "n", false, "Parse sighting data from stdin instead of prompting")
	return cmd
}

// addNonInteractive records each stdin record in its own transaction and
// stops at the first bad record.
func addNonInteractive(s *services.BirdService, in io.Reader) error {
	records := NewRecordReader(in)
	for {
		obs, err := records.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.AddSighting(obs); err != nil {
			return err
		}
	}
}

func (a *app) addInteractive(s *services.BirdService, cmd *cobra.Command) error {
	prompter, err := a.newPrompter()
	if err != nil {
		return err
	}
	defer prompter.Close()

	dateStr, err := prompter.Prompt("date? ", nil)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return err
	}

	location, err := prompter.Prompt("location? ", nil)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	added, err := s.AddObservations(&InteractiveObservations{
		Prompter: prompter,
		Notes:    a.newNotes(a.cfg.Editor.Command),
		Date:     date,
		Location: location,
		Logger:   a.logger,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d sightings\n", added)
	return nil
}
