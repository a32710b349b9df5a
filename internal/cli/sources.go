package cli

import (
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/birdr/internal/services"
)

// NotesCapturer returns free-form notes for a sighting.
type NotesCapturer interface {
	Capture() (string, error)
}

// InteractiveObservations prompts for species at a fixed date and location
// and collects notes for each one. Input ends at end of file, when the editor
// fails, or when the notes are left empty.
type InteractiveObservations struct {
	Prompter Prompter
	Notes    NotesCapturer
	Date     time.Time
	Location string
	Logger   *zap.Logger

	completer *SpeciesCompleter
}

func (s *InteractiveObservations) NextObservation(lookup services.SpeciesLookup) (services.Observation, error) {
	if s.completer == nil {
		s.completer = NewSpeciesCompleter(lookup)
	}

	species, err := promptNonEmpty(s.Prompter, "species? ", s.completer.Complete)
	if err != nil {
		return services.Observation{}, err
	}

	notes, err := s.Notes.Capture()
	if errors.Is(err, ErrEditorFailed) {
		s.logger().Error("aborting sighting entry", zap.Error(err))
		return services.Observation{}, io.EOF
	}
	if err != nil {
		return services.Observation{}, err
	}
	if notes == "" {
		return services.Observation{}, io.EOF
	}

	return services.Observation{
		Date:     s.Date,
		Location: s.Location,
		Species:  species,
		Notes:    notes,
	}, nil
}

func (s *InteractiveObservations) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// InteractiveSpecies prompts for species names until end of input.
type InteractiveSpecies struct {
	Prompter Prompter

	completer *SpeciesCompleter
}

func (s *InteractiveSpecies) NextSpecies(lookup services.SpeciesLookup) (string, error) {
	if s.completer == nil {
		s.completer = NewSpeciesCompleter(lookup)
	}
	return promptNonEmpty(s.Prompter, "species? ", s.completer.Complete)
}

var (
	_ services.ObservationSource = (*InteractiveObservations)(nil)
	_ services.SpeciesSource     = (*InteractiveSpecies)(nil)
)
