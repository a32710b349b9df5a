package services

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mrlokans/birdr/internal/database"
	"github.com/mrlokans/birdr/internal/importers"
	"github.com/mrlokans/birdr/internal/progress"
)

// BirdService implements the user-facing flows on top of the database.
// Each method runs in exactly one transaction.
type BirdService struct {
	db     *database.Database
	logger *zap.Logger
}

// NewBirdService creates a service backed by db.
func NewBirdService(db *database.Database, logger *zap.Logger) *BirdService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BirdService{db: db, logger: logger}
}

// Init creates the schema and, when ebirdList is non-nil, loads the species
// catalog from it.
func (s *BirdService) Init(ebirdList io.Reader) (importers.ImportResult, error) {
	if err := s.db.Create(); err != nil {
		return importers.ImportResult{}, err
	}
	if ebirdList == nil {
		return importers.ImportResult{}, nil
	}

	var result importers.ImportResult
	err := s.db.Transaction(func(tx *database.Transaction) error {
		var err error
		result, err = tx.LoadEBirdList(ebirdList)
		return err
	})
	return result, err
}

// AddSighting records a single observation.
func (s *BirdService) AddSighting(obs Observation) error {
	return s.db.Transaction(func(tx *database.Transaction) error {
		return tx.AddSighting(obs.Date, obs.Species, obs.Location, obs.Notes)
	})
}

// AddObservations records every observation produced by src in a single
// transaction. Any failure discards the whole batch. Returns the number of
// sightings committed.
func (s *BirdService) AddObservations(src ObservationSource) (int, error) {
	added := 0
	err := s.db.Transaction(func(tx *database.Transaction) error {
		for {
			obs, err := src.NextObservation(tx)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if err := tx.AddSighting(obs.Date, obs.Species, obs.Location, obs.Notes); err != nil {
				return err
			}
			added++
		}
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("sightings recorded", zap.Int("count", added))
	return added, nil
}

// CreateChecklist creates a checklist and fills it with the species produced
// by src. Names that are not in the catalog are reported and skipped; the
// checklist itself is still created.
func (s *BirdService) CreateChecklist(name string, src SpeciesSource) (ChecklistResult, error) {
	var result ChecklistResult
	err := s.db.Transaction(func(tx *database.Transaction) error {
		if err := tx.AddChecklist(name); err != nil {
			return err
		}
		for {
			speciesName, err := src.NextSpecies(tx)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			err = tx.AddSpeciesToChecklist(name, speciesName)
			var unrecognized *database.UnrecognizedSpeciesError
			switch {
			case errors.As(err, &unrecognized):
				s.logger.Warn("species not in catalog; skipped", zap.String("species", speciesName))
				result.Unrecognized = append(result.Unrecognized, speciesName)
			case err != nil:
				return err
			default:
				result.Added = append(result.Added, speciesName)
			}
		}
	})
	if err != nil {
		return ChecklistResult{}, err
	}
	return result, nil
}

// ChecklistNames returns the names of all checklists.
func (s *BirdService) ChecklistNames() ([]string, error) {
	var names []string
	err := s.db.Transaction(func(tx *database.Transaction) error {
		var err error
		names, err = tx.LookupChecklistNames()
		return err
	})
	return names, err
}

// ChecklistReport computes completion statistics for the named checklist.
// Returns database.ErrChecklistNotFound if it does not exist.
func (s *BirdService) ChecklistReport(name string) (*progress.Report, error) {
	var report *progress.Report
	err := s.db.Transaction(func(tx *database.Transaction) error {
		entries, err := tx.LookupChecklist(name)
		if err != nil {
			return err
		}
		report = progress.BuildReport(name, entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// MatchingSpecies returns the names of catalog species starting with prefix.
func (s *BirdService) MatchingSpecies(prefix string) ([]string, error) {
	var names []string
	err := s.db.Transaction(func(tx *database.Transaction) error {
		matches, err := tx.LookupMatchingSpecies(prefix)
		if err != nil {
			return fmt.Errorf("failed to look up species: %w", err)
		}
		names = make([]string, 0, len(matches))
		for _, sp := range matches {
			names = append(names, sp.Name)
		}
		return nil
	})
	return names, err
}
