// Package demo holds the sample catalog and data used to build a demo
// database.
package demo

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/mrlokans/birdr/internal/database"
)

//go:embed assets/ebird_sample.csv
var sampleTaxonomy []byte

// Sighting is one demo observation.
type Sighting struct {
	Date     string // YYYY-MM-DD
	Location string
	Species  string
	Notes    string
}

// Checklist is a demo checklist and its species.
type Checklist struct {
	Name    string
	Species []string
}

var Checklists = []Checklist{
	{Name: "Backyard", Species: []string{"American Robin", "Northern Cardinal", "Rose-breasted Grosbeak", "Cooper's Hawk"}},
	{Name: "County waterfowl", Species: []string{"Canada Goose", "Wood Duck", "Mallard"}},
}

var Sightings = []Sighting{
	{"2023-04-02", "Riverside Park", "Canada Goose", "Pair on the river bank."},
	{"2023-04-02", "Riverside Park", "Mallard", "Several drakes near the bridge."},
	{"2023-04-15", "Backyard", "American Robin", "Foraging on the lawn after rain."},
	{"2023-04-15", "Backyard", "Northern Cardinal", "Male singing from the maple."},
	{"2023-05-06", "County Forest Preserve", "Red-tailed Hawk", "Soaring over the prairie."},
}

// Catalog returns the embedded sample eBird taxonomy. The slash and issf rows
// in it are not imported.
func Catalog() io.Reader {
	return bytes.NewReader(sampleTaxonomy)
}

// Populate loads the sample catalog, the demo checklists and the demo
// sightings in tx.
func Populate(tx *database.Transaction) error {
	if _, err := tx.LoadEBirdList(Catalog()); err != nil {
		return fmt.Errorf("load sample catalog: %w", err)
	}

	for _, cl := range Checklists {
		if err := tx.AddChecklist(cl.Name); err != nil {
			return fmt.Errorf("create checklist %q: %w", cl.Name, err)
		}
		for _, sp := range cl.Species {
			if err := tx.AddSpeciesToChecklist(cl.Name, sp); err != nil {
				return fmt.Errorf("add %q to %q: %w", sp, cl.Name, err)
			}
		}
	}

	for _, s := range Sightings {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return fmt.Errorf("parse demo date: %w", err)
		}
		if err := tx.AddSighting(date, s.Species, s.Location, s.Notes); err != nil {
			return err
		}
	}
	return nil
}
