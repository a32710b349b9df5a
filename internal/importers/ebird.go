package importers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Column layout of the eBird/Clements taxonomy CSV export:
// TAXON_ORDER, CATEGORY, SPECIES_CODE, PRIMARY_COM_NAME, SCI_NAME, ORDER1, FAMILY, SPECIES_GROUP, ...
const (
	ebirdRankColumn     = 1
	ebirdNameColumn     = 3
	ebirdCategoryColumn = 7
	ebirdMinFields      = 8

	// EBirdSpeciesRank is the only taxonomic rank that is imported. Rows for
	// subspecies groups, hybrids, slashes, spuhs and the header row are skipped.
	EBirdSpeciesRank = "species"
)

// ErrMalformedRecord is returned when a taxonomy record has too few columns.
var ErrMalformedRecord = errors.New("malformed taxonomy record")

// TaxonRecord is a single species row from the eBird taxonomy.
type TaxonRecord struct {
	CommonName string
	Category   string
	Line       int
}

// EBirdReader streams species records from an eBird taxonomy CSV.
type EBirdReader struct {
	csv     *csv.Reader
	skipped int
}

// NewEBirdReader wraps r in a taxonomy reader.
func NewEBirdReader(r io.Reader) *EBirdReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true    // A stray quote inside an unquoted field is kept as text
	return &EBirdReader{csv: reader}
}

// Next returns the next species record, skipping rows of any other rank.
// It returns io.EOF once the input is exhausted.
func (r *EBirdReader) Next() (TaxonRecord, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			return TaxonRecord{}, err
		}
		line, _ := r.csv.FieldPos(0)

		if len(record) < ebirdMinFields {
			return TaxonRecord{}, fmt.Errorf("line %d: %w: got %d fields, need at least %d",
				line, ErrMalformedRecord, len(record), ebirdMinFields)
		}
		if record[ebirdRankColumn] != EBirdSpeciesRank {
			r.skipped++
			continue
		}

		return TaxonRecord{
			CommonName: record[ebirdNameColumn],
			Category:   record[ebirdCategoryColumn],
			Line:       line,
		}, nil
	}
}

// Skipped returns how many non-species rows have been passed over so far.
func (r *EBirdReader) Skipped() int {
	return r.skipped
}
