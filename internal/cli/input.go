package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mrlokans/birdr/internal/services"
)

// DateLayout is the sighting date format (YYYY/MM/DD).
const DateLayout = "2006/01/02"

// dateParseLayout also accepts unpadded months and days (2023/4/2).
const dateParseLayout = "2006/1/2"

// recordSeparator splits the fields of a non-interactive sighting record.
const recordSeparator = "\x00"

// ErrMalformedRecord is returned for a stdin record with the wrong number of fields.
var ErrMalformedRecord = errors.New("malformed sighting record")

// ParseDate parses a YYYY/MM/DD date.
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateParseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid date (want YYYY/MM/DD)", s)
	}
	return date, nil
}

// ParseObservationLine parses one NUL-separated record:
// date, location, species, notes.
func ParseObservationLine(line string) (services.Observation, error) {
	fields := strings.Split(strings.TrimSpace(line), recordSeparator)
	if len(fields) != 4 {
		return services.Observation{}, fmt.Errorf("%w: got %d fields, want 4", ErrMalformedRecord, len(fields))
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return services.Observation{}, err
	}

	return services.Observation{
		Date:     date,
		Location: fields[1],
		Species:  fields[2],
		Notes:    fields[3],
	}, nil
}

// RecordReader reads NUL-separated sighting records, one per line.
type RecordReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewRecordReader reads records from r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next observation, or io.EOF at the end of input. A blank
// line is a record with the wrong number of fields.
func (r *RecordReader) Next() (services.Observation, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return services.Observation{}, err
		}
		return services.Observation{}, io.EOF
	}
	r.line++

	obs, err := ParseObservationLine(r.scanner.Text())
	if err != nil {
		return services.Observation{}, fmt.Errorf("line %d: %w", r.line, err)
	}
	return obs, nil
}
