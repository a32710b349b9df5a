package cli

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/birdr/internal/services"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2023/04/02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC), date)

	unpadded, err := ParseDate("2023/4/2")
	require.NoError(t, err)
	assert.Equal(t, date, unpadded)

	mixed, err := ParseDate("2023/04/2")
	require.NoError(t, err)
	assert.Equal(t, date, mixed)

	for _, bad := range []string{"2023-04-02", "04/02/2023", "2023/13/01", "2023/4/31", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseObservationLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected services.Observation
		wantErr  error
	}{
		{
			name: "valid record",
			line: "2023/04/02\x00Riverside Park\x00Mallard\x00Pair near the bridge\n",
			expected: services.Observation{
				Date:     time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC),
				Location: "Riverside Park",
				Species:  "Mallard",
				Notes:    "Pair near the bridge",
			},
		},
		{
			name: "empty notes",
			line: "2023/04/02\x00Yard\x00American Robin\x00",
			expected: services.Observation{
				Date:     time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC),
				Location: "Yard",
				Species:  "American Robin",
			},
		},
		{
			name:    "too few fields",
			line:    "2023/04/02\x00Yard\x00American Robin",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "too many fields",
			line:    "2023/04/02\x00Yard\x00American Robin\x00notes\x00extra",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "tab separated is malformed",
			line:    "2023/04/02\tYard\tAmerican Robin\tnotes",
			wantErr: ErrMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := ParseObservationLine(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, obs)
		})
	}

	t.Run("bad date", func(t *testing.T) {
		_, err := ParseObservationLine("yesterday\x00Yard\x00American Robin\x00notes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "yesterday")
	})
}

func TestRecordReader(t *testing.T) {
	input := "2023/04/02\x00Pond\x00Mallard\x00pair\n" +
		"2023/04/03\x00Yard\x00American Robin\x00singing\n" +
		"bad record\n"

	reader := NewRecordReader(strings.NewReader(input))

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "Mallard", first.Species)

	second, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "American Robin", second.Species)

	_, err = reader.Next()
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 3")

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestRecordReader_BlankLineIsMalformed(t *testing.T) {
	input := "2023/04/02\x00Pond\x00Mallard\x00pair\n" +
		"\n" +
		"2023/04/03\x00Yard\x00American Robin\x00singing\n"

	reader := NewRecordReader(strings.NewReader(input))

	_, err := reader.Next()
	require.NoError(t, err)

	_, err = reader.Next()
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRecordReader_LeadingBlankLine(t *testing.T) {
	reader := NewRecordReader(strings.NewReader("\n2023/04/02\x00Park\x00Mallard\x00n\n"))

	_, err := reader.Next()
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 1")
}
