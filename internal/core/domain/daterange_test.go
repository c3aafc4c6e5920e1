package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kavindu27/hotel_reservation/internal/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"identical ranges", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"partial overlap", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-06", true},
		{"b contains a", "2024-06-02", "2024-06-03", "2024-06-01", "2024-06-05", true},
		{"a contains b", "2024-06-01", "2024-06-05", "2024-06-02", "2024-06-03", true},
		{"adjacent, a before b", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-08", false},
		{"adjacent, b before a", "2024-06-05", "2024-06-08", "2024-06-01", "2024-06-05", false},
		{"disjoint", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"one night shared", "2024-06-01", "2024-06-05", "2024-06-04", "2024-06-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// symmetry
			swapped := domain.Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd))
			assert.Equal(t, got, swapped)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 7, 1, 23, 45, 12, 99, loc)

	got := domain.NormalizeDate(in)

	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	got, err := domain.ParseDate("2024-07-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = domain.ParseDate("01-07-2024")
	assert.Error(t, err)
}
