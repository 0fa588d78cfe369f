package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStipendValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"currency and separator", "₹8,000", 8000, true},
		{"k suffix", "30k", 30000, true},
		{"uppercase k suffix", "30K", 30000, true},
		{"fractional k", "2.5k", 2500, true},
		{"plain number", "5000", 5000, true},
		{"dollar sign", "$1,200", 1200, true},
		{"embedded in text", "up to 12k per month", 12000, true},
		{"no numeric token", "unpaid", 0, false},
		{"empty", "", 0, false},
		{"symbols only", "₹₹", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStipendValue(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseStipendRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StipendRange
		ok    bool
	}{
		{"ascending range", "2k-5k", StipendRange{2000, 5000}, true},
		{"descending range is swapped", "9k-5k", StipendRange{5000, 9000}, true},
		{"unpaid literal", "unpaid", StipendRange{0, 0}, true},
		{"unpaid any case", "UNPAID", StipendRange{0, 0}, true},
		{"bare number is degenerate", "5000", StipendRange{5000, 5000}, true},
		{"currency range", "₹10K-20K", StipendRange{10000, 20000}, true},
		{"fractional ends", "1.5k-2.5k", StipendRange{1500, 2500}, true},
		{"unparseable", "negotiable", StipendRange{}, false},
		{"empty", "", StipendRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStipendRange(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStipendRangeOverlaps(t *testing.T) {
	base := StipendRange{Min: 2000, Max: 5000}

	assert.True(t, base.Overlaps(StipendRange{4000, 8000}))
	assert.True(t, base.Overlaps(StipendRange{5000, 5000}))
	assert.True(t, base.Overlaps(StipendRange{0, 10000}))
	assert.False(t, base.Overlaps(StipendRange{5001, 9000}))
	assert.False(t, base.Overlaps(StipendRange{0, 1999}))
}

func TestStipendRangeContains(t *testing.T) {
	r := StipendRange{Min: 0, Max: 0}
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(1))
}
