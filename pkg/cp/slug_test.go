package cp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "single word passes through",
			input:  "Aveiro",
			expect: "Aveiro",
		},
		{
			name:   "spaces become hyphens",
			input:  "Lisboa Oriente",
			expect: "Lisboa-Oriente",
		},
		{
			name:   "double space collapses",
			input:  "Lisboa  Oriente",
			expect: "Lisboa-Oriente",
		},
		{
			name:   "existing hyphen runs collapse",
			input:  "Porto---Campanhã",
			expect: "Porto-Campanhã",
		},
		{
			name:   "diacritics pass through",
			input:  "São Romão",
			expect: "São-Romão",
		},
		{
			name:   "spaces around a hyphen collapse into it",
			input:  "Vila Nova - Gaia",
			expect: "Vila-Nova-Gaia",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Slugify(tc.input)

			assert.Equal(t, tc.expect, got)
			assert.NotContains(t, got, " ")
			assert.NotContains(t, got, "--")
		})
	}
}
