package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf := Default()

	assert.Equal(t, "https://www.cp.pt/sites/spring/station-index", conf.StationIndexURL)
	assert.Equal(t, "https://www.cp.pt/sites/spring/station/trains", conf.StationTrainsURL)
	assert.Equal(t, "https://www.cp.pt/sites/spring/station/trains/train", conf.TrainDetailsURL)
	assert.Equal(t, "https://www.cp.pt/passageiros/pt/consultar-horarios/estacoes", conf.StationPageURL)
	assert.Equal(t, "trains.json", conf.TrainsOutputPath)
	assert.Equal(t, "station_coords.json", conf.CoordsOutputPath)
	assert.Equal(t, 100*time.Millisecond, conf.TrainDelay())
	assert.Equal(t, time.Second, conf.StationDelay())
	assert.Equal(t, 30*time.Second, conf.Timeout())
	assert.NotEmpty(t, conf.UserAgent)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		check     func(t *testing.T, conf Config)
	}{
		{
			name:  "empty object keeps defaults",
			input: `{}`,
			check: func(t *testing.T, conf Config) {
				assert.Equal(t, Default(), conf)
			},
		},
		{
			name:  "overrides only the named fields",
			input: `{"trainsOutputPath": "out/trains.json", "trainDelayMillis": 250}`,
			check: func(t *testing.T, conf Config) {
				assert.Equal(t, "out/trains.json", conf.TrainsOutputPath)
				assert.Equal(t, 250*time.Millisecond, conf.TrainDelay())
				assert.Equal(t, Default().StationIndexURL, conf.StationIndexURL)
				assert.Equal(t, Default().CoordsOutputPath, conf.CoordsOutputPath)
			},
		},
		{
			name:      "rejects malformed json",
			input:     `{"trainsOutputPath": `,
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := Parse([]byte(tc.input))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tc.check(t, conf)
		})
	}
}
