package config

import (
	"encoding/json"
	"time"
)

const (
	defaultStationIndexURL  = "https://www.cp.pt/sites/spring/station-index"
	defaultStationTrainsURL = "https://www.cp.pt/sites/spring/station/trains"
	defaultTrainDetailsURL  = "https://www.cp.pt/sites/spring/station/trains/train"
	defaultStationPageURL   = "https://www.cp.pt/passageiros/pt/consultar-horarios/estacoes"

	// The timetable pages sit behind a bot filter that rejects unknown agents.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config holds the endpoints, output paths and pacing for a collection run.
// Zero-valued fields fall back to the defaults, so a config file only needs
// to name what it overrides.
type Config struct {
	StationIndexURL  string `json:"stationIndexURL"`
	StationTrainsURL string `json:"stationTrainsURL"` // takes a stationId query parameter
	TrainDetailsURL  string `json:"trainDetailsURL"`  // takes a trainId query parameter
	StationPageURL   string `json:"stationPageURL"`   // the station slug is appended as a path segment

	TrainsOutputPath string `json:"trainsOutputPath"`
	CoordsOutputPath string `json:"coordsOutputPath"`

	TrainDelayMillis   int `json:"trainDelayMillis"`   // pause after every request in the trains pipeline
	StationDelayMillis int `json:"stationDelayMillis"` // pause after every station page in the coordinates pipeline
	TimeoutSeconds     int `json:"timeoutSeconds"`

	UserAgent string `json:"userAgent"`
}

// Default returns the built-in configuration both binaries run with when no
// config file is given.
func Default() Config {
	return Config{
		StationIndexURL:    defaultStationIndexURL,
		StationTrainsURL:   defaultStationTrainsURL,
		TrainDetailsURL:    defaultTrainDetailsURL,
		StationPageURL:     defaultStationPageURL,
		TrainsOutputPath:   "trains.json",
		CoordsOutputPath:   "station_coords.json",
		TrainDelayMillis:   100,
		StationDelayMillis: 1000,
		TimeoutSeconds:     30,
		UserAgent:          defaultUserAgent,
	}
}

// Parse unmarshals a JSON config file and fills omitted fields with defaults.
func Parse(b []byte) (Config, error) {
	var conf Config
	err := json.Unmarshal(b, &conf)
	if err != nil {
		return Config{}, err
	}

	return conf.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	d := Default()

	if c.StationIndexURL == "" {
		c.StationIndexURL = d.StationIndexURL
	}
	if c.StationTrainsURL == "" {
		c.StationTrainsURL = d.StationTrainsURL
	}
	if c.TrainDetailsURL == "" {
		c.TrainDetailsURL = d.TrainDetailsURL
	}
	if c.StationPageURL == "" {
		c.StationPageURL = d.StationPageURL
	}
	if c.TrainsOutputPath == "" {
		c.TrainsOutputPath = d.TrainsOutputPath
	}
	if c.CoordsOutputPath == "" {
		c.CoordsOutputPath = d.CoordsOutputPath
	}
	if c.TrainDelayMillis == 0 {
		c.TrainDelayMillis = d.TrainDelayMillis
	}
	if c.StationDelayMillis == 0 {
		c.StationDelayMillis = d.StationDelayMillis
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}

	return c
}

func (c Config) TrainDelay() time.Duration {
	return time.Duration(c.TrainDelayMillis) * time.Millisecond
}

func (c Config) StationDelay() time.Duration {
	return time.Duration(c.StationDelayMillis) * time.Millisecond
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
