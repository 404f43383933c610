package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/pmelo/cp-rail-data/pkg/artifact"
	"github.com/pmelo/cp-rail-data/pkg/collect"
	"github.com/pmelo/cp-rail-data/pkg/config"
	"github.com/pmelo/cp-rail-data/pkg/cp"
)

// Scrapes the coordinates of every CP station from its public timetable page
// and writes them to a single JSON file keyed by station id.
func main() {
	configFilePath := flag.String("config", "", "path to an optional JSON config file")
	flag.Parse()

	conf := loadConfig(*configFilePath)

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	collector := collect.NewCoordCollector(cp.NewClient(conf), conf.StationDelay(), log)

	coords, summary, err := collector.Run(context.Background())
	if err != nil {
		log.Fatalw("run failed", "error", err)
	}

	if err := artifact.WriteJSON(conf.CoordsOutputPath, coords); err != nil {
		log.Fatalw("write failed", "error", err)
	}

	requests, failures := cp.RequestTotals()
	log.Infow("run complete",
		"stations", summary.Processed,
		"skipped", len(summary.Skipped),
		"output", conf.CoordsOutputPath,
		"requests", requests,
		"failures", failures)
}

func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf, err := config.Parse(b)
	if err != nil {
		panic(err)
	}

	return conf
}
