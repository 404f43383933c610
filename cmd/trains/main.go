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

// Fetches the detail document of every train currently known to the CP
// endpoints and writes them all to a single JSON file.
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

	collector := collect.NewTrainCollector(cp.NewClient(conf), conf.TrainDelay(), log)

	trains, summary, err := collector.Run(context.Background())
	if err != nil {
		log.Fatalw("run failed", "error", err)
	}

	if err := artifact.WriteJSON(conf.TrainsOutputPath, trains); err != nil {
		log.Fatalw("write failed", "error", err)
	}

	requests, failures := cp.RequestTotals()
	log.Infow("run complete",
		"trains", summary.Processed,
		"skipped", len(summary.Skipped),
		"output", conf.TrainsOutputPath,
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
