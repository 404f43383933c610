package collect

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pmelo/cp-rail-data/pkg/cp"
)

// trainAPI is the slice of the CP client the trains pipeline needs.
type trainAPI interface {
	StationIndex(ctx context.Context) (map[string]string, error)
	StationTrains(ctx context.Context, stationID string) ([]cp.TrainStub, error)
	TrainDetails(ctx context.Context, trainID int) (json.RawMessage, error)
}

// TrainCollector walks every station, gathers the set of unique train
// numbers, and fetches one detail document per train.
type TrainCollector struct {
	api   trainAPI
	delay time.Duration
	log   *zap.SugaredLogger
}

func NewTrainCollector(api trainAPI, delay time.Duration, log *zap.SugaredLogger) *TrainCollector {
	return &TrainCollector{api: api, delay: delay, log: log}
}

// Run executes the full pipeline. A station index failure aborts the run;
// any later failure skips that item and keeps going. The fixed delay applies
// after every station and every train, whatever the outcome.
func (c *TrainCollector) Run(ctx context.Context) ([]json.RawMessage, Summary, error) {
	summary := Summary{}

	stations, err := c.api.StationIndex(ctx)
	if err != nil {
		return nil, summary, errors.Wrap(err, "station index")
	}
	c.log.Infow("fetched station index", "stations", len(stations))

	unique := map[int]struct{}{}
	for _, name := range sortedNames(stations) {
		stubs, err := c.api.StationTrains(ctx, stations[name])
		if err != nil {
			c.log.Warnw("skipping station", "station", name, "error", err)
			summary.skip(name, SkipReasonFetchFailed, err)
		} else {
			for _, stub := range stubs {
				unique[stub.TrainNumber] = struct{}{}
			}
			c.log.Infow("processed station", "station", name, "trains", len(stubs))
		}
		time.Sleep(c.delay)
	}
	c.log.Infow("collected unique train numbers", "count", len(unique))

	details := make([]json.RawMessage, 0, len(unique))
	for _, id := range sortedIDs(unique) {
		detail, err := c.api.TrainDetails(ctx, id)
		if err != nil {
			c.log.Warnw("skipping train", "train", id, "error", err)
			summary.skip(strconv.Itoa(id), SkipReasonFetchFailed, err)
		} else {
			details = append(details, detail)
			summary.Processed++
			c.log.Infow("fetched train details", "train", id)
		}
		time.Sleep(c.delay)
	}

	return details, summary, nil
}

// sortedNames returns the station names in a stable order. The index arrives
// as a JSON object, so there is no upstream order to preserve.
func sortedNames(stations map[string]string) []string {
	names := make([]string, 0, len(stations))
	for name := range stations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func sortedIDs(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
