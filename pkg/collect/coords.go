package collect

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pmelo/cp-rail-data/pkg/cp"
	"github.com/pmelo/cp-rail-data/pkg/scrape"
)

// stationPageAPI is the slice of the CP client the coordinates pipeline needs.
type stationPageAPI interface {
	StationIndex(ctx context.Context) (map[string]string, error)
	StationPage(ctx context.Context, slug string) (*goquery.Document, error)
}

// CoordCollector scrapes every station's coordinates from its public
// timetable page.
type CoordCollector struct {
	api   stationPageAPI
	delay time.Duration
	log   *zap.SugaredLogger
}

func NewCoordCollector(api stationPageAPI, delay time.Duration, log *zap.SugaredLogger) *CoordCollector {
	return &CoordCollector{api: api, delay: delay, log: log}
}

// Run fetches every station page and collects the coordinates it finds,
// keyed by station id. Stations whose page cannot be fetched, carries no
// coordinates label, or carries one the parser cannot read contribute
// nothing to the result; there are no placeholder entries.
func (c *CoordCollector) Run(ctx context.Context) (map[string]cp.StationCoordinate, Summary, error) {
	summary := Summary{}

	stations, err := c.api.StationIndex(ctx)
	if err != nil {
		return nil, summary, errors.Wrap(err, "station index")
	}
	c.log.Infow("fetched station index", "stations", len(stations))

	coords := map[string]cp.StationCoordinate{}
	for _, name := range sortedNames(stations) {
		slug := cp.Slugify(name)

		doc, err := c.api.StationPage(ctx, slug)
		if err != nil {
			c.log.Warnw("skipping station", "station", slug, "error", err)
			summary.skip(slug, SkipReasonFetchFailed, err)
			time.Sleep(c.delay)
			continue
		}

		lat, lon, err := scrape.Coordinates(doc)
		switch {
		case errors.Is(err, scrape.ErrNoCoordinates):
			c.log.Infow("no coordinates on page", "station", slug)
			summary.skip(slug, SkipReasonNoCoordinates, err)
		case err != nil:
			c.log.Warnw("unreadable coordinates", "station", slug, "error", err)
			summary.skip(slug, SkipReasonBadCoordinates, err)
		default:
			coords[stations[name]] = cp.StationCoordinate{Name: slug, Lat: lat, Lon: lon}
			summary.Processed++
			c.log.Infow("scraped station", "station", slug, "lat", lat, "lon", lon)
		}

		time.Sleep(c.delay)
	}

	return coords, summary, nil
}
