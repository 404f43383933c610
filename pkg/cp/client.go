package cp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pmelo/cp-rail-data/pkg/config"
)

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cp_request_count",
		Help: "Number of requests issued against CP endpoints",
	}, []string{"endpoint"})
	requestErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cp_request_error_count",
		Help: "Number of failed requests against CP endpoints",
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(requestCount, requestErrorCount)
}

// Client issues requests against the CP spring endpoints and the public
// timetable pages. It is safe for sequential reuse across a whole run.
type Client struct {
	httpClient *http.Client

	stationIndexURL  string
	stationTrainsURL string
	trainDetailsURL  string
	stationPageURL   string
}

func NewClient(conf config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   conf.Timeout(),
			Transport: &browserTransport{userAgent: conf.UserAgent},
		},
		stationIndexURL:  conf.StationIndexURL,
		stationTrainsURL: conf.StationTrainsURL,
		trainDetailsURL:  conf.TrainDetailsURL,
		stationPageURL:   conf.StationPageURL,
	}
}

// StationIndex fetches the full station name to station id directory.
// Any transport failure, non-2xx status or malformed payload is returned;
// callers treat it as fatal for the run.
func (c *Client) StationIndex(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, "station-index", c.stationIndexURL)
	if err != nil {
		return nil, errors.Wrap(err, "fetch station index")
	}

	index := map[string]string{}
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, errors.Wrap(err, "decode station index")
	}

	return index, nil
}

// StationTrains fetches the trains currently listed at one station.
func (c *Client) StationTrains(ctx context.Context, stationID string) ([]TrainStub, error) {
	u := c.stationTrainsURL + "?stationId=" + url.QueryEscape(stationID)

	body, err := c.get(ctx, "station-trains", u)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch trains for station %s", stationID)
	}

	var stubs []TrainStub
	if err := json.Unmarshal(body, &stubs); err != nil {
		return nil, errors.Wrapf(err, "decode trains for station %s", stationID)
	}

	return stubs, nil
}

// TrainDetails fetches the detail document for one train. The payload is
// passed through verbatim; its schema is owned by the upstream service.
func (c *Client) TrainDetails(ctx context.Context, trainID int) (json.RawMessage, error) {
	u := c.trainDetailsURL + "?trainId=" + strconv.Itoa(trainID)

	body, err := c.get(ctx, "train-details", u)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch train %d", trainID)
	}

	if !json.Valid(body) {
		return nil, errors.Errorf("train %d: response is not valid JSON", trainID)
	}

	return json.RawMessage(body), nil
}

// StationPage fetches and parses the public timetable page for a station slug.
func (c *Client) StationPage(ctx context.Context, slug string) (*goquery.Document, error) {
	u := c.stationPageURL + "/" + slug

	body, err := c.get(ctx, "station-page", u)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch station page %s", slug)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "parse station page %s", slug)
	}

	return doc, nil
}

func (c *Client) get(ctx context.Context, endpoint, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	requestCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()

	res, err := c.httpClient.Do(req)
	if err != nil {
		requestErrorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		requestErrorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
		return nil, &StatusError{URL: u, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		requestErrorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
		return nil, err
	}

	return body, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.URL, e.StatusCode)
}

type browserTransport struct {
	userAgent string
}

func (t *browserTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.Header.Set("User-Agent", t.userAgent)

	return http.DefaultTransport.RoundTrip(request)
}

// RequestTotals reports the per-endpoint request and failure counts gathered
// so far in this process. The collection binaries log them at end of run.
func RequestTotals() (requests, failures map[string]float64) {
	requests = map[string]float64{}
	failures = map[string]float64{}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return requests, failures
	}

	for _, family := range families {
		var into map[string]float64
		switch family.GetName() {
		case "cp_request_count":
			into = requests
		case "cp_request_error_count":
			into = failures
		default:
			continue
		}

		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "endpoint" {
					into[label.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
	}

	return requests, failures
}
