package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

const coordinatesLabel = "Coordenadas: "

// ErrNoCoordinates is returned when a page parses fine but carries no
// coordinates label. Callers treat it as a soft miss, not a failure.
var ErrNoCoordinates = errors.New("no coordinates label on page")

// Coordinates extracts the station position from a timetable page. The pages
// mark it as a bold "Coordenadas: " label whose adjacent text node holds
// "<lat>|<lon>". That exact shape is the contract; anything else errors.
func Coordinates(doc *goquery.Document) (lat, lon float64, err error) {
	var text string
	found := false

	doc.Find("strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Text() != coordinatesLabel {
			return true
		}

		found = true
		if sibling := s.Get(0).NextSibling; sibling != nil && sibling.Type == html.TextNode {
			text = sibling.Data
		}
		return false
	})

	if !found {
		return 0, 0, ErrNoCoordinates
	}

	return parsePair(text)
}

func parsePair(text string) (lat, lon float64, err error) {
	parts := strings.Split(strings.TrimSpace(text), "|")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("malformed coordinate text %q", text)
	}

	lat, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "latitude in %q", text)
	}

	lon, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "longitude in %q", text)
	}

	return lat, lon, nil
}
