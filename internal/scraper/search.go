package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/logger"
)

// Resolver maps a park name to the campgrounds listed for it in the
// upstream search catalog
type Resolver struct {
	client *resty.Client
}

// NewResolver creates a Resolver using the given recreation.gov session
func NewResolver(client *resty.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve searches the upstream catalog for campgrounds in the named park.
// Failures degrade to an empty slice; malformed result entries are skipped.
func (r *Resolver) Resolve(ctx context.Context, parkName string) []campsite.Campground {
	logger.Info("Searching for campgrounds", logger.Fields{"park": parkName})
	logger.IncrCounter("search.requests")

	campgrounds, err := r.fetch(ctx, parkName)
	if err != nil {
		logger.Error("Campground search failed", logger.Fields{"park": parkName}, err)
		return nil
	}

	logger.Info("Campground search finished", logger.Fields{
		"park":  parkName,
		"count": len(campgrounds),
	})
	return campgrounds
}

func (r *Resolver) fetch(ctx context.Context, parkName string) ([]campsite.Campground, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           fmt.Sprintf("%s campground", parkName),
			"entity_type": "campground",
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("fetching search results: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	return parseSearchResults(bytes.NewReader(resp.Body()))
}

// parseSearchResults extracts (id, name) pairs from the search results page
func parseSearchResults(r io.Reader) ([]campsite.Campground, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	campgrounds := make([]campsite.Campground, 0)

	doc.Find(".search-result-item").Each(func(i int, sel *goquery.Selection) {
		id, _ := sel.Attr("data-entity-id")
		name := strings.TrimSpace(sel.Find(".entity-name").First().Text())

		if id == "" || name == "" {
			logger.Warn("Skipping malformed search result", logger.Fields{"index": i})
			return
		}

		campgrounds = append(campgrounds, campsite.Campground{ID: id, Name: name})
	})

	return campgrounds, nil
}
