package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/logger"
)

// statusAvailable is the only per-day marker that qualifies a site.
// Everything else (Reserved, Closed, Not Yet Released, missing) is
// treated as unavailable.
const statusAvailable = "Available"

// dayKeyFormat is how the availability API keys per-day statuses
const dayKeyFormat = "20060102"

// Checker queries the month-granular availability API for a campground
type Checker struct {
	client *resty.Client
}

// NewChecker creates a Checker using the given recreation.gov session
func NewChecker(client *resty.Client) *Checker {
	return &Checker{client: client}
}

// monthResponse mirrors the availability API body: a map of campsite id to
// per-day status strings for the requested month
type monthResponse struct {
	Campsites map[string]monthCampsite `json:"campsites"`
}

type monthCampsite struct {
	Site           string            `json:"site"`
	Type           string            `json:"type"`
	Availabilities map[string]string `json:"availabilities"`
}

// CheckAvailability returns the sites available at a campground on the
// given date. The API is month-granular, so the calendar month containing
// date is fetched and filtered to the exact day. Upstream failures and
// malformed bodies degrade to an empty slice.
func (c *Checker) CheckAvailability(ctx context.Context, campgroundID string, date time.Time) []campsite.Site {
	logger.Info("Checking availability", logger.Fields{
		"campground_id": campgroundID,
		"date":          date.Format(campsite.DateFormat),
	})
	logger.IncrCounter("availability.requests")

	sites, err := c.fetch(ctx, campgroundID, date)
	if err != nil {
		logger.Error("Availability check failed", logger.Fields{
			"campground_id": campgroundID,
		}, err)
		return nil
	}

	logger.Info("Availability check finished", logger.Fields{
		"campground_id": campgroundID,
		"date":          date.Format(campsite.DateFormat),
		"count":         len(sites),
	})
	return sites
}

func (c *Checker) fetch(ctx context.Context, campgroundID string, date time.Time) ([]campsite.Site, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("start_date", monthStart(date)).
		Get(fmt.Sprintf("/api/camps/availability/campground/%s/month", campgroundID))
	if err != nil {
		return nil, fmt.Errorf("fetching availability: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var body monthResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("parsing availability data: %w", err)
	}

	return filterAvailable(body, date), nil
}

// monthStart formats the first day of the month containing date, as the
// start_date parameter requires
func monthStart(date time.Time) string {
	return date.Format("2006-01") + "-01"
}

// filterAvailable selects the sites whose status on the target day is
// exactly statusAvailable, ordered by site id
func filterAvailable(body monthResponse, date time.Time) []campsite.Site {
	dayKey := date.Format(dayKeyFormat)

	ids := make([]string, 0, len(body.Campsites))
	for id := range body.Campsites {
		ids = append(ids, id)
	}
	// map iteration order is random; keep results deterministic
	sort.Strings(ids)

	sites := make([]campsite.Site, 0)
	for _, id := range ids {
		cs := body.Campsites[id]
		if cs.Availabilities[dayKey] != statusAvailable {
			continue
		}
		sites = append(sites, campsite.NewSite(id, cs.Site, cs.Type))
	}

	return sites
}
