package scraper

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// BaseURL is the upstream reservation service. NPS campsites are
	// booked through recreation.gov.
	BaseURL = "https://www.recreation.gov"

	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	Timeout = 30 * time.Second
)

// NewClient builds the shared recreation.gov HTTP session. One client is
// constructed per run and injected into both the resolver and the checker
// so requests reuse connections and headers.
func NewClient() *resty.Client {
	return resty.New().
		SetBaseURL(BaseURL).
		SetTimeout(Timeout).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml").
		SetHeader("Accept-Language", "en-US,en;q=0.9")
}
