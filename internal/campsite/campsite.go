package campsite

import "fmt"

// DateFormat is the ISO calendar date layout used throughout the poller
const DateFormat = "2006-01-02"

// Campground represents a bookable campground returned by a park search
type Campground struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Site represents a single bookable unit within a campground that was
// found available on the target date
type Site struct {
	ID   string `json:"site_id"`
	Name string `json:"site_name"`
	Type string `json:"site_type"`
}

// NewSite creates a Site, filling in display defaults for fields the
// upstream availability API omits
func NewSite(id, name, siteType string) Site {
	if name == "" {
		name = fmt.Sprintf("Site %s", id)
	}
	if siteType == "" {
		siteType = "Unknown"
	}
	return Site{
		ID:   id,
		Name: name,
		Type: siteType,
	}
}

// PollResult is the terminal success value of a poll: the first campground
// found with availability on the target date, together with its open sites
type PollResult struct {
	Campground string `json:"campground"`
	Date       string `json:"date"`
	Sites      []Site `json:"sites"`
}
