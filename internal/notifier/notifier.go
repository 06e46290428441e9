package notifier

import (
	"time"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
)

// Notifier defines the interface for delivering availability alerts
type Notifier interface {
	// Notify reports the available sites at a campground on the target
	// date. It returns true only when the notification was delivered.
	Notify(campgroundName string, sites []campsite.Site, date time.Time) bool
}
