package notifier

import (
	"fmt"
	"time"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
)

// DryRunNotifier prints what would be emailed without actually sending
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the email that would be sent
func (n *DryRunNotifier) Notify(campgroundName string, sites []campsite.Site, date time.Time) bool {
	if len(sites) == 0 {
		return false
	}

	fmt.Printf("--- Email (dry run) ---\n")
	fmt.Printf("Subject: %s\n\n", composeSubject(campgroundName, date))
	fmt.Println(composeBody(campgroundName, sites, date))
	return true
}
