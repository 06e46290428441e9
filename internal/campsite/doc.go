// Package campsite defines the domain types shared across the poller:
// campgrounds resolved from a park search, sites found available on a
// target date, and the final poll result.
package campsite
