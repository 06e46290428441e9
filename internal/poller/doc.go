// Package poller implements the availability polling loop: resolve the
// park's campgrounds, check each one for the target date in resolver
// order, stop on the first campground with open sites, and otherwise wait
// out the interval and try again until the attempt budget is spent.
package poller
