// Package scraper provides the recreation.gov transport layer: resolving a
// park name to candidate campgrounds via the HTML search page, and checking
// per-campground availability via the month-granular JSON API.
//
// Both components share one HTTP session constructed with NewClient. All
// upstream failures (non-200 status, malformed bodies, missing fields) are
// recovered locally: they are logged and degrade to an empty result, never
// an error to the caller.
package scraper
