// Package cli implements the campsite-alert command line interface: flag
// parsing and validation, wiring the recreation.gov session into the
// polling engine, and rendering the final success or exhaustion summary
// as text or JSON.
package cli
