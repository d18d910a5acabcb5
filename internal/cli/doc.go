// Package cli implements the command-line interface for bin-days.
//
// The cli package provides the Cobra-based CLI: serve runs the HTTP server,
// show prints the collection dates of one variant as text or JSON, ics writes
// a variant's iCalendar feed, and variants lists what is configured. It wires
// the config, scraper, schedule, and server packages together.
package cli
