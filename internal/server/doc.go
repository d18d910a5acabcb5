// Package server serves the bin collection pages over HTTP.
//
// Every configured variant gets a page at /{slug} and an iCalendar feed at
// /{slug}.ics. Variant pages always answer 200: upstream failures are shown
// as page content rather than HTTP errors. The index at / links every
// variant; /healthz and /metrics support operations.
package server
