// Package scraper provides HTTP fetching and HTML parsing for bin collection pages.
//
// The scraper package issues a single GET against a council schedule page with
// a browser-like User-Agent and a fixed timeout, parses the body with goquery,
// and exposes the result through the schedule.Document interface. Every
// failure is reported as a *FetchError carrying a kind label.
package scraper
