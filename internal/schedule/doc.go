// Package schedule locates bin collection rows in upstream schedule tables.
//
// The upstream pages publish one or more HTML tables whose header row lists
// months and whose body rows start with an area name. MatchRows scans those
// tables through the Document interface, so all assumptions about HTML shape
// live in the adapter that implements it (see package scraper).
//
// Lookup ties fetching and matching together and reports one of four
// outcomes: fetch error, no data found, partial no data, or success.
package schedule
