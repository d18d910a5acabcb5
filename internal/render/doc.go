// Package render builds the HTML served for each bin variant.
//
// Area and Sections turn matched schedule areas into an HTML fragment; Page
// wraps a fragment in the fixed page shell. Inputs are developer-supplied
// configuration or text already extracted from the council page and are
// inserted without escaping.
package render
