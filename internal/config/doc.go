// Package config describes the bin collection pages bin-days can serve.
//
// Each Variant bundles the upstream schedule URL, the page title and icon,
// the color theme, and the ordered list of area labels to look for in the
// upstream tables. Two variants are built in (black and green bins for
// Shader); more can be loaded from a JSON file.
package config
