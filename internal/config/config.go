package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// Theme holds the four colors substituted into the page shell.
type Theme struct {
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	Card     string `json:"card"`
	ListItem string `json:"list_item"`
}

// Variant is one deployed bin page.
type Variant struct {
	Slug    string   `json:"slug"`
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Icon    string   `json:"icon"`
	Theme   Theme    `json:"theme"`
	Targets []string `json:"targets"`
	// AreaLabel names the targets in the "no dates found" message.
	// Defaults to the targets joined with "/".
	AreaLabel string `json:"area_label,omitempty"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Label returns the human-readable name of the variant's targets.
func (v Variant) Label() string {
	if v.AreaLabel != "" {
		return v.AreaLabel
	}
	return strings.Join(v.Targets, "/")
}

// Validate ensures the variant can be served.
func (v Variant) Validate() error {
	if !slugPattern.MatchString(v.Slug) {
		return fmt.Errorf("invalid slug %q: must be lowercase letters, digits or dashes", v.Slug)
	}
	if v.URL == "" {
		return fmt.Errorf("variant %s: url cannot be empty", v.Slug)
	}
	parsed, err := url.Parse(v.URL)
	if err != nil {
		return fmt.Errorf("variant %s: invalid url: %w", v.Slug, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("variant %s: url scheme must be http or https", v.Slug)
	}
	if parsed.Host == "" {
		return fmt.Errorf("variant %s: url must include a host", v.Slug)
	}
	if v.Title == "" {
		return fmt.Errorf("variant %s: title cannot be empty", v.Slug)
	}
	if len(v.Targets) == 0 {
		return fmt.Errorf("variant %s: at least one target is required", v.Slug)
	}
	seen := make(map[string]bool, len(v.Targets))
	for _, t := range v.Targets {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("variant %s: targets cannot be blank", v.Slug)
		}
		if seen[t] {
			return fmt.Errorf("variant %s: duplicate target %q", v.Slug, t)
		}
		seen[t] = true
	}
	return nil
}

// Set is an ordered collection of variants with unique slugs.
type Set struct {
	variants []Variant
	bySlug   map[string]int
}

// NewSet validates variants and indexes them by slug.
func NewSet(variants []Variant) (*Set, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("no variants configured")
	}
	s := &Set{
		variants: make([]Variant, 0, len(variants)),
		bySlug:   make(map[string]int, len(variants)),
	}
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.bySlug[v.Slug]; dup {
			return nil, fmt.Errorf("duplicate variant slug %q", v.Slug)
		}
		s.bySlug[v.Slug] = len(s.variants)
		s.variants = append(s.variants, v)
	}
	return s, nil
}

// All returns the variants in configured order.
func (s *Set) All() []Variant {
	out := make([]Variant, len(s.variants))
	copy(out, s.variants)
	return out
}

// Get looks up a variant by slug.
func (s *Set) Get(slug string) (Variant, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Variant{}, false
	}
	return s.variants[i], true
}

// Load reads a JSON array of variants from path.
// An empty path returns the built-in defaults.
func Load(path string) (*Set, error) {
	if path == "" {
		return NewSet(Defaults())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var variants []Variant
	if err := json.Unmarshal(data, &variants); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return NewSet(variants)
}
