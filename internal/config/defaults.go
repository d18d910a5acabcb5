package config

const (
	blackURL = "https://www.cne-siar.gov.uk/bins-and-recycling/waste-recycling-collections-lewis-and-harris/non-recyclable-waste-grey-bin-purple-sticker/wednesday-collections"
	greenURL = "https://www.cne-siar.gov.uk/bins-and-recycling/waste-recycling-collections-lewis-and-harris/glass-green-bin-collections/friday-collections"
)

// Defaults returns the built-in variants.
func Defaults() []Variant {
	return []Variant{
		{
			Slug:  "black",
			URL:   blackURL,
			Title: "BLACK Bin Collection Dates for Shader",
			Icon:  "fa-trash-alt",
			Theme: Theme{
				Heading:  "#000",
				Body:     "#f7f9fc",
				Card:     "#fff",
				ListItem: "#eef3f7",
			},
			Targets:   []string{"Upper Shader", "Lower Shader"},
			AreaLabel: "Upper/Lower Shader",
		},
		{
			Slug:  "green",
			URL:   greenURL,
			Title: "GREEN Bin Collection Dates for Shader",
			Icon:  "fa-wine-bottle",
			Theme: Theme{
				Heading:  "#027a02",
				Body:     "#f0f8ea",
				Card:     "#fff",
				ListItem: "#dff0d8",
			},
			// The glass page lists Shader as a single area.
			Targets: []string{"Shader"},
		},
	}
}
