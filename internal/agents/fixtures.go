package agents

import "github.com/lion-city/sgagents/pkg/protocol"

// Demonstration fixture data. The real system this simulates would back
// these with data.gov.sg APIs; the demo serves fixed values regardless
// of input.

var hawkerCentres = []protocol.HawkerCentre{
	{
		Name:          "Maxwell Food Centre",
		Location:      "1 Kadayanallur Street",
		PopularStalls: []string{"Tian Tian Chicken Rice", "Zhen Zhen Porridge"},
	},
	{
		Name:          "Lau Pa Sat",
		Location:      "18 Raffles Quay",
		PopularStalls: []string{"Satay Street", "Various seafood stalls"},
	},
	{
		Name:          "Old Airport Road Food Centre",
		Location:      "51 Old Airport Road",
		PopularStalls: []string{"Nam Sing Hokkien Fried Mee", "Roast Paradise"},
	},
}

var psiReadings = map[string]int{
	"north":    45,
	"south":    42,
	"east":     48,
	"west":     50,
	"central":  46,
	"national": 46,
}

const (
	psiAirQuality     = "Good"
	psiHealthAdvisory = "Air quality is satisfactory; air pollution poses little or no risk."
)

var attractions = map[string][]protocol.Attraction{
	"landmarks": {
		{
			Name:        "Merlion Park",
			Description: "Iconic symbol of Singapore",
			Location:    "One Fullerton",
		},
		{
			Name:        "Marina Bay Sands",
			Description: "Integrated resort with iconic rooftop",
			Location:    "10 Bayfront Avenue",
		},
	},
	"nature": {
		{
			Name:        "Gardens by the Bay",
			Description: "Nature park with Supertrees",
			Location:    "18 Marina Gardens Drive",
		},
		{
			Name:        "Singapore Botanic Gardens",
			Description: "UNESCO World Heritage site",
			Location:    "1 Cluny Road",
		},
	},
	"culture": {
		{
			Name:        "Chinatown",
			Description: "Historic ethnic neighborhood",
			Location:    "Chinatown district",
		},
		{
			Name:        "Little India",
			Description: "Vibrant Indian cultural district",
			Location:    "Little India district",
		},
	},
}
