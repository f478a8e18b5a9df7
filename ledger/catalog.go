package ledger

import (
	"sort"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

// Fixed eco-rewards catalog.
var catalog = map[string]models.Product{
	"prod1": {
		ID:          "prod1",
		Name:        "Set of 3 Bamboo Toothbrushes",
		Cost:        50,
		Description: "Biodegradable and eco-friendly alternative to plastic brushes.",
	},
	"prod2": {
		ID:          "prod2",
		Name:        "Reusable Canvas Shopping Bag",
		Cost:        100,
		Description: "A sturdy and stylish bag to eliminate single-use plastics.",
	},
	"prod3": {
		ID:          "prod3",
		Name:        "Home Composting Starter Kit",
		Cost:        200,
		Description: "Everything you need to start turning your kitchen scraps into black gold.",
	},
	"prod4": {
		ID:          "prod4",
		Name:        "Recycled Paper Notebooks (Pack of 5)",
		Cost:        75,
		Description: "Jot down your thoughts on paper that saves trees.",
	},
}

// Products returns the shop catalog ordered by id.
func Products() []models.Product {
	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ULB waste facilities shown on the facility map.
var facilities = []models.Facility{
	{Name: "City Compost Plant", Type: "Compost", WasteType: "Wet", Latitude: 28.6139, Longitude: 77.2090},
	{Name: "Green Recycling Center", Type: "Recycling", WasteType: "Dry", Latitude: 28.6200, Longitude: 77.2100},
	{Name: "Waste-to-Energy Plant", Type: "W-to-E", WasteType: "Mixed", Latitude: 28.6250, Longitude: 77.2150},
	{Name: "Hazardous Waste Collection", Type: "Scrap Shop", WasteType: "Hazardous", Latitude: 28.6300, Longitude: 77.2200},
}

// Facilities filters the directory by facility type and waste type;
// empty filters match everything.
func Facilities(facilityType, wasteType string) []models.Facility {
	out := []models.Facility{}
	for _, f := range facilities {
		if facilityType != "" && f.Type != facilityType {
			continue
		}
		if wasteType != "" && f.WasteType != wasteType {
			continue
		}
		out = append(out, f)
	}
	return out
}
