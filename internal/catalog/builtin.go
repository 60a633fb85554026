package catalog

import "posfit/internal/domain"

var builtinFeatures = []domain.Feature{
	{Key: "pos", Name: "POS module"},
	{Key: "inventory", Name: "Inventory tracking"},
	{Key: "loyalty", Name: "Loyalty program"},
	{Key: "payment", Name: "Payment integration"},
	{Key: "analytics", Name: "Analytics"},
	{Key: "mobile", Name: "Mobile app"},
	{Key: "offline", Name: "Offline mode"},
}

// Support vectors follow builtinFeatures order.
var builtinSystems = []domain.System{
	{
		Name:        "Poster",
		Description: "Cloud POS for restaurants, bars and cafes with a simple interface and mobile device support.",
		Support:     bits(1, 1, 1, 1, 1, 1, 0),
	},
	{
		Name:        "Cashalot",
		Description: "Affordable POS for small venues with offline mode and core accounting functions.",
		Support:     bits(1, 1, 0, 0, 1, 1, 1),
	},
	{
		Name:        "Syrve",
		Description: "Powerful system for large restaurants and chains with broad analytics capabilities.",
		Support:     bits(1, 1, 1, 1, 1, 1, 0),
	},
	{
		Name:        "ULTRA Company",
		Description: "Universal system with flexible settings, delivery support and offline mode.",
		Support:     bits(1, 1, 0, 1, 1, 0, 1),
	},
	{
		Name:        "R-Keeper",
		Description: "Solution for venue chains with extended functionality, scalable and professional.",
		Support:     bits(1, 1, 1, 1, 1, 1, 0),
	},
}

// Every built-in scenario sums to 100 so scores read as percentages.
var builtinScenarios = []domain.WeightSet{
	{
		ID:   1,
		Name: "Core operations",
		Weights: map[string]int{
			"pos": 20, "inventory": 15, "loyalty": 10, "payment": 20,
			"analytics": 20, "mobile": 10, "offline": 5,
		},
	},
	{
		ID:   2,
		Name: "Analytics and engagement",
		Weights: map[string]int{
			"pos": 10, "inventory": 10, "loyalty": 15, "payment": 10,
			"analytics": 30, "mobile": 15, "offline": 10,
		},
	},
	{
		ID:   3,
		Name: "Mobility and resilience",
		Weights: map[string]int{
			"pos": 10, "inventory": 10, "loyalty": 10, "payment": 15,
			"analytics": 10, "mobile": 25, "offline": 20,
		},
	},
}

var builtinVenues = []domain.Venue{
	{ID: 1, Name: "Coffee shop"},
	{ID: 2, Name: "Cafe"},
	{ID: 3, Name: "Restaurant"},
	{ID: 4, Name: "Bar / Pub"},
	{ID: 5, Name: "Takeout"},
}

func bits(v ...int) []bool {
	out := make([]bool, len(v))
	for i, b := range v {
		out[i] = b == 1
	}
	return out
}
