package challenge

// launchCatalog is the catalog the platform opened with.
var launchCatalog = []CreateInput{
	{
		Name:        "Desert Trail Challenge",
		Description: "Complete 80km virtual hike through scenic desert trails. Support wildlife conservation.",
		Cause:       "Wildlife Conservation",
		Distance:    80,
		Difficulty:  "Medium",
	},
	{
		Name:        "Mountain Quest 2025",
		Description: "Epic 160km mountain challenge. Raise funds for rural healthcare.",
		Cause:       "Rural Healthcare",
		Distance:    160,
		Difficulty:  "Hard",
	},
	{
		Name:        "Urban Trail Sprint",
		Description: "Quick 40km city trail challenge. Perfect for beginners!",
		Cause:       "Community Health",
		Distance:    40,
		Difficulty:  "Easy",
	},
	{
		Name:        "Coast to Coast Marathon",
		Description: "Ultimate 240km challenge across beautiful coastlines.",
		Cause:       "Ocean Conservation",
		Distance:    240,
		Difficulty:  "Extreme",
	},
}
