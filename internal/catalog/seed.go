package catalog

// SeedCrops returns the built-in reference catalog. It backs the in-memory
// store and the seeding script; deployments with a database manage their own
// catalog through the admin API.
func SeedCrops() []*Crop {
	return []*Crop{
		{
			Name:               "Rice",
			Description:        "Staple cereal for flooded or high-rainfall fields",
			GrowthDurationDays: 120,
			OptimalPHMin:       5.5, OptimalPHMax: 7.0,
			OptimalTempMin: 20, OptimalTempMax: 35,
			OptimalHumidityMin: 70, OptimalHumidityMax: 90,
			OptimalRainfallMin: 1000, OptimalRainfallMax: 2500,
			SuitableSoilTypes: []string{"Clay", "Loamy"},
			Season:            "Kharif",
			Category:          "rice_like",
		},
		{
			Name:               "Wheat",
			Description:        "Cool-season cereal for moderate rainfall zones",
			GrowthDurationDays: 140,
			OptimalPHMin:       6.0, OptimalPHMax: 7.5,
			OptimalTempMin: 12, OptimalTempMax: 25,
			OptimalHumidityMin: 50, OptimalHumidityMax: 70,
			OptimalRainfallMin: 400, OptimalRainfallMax: 800,
			SuitableSoilTypes: []string{"Loamy", "Alluvial"},
			Season:            "Rabi",
		},
		{
			Name:               "Cotton",
			Description:        "Fibre crop suited to warm black-soil regions",
			GrowthDurationDays: 180,
			OptimalPHMin:       5.8, OptimalPHMax: 8.0,
			OptimalTempMin: 21, OptimalTempMax: 30,
			OptimalHumidityMin: 60, OptimalHumidityMax: 80,
			OptimalRainfallMin: 500, OptimalRainfallMax: 1200,
			SuitableSoilTypes: []string{"Black", "Alluvial"},
			Season:            "Kharif",
		},
		{
			Name:               "Sugarcane",
			Description:        "Long-duration cane crop needing sustained moisture",
			GrowthDurationDays: 365,
			OptimalPHMin:       6.0, OptimalPHMax: 7.5,
			OptimalTempMin: 20, OptimalTempMax: 35,
			OptimalHumidityMin: 70, OptimalHumidityMax: 90,
			OptimalRainfallMin: 1500, OptimalRainfallMax: 2500,
			SuitableSoilTypes: []string{"Loamy", "Alluvial"},
			Season:            "Year-round",
			Category:          "rice_like",
		},
		{
			Name:               "Maize",
			Description:        "Versatile cereal tolerant of a wide climate band",
			GrowthDurationDays: 100,
			OptimalPHMin:       5.8, OptimalPHMax: 7.0,
			OptimalTempMin: 18, OptimalTempMax: 32,
			OptimalHumidityMin: 60, OptimalHumidityMax: 80,
			OptimalRainfallMin: 500, OptimalRainfallMax: 1000,
			SuitableSoilTypes: []string{"Loamy", "Sandy Loam"},
			Season:            "Kharif",
		},
		{
			Name:               "Soybean",
			Description:        "Nitrogen-fixing legume for black and clay soils",
			GrowthDurationDays: 100,
			OptimalPHMin:       6.0, OptimalPHMax: 7.0,
			OptimalTempMin: 20, OptimalTempMax: 30,
			OptimalHumidityMin: 65, OptimalHumidityMax: 85,
			OptimalRainfallMin: 600, OptimalRainfallMax: 1200,
			SuitableSoilTypes: []string{"Black", "Clay"},
			Season:            "Kharif",
		},
		{
			Name:               "Potato",
			Description:        "Cool-season tuber preferring loose, drained soil",
			GrowthDurationDays: 90,
			OptimalPHMin:       5.0, OptimalPHMax: 6.5,
			OptimalTempMin: 15, OptimalTempMax: 25,
			OptimalHumidityMin: 60, OptimalHumidityMax: 80,
			OptimalRainfallMin: 500, OptimalRainfallMax: 800,
			SuitableSoilTypes: []string{"Sandy Loam", "Loamy"},
			Season:            "Rabi",
		},
		{
			Name:               "Tomato",
			Description:        "Short-duration vegetable for mild climates",
			GrowthDurationDays: 75,
			OptimalPHMin:       6.0, OptimalPHMax: 7.0,
			OptimalTempMin: 18, OptimalTempMax: 27,
			OptimalHumidityMin: 60, OptimalHumidityMax: 80,
			OptimalRainfallMin: 400, OptimalRainfallMax: 700,
			SuitableSoilTypes: []string{"Loamy", "Sandy Loam"},
			Season:            "Year-round",
		},
	}
}
