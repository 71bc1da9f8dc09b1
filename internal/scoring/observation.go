package scoring

// Observation is one set of environmental readings supplied by the caller.
// It is never mutated by the engine.
type Observation struct {
	SoilPH      float64 `json:"soil_ph"`
	SoilType    string  `json:"soil_type"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	AirQuality  float64 `json:"air_quality"`
	Rainfall    float64 `json:"rainfall"`
	Season      string  `json:"season"`
}

// SeasonYearRound matches every observed season.
const SeasonYearRound = "Year-round"

// RecognizedSoilTypes is the soil vocabulary the validator knows. Unknown
// soils produce a warning and fall through the soil-similarity tiers.
var RecognizedSoilTypes = []string{"Clay", "Sandy", "Loamy", "Black", "Alluvial", "Sandy Loam"}

// RecognizedSeasons is the season vocabulary the validator knows.
var RecognizedSeasons = []string{"Kharif", "Rabi", "Zaid", SeasonYearRound}

func recognizedSoil(name string) bool {
	for _, s := range RecognizedSoilTypes {
		if s == name {
			return true
		}
	}
	return false
}

func recognizedSeason(name string) bool {
	for _, s := range RecognizedSeasons {
		if s == name {
			return true
		}
	}
	return false
}
