package scoring

import (
	"strings"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

// CropCategory drives weight adjustments and air-quality sensitivity.
type CropCategory string

const (
	CategoryGeneral    CropCategory = "general"
	CategoryRiceLike   CropCategory = "rice_like"
	CategorySpiceLike  CropCategory = "spice_like"
	CategoryMilletLike CropCategory = "millet_like"
)

// cropCategories is a static name lookup, keyed lowercase. Profiles can
// carry an explicit category tag instead; the table covers catalogs that
// predate the tag.
var cropCategories = map[string]CropCategory{
	"rice":          CategoryRiceLike,
	"paddy":         CategoryRiceLike,
	"basmati rice":  CategoryRiceLike,
	"sugarcane":     CategoryRiceLike,
	"jute":          CategoryRiceLike,
	"turmeric":      CategorySpiceLike,
	"ginger":        CategorySpiceLike,
	"cardamom":      CategorySpiceLike,
	"black pepper":  CategorySpiceLike,
	"chilli":        CategorySpiceLike,
	"chili":         CategorySpiceLike,
	"coriander":     CategorySpiceLike,
	"cumin":         CategorySpiceLike,
	"pearl millet":  CategoryMilletLike,
	"finger millet": CategoryMilletLike,
	"millet":        CategoryMilletLike,
	"bajra":         CategoryMilletLike,
	"ragi":          CategoryMilletLike,
	"jowar":         CategoryMilletLike,
	"sorghum":       CategoryMilletLike,
}

// DetectCategory resolves a crop's category: an explicit profile tag wins,
// then the static name table, then general. Deterministic for a given crop.
func DetectCategory(crop *catalog.Crop) CropCategory {
	switch CropCategory(crop.Category) {
	case CategoryRiceLike, CategorySpiceLike, CategoryMilletLike:
		return CropCategory(crop.Category)
	case CategoryGeneral:
		return CategoryGeneral
	}
	if cat, ok := cropCategories[strings.ToLower(strings.TrimSpace(crop.Name))]; ok {
		return cat
	}
	return CategoryGeneral
}

// AirQualitySensitive reports whether a category takes the doubled AQI
// penalty. Spice crops are the known pollution-sensitive group.
func (c CropCategory) AirQualitySensitive() bool {
	return c == CategorySpiceLike
}
