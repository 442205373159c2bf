package entsoe

import "strings"

// Document types published by the transparency platform.
const (
	DocumentTypePrices             = "A44"
	DocumentTypeTotalLoad          = "A65"
	DocumentTypeWindSolarForecast  = "A69"
	DocumentTypeGenerationForecast = "A71"
	DocumentTypeGenerationPerType  = "A75"
)

// Process types selecting which publication of a dataset is requested.
const (
	ProcessTypeDayAhead   = "A01"
	ProcessTypeRealised   = "A16"
	ProcessTypeIntraday   = "A18"
	ProcessTypeWeekAhead  = "A31"
	ProcessTypeMonthAhead = "A32"
	ProcessTypeYearAhead  = "A33"
)

// NormalizeProcessType maps human-readable process synonyms onto their
// platform codes. Canonical short-horizon codes are case-folded; anything
// else passes through untouched.
func NormalizeProcessType(process string) string {
	switch strings.ToUpper(process) {
	case "REALIZED", "REALISED", ProcessTypeRealised:
		return ProcessTypeRealised
	case "DAY_AHEAD", "DAYAHEAD", ProcessTypeDayAhead:
		return ProcessTypeDayAhead
	case "INTRADAY", ProcessTypeIntraday:
		return ProcessTypeIntraday
	}
	return process
}

// psrCategories maps production source (PSR) codes onto the normalized
// technology labels used across the collector.
var psrCategories = map[string]string{
	"B01": "biomass",
	"B02": "coal",
	"B03": "coal",
	"B04": "fossil_gas",
	"B05": "coal",
	"B06": "oil",
	"B07": "oil_shale",
	"B08": "peat",
	"B09": "geothermal",
	"B10": "hydro_pumped_storage",
	"B11": "hydro_run_of_river",
	"B12": "hydro_reservoir",
	"B13": "marine",
	"B14": "nuclear",
	"B15": "other_renewable",
	"B16": "solar",
	"B17": "waste",
	"B18": "wind_offshore",
	"B19": "wind_onshore",
	"B20": "other",
	"B21": "interconnector",
	"B22": "interconnector",
	"B23": "infrastructure",
	"B24": "transformer",
	"B25": "energy_storage",
	"B26": "other",
	"B27": "coal",
	"B28": "hydro",
}

// CategoryFor returns the technology label for a PSR code, or "other" for
// codes the mapping does not know (including the empty string).
func CategoryFor(psrType string) string {
	if category, ok := psrCategories[psrType]; ok {
		return category
	}
	return "other"
}
