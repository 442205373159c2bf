package area

import (
	"sort"
	"strings"
)

// Market is a selectable market area: the zone it maps onto plus the retail
// metadata attached to prices for it.
type Market struct {
	Key      string // selector key, e.g. "DE"
	Code     string // zone identifier, resolvable by Resolve
	Name     string
	VAT      float64
	Currency string
}

// markets lists the areas that can be selected for collection. Germany and
// Luxembourg both map onto the shared DE_LU bidding zone. Zones absent here
// (UK, Albania, Turkey, ...) publish no usable day-ahead data.
var markets = []Market{
	{TotalEuropeKey, "10Y1001A1001A876", "Total Europe", 0.0, "EUR"},
	{"AT", "AT", "Austria", 0.21, "EUR"},
	{"BE", "BE", "Belgium", 0.06, "EUR"},
	{"BG", "BG", "Bulgaria", 0.21, "EUR"},
	{"HR", "HR", "Croatia", 0.21, "EUR"},
	{"CZ", "CZ", "Czech Republic", 0.21, "EUR"},
	{"DK_1", "DK_1", "Denmark Western (DK1)", 0.21, "EUR"},
	{"DK_2", "DK_2", "Denmark Eastern (DK2)", 0.21, "EUR"},
	{"EE", "EE", "Estonia", 0.21, "EUR"},
	{"FI", "FI", "Finland", 0.255, "EUR"},
	{"FR", "FR", "France", 0.21, "EUR"},
	{"LU", "DE_LU", "Luxembourg", 0.21, "EUR"},
	{"DE", "DE_LU", "Germany", 0.21, "EUR"},
	{"GR", "GR", "Greece", 0.21, "EUR"},
	{"HU", "HU", "Hungary", 0.21, "EUR"},
	{"IT_CNOR", "IT_CNOR", "Italy Centre North", 0.21, "EUR"},
	{"IT_CSUD", "IT_CSUD", "Italy Centre South", 0.21, "EUR"},
	{"IT_NORD", "IT_NORD", "Italy North", 0.21, "EUR"},
	{"IT_SUD", "IT_SUD", "Italy South", 0.21, "EUR"},
	{"IT_SICI", "IT_SICI", "Italy Sicilia", 0.21, "EUR"},
	{"IT_SARD", "IT_SARD", "Italy Sardinia", 0.21, "EUR"},
	{"IT_CALA", "IT_CALA", "Italy Calabria", 0.21, "EUR"},
	{"LV", "LV", "Latvia", 0.21, "EUR"},
	{"LT", "LT", "Lithuania", 0.21, "EUR"},
	{"NL", "NL", "Netherlands", 0.21, "EUR"},
	{"NO_1", "NO_1", "Norway Oslo (NO1)", 0.25, "EUR"},
	{"NO_2", "NO_2", "Norway Kr.Sand (NO2)", 0.25, "EUR"},
	{"NO_3", "NO_3", "Norway Tr.heim (NO3)", 0.25, "EUR"},
	{"NO_4", "NO_4", "Norway Tromsø (NO4)", 0, "EUR"},
	{"NO_5", "NO_5", "Norway Bergen (NO5)", 0.25, "EUR"},
	{"PL", "PL", "Poland", 0.21, "EUR"},
	{"PT", "PT", "Portugal", 0.21, "EUR"},
	{"RO", "RO", "Romania", 0.21, "EUR"},
	{"RS", "RS", "Serbia", 0.21, "EUR"},
	{"SK", "SK", "Slovakia", 0.21, "EUR"},
	{"SI", "SI", "Slovenia", 0.21, "EUR"},
	{"ES", "ES", "Spain", 0.21, "EUR"},
	{"SE_1", "SE_1", "Sweden Luleå (SE1)", 0.25, "EUR"},
	{"SE_2", "SE_2", "Sweden Sundsvall (SE2)", 0.25, "EUR"},
	{"SE_3", "SE_3", "Sweden Stockholm (SE3)", 0.25, "EUR"},
	{"SE_4", "SE_4", "Sweden Malmö (SE4)", 0.25, "EUR"},
	{"CH", "CH", "Switzerland", 0.21, "EUR"},
}

var marketByKey = make(map[string]Market, len(markets))

func init() {
	for _, m := range markets {
		marketByKey[m.Key] = m
	}
}

// Markets returns every selectable market area sorted by key. The order is
// stable so aggregation passes visit areas deterministically.
func Markets() []Market {
	out := make([]Market, len(markets))
	copy(out, markets)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MarketFor returns the market metadata for a selector key.
func MarketFor(key string) (Market, bool) {
	m, ok := marketByKey[strings.ToUpper(key)]
	return m, ok
}

// ResolveMarket resolves a market selector to the area its data is collected
// from. Germany and Luxembourg keep their own key and timezone but query the
// shared DE_LU bidding zone. Identifiers without a market entry resolve as
// plain zones.
func ResolveMarket(identifier string) (Area, error) {
	selected, err := Resolve(identifier)
	if err != nil {
		return Area{}, err
	}
	m, ok := MarketFor(selected.Key)
	if !ok || m.Code == selected.Key {
		return selected, nil
	}
	zone, err := Resolve(m.Code)
	if err != nil {
		return Area{}, err
	}
	selected.Code = zone.Code
	return selected, nil
}
