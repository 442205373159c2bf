// Package area maps bidding-zone identifiers used by the ENTSO-E
// transparency platform. A zone can be addressed by its key ("DE_LU"),
// its EIC code ("10Y1001A1001A82H") or a case-folded variant of either.
package area

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownArea is returned when an identifier matches neither a zone key
// nor an EIC code.
var ErrUnknownArea = errors.New("unknown area identifier")

// TotalEuropeKey selects the synthetic pan-European aggregate instead of a
// single bidding zone.
const TotalEuropeKey = "TOTAL_EUROPE"

// Area identifies a bidding zone, control area or market balance area on
// the transparency platform.
type Area struct {
	Key      string // canonical zone key, e.g. "DE_LU"
	Code     string // EIC code, e.g. "10Y1001A1001A82H"
	Meaning  string
	Timezone string // IANA name
}

// Location resolves the zone's IANA timezone.
func (a Area) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// IsTotalEurope reports whether the area is the pan-European aggregate.
func (a Area) IsTotalEurope() bool {
	return a.Key == TotalEuropeKey
}

var (
	byKey  = make(map[string]Area, len(zones))
	byCode = make(map[string]Area, len(zones))
)

func init() {
	for _, z := range zones {
		// Zones sharing an EIC code collapse onto the first-listed one,
		// so "LU_BZN" resolves to the DE_LU zone.
		canonical, ok := byCode[z.Code]
		if !ok {
			canonical = z
			byCode[z.Code] = z
		}
		byKey[z.Key] = canonical
	}
}

// Resolve maps an identifier to its Area. Matching is attempted in three
// steps: zone key (case-insensitive), exact EIC code, then EIC code
// case-insensitively.
func Resolve(identifier string) (Area, error) {
	upper := strings.ToUpper(identifier)
	if a, ok := byKey[upper]; ok {
		return a, nil
	}
	if a, ok := byCode[identifier]; ok {
		return a, nil
	}
	if a, ok := byCode[upper]; ok {
		return a, nil
	}
	return Area{}, fmt.Errorf("%w: %q", ErrUnknownArea, identifier)
}

// HasCode reports whether identifier resolves to a known zone.
func HasCode(identifier string) bool {
	_, err := Resolve(identifier)
	return err == nil
}
