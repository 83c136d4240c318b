package flight

import "strings"

// airlineNames maps a 3-character callsign prefix to an operator name.
// This is a deliberately small static table; anything else is reported as
// "Unknown Airline".
var airlineNames = map[string]string{
	"UAL":  "United Airlines",
	"AAL":  "American Airlines",
	"DAL":  "Delta Air Lines",
	"SWA":  "Southwest Airlines",
	"RCH":  "Military - Air Force",
	"SAM":  "Military - Special Air Mission",
	"AF":   "Military - Air Force",
	"NAVY": "Military - Navy",
	"ARMY": "Military - Army",
}

// militaryPrefixes are callsign prefixes operated by military branches.
// This check is independent of the airline-name table and disagrees with it
// at the edges: "AF" is two characters but airline lookup keys on the first
// three, so "AF123" is flagged military while its airline stays unknown.
// That mismatch is long-standing observed behavior; keep it.
var militaryPrefixes = []string{"RCH", "SAM", "AF", "NAVY", "ARMY"}

// AirlineName maps a callsign to an operator name via its 3-character prefix.
func AirlineName(callsign string) string {
	prefix := callsign
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if name, ok := airlineNames[prefix]; ok {
		return name
	}
	return "Unknown Airline"
}

// IsMilitary reports whether the callsign starts with a known
// military-operator prefix.
func IsMilitary(callsign string) bool {
	for _, prefix := range militaryPrefixes {
		if strings.HasPrefix(callsign, prefix) {
			return true
		}
	}
	return false
}
