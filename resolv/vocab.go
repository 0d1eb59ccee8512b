package resolv

import "github.com/viaacode/sipin-meemoo-sip-2-transformator/premis"

// Vocabulary bases used by the normalized graph.
const (
	eventTypeBase   = "https://data.hetarchief.be/id/event-type/"
	carrierTypeBase = "https://data.hetarchief.be/id/carrier-type/"
	pronomBase      = "https://www.nationalarchives.gov.uk/pronom/"

	fixityMD5 = "http://id.loc.gov/vocabulary/preservation/cryptographicHashFunctions/md5"

	outcomeSuccess = "http://id.loc.gov/vocabulary/preservation/eventOutcome/suc"
	outcomeFail    = "http://id.loc.gov/vocabulary/preservation/eventOutcome/fai"
	outcomeWarning = "http://id.loc.gov/vocabulary/preservation/eventOutcome/war"
)

// eventTypeURI projects a local event type literal onto the hetarchief
// event vocabulary. The literal set is open and passes through as is.
func eventTypeURI(typ string) string {
	return eventTypeBase + typ
}

// carrierTypeURI projects a film medium literal onto the hetarchief
// carrier vocabulary, likewise unvalidated.
func carrierTypeURI(medium string) string {
	return carrierTypeBase + medium
}

// outcomeURI maps an event outcome literal through the closed outcome
// vocabulary.
func outcomeURI(outcome string) (string, error) {
	switch outcome {
	case "success":
		return outcomeSuccess, nil
	case "fail":
		return outcomeFail, nil
	case "warning":
		return outcomeWarning, nil
	}
	return "", resolutionErrorf("event outcome must be success, fail or warning, got %q", outcome)
}

// fixityURI maps a message digest algorithm literal to its Library of
// Congress vocabulary URI. Only md5 occurs in meemoo SIPs.
func fixityURI(algorithm string) (string, error) {
	if algorithm == "md5" || algorithm == "MD5" {
		return fixityMD5, nil
	}
	return "", resolutionErrorf("unsupported message digest algorithm %q", algorithm)
}

// formatURI maps a PRONOM registry entry to its PRONOM URL. Other
// registries are not supported.
func formatURI(f premis.Format) (string, error) {
	if f.Registry == nil {
		return "", resolutionErrorf("file format carries no registry entry")
	}
	if f.Registry.Name != "PRONOM" {
		return "", resolutionErrorf("unsupported format registry %q", f.Registry.Name)
	}
	return pronomBase + f.Registry.Key, nil
}

// coloringTypes a film image reel may declare.
var coloringTypes = map[string]struct{}{
	"black and white": {},
	"colour":          {},
	"tinted":          {},
	"toned":           {},
	"hand coloured":   {},
	"stencilled":      {},
}

func checkColoringType(s string) error {
	if _, ok := coloringTypes[s]; !ok {
		return resolutionErrorf("unknown coloring type %q", s)
	}
	return nil
}
