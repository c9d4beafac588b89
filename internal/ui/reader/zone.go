package reader

import (
	"fmt"

	"mushaf/internal/align"
)

// Zone ID constants for mouse hit detection on individual words.
// Each rendered word is wrapped with zone.Mark() so the coordinator can
// learn its on-screen rectangle from the zone manager.
const (
	arabicZonePrefix      = "reader-ar:"
	translationZonePrefix = "reader-tr:"
)

// wordZoneID creates a zone ID for one word in one column.
func wordZoneID(origin align.Origin, index int) string {
	if origin == align.OriginSource {
		return fmt.Sprintf("%s%d", arabicZonePrefix, index)
	}
	return fmt.Sprintf("%s%d", translationZonePrefix, index)
}
