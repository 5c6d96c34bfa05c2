package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// RawEvent represents an unprocessed short message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// QuakeEvent is the domain-rich representation after parsing.
type QuakeEvent struct {
	ID         string  `json:"id"`
	Magnitude  float64 `json:"magnitude"`
	DayName    string  `json:"day_name"`
	OriginDate string  `json:"origin_date"`
	TimeString string  `json:"time_string"`
	DepthKm    int     `json:"depth_km"`

	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeLabel  string  `json:"latitude_label,omitempty"`
	LongitudeLabel string  `json:"longitude_label,omitempty"`
	LocationRemark string  `json:"location_remark"`
	PlaceName      string  `json:"place_name"`

	// Derived fields.
	OccurredAt       time.Time `json:"occurred_at"`
	Severity         string    `json:"severity,omitempty"`
	TsunamiPotential bool      `json:"tsunami_potential"`

	// Geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	GeoPlaceName     string  `json:"geo_place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// ParseRawMessage parses a RawEvent's value as a BMKG short message and
// returns the typed event with its deterministic ID. Parse failures are
// propagated as the parser's typed errors, unwrapped.
func ParseRawMessage(raw RawEvent, translator Translator) (QuakeEvent, error) {
	parser, err := NewParser(strings.TrimSpace(string(raw.Value)), translator)
	if err != nil {
		return QuakeEvent{}, err
	}
	event, err := parser.ParseAll()
	if err != nil {
		return QuakeEvent{}, err
	}

	event.ID = generateID(event.Magnitude, event.Latitude, event.Longitude, event.OriginDate, event.TimeString)
	event.RawPayload = raw.Value
	return event, nil
}

// zoneOffsets maps the Indonesian civil time zone labels to their UTC
// offsets in seconds.
var zoneOffsets = map[string]int{
	"WIB":  7 * 3600,
	"WITA": 8 * 3600,
	"WIT":  9 * 3600,
}

// combineOccurredAt merges the origin date with the clock-time token into a
// zoned timestamp. An unrecognized zone label or clock format yields the
// zero time; the string fields still carry the raw values.
func combineOccurredAt(ot OriginTime) time.Time {
	parts := strings.Fields(ot.TimeString)
	if len(parts) != 2 {
		return time.Time{}
	}
	clockTime, err := time.Parse("15:04:05", parts[0])
	if err != nil {
		return time.Time{}
	}
	offset, ok := zoneOffsets[parts[1]]
	if !ok {
		return time.Time{}
	}
	zone := time.FixedZone(parts[1], offset)
	return time.Date(
		ot.Date.Year(), ot.Date.Month(), ot.Date.Day(),
		clockTime.Hour(), clockTime.Minute(), clockTime.Second(), 0, zone,
	)
}

// generateID produces a deterministic ID from the event's key parameters.
// Reprocessing the same raw message produces the same ID, so downstream
// consumers can upsert and replays stay idempotent.
func generateID(magnitude, lat, lon float64, originDate, timeString string) string {
	input := fmt.Sprintf("%g|%.4f|%.4f|%s|%s", magnitude, lat, lon, originDate, timeString)
	hash := sha256.Sum256([]byte(input))
	return "quake-" + hex.EncodeToString(hash[:8])
}
