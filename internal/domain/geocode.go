package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to resolve the epicenter to a named place.
// If geocoder is nil or the lookup fails, the event is returned with
// GeoSource set accordingly. An epicenter the provider has no feature for
// (open sea, typically) keeps GeoSource "original"; the bulletin formatter
// renders such events as offshore.
func EnrichWithGeocoding(ctx context.Context, event QuakeEvent, geocoder Geocoder, logger *slog.Logger) QuakeEvent {
	if geocoder == nil {
		return event
	}

	result, err := geocoder.ReverseGeocode(ctx, event.Latitude, event.Longitude)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"event_id", event.ID,
			"lat", event.Latitude,
			"lon", event.Longitude,
			"error", err,
		)
		event.GeoSource = "failed"
		return event
	}
	if result.FormattedAddress == "" {
		event.GeoSource = "original"
		return event
	}

	event.FormattedAddress = result.FormattedAddress
	event.GeoPlaceName = result.PlaceName
	event.GeoConfidence = result.Confidence
	event.GeoSource = "reverse"
	return event
}
