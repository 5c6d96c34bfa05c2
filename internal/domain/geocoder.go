package domain

import "context"

// GeocodingResult contains place data returned by a geocoding provider.
type GeocodingResult struct {
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Geocoder resolves epicenter coordinates to place details. A parsed message
// always carries coordinates, so only reverse lookup is needed.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (GeocodingResult, error)
}
