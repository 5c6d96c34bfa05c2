package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockGeocoder struct {
	result  GeocodingResult
	err     error
	lastLat float64
	lastLon float64
}

func (m *mockGeocoder) ReverseGeocode(_ context.Context, lat, lon float64) (GeocodingResult, error) {
	m.lastLat, m.lastLon = lat, lon
	return m.result, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnrichWithGeocoding(t *testing.T) {
	ctx := context.Background()
	event := QuakeEvent{ID: "quake-1", Latitude: -0.3, Longitude: 100.28}

	t.Run("nil geocoder leaves event untouched", func(t *testing.T) {
		result := EnrichWithGeocoding(ctx, event, nil, discardLogger())
		assert.Empty(t, result.GeoSource)
		assert.Empty(t, result.FormattedAddress)
	})

	t.Run("lookup error degrades gracefully", func(t *testing.T) {
		geocoder := &mockGeocoder{err: errors.New("boom")}
		result := EnrichWithGeocoding(ctx, event, geocoder, discardLogger())
		assert.Equal(t, "failed", result.GeoSource)
		assert.Empty(t, result.FormattedAddress)
	})

	t.Run("no feature keeps original", func(t *testing.T) {
		geocoder := &mockGeocoder{}
		result := EnrichWithGeocoding(ctx, event, geocoder, discardLogger())
		assert.Equal(t, "original", result.GeoSource)
		assert.Equal(t, -0.3, geocoder.lastLat)
		assert.Equal(t, 100.28, geocoder.lastLon)
	})

	t.Run("reverse hit fills place fields", func(t *testing.T) {
		geocoder := &mockGeocoder{result: GeocodingResult{
			FormattedAddress: "Bukittinggi, Sumatera Barat, Indonesia",
			PlaceName:        "Bukittinggi",
			Confidence:       0.9,
		}}
		result := EnrichWithGeocoding(ctx, event, geocoder, discardLogger())
		assert.Equal(t, "reverse", result.GeoSource)
		assert.Equal(t, "Bukittinggi, Sumatera Barat, Indonesia", result.FormattedAddress)
		assert.Equal(t, "Bukittinggi", result.GeoPlaceName)
		assert.Equal(t, 0.9, result.GeoConfidence)
	})
}
