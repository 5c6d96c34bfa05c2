package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/quake-alert-etl/internal/domain"
)

// QuakeTransformer implements Transformer using the domain parser with
// optional geocoding enrichment.
type QuakeTransformer struct {
	translator domain.Translator
	geocoder   domain.Geocoder
	logger     *slog.Logger
}

// NewTransformer creates a QuakeTransformer. Pass a nil geocoder to disable
// geocoding enrichment.
func NewTransformer(translator domain.Translator, geocoder domain.Geocoder, logger *slog.Logger) *QuakeTransformer {
	return &QuakeTransformer{
		translator: translator,
		geocoder:   geocoder,
		logger:     logger,
	}
}

func (t *QuakeTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.QuakeEvent, error) {
	event, err := domain.ParseRawMessage(raw, t.translator)
	if err != nil {
		return domain.QuakeEvent{}, err
	}

	event = domain.EnrichQuakeEvent(event)
	event = domain.EnrichWithGeocoding(ctx, event, t.geocoder, t.logger)

	return event, nil
}
