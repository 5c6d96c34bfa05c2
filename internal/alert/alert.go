// Package alert renders parsed earthquake events as the Indonesian-language
// bulletin text BMKG distributes over messaging channels.
package alert

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/couchcryptid/quake-alert-etl/internal/domain"
)

// bulletinTemplate is the standard tectonic-earthquake bulletin: a bold
// title line followed by the event-and-parameters paragraph.
const bulletinTemplate = `*GEMPABUMI TEKTONIK M{{.Magnitude}} DI {{.PlaceUpper}}, {{if .TsunamiPotential}}BERPOTENSI TSUNAMI{{else}}TIDAK BERPOTENSI TSUNAMI{{end}}*
*Kejadian dan Parameter Gempabumi:*
Hari {{.DayName}}, {{.OriginDate}} pukul {{.TimeString}} wilayah {{.PlaceTitle}} diguncang gempa tektonik. Hasil analisis BMKG menunjukkan gempabumi ini memiliki parameter dengan magnitudo M{{.Magnitude}}. Episenter gempabumi terletak pada koordinat {{.LatitudeLabel}} ; {{.LongitudeLabel}}, atau tepatnya berlokasi di {{.Setting}} pada jarak {{.LocationRemark}} pada kedalaman {{.DepthKm}} km.`

// bulletinView augments the event with the rendered casings and the
// darat/laut setting.
type bulletinView struct {
	domain.QuakeEvent
	PlaceUpper string
	PlaceTitle string
	Setting    string
}

// Formatter renders QuakeEvents as bulletin text.
type Formatter struct {
	tmpl *template.Template
}

// NewFormatter parses the bulletin template.
func NewFormatter() *Formatter {
	return &Formatter{
		tmpl: template.Must(template.New("bulletin").Parse(bulletinTemplate)),
	}
}

// Format renders the bulletin for one event. The epicenter setting is taken
// from the geocoding enrichment: only a successful reverse hit proves the
// epicenter lies on land ("darat"); everything else is rendered as offshore
// ("laut").
func (f *Formatter) Format(event domain.QuakeEvent) (string, error) {
	setting := "laut"
	if event.GeoSource == "reverse" {
		setting = "darat"
	}

	view := bulletinView{
		QuakeEvent: event,
		PlaceUpper: strings.ToUpper(event.PlaceName),
		PlaceTitle: cases.Title(language.Indonesian).String(event.PlaceName),
		Setting:    setting,
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render bulletin: %w", err)
	}
	return buf.String(), nil
}
