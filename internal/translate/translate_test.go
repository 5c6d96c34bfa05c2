package translate

import (
	"testing"
	"time"

	"github.com/couchcryptid/quake-alert-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.Translator = Indonesian{}

func TestTranslateDay(t *testing.T) {
	tests := []struct {
		english    string
		indonesian string
	}{
		{"Monday", "Senin"},
		{"Tuesday", "Selasa"},
		{"Wednesday", "Rabu"},
		{"Thursday", "Kamis"},
		{"Friday", "Jumat"},
		{"Saturday", "Sabtu"},
		{"Sunday", "Minggu"},
	}

	tr := Indonesian{}
	for _, tt := range tests {
		t.Run(tt.english, func(t *testing.T) {
			got, err := tr.TranslateDay(tt.english)
			require.NoError(t, err)
			assert.Equal(t, tt.indonesian, got)
		})
	}
}

func TestTranslateDay_Unknown(t *testing.T) {
	_, err := Indonesian{}.TranslateDay("Frunday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Frunday")
}

func TestTranslateMonth_CoversEveryMonth(t *testing.T) {
	tr := Indonesian{}
	for m := time.January; m <= time.December; m++ {
		got, err := tr.TranslateMonth(m.String()[:3])
		require.NoError(t, err, m.String())
		assert.NotEmpty(t, got)
	}
}

func TestTranslateMonth(t *testing.T) {
	tests := []struct {
		abbrev     string
		indonesian string
	}{
		{"May", "Mei"},
		{"Aug", "Agustus"},
		{"Oct", "Oktober"},
		{"Dec", "Desember"},
		{"Jan", "Januari"},
	}

	tr := Indonesian{}
	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			got, err := tr.TranslateMonth(tt.abbrev)
			require.NoError(t, err)
			assert.Equal(t, tt.indonesian, got)
		})
	}
}

func TestTranslateMonth_Unknown(t *testing.T) {
	_, err := Indonesian{}.TranslateMonth("Mei")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mei")
}
