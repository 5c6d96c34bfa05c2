// Package translate localizes English calendar names to Indonesian for
// bulletin text. Inputs are the canonical English forms produced by
// time.Weekday.String and the time.Time "Jan" format.
package translate

import "fmt"

var dayNames = map[string]string{
	"Monday":    "Senin",
	"Tuesday":   "Selasa",
	"Wednesday": "Rabu",
	"Thursday":  "Kamis",
	"Friday":    "Jumat",
	"Saturday":  "Sabtu",
	"Sunday":    "Minggu",
}

var monthNames = map[string]string{
	"Jan": "Januari",
	"Feb": "Februari",
	"Mar": "Maret",
	"Apr": "April",
	"May": "Mei",
	"Jun": "Juni",
	"Jul": "Juli",
	"Aug": "Agustus",
	"Sep": "September",
	"Oct": "Oktober",
	"Nov": "November",
	"Dec": "Desember",
}

// Indonesian is a pure-lookup translator for the Indonesian locale.
// It implements the parser's Translator interface.
type Indonesian struct{}

// TranslateDay maps an English weekday name to Indonesian.
func (Indonesian) TranslateDay(name string) (string, error) {
	day, ok := dayNames[name]
	if !ok {
		return "", fmt.Errorf("unknown weekday name %q", name)
	}
	return day, nil
}

// TranslateMonth maps an English three-letter month abbreviation to the full
// Indonesian month name.
func (Indonesian) TranslateMonth(abbrev string) (string, error) {
	month, ok := monthNames[abbrev]
	if !ok {
		return "", fmt.Errorf("unknown month abbreviation %q", abbrev)
	}
	return month, nil
}
