package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// numberRe matches one signed decimal number, e.g. "Mag:2.9" -> "2.9".
	numberRe = regexp.MustCompile(`[-+]?\d*\.?\d+`)

	// coordRe matches an unsigned decimal with a required fraction; signs are
	// never part of a BMKG coordinate, hemisphere comes from the LS/LU/BT/BB
	// suffix instead.
	coordRe = regexp.MustCompile(`\d+\.\d+`)

	// remarkRe captures the text after the first "(". The closing paren is
	// deliberately not required; truncated messages still yield a remark.
	remarkRe = regexp.MustCompile(`\(([^)]+)`)
)

// Indonesian latitude extent, inclusive. Used to tell the latitude from the
// longitude when assigning coordinate roles.
const (
	minLatitude = -11.0
	maxLatitude = 6.0
)

// monthAliases maps the Indonesian month abbreviations that differ from
// English to their English equivalents. The rest (Jan, Feb, Mar, Apr, Jun,
// Jul, Sep, Nov) are spelled the same in both languages.
var monthAliases = map[string]string{
	"mei": "May",
	"agu": "Aug",
	"okt": "Oct",
	"des": "Dec",
}

// Hemisphere tags in check order. The south and west tags flip the sign of
// their axis.
var (
	latitudeTags  = [2]string{"LS", "LU"}
	longitudeTags = [2]string{"BT", "BB"}
)

// Translator localizes English calendar names for bulletin text. A failed
// lookup surfaces as an ExtractionError of kind translation_unavailable.
type Translator interface {
	TranslateDay(name string) (string, error)
	TranslateMonth(abbrev string) (string, error)
}

// fieldSet holds the semantic fields assembled from the comma segments.
type fieldSet struct {
	magnitude string
	datetime  string
	depth     string
	location  string
}

// Parser extracts typed earthquake parameters from one BMKG short message.
// Construction performs comma segmentation only; each field is extracted on
// demand so a partially malformed message can still yield the fields that do
// parse. A Parser is immutable after construction and every extractor is
// idempotent.
type Parser struct {
	raw        string
	fields     fieldSet
	translator Translator
}

// NewParser segments a raw short message into its fields. It returns a
// *FormatError when the message does not split into 4 or 5 comma segments.
func NewParser(raw string, translator Translator) (*Parser, error) {
	segments := strings.Split(raw, ",")

	var fields fieldSet
	switch len(segments) {
	case 4:
		fields.location = strings.TrimSpace(segments[2])
	case 5:
		// The sender is inconsistent about the comma inside the coordinate
		// pair; with five segments the third and fourth are its two halves
		// and must be rejoined before field parsing.
		fields.location = strings.TrimSpace(segments[2] + " - " + segments[3])
	default:
		return nil, &FormatError{Raw: raw, Segments: len(segments)}
	}
	fields.magnitude = strings.TrimSpace(segments[0])
	fields.datetime = strings.TrimSpace(segments[1])
	fields.depth = strings.TrimSpace(segments[len(segments)-1])

	return &Parser{raw: raw, fields: fields, translator: translator}, nil
}

// OriginTime is the parsed and localized origin-time block of a message.
type OriginTime struct {
	Date       time.Time // origin date at midnight, zone-naive
	DayName    string    // localized weekday name, e.g. "Selasa"
	DateString string    // localized "day month year", e.g. "21 Mei 2024"
	TimeString string    // clock time with zone label, e.g. "18:29:27 WIB"
}

// Location is the parsed epicenter block of a message.
type Location struct {
	Latitude       float64 // negative in the southern hemisphere
	Longitude      float64 // negative in the western hemisphere
	LatitudeLabel  string  // e.g. "0.3° LS"; empty when no tag was present
	LongitudeLabel string  // e.g. "100.28° BT"; empty when no tag was present
	Remark         string  // parenthetical text, e.g. "9 km Tenggara Bukittinggi"
	PlaceName      string  // last remark token, hyphens rendered as ", "
}

// ExtractMagnitude returns the single decimal number in the magnitude field.
func (p *Parser) ExtractMagnitude() (float64, error) {
	matches := numberRe.FindAllString(p.fields.magnitude, -1)
	switch {
	case len(matches) == 0:
		return 0, newExtractionError(KindNotFound, FieldMagnitude, p.fields.magnitude)
	case len(matches) > 1:
		return 0, newExtractionError(KindAmbiguous, FieldMagnitude, p.fields.magnitude)
	}
	return strconv.ParseFloat(matches[0], 64)
}

// ExtractOriginTime parses the date token, localizes the weekday and month
// names through the translator, and returns the origin-time block.
//
// The 3-token shape of the field is checked only after the date token has
// parsed: a field whose first token is not a valid date always reports
// invalid_datetime, even when the token count is also wrong. Downstream
// consumers of the feed have come to rely on that precedence.
func (p *Parser) ExtractOriginTime() (OriginTime, error) {
	tokens := strings.Fields(p.fields.datetime)

	date, err := parseDateToken(tokens)
	if err != nil {
		return OriginTime{}, newExtractionError(KindInvalidDateTime, FieldOriginTime, p.fields.datetime)
	}
	if len(tokens) != 3 {
		return OriginTime{}, newExtractionError(KindMalformedTimeString, FieldOriginTime, p.fields.datetime)
	}

	if p.translator == nil {
		return OriginTime{}, newExtractionError(KindTranslationUnavailable, FieldOriginTime, p.fields.datetime)
	}
	dayName, err := p.translator.TranslateDay(date.Weekday().String())
	if err != nil {
		return OriginTime{}, newExtractionError(KindTranslationUnavailable, FieldOriginTime, date.Weekday().String())
	}
	monthName, err := p.translator.TranslateMonth(date.Format("Jan"))
	if err != nil {
		return OriginTime{}, newExtractionError(KindTranslationUnavailable, FieldOriginTime, date.Format("Jan"))
	}

	return OriginTime{
		Date:       date,
		DayName:    dayName,
		DateString: fmt.Sprintf("%d %s %d", date.Day(), monthName, date.Year()),
		TimeString: tokens[1] + " " + tokens[2],
	}, nil
}

// ExtractDepth returns the single whole number of kilometres in the depth
// field. Fractional matches are skipped; depth is reported in whole km.
func (p *Parser) ExtractDepth() (int, error) {
	matches := numberRe.FindAllString(p.fields.depth, -1)
	depths := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		depths = append(depths, n)
	}
	switch {
	case len(depths) == 0:
		return 0, newExtractionError(KindNotFound, FieldDepth, p.fields.depth)
	case len(depths) > 1:
		return 0, newExtractionError(KindAmbiguous, FieldDepth, p.fields.depth)
	}
	return depths[0], nil
}

// ExtractLocation parses the epicenter block: the parenthetical remark, the
// place name, and the two coordinates with their hemisphere tags.
func (p *Parser) ExtractLocation() (Location, error) {
	m := remarkRe.FindStringSubmatch(p.fields.location)
	if m == nil {
		return Location{}, newExtractionError(KindMissingRemark, FieldLocation, p.fields.location)
	}
	remark := m[1]
	words := strings.Fields(remark)
	if len(words) == 0 {
		return Location{}, newExtractionError(KindMissingRemark, FieldLocation, p.fields.location)
	}

	coords := coordRe.FindAllString(p.fields.location, -1)
	switch {
	case len(coords) < 2:
		return Location{}, newExtractionError(KindNotFound, FieldCoordinates, p.fields.location)
	case len(coords) > 2:
		return Location{}, newExtractionError(KindAmbiguous, FieldCoordinates, p.fields.location)
	}
	first, _ := strconv.ParseFloat(coords[0], 64)
	second, _ := strconv.ParseFloat(coords[1], 64)

	loc := Location{
		Remark:    remark,
		PlaceName: strings.ReplaceAll(words[len(words)-1], "-", ", "),
	}

	// Assign coordinate roles by value. On a tie the first number by
	// appearance is the latitude.
	switch {
	case inLatitudeRange(first):
		loc.Latitude, loc.Longitude = first, second
	case inLatitudeRange(second):
		loc.Latitude, loc.Longitude = second, first
	default:
		return Location{}, newExtractionError(KindOutOfBounds, FieldLatitude, coords[0]+" "+coords[1])
	}

	// Labels are built from the still-unsigned value; the sign flip follows.
	// A missing tag leaves the axis unsigned with no label.
	for _, tag := range latitudeTags {
		if !strings.Contains(p.fields.location, tag) {
			continue
		}
		loc.LatitudeLabel = formatCoordinate(loc.Latitude) + "° " + tag
		if tag == "LS" {
			loc.Latitude = -loc.Latitude
		}
	}
	for _, tag := range longitudeTags {
		if !strings.Contains(p.fields.location, tag) {
			continue
		}
		loc.LongitudeLabel = formatCoordinate(loc.Longitude) + "° " + tag
		if tag == "BB" {
			loc.Longitude = -loc.Longitude
		}
	}

	return loc, nil
}

// ParseAll runs every extractor in field order and stops at the first
// failure, propagating it unwrapped.
func (p *Parser) ParseAll() (QuakeEvent, error) {
	magnitude, err := p.ExtractMagnitude()
	if err != nil {
		return QuakeEvent{}, err
	}
	ot, err := p.ExtractOriginTime()
	if err != nil {
		return QuakeEvent{}, err
	}
	depth, err := p.ExtractDepth()
	if err != nil {
		return QuakeEvent{}, err
	}
	loc, err := p.ExtractLocation()
	if err != nil {
		return QuakeEvent{}, err
	}

	return QuakeEvent{
		Magnitude:      magnitude,
		DayName:        ot.DayName,
		OriginDate:     ot.DateString,
		TimeString:     ot.TimeString,
		DepthKm:        depth,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		LatitudeLabel:  loc.LatitudeLabel,
		LongitudeLabel: loc.LongitudeLabel,
		LocationRemark: loc.Remark,
		PlaceName:      loc.PlaceName,
		OccurredAt:     combineOccurredAt(ot),
	}, nil
}

// parseDateToken parses the first whitespace token as dd-mmm-yy, normalizing
// Indonesian month abbreviations first.
func parseDateToken(tokens []string) (time.Time, error) {
	if len(tokens) == 0 {
		return time.Time{}, fmt.Errorf("empty datetime field")
	}
	parts := strings.Split(tokens[0], "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date token %q is not dd-mmm-yy", tokens[0])
	}
	return time.Parse("2 Jan 06", parts[0]+" "+normalizeMonth(parts[1])+" "+parts[2])
}

// normalizeMonth maps Indonesian month abbreviations to English and
// canonicalizes the case so mixed-case feed spellings still parse.
func normalizeMonth(abbrev string) string {
	lower := strings.ToLower(abbrev)
	if english, ok := monthAliases[lower]; ok {
		return english
	}
	if lower == "" {
		return lower
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func inLatitudeRange(v float64) bool {
	return v >= minLatitude && v <= maxLatitude
}

// formatCoordinate renders a coordinate the way it appears in bulletin
// labels: shortest decimal form, no exponent.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
