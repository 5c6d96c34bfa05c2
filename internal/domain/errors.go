package domain

import "fmt"

// Recognized message formats, quoted in error messages so a malformed
// upstream message can be corrected by hand.
const (
	RecognizedFormatPPI = `Info Gempa. Mag:2.9, 21-mei-24 18:29:27 WIB, Lok:0.30 LS,100.28 BT (9 km Tenggara Bukittinggi), Kedlmn: 10 Km ::BMKG-PGR VI`
	RecognizedFormatKSI = `Info Gempa Mag:3.0, 21-Jan-24 18:29:27 WIB,Lok: 2.52 LS - 102.26 BT (49 km Tenggara MERANGIN-JAMBI), Kedlmn: 5 Km ::BMKG-KSI`
)

// ErrorKind classifies why an extraction step failed.
type ErrorKind string

const (
	KindNotFound               ErrorKind = "not_found"
	KindAmbiguous              ErrorKind = "ambiguous"
	KindInvalidDateTime        ErrorKind = "invalid_datetime"
	KindMalformedTimeString    ErrorKind = "malformed_time_string"
	KindMissingRemark          ErrorKind = "missing_remark"
	KindOutOfBounds            ErrorKind = "out_of_bounds"
	KindTranslationUnavailable ErrorKind = "translation_unavailable"
)

// Field names used in extraction errors.
const (
	FieldMagnitude   = "magnitude"
	FieldOriginTime  = "origin_time"
	FieldDepth       = "depth"
	FieldLocation    = "location"
	FieldCoordinates = "coordinates"
	FieldLatitude    = "latitude"
)

// FormatError reports a message that could not be segmented into the four or
// five comma-delimited parts BMKG uses.
type FormatError struct {
	Raw      string
	Segments int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(
		"short message format unrecognized: %d comma segments in %q, want 4 or 5; recognized formats are [%s] and [%s]",
		e.Segments, e.Raw, RecognizedFormatPPI, RecognizedFormatKSI,
	)
}

// ExtractionError reports a single failed extraction step. Steps fail
// independently; ParseAll propagates the first one unwrapped.
type ExtractionError struct {
	Kind   ErrorKind
	Field  string
	Detail string // offending raw substring
}

func (e *ExtractionError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s number cannot be found in %q", e.Field, e.Detail)
	case KindAmbiguous:
		return fmt.Sprintf("too many numbers, cannot determine %s from %q", e.Field, e.Detail)
	case KindInvalidDateTime:
		return fmt.Sprintf("cannot determine datetime format of %q, should be dd-mmm-yy", e.Detail)
	case KindMalformedTimeString:
		return fmt.Sprintf("time string in %q not properly split; refer to [%s] or [%s]",
			e.Detail, RecognizedFormatPPI, RecognizedFormatKSI)
	case KindMissingRemark:
		return fmt.Sprintf("no parenthesized location remark in %q", e.Detail)
	case KindOutOfBounds:
		return fmt.Sprintf("latitude candidates %q are outside the Indonesian latitude extent [%.1f, %.1f]",
			e.Detail, minLatitude, maxLatitude)
	case KindTranslationUnavailable:
		return fmt.Sprintf("no translation available for calendar name %q", e.Detail)
	default:
		return fmt.Sprintf("%s extraction failed for %q", e.Field, e.Detail)
	}
}

func newExtractionError(kind ErrorKind, field, detail string) *ExtractionError {
	return &ExtractionError{Kind: kind, Field: field, Detail: detail}
}
