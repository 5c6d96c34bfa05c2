// Package domain models BMKG (Badan Meteorologi, Klimatologi, dan Geofisika)
// earthquake short messages and their parsed parameters.
//
// # Data Source
//
// BMKG regional seismic processing centers (PGR, GSI, KSI and others) push a
// one-line short message for every located event. The upstream collector
// forwards each message verbatim to the Kafka source topic; this package
// turns that line into typed earthquake parameters.
//
// # BMKG Short Message Conventions
//
// A message carries its fields in one comma-delimited line:
//
//	Info Gempa. Mag:2.9, 21-mei-24 18:29:27 WIB, Lok:0.30 LS,100.28 BT (9 km Tenggara Bukittinggi), Kedlmn: 10 Km ::BMKG-PGR VI
//
// Comma segmentation is the authoritative rule. The sender is inconsistent
// about the comma between the two coordinates, so a message splits into
// either four segments (coordinate pair intact) or five (coordinate pair
// split); with five, the third and fourth segments are rejoined with " - "
// before field parsing. Any other segment count is rejected outright.
// The last segment is always the depth field.
//
// Field formats:
//
//	Magnitude:   "Mag:<decimal>", exactly one number expected.
//	Origin time: "<dd>-<mon>-<yy> <HH:MM:SS> <zone>". Month abbreviations mix
//	  English and Indonesian; mei, agu, okt and des are normalized to their
//	  English equivalents before date parsing. The zone label is WIB, WITA
//	  or WIT (UTC+7/+8/+9).
//	Location:    two unsigned decimals tagged with hemisphere suffixes, LS
//	  (Lintang Selatan, south) or LU (Lintang Utara, north) for latitude and
//	  BT (Bujur Timur, east) or BB (Bujur Barat, west) for longitude, plus a
//	  parenthetical remark "<distance> km <bearing> <place>".
//	Depth:       "Kedlmn: <integer> Km", exactly one whole number expected.
//
// Coordinate roles are assigned by value, not position: exactly one of the
// two numbers must fall inside the Indonesian latitude extent [-11.0, 6.0];
// when both do, the first by appearance wins. LS and BB flip the sign of
// their axis. A missing hemisphere tag leaves the axis unsigned and its
// label empty; the upstream feed has produced such messages and they are
// accepted.
//
// # Severity and Tsunami Potential
//
// Severity is the usual magnitude-class ladder (minor <4, light <5,
// moderate <6, strong <7, major <8, great >=8). Tsunami potential is
// flagged for M >= 7.0 at depth <= 100 km, the shallow-strong criterion
// BMKG applies when deciding whether a bulletin warns of tsunami.
//
// # ID Generation
//
// Event IDs are deterministic SHA-256 hashes of magnitude, epicenter, origin
// date and time. Replaying a raw message produces the same ID, enabling
// idempotent upserts downstream. See [generateID].
package domain
