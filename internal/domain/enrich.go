package domain

// EnrichQuakeEvent derives the classification fields from the parsed
// parameters: the magnitude-class severity label, the tsunami-potential
// flag, and the processing timestamp.
func EnrichQuakeEvent(event QuakeEvent) QuakeEvent {
	event.Severity = deriveSeverity(event.Magnitude)
	event.TsunamiPotential = deriveTsunamiPotential(event.Magnitude, event.DepthKm)
	event.ProcessedAt = clock.Now()
	return event
}

// deriveSeverity maps magnitude to the usual magnitude-class labels:
// minor <4, light <5, moderate <6, strong <7, major <8, great >=8.
// Returns empty for a zero magnitude.
func deriveSeverity(magnitude float64) string {
	switch {
	case magnitude == 0:
		return ""
	case magnitude < 4:
		return "minor"
	case magnitude < 5:
		return "light"
	case magnitude < 6:
		return "moderate"
	case magnitude < 7:
		return "strong"
	case magnitude < 8:
		return "major"
	default:
		return "great"
	}
}

// deriveTsunamiPotential flags shallow strong events, the criterion BMKG
// applies when a bulletin must warn of tsunami: M >= 7.0 no deeper than
// 100 km.
func deriveTsunamiPotential(magnitude float64, depthKm int) bool {
	return magnitude >= 7.0 && depthKm <= 100
}
