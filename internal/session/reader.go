package session

// minDwellSeconds is the floor applied to every section's reading gate.
const minDwellSeconds = 30

// MinReadSeconds returns the minimum dwell time for a section before
// advancement is allowed.
func MinReadSeconds(sec Section) int {
	secs := sec.EstimatedMinutes * 60
	if secs < minDwellSeconds {
		secs = minDwellSeconds
	}
	return secs
}

// MayAdvance reports whether a reading phase with the given elapsed seconds
// may advance past the section. The boundary is inclusive: exactly
// MinReadSeconds allows advancement.
func MayAdvance(sec Section, elapsedSecs int) bool {
	return elapsedSecs >= MinReadSeconds(sec)
}
