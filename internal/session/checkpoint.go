package session

// checkpointCadence is how many completed sections trigger a mentor stop.
const checkpointCadence = 2

// CheckpointDue reports whether a mentor checkpoint should be inserted after
// completedCount sections (out of totalSections) have been read. Checkpoints
// fire on every 2nd completed section, and always after the final section.
// The checkpoint displays cumulative progress and performs no scoring.
func CheckpointDue(completedCount, totalSections int) bool {
	if completedCount <= 0 {
		return false
	}
	if completedCount == totalSections {
		return true
	}
	return completedCount%checkpointCadence == 0
}
