package session

// feedbackDoneMsg clears the answer flash. seq ties it to one answer so a
// stale timer cannot clear a newer flash.
type feedbackDoneMsg struct {
	seq int
}
