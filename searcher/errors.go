package searcher

// invariantViolation marks a panic raised by a broken internal
// invariant (a corrupt node, an illegal expanded move) rather than a
// normal search-time condition like "no legal move" or "deadline
// reached". These are bugs to abort on, not errors to recover from.
type invariantViolation string

func (e invariantViolation) Error() string { return string(e) }
