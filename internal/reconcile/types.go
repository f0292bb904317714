package reconcile

// Query is one reconciliation request. Text is required; the remaining
// fields are optional hints that sharpen scoring. Country may hold a
// comma-separated list.
type Query struct {
	Text     string
	Year     int
	Director string
	Country  string
}

// Candidate is a scored catalog match. Score is clamped to [0, 100]; Match
// marks candidates confident enough to accept without review.
type Candidate struct {
	ID    string
	Name  string
	Score int
	Match bool
}
