package activities

// Activity represents an extracurricular activity. Many students may
// reference the same activity record.
type Activity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
