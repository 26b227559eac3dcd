package grades

// Grade represents a grade letter with its numeric standard. Many students
// may reference the same grade record.
type Grade struct {
	ID       int64  `json:"id"`
	Letter   string `json:"letter"`
	Standard int    `json:"standard"`
}
