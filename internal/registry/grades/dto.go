package grades

type UpsertGradeRequest struct {
	Letter   string `json:"letter" validate:"required,max=2"`
	Standard int    `json:"standard" validate:"required,gte=1,lte=12"`
}
