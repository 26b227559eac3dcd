package activities

type UpsertActivityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,max=100"`
}
