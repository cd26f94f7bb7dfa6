package booking

type UpdateFieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}
