package response

type Health struct {
	Status string `json:"status" example:"ok"`
}
