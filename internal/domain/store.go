package domain

type Store struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
