package models

// Sentinel statuses.
const (
	StatusOpen     = "aberto"
	StatusComplete = "completo"
)

// Status is a task lifecycle state.
type Status struct {
	StatusID string `json:"statusId"`
	Name     string `json:"name"`
}
