package models

// Category groups tasks. Static reference data.
type Category struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}
