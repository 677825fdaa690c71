package models

// Department is an independent entity; employees reference it by id.
// Deleting a department does not cascade or check for references.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
