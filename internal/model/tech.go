package model

// TechStack mirrors the `tech_stack` table. Names are unique at the database
// level; a duplicate insert surfaces as repository.ErrDuplicate.
type TechStack struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
