package model

// Summary mirrors the `summary` table. Title and description length limits
// are enforced at the request boundary, not here.
type Summary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
