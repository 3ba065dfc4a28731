package model

// Experience mirrors the `experience` table. StartDate and EndDate are
// normalized RFC 3339 strings; the handler parses whatever date form the
// client sent before the value reaches the repository. Skills is stored as a
// jsonb column and is never nil in API responses (empty slice instead).
type Experience struct {
	ID          int64    `json:"id"`
	Logo        string   `json:"logo"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Type        string   `json:"type"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	IsRemote    bool     `json:"isRemote"`
}
