package model

// User represents a row in the `users` table. The password column holds a
// bcrypt hash, never a plaintext password, and is excluded from JSON output
// so it can never leak through a handler response.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // users.password (bcrypt hash)
}

// PublicUser is the client-safe projection of a user returned by signup.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
