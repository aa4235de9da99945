package models

// AdminProfile is the body of GET /admin/profile.
type AdminProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// DisplayName prefers the full name and falls back to the username.
func (a AdminProfile) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// Message is the {"message": "..."} body most mutations answer with.
type Message struct {
	Message string `json:"message"`
}
