package user

// Summary is the projection of a user embedded in order responses for display.
// User accounts themselves are owned by the identity collaborator.
type Summary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
