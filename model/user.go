package model

// --- USER ---

// User mirrors the POST /users response. Only the assigned ID is retained on
// the client side, as an opaque string.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
