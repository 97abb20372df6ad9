package models

// User is the client-side copy of the authenticated account. The gateway
// owns the record; this copy is replaced wholesale on login or profile
// update and cleared on logout.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // user, admin
}
