package domain

// User models a registered account. PasswordHash is a bcrypt digest and never
// leaves the process.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
