package structs

// User is a record in the users collection, keyed by Username.
// The password is stored and returned as plaintext; that matches the
// documents this service inherited and is a known confidentiality gap.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *User) GetUsername() string {
	return u.Username
}

func (u *User) GetEmail() string {
	return u.Email
}
