package models

// User is a row of the credential table. Rows are managed outside the
// server; PasswordHash is a bcrypt hash and Role a short tag such as "admin".
type User struct {
	UserName     string
	PasswordHash string
	Role         string
}
