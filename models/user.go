package models

import "time"

// User is a registered portal account. PasswordHash never leaves the
// service layer; JSON marshalling skips it.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Phone        string    `json:"phone"`
	DOB          string    `json:"dob"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRegistration is the signup payload captured before OTP
// verification completes the account.
type UserRegistration struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	DOB       string `json:"dob" binding:"required"`
	Address   string `json:"address"`
	Password  string `json:"password" binding:"required"`
}

// AuthSession is returned on successful authentication.
type AuthSession struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
