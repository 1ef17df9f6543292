package user

import "pulselink/models"

// UserService is the portal's identity store. Registration is a
// two-step flow: Register parks the account behind an OTP challenge,
// VerifyOTP completes it and signs the user in. OTP delivery is
// simulated (logged, not sent).
type UserService interface {
	Register(reg models.UserRegistration) (signupSessionID string, err error)
	VerifyOTP(signupSessionID, otp string) (*models.AuthSession, error)
	SignIn(username, password string) (*models.AuthSession, error)
	GetUserByID(id string) (*models.User, error)
	RevokeAuthToken(userID string) error
}
