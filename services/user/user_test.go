package user

import (
	"testing"

	"pulselink/models"
	"pulselink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registration(username, email string) models.UserRegistration {
	return models.UserRegistration{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     email,
		Username:  username,
		Phone:     "+919800000001",
		DOB:       "12/04/1992",
		Address:   "Fort, Mumbai",
		Password:  "Str0ng!pass",
	}
}

// storedOTP reads the OTP the service "delivered" for a signup session.
func storedOTP(t *testing.T, signupSessionID string) string {
	t.Helper()
	value, ok := utils.GetOTPCacheClient().Get("otp:" + signupSessionID)
	require.True(t, ok, "OTP should be pending for session %s", signupSessionID)
	return value.(string)
}

func TestSignupFlow(t *testing.T) {
	svc := NewDefaultUserService()

	sessionID, err := svc.Register(registration("asha", "asha@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	// The account does not exist until the OTP is verified.
	_, err = svc.SignIn("asha", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := svc.VerifyOTP(sessionID, storedOTP(t, sessionID))
	require.NoError(t, err)
	assert.Equal(t, "asha", session.User.Username)
	assert.NotEmpty(t, session.Token)
	assert.Empty(t, session.User.PasswordHash, "hash must not be exposed")

	// Auto-login: the issued token passes hash validation.
	cached, ok := utils.GetAuthCacheClient().Get(utils.AuthCachePrefix + session.User.ID)
	require.True(t, ok)
	assert.Equal(t, utils.HashToken(session.Token), cached.(string))
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc := NewDefaultUserService()

	sessionID, err := svc.Register(registration("wrongotp", "wrongotp@example.com"))
	require.NoError(t, err)

	_, err = svc.VerifyOTP(sessionID, "000000x")
	require.Error(t, err)

	// The stored OTP survives a failed attempt.
	_, err = svc.VerifyOTP(sessionID, storedOTP(t, sessionID))
	assert.NoError(t, err)
}

func TestRegisterRejectsWeakPasswords(t *testing.T) {
	svc := NewDefaultUserService()

	tests := []string{
		"short1!A",
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigits!!",
		"NoSymbols123",
		"tiny!A1",
	}
	for _, password := range tests {
		reg := registration("weak", "weak@example.com")
		reg.Password = password
		_, err := svc.Register(reg)
		if password == "short1!A" {
			// 8 chars with all classes is acceptable.
			assert.NoError(t, err, "password %q", password)
			continue
		}
		assert.ErrorIs(t, err, ErrWeakPassword, "password %q", password)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := NewDefaultUserService()

	sessionID, err := svc.Register(registration("dup", "dup@example.com"))
	require.NoError(t, err)
	_, err = svc.VerifyOTP(sessionID, storedOTP(t, sessionID))
	require.NoError(t, err)

	_, err = svc.Register(registration("dup", "other@example.com"))
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(registration("other", "dup@example.com"))
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestSignInAndRevoke(t *testing.T) {
	svc := NewDefaultUserService()

	sessionID, err := svc.Register(registration("signin", "signin@example.com"))
	require.NoError(t, err)
	created, err := svc.VerifyOTP(sessionID, storedOTP(t, sessionID))
	require.NoError(t, err)

	session, err := svc.SignIn("signin", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, session.User.ID)

	_, err = svc.SignIn("signin", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.RevokeAuthToken(session.User.ID))
	_, ok := utils.GetAuthCacheClient().Get(utils.AuthCachePrefix + session.User.ID)
	assert.False(t, ok)
}

func TestGetUserByID(t *testing.T) {
	svc := NewDefaultUserService()

	_, err := svc.GetUserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	sessionID, err := svc.Register(registration("lookup", "lookup@example.com"))
	require.NoError(t, err)
	created, err := svc.VerifyOTP(sessionID, storedOTP(t, sessionID))
	require.NoError(t, err)

	usr, err := svc.GetUserByID(created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "lookup", usr.Username)
}
