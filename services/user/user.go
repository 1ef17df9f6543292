package user

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"pulselink/models"
	"pulselink/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const authTokenDuration = 24 * time.Hour

// DefaultUserService keeps accounts in memory for the lifetime of the
// process; the portal has no persistence beyond the session.
type DefaultUserService struct {
	mu         sync.Mutex
	byID       map[string]models.User
	byUsername map[string]string
	byEmail    map[string]string
}

func NewDefaultUserService() *DefaultUserService {
	return &DefaultUserService{
		byID:       make(map[string]models.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

// pendingSignup parks a validated registration until OTP verification.
type pendingSignup struct {
	Registration models.UserRegistration
	PasswordHash string
}

// Register validates the signup payload, hashes the password, and opens
// an OTP challenge. The account does not exist until VerifyOTP succeeds.
func (s *DefaultUserService) Register(reg models.UserRegistration) (string, error) {
	if err := validatePassword(reg.Password); err != nil {
		return "", err
	}

	s.mu.Lock()
	_, usernameTaken := s.byUsername[strings.ToLower(reg.Username)]
	_, emailTaken := s.byEmail[strings.ToLower(reg.Email)]
	s.mu.Unlock()
	if usernameTaken || emailTaken {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	signupSessionID := uuid.New().String()
	pending := pendingSignup{Registration: reg, PasswordHash: string(hash)}
	utils.GetOTPCacheClient().Set("signup:"+signupSessionID, pending, 10*time.Minute)

	if err := utils.InitiateOTP(signupSessionID, reg.Phone); err != nil {
		utils.GetOTPCacheClient().Del("signup:" + signupSessionID)
		return "", err
	}
	return signupSessionID, nil
}

// VerifyOTP completes registration and signs the new account in.
func (s *DefaultUserService) VerifyOTP(signupSessionID, otp string) (*models.AuthSession, error) {
	if err := utils.VerifyOTPRecord(signupSessionID, otp); err != nil {
		return nil, err
	}

	cache := utils.GetOTPCacheClient()
	value, ok := cache.Get("signup:" + signupSessionID)
	if !ok {
		return nil, ErrSignupNotFound
	}
	cache.Del("signup:" + signupSessionID)
	pending := value.(pendingSignup)
	reg := pending.Registration

	usr := models.User{
		ID:           uuid.New().String(),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		Username:     reg.Username,
		Phone:        reg.Phone,
		DOB:          reg.DOB,
		Address:      reg.Address,
		PasswordHash: pending.PasswordHash,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	// Re-check uniqueness: another signup may have completed meanwhile.
	if _, taken := s.byUsername[strings.ToLower(usr.Username)]; taken {
		s.mu.Unlock()
		return nil, ErrUserExists
	}
	if _, taken := s.byEmail[strings.ToLower(usr.Email)]; taken {
		s.mu.Unlock()
		return nil, ErrUserExists
	}
	s.byID[usr.ID] = usr
	s.byUsername[strings.ToLower(usr.Username)] = usr.ID
	s.byEmail[strings.ToLower(usr.Email)] = usr.ID
	s.mu.Unlock()

	return s.issueSession(usr)
}

// SignIn authenticates by username and password.
func (s *DefaultUserService) SignIn(username, password string) (*models.AuthSession, error) {
	s.mu.Lock()
	id, ok := s.byUsername[strings.ToLower(username)]
	usr := s.byID[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(usr)
}

// GetUserByID returns the account profile.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	usr, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &usr, nil
}

// RevokeAuthToken invalidates the user's cached token hash (logout).
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	utils.GetAuthCacheClient().Del(utils.AuthCachePrefix + userID)
	return nil
}

func (s *DefaultUserService) issueSession(usr models.User) (*models.AuthSession, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, authTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	utils.GetAuthCacheClient().Set(utils.AuthCachePrefix+usr.ID, utils.HashToken(token), utils.AuthCacheTTL)

	usr.PasswordHash = ""
	return &models.AuthSession{User: usr, Token: token}, nil
}

// validatePassword enforces the signup policy: at least 8 characters
// with an upper-case letter, a lower-case letter, a digit and a symbol.
func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}
	return nil
}
