package handlers

import (
	"errors"
	"net/http"

	"pulselink/models"
	"pulselink/services/user"
	"pulselink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the identity flows: signup, OTP verification,
// sign-in, profile and logout.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /api/users/register. On success the
// account is parked behind an OTP challenge; the response carries the
// signup session id the client verifies against.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	signupSessionID, err := h.Service.Register(reg)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserExists):
			utils.JSONError(c, http.StatusConflict, "Username or email already exists", "")
		case errors.Is(err, user.ErrWeakPassword):
			utils.JSONError(c, http.StatusBadRequest, "Password does not meet requirements", "")
		default:
			utils.GetLogger().Error("registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"signupSessionId": signupSessionID, "otpPending": true})
}

// VerifyOTPHandler handles POST /api/users/verify-otp and completes the
// two-step signup, signing the new account in.
func (h *UserHandler) VerifyOTPHandler(c *gin.Context) {
	var req struct {
		SignupSessionID string `json:"signupSessionId" binding:"required"`
		OTP             string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.VerifyOTP(req.SignupSessionID, req.OTP)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "OTP verification failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    session.User,
		"token":   session.Token,
		"message": "Account created successfully!",
	})
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SignIn(req.Username, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid username or password", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": session.User, "token": session.Token})
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.Service.GetUserByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// RevokeUserAuthTokenHandler handles POST /api/users/logout.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.RevokeAuthToken(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
