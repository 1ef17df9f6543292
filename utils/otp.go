package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"pulselink/config"
)

// generateNumericOTP generates a secure random numeric OTP of the
// specified length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// SendOTPMessage "delivers" an OTP to the given phone number. Real
// SMS/WhatsApp delivery is outside the portal's scope, so the message
// is written to the log instead.
func SendOTPMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending message to %s: %s", phoneNumber, message)
	return nil
}

// InitiateOTP generates a 6-digit OTP for the given signup session,
// stores it in the OTP cache with a fixed TTL, and delivers it.
func InitiateOTP(sessionID, phoneNumber string) error {
	otp, err := generateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	ttl := time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	otpKey := fmt.Sprintf("otp:%s", sessionID)

	GetOTPCacheClient().Set(otpKey, otp, ttl)

	message := fmt.Sprintf("Your PulseLink OTP is: %s. It expires in %d minutes.", otp, int(ttl.Minutes()))
	if err := SendOTPMessage(phoneNumber, message); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	GetLogger().Sugar().Infof("Sent OTP to phone %s for session %s (expires in %v)", phoneNumber, sessionID, ttl)
	return nil
}

// VerifyOTPRecord compares the provided OTP against the stored one for
// the session and deletes it on success.
func VerifyOTPRecord(sessionID, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:%s", sessionID)
	client := GetOTPCacheClient()

	stored, ok := client.Get(otpKey)
	if !ok {
		return fmt.Errorf("OTP not found or expired")
	}
	if stored.(string) != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	client.Del(otpKey)
	return nil
}
