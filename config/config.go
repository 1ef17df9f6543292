package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session handling.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MIN"`

	// Simulated timers (milliseconds).
	AssistantReplyDelayMs  int `mapstructure:"ASSISTANT_REPLY_DELAY_MS"`
	PostBookingRedirectMs  int `mapstructure:"POST_BOOKING_REDIRECT_MS"`
	OTPExpiryMinutes       int `mapstructure:"OTP_EXPIRY_MIN"`
	NotificationFeedLength int `mapstructure:"NOTIFICATION_FEED_LENGTH"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SESSION_TTL_MIN", 10)
	viper.SetDefault("ASSISTANT_REPLY_DELAY_MS", 1000)
	viper.SetDefault("POST_BOOKING_REDIRECT_MS", 1500)
	viper.SetDefault("OTP_EXPIRY_MIN", 5)
	viper.SetDefault("NOTIFICATION_FEED_LENGTH", 50)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
