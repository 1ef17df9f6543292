package models

import "time"

// Notification severities.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notification is a discrete, timestamped, non-blocking user message
// (the toast channel of the web client).
type Notification struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NavigationIntent is an abstract routing signal to the client; the
// concrete navigation mechanism lives outside this service.
type NavigationIntent struct {
	Target string `json:"target"`
}

// Navigation targets the core emits.
const (
	NavDashboard = "dashboard"
	NavLogin     = "login"
	NavNotFound  = "not-found"
)
