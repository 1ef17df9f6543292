package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// FileAttachment is an optional file reference carried on a message.
type FileAttachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Message is a single chat message within a thread (or the guest feed).
type Message struct {
	ID             string          `json:"id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	Timestamp      time.Time       `json:"timestamp"`
	FileAttachment *FileAttachment `json:"fileAttachment,omitempty"`
}

// Thread groups a conversation with the assistant.
type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Messages []Message `json:"messages"`
}
