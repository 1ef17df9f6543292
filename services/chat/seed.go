package chat

import (
	"time"

	"pulselink/models"
)

// seedThreads builds the mock conversation history every account starts
// with, mirroring the portal's shipped chat fixtures.
func seedThreads() []models.Thread {
	base := time.Now().AddDate(0, 0, -3)
	return []models.Thread{
		{
			ID:    "thread-seed-1",
			Title: "Recurring headaches",
			Date:  base.Format("2006-01-02"),
			Messages: []models.Message{
				{
					ID:        "msg-seed-1",
					Role:      models.RoleUser,
					Content:   "I've been getting headaches every evening for the past week.",
					Timestamp: base,
				},
				{
					ID:        "msg-seed-2",
					Role:      models.RoleAssistant,
					Content:   AssistantReply,
					Timestamp: base.Add(time.Second),
				},
			},
		},
		{
			ID:    "thread-seed-2",
			Title: "Diet advice",
			Date:  base.AddDate(0, 0, -4).Format("2006-01-02"),
			Messages: []models.Message{
				{
					ID:        "msg-seed-3",
					Role:      models.RoleUser,
					Content:   "What foods should I avoid with mild acidity?",
					Timestamp: base.AddDate(0, 0, -4),
				},
				{
					ID:        "msg-seed-4",
					Role:      models.RoleAssistant,
					Content:   AssistantReply,
					Timestamp: base.AddDate(0, 0, -4).Add(time.Second),
				},
			},
		},
	}
}
