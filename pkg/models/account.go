package models

import "time"

// Account represents a registered student account
type Account struct {
	Username        string    `json:"username" db:"username"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	ReminderEnabled bool      `json:"reminder_enabled" db:"reminder_enabled"`
	ReminderHour    int       `json:"reminder_hour" db:"reminder_hour"` // Hour of day (0-23)
	ChatID          int64     `json:"chat_id" db:"chat_id"`             // Telegram chat for reminders, 0 if unknown
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
