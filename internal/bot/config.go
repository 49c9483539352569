package bot

// Config represents the configuration for the bot
type Config struct {
	// Hour of day proposed when a user first enables reminders
	DefaultReminderHour int
	// Long-poll timeout for Telegram updates, in seconds
	UpdateTimeout int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultReminderHour: 16,
		UpdateTimeout:       60,
	}
}
