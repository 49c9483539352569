package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/example/hootacademy/pkg/models"
)

// ReservedUsername names the anonymous guest slot. It can never be
// registered, in any letter case.
const ReservedUsername = "guest"

// Auth failure taxonomy. Each maps to an inline message for the user.
var (
	ErrReservedName  = errors.New("username is reserved")
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrDuplicateUser = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
)

// AccountRepository handles database operations for student accounts
type AccountRepository struct{}

// NewAccountRepository creates a new repository instance
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// Register creates a new account and initializes its progress slot.
// Returns ErrReservedName, ErrEmptyUsername, or ErrDuplicateUser on the
// corresponding failures. Username lookup is case-sensitive; the
// reserved-name check is not.
func (r *AccountRepository) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if strings.EqualFold(username, ReservedUsername) {
		return ErrReservedName
	}
	if username == "" {
		return ErrEmptyUsername
	}

	var existing string
	err := DB.Get(&existing, DB.Rebind("SELECT username FROM accounts WHERE username = ?"), username)
	if err == nil {
		return ErrDuplicateUser
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check for existing account: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	_, err = DB.Exec(
		DB.Rebind("INSERT INTO accounts (username, password_hash) VALUES (?, ?)"),
		username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %v", err)
	}

	// Fresh accounts start from the empty progress record
	progressRepo := NewProgressRepository()
	if err := progressRepo.Save(username, models.NewProgressRecord()); err != nil {
		return fmt.Errorf("failed to initialize progress: %v", err)
	}

	return nil
}

// Login verifies a username/password pair. Returns ErrUserNotFound or
// ErrWrongPassword on failure; no token is issued.
func (r *AccountRepository) Login(username, password string) error {
	var hash string
	err := DB.Get(&hash, DB.Rebind("SELECT password_hash FROM accounts WHERE username = ?"), username)
	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to look up account: %v", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrWrongPassword
	}
	return nil
}

// GetByUsername returns an account by its exact username
func (r *AccountRepository) GetByUsername(username string) (*models.Account, error) {
	var account models.Account
	err := DB.Get(&account,
		DB.Rebind("SELECT username, password_hash, reminder_enabled, reminder_hour, chat_id, created_at FROM accounts WHERE username = ?"),
		username,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %v", err)
	}
	return &account, nil
}

// UpdateReminder stores a user's practice reminder preferences and the
// chat the reminder should be delivered to.
func (r *AccountRepository) UpdateReminder(username string, enabled bool, hour int, chatID int64) error {
	_, err := DB.Exec(
		DB.Rebind("UPDATE accounts SET reminder_enabled = ?, reminder_hour = ?, chat_id = ? WHERE username = ?"),
		enabled, hour, chatID, username,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder settings: %v", err)
	}
	return nil
}

// UpdateReminderChat refreshes the delivery chat for a user's reminders
// without touching their opt-in flag or preferred hour.
func (r *AccountRepository) UpdateReminderChat(username string, chatID int64) error {
	_, err := DB.Exec(
		DB.Rebind("UPDATE accounts SET chat_id = ? WHERE username = ?"),
		chatID, username,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder chat: %v", err)
	}
	return nil
}

// AccountsForReminder returns accounts opted in to a reminder at the
// given hour that have a known delivery chat.
func (r *AccountRepository) AccountsForReminder(hour int) ([]models.Account, error) {
	var accounts []models.Account
	err := DB.Select(&accounts,
		DB.Rebind("SELECT username, password_hash, reminder_enabled, reminder_hour, chat_id, created_at FROM accounts WHERE reminder_enabled = ? AND reminder_hour = ? AND chat_id <> 0"),
		true, hour,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder accounts: %v", err)
	}
	return accounts, nil
}
