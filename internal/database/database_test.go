package database

import (
	"errors"
	"testing"

	"github.com/example/hootacademy/pkg/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	if err := ConnectTest(); err != nil {
		t.Fatalf("failed to set up test database: %v", err)
	}
	t.Cleanup(func() { Close() })
}

func TestRegisterAndLogin(t *testing.T) {
	setupDB(t)
	repo := NewAccountRepository()

	if err := repo.Register("ava", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := repo.Login("ava", "pw1"); err != nil {
		t.Errorf("login with correct password failed: %v", err)
	}
	if err := repo.Login("ava", "nope"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
	if err := repo.Login("missing", "pw1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegisterReservedName(t *testing.T) {
	setupDB(t)
	repo := NewAccountRepository()

	for _, name := range []string{"guest", "GUEST", "Guest", "  guest  "} {
		if err := repo.Register(name, "pw"); !errors.Is(err, ErrReservedName) {
			t.Errorf("register(%q): expected ErrReservedName, got %v", name, err)
		}
	}
}

func TestRegisterEmptyUsername(t *testing.T) {
	setupDB(t)
	repo := NewAccountRepository()

	for _, name := range []string{"", "   "} {
		if err := repo.Register(name, "pw"); !errors.Is(err, ErrEmptyUsername) {
			t.Errorf("register(%q): expected ErrEmptyUsername, got %v", name, err)
		}
	}
}

func TestRegisterDuplicateKeepsOriginalPassword(t *testing.T) {
	setupDB(t)
	repo := NewAccountRepository()

	if err := repo.Register("ava", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := repo.Register("ava", "pw2"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	// The original credentials must be untouched
	if err := repo.Login("ava", "pw1"); err != nil {
		t.Errorf("original password no longer valid: %v", err)
	}
	if err := repo.Login("ava", "pw2"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("duplicate registration changed the password: %v", err)
	}
}

func TestRegisterInitializesProgress(t *testing.T) {
	setupDB(t)
	if err := NewAccountRepository().Register("ava", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	record, err := NewProgressRepository().Load("ava")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(record.CompletedLessons) != 0 || len(record.QuizScores) != 0 || record.Stars != 0 {
		t.Errorf("fresh account should have empty progress, got %+v", record)
	}
	if !record.Settings.UseTTS || record.Settings.BGMusic {
		t.Errorf("unexpected default settings: %+v", record.Settings)
	}
}

func TestProgressLoadMissingReturnsDefault(t *testing.T) {
	setupDB(t)
	record, err := NewProgressRepository().Load("nobody")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if record.Stars != 0 || len(record.CompletedLessons) != 0 {
		t.Errorf("expected the default record, got %+v", record)
	}
}

func TestProgressSaveAndLoadRoundTrip(t *testing.T) {
	setupDB(t)
	repo := NewProgressRepository()

	record := models.NewProgressRecord()
	record.MarkLessonCompleted("5.2A")
	record.QuizScores["5.2A"] = 90
	record.Stars = 30

	if err := repo.Save("ava", record); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := repo.Load("ava")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.HasCompletedLesson("5.2A") {
		t.Error("completed lesson lost in round trip")
	}
	if loaded.QuizScores["5.2A"] != 90 || loaded.Stars != 30 {
		t.Errorf("unexpected record after round trip: %+v", loaded)
	}
}

func TestProgressSaveOverwrites(t *testing.T) {
	setupDB(t)
	repo := NewProgressRepository()

	first := models.NewProgressRecord()
	first.Stars = 10
	if err := repo.Save("ava", first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := models.NewProgressRecord()
	second.Stars = 40
	if err := repo.Save("ava", second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, _ := repo.Load("ava")
	if loaded.Stars != 40 {
		t.Errorf("expected last write to win, got %d stars", loaded.Stars)
	}
}

func TestProgressCorruptDataTreatedAsAbsent(t *testing.T) {
	setupDB(t)
	if _, err := DB.Exec("INSERT INTO progress (user_key, data) VALUES ('ava', 'not json {')"); err != nil {
		t.Fatalf("failed to plant corrupt row: %v", err)
	}

	record, err := NewProgressRepository().Load("ava")
	if err != nil {
		t.Fatalf("corruption must not surface as an error: %v", err)
	}
	if record.Stars != 0 || len(record.QuizScores) != 0 {
		t.Errorf("expected the default record for corrupt data, got %+v", record)
	}
}

func TestStandardRepositoryUpsertAndGetAll(t *testing.T) {
	setupDB(t)
	repo := NewStandardRepository()

	s := models.Standard{ID: "6.1A", Code: "6.1(A)", Category: "Process", Description: "Apply mathematics."}
	if err := repo.Upsert(s); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	s.Description = "Apply mathematics to everyday problems."
	if err := repo.Upsert(s); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 imported standard, got %d", len(all))
	}
	if all[0].Description != s.Description {
		t.Errorf("upsert did not replace the row: %q", all[0].Description)
	}
}

func TestAccountsForReminder(t *testing.T) {
	setupDB(t)
	accounts := NewAccountRepository()

	if err := accounts.Register("ava", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := accounts.Register("ben", "pw2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := accounts.UpdateReminder("ava", true, 16, 1001); err != nil {
		t.Fatalf("update reminder failed: %v", err)
	}
	if err := accounts.UpdateReminder("ben", true, 9, 1002); err != nil {
		t.Fatalf("update reminder failed: %v", err)
	}

	due, err := accounts.AccountsForReminder(16)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(due) != 1 || due[0].Username != "ava" {
		t.Errorf("expected only ava due at 16:00, got %+v", due)
	}
}

func TestUpdateReminderChatPreservesPreferences(t *testing.T) {
	setupDB(t)
	accounts := NewAccountRepository()

	if err := accounts.Register("ava", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	// Reminders explicitly turned off at 9:00
	if err := accounts.UpdateReminder("ava", false, 9, 111); err != nil {
		t.Fatalf("update reminder failed: %v", err)
	}

	// A sign-in from a new chat only moves the delivery target
	if err := accounts.UpdateReminderChat("ava", 222); err != nil {
		t.Fatalf("update reminder chat failed: %v", err)
	}

	account, err := accounts.GetByUsername("ava")
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if account.ReminderEnabled {
		t.Error("chat update re-enabled reminders the user turned off")
	}
	if account.ReminderHour != 9 {
		t.Errorf("chat update changed reminder hour to %d, want 9", account.ReminderHour)
	}
	if account.ChatID != 222 {
		t.Errorf("chat id = %d, want 222", account.ChatID)
	}
}
