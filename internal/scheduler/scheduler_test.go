package scheduler

import (
	"testing"

	"github.com/example/hootacademy/internal/curriculum"
	"github.com/example/hootacademy/internal/database"
	"github.com/example/hootacademy/pkg/models"
)

type recordingNotifier struct {
	chatIDs   []int64
	usernames []string
	remaining []int
}

func (n *recordingNotifier) SendReminder(chatID int64, username string, remaining int) error {
	n.chatIDs = append(n.chatIDs, chatID)
	n.usernames = append(n.usernames, username)
	n.remaining = append(n.remaining, remaining)
	return nil
}

func TestRemainingStandards(t *testing.T) {
	catalog := curriculum.NewCatalog()
	s := New(catalog, &recordingNotifier{})

	record := models.NewProgressRecord()
	if got := s.remainingStandards(record); got != catalog.Len() {
		t.Errorf("fresh record: remaining = %d, want %d", got, catalog.Len())
	}

	// A score below the threshold does not retire the standard
	record.QuizScores["5.2A"] = models.MasteryThreshold - 1
	if got := s.remainingStandards(record); got != catalog.Len() {
		t.Errorf("sub-threshold score: remaining = %d, want %d", got, catalog.Len())
	}

	record.QuizScores["5.2A"] = models.MasteryThreshold
	if got := s.remainingStandards(record); got != catalog.Len()-1 {
		t.Errorf("mastered one: remaining = %d, want %d", got, catalog.Len()-1)
	}

	for _, standard := range catalog.All() {
		record.QuizScores[standard.ID] = 100
	}
	if got := s.remainingStandards(record); got != 0 {
		t.Errorf("all mastered: remaining = %d, want 0", got)
	}
}

func TestRunManualCheck(t *testing.T) {
	if err := database.ConnectTest(); err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	accounts := database.NewAccountRepository()
	if err := accounts.Register("maria", "hoot123"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if err := accounts.UpdateReminder("maria", true, 16, 4242); err != nil {
		t.Fatalf("failed to set reminder: %v", err)
	}

	catalog := curriculum.NewCatalog()
	notifier := &recordingNotifier{}
	s := New(catalog, notifier)

	if err := s.RunManualCheck("maria"); err != nil {
		t.Fatalf("manual check failed: %v", err)
	}
	if len(notifier.remaining) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(notifier.remaining))
	}
	if notifier.chatIDs[0] != 4242 || notifier.usernames[0] != "maria" {
		t.Errorf("reminder sent to (%d, %s), want (4242, maria)", notifier.chatIDs[0], notifier.usernames[0])
	}
	if notifier.remaining[0] != catalog.Len() {
		t.Errorf("remaining = %d, want %d", notifier.remaining[0], catalog.Len())
	}

	// Mastering everything silences the reminder
	progress := database.NewProgressRepository()
	record, err := progress.Load("maria")
	if err != nil {
		t.Fatalf("failed to load progress: %v", err)
	}
	for _, standard := range catalog.All() {
		record.QuizScores[standard.ID] = 100
	}
	if err := progress.Save("maria", record); err != nil {
		t.Fatalf("failed to save progress: %v", err)
	}

	if err := s.RunManualCheck("maria"); err != nil {
		t.Fatalf("manual check failed: %v", err)
	}
	if len(notifier.remaining) != 1 {
		t.Errorf("expected no new reminder after mastery, got %d total", len(notifier.remaining))
	}
}
