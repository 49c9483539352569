package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/hootacademy/internal/curriculum"
	"github.com/example/hootacademy/internal/database"
	"github.com/example/hootacademy/pkg/models"
)

// Scheduler sends daily practice reminders to opted-in accounts
type Scheduler struct {
	scheduler *gocron.Scheduler
	catalog   *curriculum.Catalog
	notifier  Notifier
}

// Notifier interface for delivering reminders
type Notifier interface {
	SendReminder(chatID int64, username string, remaining int) error
}

// New creates a new scheduler instance
func New(catalog *curriculum.Catalog, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		catalog:   catalog,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check against each account's preferred reminder hour
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders finds accounts due for a reminder this hour and
// notifies the ones that still have standards to master.
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	accountRepo := database.NewAccountRepository()
	progressRepo := database.NewProgressRepository()

	accounts, err := accountRepo.AccountsForReminder(currentHour)
	if err != nil {
		log.Printf("Error getting accounts for reminders: %v", err)
		return
	}

	for _, account := range accounts {
		record, err := progressRepo.Load(account.Username)
		if err != nil {
			log.Printf("Error loading progress for %s: %v", account.Username, err)
			continue
		}

		remaining := s.remainingStandards(record)
		if remaining == 0 {
			// Everything mastered, nothing to nag about
			continue
		}

		if err := s.notifier.SendReminder(account.ChatID, account.Username, remaining); err != nil {
			log.Printf("Error sending reminder to %s: %v", account.Username, err)
		}
	}
}

// remainingStandards counts catalog standards not yet mastered
func (s *Scheduler) remainingStandards(record models.ProgressRecord) int {
	remaining := 0
	for _, standard := range s.catalog.All() {
		if record.QuizScores[standard.ID] < models.MasteryThreshold {
			remaining++
		}
	}
	return remaining
}

// RunManualCheck forces a reminder check for a specific account
func (s *Scheduler) RunManualCheck(username string) error {
	account, err := database.NewAccountRepository().GetByUsername(username)
	if err != nil {
		return err
	}

	record, err := database.NewProgressRepository().Load(account.Username)
	if err != nil {
		return err
	}

	remaining := s.remainingStandards(record)
	if remaining == 0 {
		return nil
	}
	return s.notifier.SendReminder(account.ChatID, account.Username, remaining)
}
