package bot

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/hootacademy/internal/ai"
	"github.com/example/hootacademy/internal/audio"
	"github.com/example/hootacademy/internal/curriculum"
	"github.com/example/hootacademy/internal/database"
	"github.com/example/hootacademy/internal/scheduler"
	"github.com/example/hootacademy/internal/session"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Pending credential input states
const (
	awaitingLogin    = "awaiting_login"
	awaitingRegister = "awaiting_register"
)

// chatSession bundles everything one chat owns: its session state
// machine, its audio controller, and (once opened) its tutor chat.
type chatSession struct {
	machine   *session.Session
	audio     *audio.Controller
	tutor     *ai.TutorSession
	tutorMode bool
	authState string
}

// Bot represents the Telegram bot application
type Bot struct {
	api              *tgbotapi.BotAPI
	token            string
	catalog          *curriculum.Catalog
	gemini           *ai.Client
	accounts         *database.AccountRepository
	progress         *database.ProgressRepository
	config           *Config
	schedulerEnabled bool
	scheduler        *scheduler.Scheduler
	adminUserIDs     map[int64]bool
	sessions         map[int64]*chatSession
}

// New creates a new bot instance
func New(catalog *curriculum.Catalog) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	gemini, err := ai.NewClient()
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		token:            token,
		catalog:          catalog,
		gemini:           gemini,
		accounts:         database.NewAccountRepository(),
		progress:         database.NewProgressRepository(),
		config:           DefaultConfig(),
		schedulerEnabled: os.Getenv("ENABLE_SCHEDULER") != "false",
		adminUserIDs:     make(map[int64]bool),
		sessions:         make(map[int64]*chatSession),
	}

	adminIDs := os.Getenv("ADMIN_USER_IDS")
	if adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				log.Printf("Warning: Invalid admin user ID: %s", idStr)
				continue
			}
			bot.adminUserIDs[id] = true
		}
	}

	return bot, nil
}

// Start connects to Telegram and processes updates until the channel
// closes. Updates are handled sequentially: one chat has one active
// session, and the session machine relies on that.
func (b *Bot) Start() error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}

	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.config.UpdateTimeout

	updates := b.api.GetUpdatesChan(updateConfig)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b.catalog, b)
		b.scheduler.Start()
		log.Println("Reminder scheduler started")
	}

	for update := range updates {
		b.handleUpdate(update)
	}

	return nil
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	log.Println("Bot stopped")
}

// session returns the chat's session bundle, creating it on first use
func (b *Bot) session(chatID int64) *chatSession {
	cs, exists := b.sessions[chatID]
	if !exists {
		cs = &chatSession{
			machine: session.New(b.gemini, b.progress),
			audio:   audio.NewController(&voicePlayer{api: b.api, chatID: chatID}),
		}
		b.sessions[chatID] = cs
	}
	return cs
}

// isAdmin checks if a user is an admin
func (b *Bot) isAdmin(userID int64) bool {
	return b.adminUserIDs[userID]
}

// send delivers a plain message, logging delivery failures
func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// SendReminder implements the scheduler.Notifier interface
func (b *Bot) SendReminder(chatID int64, username string, remaining int) error {
	text := fmt.Sprintf(
		"🦉 Professor Hoot misses you, %s! You still have %d standard(s) to master. Whooo's ready to practice?",
		username, remaining,
	)
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		log.Printf("Error sending reminder to chat %d: %v", chatID, err)
	}
	return err
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			return
		}
		b.handleText(update.Message)
		return
	}
	if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// handleCommand dispatches bot commands
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStartCommand(message)
	case "menu":
		b.showHome(message.Chat.ID)
	case "tutor":
		b.enterTutorMode(message.Chat.ID)
	case "settings":
		b.showSettings(message.Chat.ID)
	case "signout":
		b.handleSignOut(message.Chat.ID)
	case "import":
		if b.isAdmin(message.From.ID) {
			b.handleImportCommand(message)
		} else {
			b.send(tgbotapi.NewMessage(message.Chat.ID, "This command is only available for administrators."))
		}
	default:
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /menu to show the main menu."))
	}
}

// handleText routes free-form text: pending credentials first, then the
// tutor chat, otherwise a nudge toward the menu.
func (b *Bot) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	cs := b.session(chatID)

	switch {
	case cs.authState != "":
		b.handleCredentials(cs, message)
	case cs.tutorMode:
		b.handleTutorMessage(cs, message)
	default:
		b.send(tgbotapi.NewMessage(chatID, "I don't understand. Use /menu to show the main menu."))
	}
}

// handleStartCommand greets the student and opens the auth screen
func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := `Welcome to Professor Hoot's Academy! 🦉🎓

I teach 5th-grade Texas math with short lessons and quizzes.
Earn ⭐ by finishing lessons and mastering standards!

Available commands:
/menu - Show the dashboard
/tutor - Chat with Professor Hoot
/settings - Audio and reminder preferences
/signout - Switch student`

	b.send(tgbotapi.NewMessage(message.Chat.ID, welcomeText))
	b.showHome(message.Chat.ID)
}

// showHome shows the dashboard, or the auth screen when signed out
func (b *Bot) showHome(chatID int64) {
	cs := b.session(chatID)
	if cs.machine.State() == session.StateAuthenticating {
		b.showAuthMenu(chatID)
		return
	}
	b.showDashboard(chatID)
}
