package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/hootacademy/internal/database"
	"github.com/example/hootacademy/internal/excel"
	"github.com/example/hootacademy/internal/session"
	"github.com/example/hootacademy/pkg/models"
)

// handleCallbackQuery handles button presses
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	// Acknowledge immediately so the button stops spinning
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Error answering callback: %v", err)
	}

	chatID := query.Message.Chat.ID
	cs := b.session(chatID)
	data := query.Data

	switch {
	case data == "auth_login":
		cs.authState = awaitingLogin
		b.send(tgbotapi.NewMessage(chatID, "Please send your username and password separated by a space:\n\nusername password"))
	case data == "auth_register":
		cs.authState = awaitingRegister
		b.send(tgbotapi.NewMessage(chatID, "Pick a username and password, separated by a space:\n\nusername password"))
	case data == "auth_guest":
		b.signIn(cs, chatID, database.ReservedUsername)
	case strings.HasPrefix(data, "lesson_"):
		b.startLesson(cs, chatID, strings.TrimPrefix(data, "lesson_"))
	case data == "slide_next":
		b.advanceSlide(cs, chatID, true)
	case data == "slide_prev":
		b.advanceSlide(cs, chatID, false)
	case data == "lesson_listen":
		b.readSlideAloud(cs, chatID)
	case data == "audio_stop":
		cs.audio.Stop()
		b.send(tgbotapi.NewMessage(chatID, "🔇 Stopped."))
	case data == "lesson_finish":
		b.finishLesson(cs, chatID)
	case strings.HasPrefix(data, "answer_"):
		b.answerQuestion(cs, chatID, strings.TrimPrefix(data, "answer_"))
	case data == "quiz_next":
		b.nextQuestion(cs, chatID)
	case data == "quiz_retry":
		b.retryQuiz(cs, chatID)
	case data == "quiz_finish":
		b.finishQuiz(cs, chatID)
	case data == "exit_dashboard":
		b.exitToDashboard(cs, chatID)
	case data == "tutor_enter":
		b.enterTutorMode(chatID)
	case data == "tutor_clear":
		b.clearTutorChat(cs, chatID)
	case data == "tutor_exit":
		cs.tutorMode = false
		b.showHome(chatID)
	case data == "settings_open":
		b.showSettings(chatID)
	case data == "settings_tts":
		b.toggleTTS(cs, chatID)
	case data == "settings_music":
		b.toggleMusic(cs, chatID)
	case data == "settings_reminder":
		b.toggleReminder(cs, chatID)
	case data == "settings_back":
		b.showHome(chatID)
	case data == "signout":
		b.handleSignOut(chatID)
	default:
		log.Printf("Unknown callback data: %s", data)
	}
}

// showAuthMenu shows the sign-in screen
func (b *Bot) showAuthMenu(chatID int64) {
	buttons := [][]MenuButton{
		{{Text: "🔑 Sign In", CallbackData: "auth_login"}},
		{{Text: "📝 Create Account", CallbackData: "auth_register"}},
		{{Text: "🎈 Continue as Guest", CallbackData: "auth_guest"}},
	}

	msg := tgbotapi.NewMessage(chatID, "🦉 Welcome to Professor Hoot's Academy!\n\nHow would you like to enter the classroom?")
	msg.ReplyMarkup = createKeyboard(buttons)
	b.send(msg)
}

// handleCredentials consumes a "username password" message for a
// pending login or registration.
func (b *Bot) handleCredentials(cs *chatSession, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	pending := cs.authState
	cs.authState = ""

	fields := strings.Fields(message.Text)
	if len(fields) != 2 {
		b.send(tgbotapi.NewMessage(chatID, "I need exactly two words: a username and a password. Let's try again from the menu."))
		b.showAuthMenu(chatID)
		return
	}
	username, password := fields[0], fields[1]

	var err error
	if pending == awaitingRegister {
		err = b.accounts.Register(username, password)
	} else {
		err = b.accounts.Login(username, password)
	}

	switch {
	case err == nil:
		b.signIn(cs, chatID, strings.TrimSpace(username))
	case errors.Is(err, database.ErrReservedName):
		b.send(tgbotapi.NewMessage(chatID, "That name is reserved for guests. Pick another one!"))
		b.showAuthMenu(chatID)
	case errors.Is(err, database.ErrEmptyUsername):
		b.send(tgbotapi.NewMessage(chatID, "Your username can't be empty. Pick a real one!"))
		b.showAuthMenu(chatID)
	case errors.Is(err, database.ErrDuplicateUser):
		b.send(tgbotapi.NewMessage(chatID, "That username is already taken. Pick another, or sign in instead."))
		b.showAuthMenu(chatID)
	case errors.Is(err, database.ErrUserNotFound), errors.Is(err, database.ErrWrongPassword):
		b.send(tgbotapi.NewMessage(chatID, "Hmm, that username and password don't match. Try again!"))
		b.showAuthMenu(chatID)
	default:
		log.Printf("Auth error for chat %d: %v", chatID, err)
		b.send(tgbotapi.NewMessage(chatID, "Something went wrong on my end. Please try again."))
		b.showAuthMenu(chatID)
	}
}

// signIn binds the chat's session to a user key and shows the dashboard
func (b *Bot) signIn(cs *chatSession, chatID int64, userKey string) {
	if err := cs.machine.SignIn(userKey); err != nil {
		log.Printf("Sign-in rejected for chat %d: %v", chatID, err)
		b.showHome(chatID)
		return
	}

	// Refresh where reminders should be delivered; the opt-in flag and
	// hour belong to the user and survive sign-ins.
	if userKey != database.ReservedUsername {
		if err := b.accounts.UpdateReminderChat(userKey, chatID); err != nil {
			log.Printf("Error storing reminder chat for %s: %v", userKey, err)
		}
	}

	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Welcome, %s! 🦉", userKey)))
	b.showDashboard(chatID)
}

// handleSignOut returns the chat to the auth screen
func (b *Bot) handleSignOut(chatID int64) {
	cs := b.session(chatID)
	cs.audio.Stop()
	cs.tutorMode = false
	cs.tutor = nil
	cs.machine.SignOut()
	b.send(tgbotapi.NewMessage(chatID, "Signed out. Your stars are safe until next time! 👋"))
	b.showAuthMenu(chatID)
}

// showDashboard lists every standard with its progress markers
func (b *Bot) showDashboard(chatID int64) {
	cs := b.session(chatID)
	record, err := cs.machine.Progress()
	if err != nil {
		log.Printf("Error loading progress for chat %d: %v", chatID, err)
		b.showAuthMenu(chatID)
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "🏠 *Dashboard* — %s\n⭐ Stars: %d\n\nPick a standard to study:",
		cs.machine.UserKey(), record.Stars)

	var buttons [][]MenuButton
	for _, standard := range b.catalog.All() {
		label := standardLabel(standard, record)
		buttons = append(buttons, []MenuButton{{
			Text:         label,
			CallbackData: "lesson_" + standard.ID,
		}})
	}
	buttons = append(buttons, []MenuButton{
		{Text: "💬 Ask Professor Hoot", CallbackData: "tutor_enter"},
		{Text: "⚙️ Settings", CallbackData: "settings_open"},
	})

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createKeyboard(buttons)
	b.send(msg)
}

// standardLabel formats one dashboard row: completion mark, code, and
// the best score so far.
func standardLabel(standard models.Standard, record models.ProgressRecord) string {
	mark := "📖"
	if score, ok := record.QuizScores[standard.ID]; ok {
		if score >= models.MasteryThreshold {
			mark = "🏆"
		} else {
			mark = "✅"
		}
		return fmt.Sprintf("%s %s (%d%%)", mark, standard.Code, score)
	}
	if record.HasCompletedLesson(standard.ID) {
		mark = "✅"
	}
	return fmt.Sprintf("%s %s — %s", mark, standard.Code, standard.Category)
}

// startLesson resolves the standard and enters the lesson flow
func (b *Bot) startLesson(cs *chatSession, chatID int64, standardID string) {
	standard, ok := b.catalog.ByID(standardID)
	if !ok {
		b.send(tgbotapi.NewMessage(chatID, "I can't find that standard anymore. Back to the dashboard!"))
		b.showDashboard(chatID)
		return
	}

	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("📚 Fetching Professor Hoot's notes on %s...", standard.Code)))

	if err := cs.machine.SelectLesson(context.Background(), standard); err != nil {
		log.Printf("Error starting lesson for chat %d: %v", chatID, err)
		b.showDashboard(chatID)
		return
	}
	b.showSlide(cs, chatID)
}

// showSlide renders the current slide with navigation buttons
func (b *Bot) showSlide(cs *chatSession, chatID int64) {
	slide, err := cs.machine.CurrentSlide()
	if err != nil {
		log.Printf("Error reading slide for chat %d: %v", chatID, err)
		return
	}

	lesson := cs.machine.Lesson()
	index := cs.machine.SlideIndex()

	var text strings.Builder
	fmt.Fprintf(&text, "📖 *%s* (%d/%d)\n\n%s", slide.Title, index+1, len(lesson.Slides), slide.Content)
	if slide.VisualType == models.VisualChart && len(slide.VisualData) > 0 {
		text.WriteString("\n\n" + renderChart(slide.VisualData))
	}

	var navRow []MenuButton
	if index > 0 {
		navRow = append(navRow, MenuButton{Text: "⬅️ Back", CallbackData: "slide_prev"})
	}
	if cs.machine.OnTerminalSlide() {
		navRow = append(navRow, MenuButton{Text: "✅ Finish & Quiz", CallbackData: "lesson_finish"})
	} else {
		navRow = append(navRow, MenuButton{Text: "Next ➡️", CallbackData: "slide_next"})
	}

	buttons := [][]MenuButton{navRow}
	record, err := cs.machine.Progress()
	if err == nil && record.Settings.UseTTS {
		buttons = append(buttons, []MenuButton{
			{Text: "🔊 Listen", CallbackData: "lesson_listen"},
			{Text: "🔇 Stop", CallbackData: "audio_stop"},
		})
	}
	buttons = append(buttons, []MenuButton{{Text: "🚪 Exit to Dashboard", CallbackData: "exit_dashboard"}})

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createKeyboard(buttons)
	b.send(msg)
}

// renderChart draws the slide's data points as a text bar chart
func renderChart(points []models.ChartPoint) string {
	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	var chart strings.Builder
	chart.WriteString("```\n")
	for _, p := range points {
		bars := int(10 * p.Value / maxValue)
		fmt.Fprintf(&chart, "%-10s %s %g\n", p.Name, strings.Repeat("▇", bars), p.Value)
	}
	chart.WriteString("```")
	return chart.String()
}

// advanceSlide moves one slide forward or backward
func (b *Bot) advanceSlide(cs *chatSession, chatID int64, forward bool) {
	cs.audio.Stop()

	var err error
	if forward {
		err = cs.machine.NextSlide()
	} else {
		err = cs.machine.PrevSlide()
	}
	if err != nil {
		log.Printf("Slide navigation rejected for chat %d: %v", chatID, err)
		return
	}
	b.showSlide(cs, chatID)
}

// readSlideAloud narrates the current slide as a voice note
func (b *Bot) readSlideAloud(cs *chatSession, chatID int64) {
	slide, err := cs.machine.CurrentSlide()
	if err != nil {
		log.Printf("Error reading slide for chat %d: %v", chatID, err)
		return
	}

	record, err := cs.machine.Progress()
	if err == nil && !record.Settings.UseTTS {
		b.send(tgbotapi.NewMessage(chatID, "Read-aloud is turned off in /settings."))
		return
	}

	payload, err := b.gemini.GenerateSpeech(context.Background(), slide.Title+". "+slide.Content)
	if err != nil {
		log.Printf("Error generating speech for chat %d: %v", chatID, err)
		b.send(tgbotapi.NewMessage(chatID, "Professor Hoot lost his voice for a moment. Try again!"))
		return
	}
	if payload == "" {
		return
	}
	cs.audio.Play(payload)
}

// finishLesson grants lesson credit and enters the quiz
func (b *Bot) finishLesson(cs *chatSession, chatID int64) {
	cs.audio.Stop()

	before, err := cs.machine.Progress()
	if err != nil {
		log.Printf("Error loading progress for chat %d: %v", chatID, err)
	}

	b.send(tgbotapi.NewMessage(chatID, "🎓 Lesson complete! Preparing your quiz..."))

	if err := cs.machine.CompleteLesson(context.Background()); err != nil {
		log.Printf("Error completing lesson for chat %d: %v", chatID, err)
		b.showDashboard(chatID)
		return
	}

	after, err := cs.machine.Progress()
	if err == nil && after.Stars > before.Stars {
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("⭐ +%d stars for finishing your first lesson on this standard!", after.Stars-before.Stars)))
	}

	if cs.machine.State() == session.StateQuizResults {
		// Zero-question quiz resolved immediately
		b.showQuizResults(cs, chatID)
		return
	}
	b.showQuestion(cs, chatID)
}

// showQuestion renders the current question with option buttons
func (b *Bot) showQuestion(cs *chatSession, chatID int64) {
	question, err := cs.machine.CurrentQuestion()
	if err != nil {
		log.Printf("Error reading question for chat %d: %v", chatID, err)
		return
	}

	quiz := cs.machine.Quiz()
	text := fmt.Sprintf("❓ *Question %d of %d*\n\n%s",
		cs.machine.QuestionIndex()+1, len(quiz.Questions), question.Question)

	var buttons [][]MenuButton
	for i, option := range question.Options {
		buttons = append(buttons, []MenuButton{{
			Text:         fmt.Sprintf("%c) %s", 'A'+i, option),
			CallbackData: fmt.Sprintf("answer_%d", i),
		}})
	}
	buttons = append(buttons, []MenuButton{{Text: "🚪 Exit to Dashboard", CallbackData: "exit_dashboard"}})

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createKeyboard(buttons)
	b.send(msg)
}

// answerQuestion locks in an option and shows the feedback
func (b *Bot) answerQuestion(cs *chatSession, chatID int64, indexStr string) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		log.Printf("Bad answer index %q from chat %d", indexStr, chatID)
		return
	}

	question, err := cs.machine.CurrentQuestion()
	if err != nil {
		log.Printf("Error reading question for chat %d: %v", chatID, err)
		return
	}

	if err := cs.machine.SelectOption(index); err != nil {
		// Double taps on the same question land here
		log.Printf("Answer rejected for chat %d: %v", chatID, err)
		return
	}

	var feedback strings.Builder
	if index == question.CorrectIndex {
		feedback.WriteString("✅ Hoot hoot! That's right!")
	} else {
		fmt.Fprintf(&feedback, "❌ Not quite. The answer is %c) %s.",
			'A'+question.CorrectIndex, question.Options[question.CorrectIndex])
	}
	if question.Explanation != "" {
		feedback.WriteString("\n\n💡 " + question.Explanation)
	}

	msg := tgbotapi.NewMessage(chatID, feedback.String())
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "Next ➡️", CallbackData: "quiz_next"}},
	})
	b.send(msg)
}

// nextQuestion advances the quiz, or shows results past the last one
func (b *Bot) nextQuestion(cs *chatSession, chatID int64) {
	if err := cs.machine.NextQuestion(); err != nil {
		log.Printf("Quiz advance rejected for chat %d: %v", chatID, err)
		return
	}
	if cs.machine.State() == session.StateQuizResults {
		b.showQuizResults(cs, chatID)
		return
	}
	b.showQuestion(cs, chatID)
}

// showQuizResults shows the score with its encouragement band
func (b *Bot) showQuizResults(cs *chatSession, chatID int64) {
	score, err := cs.machine.Score()
	if err != nil {
		log.Printf("Error reading score for chat %d: %v", chatID, err)
		return
	}

	var band string
	switch {
	case score >= models.MasteryThreshold:
		band = "🏆 Owl-standing!"
	case score >= 50:
		band = "👍 Good job!"
	default:
		band = "💪 Keep practicing!"
	}

	text := fmt.Sprintf("📊 *Quiz Results*\n\nYour score: *%d%%*\n\n%s", score, band)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "🔄 Try Again", CallbackData: "quiz_retry"}},
		{{Text: "🏠 Finish", CallbackData: "quiz_finish"}},
	})
	b.send(msg)
}

// retryQuiz starts a fresh attempt with new questions
func (b *Bot) retryQuiz(cs *chatSession, chatID int64) {
	b.send(tgbotapi.NewMessage(chatID, "🔄 Shuffling up some fresh questions..."))
	if err := cs.machine.RetryQuiz(context.Background()); err != nil {
		log.Printf("Error retrying quiz for chat %d: %v", chatID, err)
		return
	}
	if cs.machine.State() == session.StateQuizResults {
		b.showQuizResults(cs, chatID)
		return
	}
	b.showQuestion(cs, chatID)
}

// finishQuiz records the attempt and returns to the dashboard
func (b *Bot) finishQuiz(cs *chatSession, chatID int64) {
	before, err := cs.machine.Progress()
	if err != nil {
		log.Printf("Error loading progress for chat %d: %v", chatID, err)
	}

	if err := cs.machine.CompleteQuiz(); err != nil {
		log.Printf("Error completing quiz for chat %d: %v", chatID, err)
		return
	}

	after, err := cs.machine.Progress()
	if err == nil && after.Stars > before.Stars {
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("🌟 +%d stars for mastering this standard!", after.Stars-before.Stars)))
	}
	b.showDashboard(chatID)
}

// exitToDashboard abandons the current lesson or quiz
func (b *Bot) exitToDashboard(cs *chatSession, chatID int64) {
	cs.audio.Stop()
	if err := cs.machine.ExitToDashboard(); err != nil {
		log.Printf("Exit rejected for chat %d: %v", chatID, err)
		b.showHome(chatID)
		return
	}
	b.showDashboard(chatID)
}

// enterTutorMode routes the chat's text messages to Professor Hoot
func (b *Bot) enterTutorMode(chatID int64) {
	cs := b.session(chatID)
	if cs.machine.State() == session.StateAuthenticating {
		b.send(tgbotapi.NewMessage(chatID, "Sign in first, then we can chat!"))
		b.showAuthMenu(chatID)
		return
	}

	if cs.tutor == nil {
		cs.tutor = b.gemini.NewTutorSession()
	}
	cs.tutorMode = true

	msg := tgbotapi.NewMessage(chatID, "💬 You're chatting with Professor Hoot now. Ask me anything about math!")
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "🧹 Clear Chat", CallbackData: "tutor_clear"}},
		{{Text: "🚪 Leave Chat", CallbackData: "tutor_exit"}},
	})
	b.send(msg)
}

// handleTutorMessage forwards a student message to the tutor session
func (b *Bot) handleTutorMessage(cs *chatSession, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(typing); err != nil {
		log.Printf("Error sending chat action: %v", err)
	}

	reply := cs.tutor.Send(context.Background(), message.Text)

	msg := tgbotapi.NewMessage(chatID, "🦉 "+reply)
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "🧹 Clear Chat", CallbackData: "tutor_clear"}},
		{{Text: "🚪 Leave Chat", CallbackData: "tutor_exit"}},
	})
	b.send(msg)
}

// clearTutorChat wipes the tutor transcript
func (b *Bot) clearTutorChat(cs *chatSession, chatID int64) {
	if cs.tutor != nil {
		cs.tutor.Reset()
	}
	b.send(tgbotapi.NewMessage(chatID, "🧹 Chat cleared! What shall we talk about next?"))
}

// showSettings shows the per-user toggles
func (b *Bot) showSettings(chatID int64) {
	cs := b.session(chatID)
	if cs.machine.State() == session.StateAuthenticating {
		b.send(tgbotapi.NewMessage(chatID, "Sign in first to change your settings."))
		b.showAuthMenu(chatID)
		return
	}

	record, err := cs.machine.Progress()
	if err != nil {
		log.Printf("Error loading settings for chat %d: %v", chatID, err)
		return
	}

	buttons := [][]MenuButton{
		{{Text: "🔊 Read-aloud: " + onOff(record.Settings.UseTTS), CallbackData: "settings_tts"}},
		{{Text: "🎵 Music: " + onOff(record.Settings.BGMusic), CallbackData: "settings_music"}},
	}

	userKey := cs.machine.UserKey()
	if userKey != database.ReservedUsername {
		account, err := b.accounts.GetByUsername(userKey)
		if err == nil {
			buttons = append(buttons, []MenuButton{{
				Text:         "⏰ Daily Reminder: " + onOff(account.ReminderEnabled),
				CallbackData: "settings_reminder",
			}})
		}
	}
	buttons = append(buttons, []MenuButton{{Text: "⬅️ Back", CallbackData: "settings_back"}})

	msg := tgbotapi.NewMessage(chatID, "⚙️ Settings")
	msg.ReplyMarkup = createKeyboard(buttons)
	b.send(msg)
}

func onOff(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Off"
}

// toggleTTS flips the read-aloud preference
func (b *Bot) toggleTTS(cs *chatSession, chatID int64) {
	b.mutateSettings(cs, chatID, func(s *models.Settings) {
		s.UseTTS = !s.UseTTS
	})
	if record, err := cs.machine.Progress(); err == nil && !record.Settings.UseTTS {
		cs.audio.Stop()
	}
	b.showSettings(chatID)
}

// toggleMusic flips the background music preference
func (b *Bot) toggleMusic(cs *chatSession, chatID int64) {
	b.mutateSettings(cs, chatID, func(s *models.Settings) {
		s.BGMusic = !s.BGMusic
	})
	b.showSettings(chatID)
}

// mutateSettings applies a settings change through load-mutate-save
func (b *Bot) mutateSettings(cs *chatSession, chatID int64, mutate func(*models.Settings)) {
	userKey := cs.machine.UserKey()
	record, err := b.progress.Load(userKey)
	if err != nil {
		log.Printf("Error loading settings for chat %d: %v", chatID, err)
		return
	}
	mutate(&record.Settings)
	if err := b.progress.Save(userKey, record); err != nil {
		log.Printf("Error saving settings for chat %d: %v", chatID, err)
	}
}

// toggleReminder flips the daily reminder for registered users
func (b *Bot) toggleReminder(cs *chatSession, chatID int64) {
	userKey := cs.machine.UserKey()
	if userKey == database.ReservedUsername {
		b.send(tgbotapi.NewMessage(chatID, "Reminders are for registered students. Create an account to get them!"))
		return
	}

	account, err := b.accounts.GetByUsername(userKey)
	if err != nil {
		log.Printf("Error loading account for chat %d: %v", chatID, err)
		return
	}

	if err := b.accounts.UpdateReminder(userKey, !account.ReminderEnabled, b.config.DefaultReminderHour, chatID); err != nil {
		log.Printf("Error updating reminder for chat %d: %v", chatID, err)
		return
	}
	b.showSettings(chatID)
}

// handleImportCommand imports curriculum standards from a file path
func (b *Bot) handleImportCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	filePath := strings.TrimSpace(message.CommandArguments())
	if filePath == "" {
		b.send(tgbotapi.NewMessage(chatID, "Usage: /import <path to .xlsx or .csv file on the server>"))
		return
	}

	b.send(tgbotapi.NewMessage(chatID, "📥 Importing standards..."))

	result, err := excel.ImportStandards(excel.DefaultImportConfig(filePath))
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Import failed: %v", err)))
		return
	}

	text := fmt.Sprintf("Import finished.\nProcessed: %d\nImported: %d\nSkipped: %d",
		result.TotalProcessed, result.Imported, result.Skipped)
	if len(result.Errors) > 0 {
		text += fmt.Sprintf("\nErrors: %d (first: %s)", len(result.Errors), result.Errors[0])
	}
	b.send(tgbotapi.NewMessage(chatID, text))
}
