package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// voicePlayer delivers WAV clips to one chat as Telegram audio notes.
// Play completes when delivery finishes; a cancelled context suppresses
// delivery, which is as close to "stopping" a clip as the transport
// allows once it has left the bot.
type voicePlayer struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func (p *voicePlayer) Play(ctx context.Context, wav []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clip := tgbotapi.FileBytes{Name: "professor-hoot.wav", Bytes: wav}
	msg := tgbotapi.NewAudio(p.chatID, clip)
	msg.Title = "Professor Hoot"

	if _, err := p.api.Send(msg); err != nil {
		return err
	}
	return ctx.Err()
}
