package ai

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/example/hootacademy/pkg/models"
)

// Tutor reply fallbacks. The chat surface never renders an error state,
// so a failed call degrades to a fixed apology.
const (
	apologyReply = "Whoops! I got a bit confused. Can you ask that again?"
	silentReply  = "I'm not sure what to say to that, hoot!"
)

const tutorInstruction = teacherPersona + "\nKeep answers concise and helpful for a 5th grader. Use formatting like bullet points if needed."

// TutorSession is one conversation with Professor Hoot. Each caller
// owns its session explicitly; there is no shared ambient conversation.
// History is kept in memory only and dies with the session.
type TutorSession struct {
	id      string
	client  *Client
	history []Content
}

// NewTutorSession creates a fresh conversation handle
func (c *Client) NewTutorSession() *TutorSession {
	return &TutorSession{
		id:     uuid.NewString(),
		client: c,
	}
}

// ID identifies the session, mostly for logging
func (s *TutorSession) ID() string {
	return s.id
}

// Send asks the tutor for the next reply. It always returns some text:
// upstream failures map to a fixed apology and leave the conversation
// history as it was.
func (s *TutorSession) Send(ctx context.Context, message string) string {
	userTurn := Content{Role: "user", Parts: []Part{{Text: message}}}

	request := generateRequest{
		Contents:          append(append([]Content{}, s.history...), userTurn),
		SystemInstruction: &Content{Parts: []Part{{Text: tutorInstruction}}},
	}

	response, err := s.client.generate(ctx, s.client.model, request)
	if err != nil {
		log.Printf("Tutor session %s: %v", s.id, err)
		return apologyReply
	}

	reply := response.firstText()
	if reply == "" {
		reply = silentReply
	}

	s.history = append(s.history, userTurn, Content{Role: "model", Parts: []Part{{Text: reply}}})
	return reply
}

// Transcript returns the conversation so far in display form
func (s *TutorSession) Transcript() models.ChatTranscript {
	transcript := make(models.ChatTranscript, 0, len(s.history))
	for _, turn := range s.history {
		role := models.RoleTutor
		if turn.Role == "user" {
			role = models.RoleUser
		}
		text := ""
		if len(turn.Parts) > 0 {
			text = turn.Parts[0].Text
		}
		transcript = append(transcript, models.ChatTurn{Role: role, Text: text})
	}
	return transcript
}

// Reset clears the conversation history. Tied to the "clear chat"
// action; nothing resets implicitly.
func (s *TutorSession) Reset() {
	s.history = nil
}
