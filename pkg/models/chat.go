package models

// ChatRole tags who produced a chat turn
type ChatRole string

const (
	// RoleUser is a message typed by the student
	RoleUser ChatRole = "user"
	// RoleTutor is a reply from the tutor
	RoleTutor ChatRole = "tutor"
)

// ChatTurn is one message in a tutor conversation
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatTranscript is the append-only message history for one session.
// It is never persisted across sessions.
type ChatTranscript []ChatTurn
