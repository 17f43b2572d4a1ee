package domain

import "time"

// ChatState enumerates nodes of the conversation state machine.
type ChatState string

const (
	ChatStateStart            ChatState = "start"
	ChatStateAwaitingTicketID ChatState = "awaiting_ticket_id"
	ChatStateQuestion2        ChatState = "question2"
	ChatStateQuestion3        ChatState = "question3"
	ChatStateAwaitingRating   ChatState = "awaiting_rating"
	ChatStateEnd              ChatState = "end"
)

// ConversationSession carries the full state of one widget conversation.
// It is an explicit value passed through every transition; there is no
// process-wide session state.
type ConversationSession struct {
	SessionID       string    `json:"session_id"`
	Language        string    `json:"language"`
	State           ChatState `json:"state"`
	PendingTicketID string    `json:"pending_ticket_id,omitempty"`
	SelectedRating  int       `json:"selected_rating,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HistoryEntry is one user/assistant exchange retained per session.
type HistoryEntry struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}
