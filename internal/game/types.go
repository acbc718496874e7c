package game

import (
	"encoding/json"

	"github.com/alt25-ops/ESL-Pictionary/internal/words"
)

type Status int

const (
	StatusLobby Status = iota
	StatusPlaying
	StatusReview
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusLobby:
		return "Lobby"
	case StatusPlaying:
		return "Playing"
	case StatusReview:
		return "Review"
	case StatusGameOver:
		return "GameOver"
	}
	return "Unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	IsHost bool   `json:"isHost"`
	Color  string `json:"color"`
}

// ChatMessage is one entry in the append-only chat log. SenderID is
// SystemSenderID for system-generated entries. Never mutated after creation.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"`
	IsSystem   bool   `json:"isSystem,omitempty"`
	IsCorrect  bool   `json:"isCorrect,omitempty"`
}

const (
	SystemSenderID   = "system"
	SystemSenderName = "System"
)

// State is the single source of truth for a session. Player order is
// insertion order and doubles as turn order. CurrentDrawerID, when set,
// always references an id present in Players.
type State struct {
	RoomID          string          `json:"roomId"`
	Players         []Player        `json:"players"`
	CurrentDrawerID string          `json:"currentDrawerId,omitempty"`
	CurrentWord     *words.GameWord `json:"currentWord,omitempty"`
	Status          Status          `json:"status"`
	Round           int             `json:"round"`
	TimeLeft        int             `json:"timeLeft"`
	Messages        []ChatMessage   `json:"messages"`
}
