package game

import "github.com/alt25-ops/ESL-Pictionary/internal/words"

// Event is one discrete trigger applied to the session state. The controller
// stamps every non-deterministic input (ids, timestamps, fetched word) into
// the event before reducing, so Reduce stays a pure function.
type Event interface {
	isEvent()
}

// CreateRoom initializes a session with a single host player.
type CreateRoom struct {
	RoomID string
	Name   string
}

// JoinRoom initializes a session with the joining player plus a fabricated
// existing host. There is no real room discovery; this is the local
// simulation boundary.
type JoinRoom struct {
	RoomID string
	Name   string
}

// StartTurn rotates the drawer, installs the fetched word and restarts the
// clock. Applied from Review once the round cap is reached, it ends the game
// instead and the Word field is ignored.
type StartTurn struct {
	Word      words.GameWord
	MessageID string
	Timestamp int64
}

// Tick is one second elapsing on the countdown.
type Tick struct{}

// SubmitGuess is a guess attempt by a player.
type SubmitGuess struct {
	PlayerID  string
	Text      string
	MessageID string
	Timestamp int64
}

func (CreateRoom) isEvent()  {}
func (JoinRoom) isEvent()    {}
func (StartTurn) isEvent()   {}
func (Tick) isEvent()        {}
func (SubmitGuess) isEvent() {}
