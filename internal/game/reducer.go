package game

import (
	"slices"
	"strings"

	"github.com/alt25-ops/ESL-Pictionary/internal/words"
)

// Reduce applies one event to the state and returns the next state. Pure:
// no clocks, no randomness, no I/O. Invalid events for the current state
// return the state unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case CreateRoom:
		return reduceCreateRoom(e)
	case JoinRoom:
		return reduceJoinRoom(e)
	case StartTurn:
		return reduceStartTurn(s, e)
	case Tick:
		return reduceTick(s)
	case SubmitGuess:
		return reduceSubmitGuess(s, e)
	}
	return s
}

func reduceCreateRoom(e CreateRoom) State {
	name := e.Name
	if name == "" {
		name = "Host"
	}
	host := Player{ID: "p1", Name: name, IsHost: true, Color: PlayerColors[0]}
	return State{
		RoomID:  e.RoomID,
		Players: []Player{host},
		Status:  StatusLobby,
	}
}

func reduceJoinRoom(e JoinRoom) State {
	name := e.Name
	if name == "" {
		name = "Player"
	}
	host := Player{ID: "p1", Name: "Host-Sensei", Score: 10, IsHost: true, Color: PlayerColors[0]}
	joiner := Player{ID: "p2", Name: name, Color: PlayerColors[1]}
	return State{
		RoomID:  e.RoomID,
		Players: []Player{host, joiner},
		Status:  StatusLobby,
	}
}

func reduceStartTurn(s State, e StartTurn) State {
	if len(s.Players) == 0 {
		return s
	}

	if s.Status == StatusReview && s.Round >= MaxRounds {
		s.Status = StatusGameOver
		return appendMessage(s, ChatMessage{
			ID:         e.MessageID,
			SenderID:   SystemSenderID,
			SenderName: SystemSenderName,
			Text:       "Game over! Final scores are in.",
			Timestamp:  e.Timestamp,
			IsSystem:   true,
		})
	}

	drawer := nextDrawer(s.Players, s.CurrentDrawerID)
	word := e.Word

	s.Status = StatusPlaying
	s.CurrentDrawerID = drawer.ID
	s.CurrentWord = &word
	s.TimeLeft = RoundTime
	s.Round++
	return appendMessage(s, ChatMessage{
		ID:         e.MessageID,
		SenderID:   SystemSenderID,
		SenderName: SystemSenderName,
		Text:       drawer.Name + " is drawing!",
		Timestamp:  e.Timestamp,
		IsSystem:   true,
	})
}

func reduceTick(s State) State {
	if s.Status != StatusPlaying {
		return s
	}
	if s.TimeLeft <= 1 {
		s.TimeLeft = 0
		s.Status = StatusReview
		return s
	}
	s.TimeLeft--
	return s
}

func reduceSubmitGuess(s State, e SubmitGuess) State {
	if s.Status != StatusPlaying || s.CurrentWord == nil {
		return s
	}
	if strings.TrimSpace(e.Text) == "" {
		return s
	}
	if e.PlayerID == s.CurrentDrawerID {
		return s
	}
	idx := slices.IndexFunc(s.Players, func(p Player) bool { return p.ID == e.PlayerID })
	if idx < 0 {
		return s
	}
	guesser := s.Players[idx]

	if !words.CheckGuess(e.Text, s.CurrentWord.Word) {
		return appendMessage(s, ChatMessage{
			ID:         e.MessageID,
			SenderID:   guesser.ID,
			SenderName: guesser.Name,
			Text:       e.Text,
			Timestamp:  e.Timestamp,
		})
	}

	players := slices.Clone(s.Players)
	players[idx].Score += GuessBonus
	s.Players = players
	s.Status = StatusReview
	return appendMessage(s, ChatMessage{
		ID:         e.MessageID,
		SenderID:   SystemSenderID,
		SenderName: SystemSenderName,
		Text:       "GUESS CORRECT! The word was: " + s.CurrentWord.Word,
		Timestamp:  e.Timestamp,
		IsSystem:   true,
		IsCorrect:  true,
	})
}

// nextDrawer picks the next drawer round-robin over the player order. With
// no drawer set (or a drawer no longer present) it starts from the first
// player.
func nextDrawer(players []Player, currentID string) Player {
	if currentID == "" {
		return players[0]
	}
	idx := slices.IndexFunc(players, func(p Player) bool { return p.ID == currentID })
	return players[(idx+1)%len(players)]
}

func appendMessage(s State, m ChatMessage) State {
	s.Messages = append(slices.Clone(s.Messages), m)
	return s
}
