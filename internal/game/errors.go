package game

import "errors"

var (
	ErrNotHost      = errors.New("Only the host can start a turn")
	ErrWrongPhase   = errors.New("Turn cannot start in this phase")
	ErrTurnInFlight = errors.New("Turn start already in progress")
	ErrNoPlayers    = errors.New("Room has no players")
)
