package game

import (
	"context"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/alt25-ops/ESL-Pictionary/internal/shared/logger"
	"github.com/alt25-ops/ESL-Pictionary/internal/words"
)

// WordSource supplies the word for each turn. Implementations must fail
// open: a turn start can never block indefinitely on the word fetch.
type WordSource interface {
	Generate(ctx context.Context, level words.Difficulty, category string) words.GameWord
}

// Controller owns the session state. Every mutation goes through one of its
// methods, which stamp ids and timestamps into an event and apply it with
// Reduce under the lock. It also owns the countdown: exactly one may be
// active, and every path that leaves Playing stops it.
type Controller struct {
	locker sync.RWMutex
	state  State

	wordSource WordSource
	tickers    TickerFactory
	messageIds UniqueIdGenerator
	roomCodes  UniqueIdGenerator

	limiters map[string]*rate.Limiter

	countdownStop chan struct{}
	generation    int
	startPending  bool
}

func NewController(source WordSource, tickers TickerFactory, messageIds, roomCodes UniqueIdGenerator) *Controller {
	return &Controller{
		wordSource: source,
		tickers:    tickers,
		messageIds: messageIds,
		roomCodes:  roomCodes,
		limiters:   make(map[string]*rate.Limiter),
	}
}

// CreateRoom starts a fresh session with the caller as host and returns the
// initial state.
func (c *Controller) CreateRoom(name string) State {
	c.locker.Lock()
	defer c.locker.Unlock()
	c.stopCountdown()
	c.startPending = false
	c.limiters = make(map[string]*rate.Limiter)

	code := c.roomCodes.Generate()
	c.state = Reduce(State{}, CreateRoom{RoomID: code, Name: name})
	logger.Infof("[Room %s] Created by host %q", code, name)
	return cloneState(c.state)
}

// JoinRoom starts a session for the given room code with a fabricated
// existing host alongside the joining player.
func (c *Controller) JoinRoom(code, name string) State {
	c.locker.Lock()
	defer c.locker.Unlock()
	c.stopCountdown()
	c.startPending = false
	c.limiters = make(map[string]*rate.Limiter)

	c.state = Reduce(State{}, JoinRoom{RoomID: code, Name: name})
	logger.Infof("[Room %s] %q joined", code, name)
	return cloneState(c.state)
}

// StartTurn advances the game to the next turn. Host only, legal from Lobby
// or Review. From Review with the round cap reached it ends the game
// instead. At most one turn start may be in flight at a time.
func (c *Controller) StartTurn(ctx context.Context, playerID string) error {
	c.locker.Lock()

	player, ok := c.findPlayer(playerID)
	if !ok || !player.IsHost {
		c.locker.Unlock()
		return ErrNotHost
	}
	if c.state.Status != StatusLobby && c.state.Status != StatusReview {
		c.locker.Unlock()
		return ErrWrongPhase
	}
	if c.startPending {
		c.locker.Unlock()
		return ErrTurnInFlight
	}
	if len(c.state.Players) == 0 {
		c.locker.Unlock()
		return ErrNoPlayers
	}

	if c.state.Status == StatusReview && c.state.Round >= MaxRounds {
		c.state = Reduce(c.state, StartTurn{
			MessageID: c.messageIds.Generate(),
			Timestamp: time.Now().UnixMilli(),
		})
		logger.Infof("[Room %s] Round cap reached, game over", c.state.RoomID)
		c.locker.Unlock()
		return nil
	}

	c.startPending = true
	c.locker.Unlock()

	category := words.Categories[rand.Intn(len(words.Categories))]
	word := c.wordSource.Generate(ctx, words.Beginner, category)

	c.locker.Lock()
	defer c.locker.Unlock()
	c.startPending = false

	c.state = Reduce(c.state, StartTurn{
		Word:      word,
		MessageID: c.messageIds.Generate(),
		Timestamp: time.Now().UnixMilli(),
	})
	c.startCountdown()
	logger.Infof("[Room %s] Round %d: %s is drawing %q",
		c.state.RoomID, c.state.Round, c.state.CurrentDrawerID, word.Word)
	return nil
}

// SubmitGuess handles a guess attempt. Invalid submissions (wrong phase,
// drawer guessing, empty text, unknown player, over the rate limit) are
// silent no-ops.
func (c *Controller) SubmitGuess(playerID, text string) {
	c.locker.Lock()
	defer c.locker.Unlock()

	if c.state.Status != StatusPlaying {
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	if _, ok := c.findPlayer(playerID); !ok {
		return
	}
	if !c.limiter(playerID).Allow() {
		logger.Debugf("[Room %s] Dropped over-limit guess from %s", c.state.RoomID, playerID)
		return
	}

	c.state = Reduce(c.state, SubmitGuess{
		PlayerID:  playerID,
		Text:      text,
		MessageID: c.messageIds.Generate(),
		Timestamp: time.Now().UnixMilli(),
	})
	if c.state.Status != StatusPlaying {
		c.stopCountdown()
		logger.Infof("[Room %s] Correct guess by %s, round over", c.state.RoomID, playerID)
	}
}

// Snapshot returns a copy of the current state for read-only consumers.
func (c *Controller) Snapshot() State {
	c.locker.RLock()
	defer c.locker.RUnlock()
	return cloneState(c.state)
}

// CanDraw reports whether the player is the active drawer right now. The
// drawing surface consumes this as its mode flag.
func (c *Controller) CanDraw(playerID string) bool {
	c.locker.RLock()
	defer c.locker.RUnlock()
	return c.state.Status == StatusPlaying && playerID != "" && c.state.CurrentDrawerID == playerID
}

// Close stops any running countdown.
func (c *Controller) Close() {
	c.locker.Lock()
	defer c.locker.Unlock()
	c.stopCountdown()
}

// startCountdown begins a fresh one-second countdown, replacing any active
// one. Caller must hold the lock.
func (c *Controller) startCountdown() {
	c.stopCountdown()
	c.generation++
	gen := c.generation
	stop := make(chan struct{})
	c.countdownStop = stop

	ticker := c.tickers.Create(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C():
				if !c.tick(gen) {
					return
				}
			}
		}
	}()
}

// stopCountdown cancels the active countdown, if any. Caller must hold the
// lock.
func (c *Controller) stopCountdown() {
	if c.countdownStop != nil {
		close(c.countdownStop)
		c.countdownStop = nil
	}
}

// tick applies one countdown decrement. Returns false once this countdown
// is no longer the active generation or the round has left Playing, which
// makes the goroutine release its ticker. A stale tick that raced a stop
// must not decrement.
func (c *Controller) tick(gen int) bool {
	c.locker.Lock()
	defer c.locker.Unlock()

	if c.generation != gen || c.countdownStop == nil {
		return false
	}
	if c.state.Status != StatusPlaying {
		return false
	}

	c.state = Reduce(c.state, Tick{})
	if c.state.Status != StatusPlaying {
		c.countdownStop = nil
		logger.Infof("[Room %s] Time is up, round over", c.state.RoomID)
		return false
	}
	return true
}

func (c *Controller) findPlayer(id string) (Player, bool) {
	idx := slices.IndexFunc(c.state.Players, func(p Player) bool { return p.ID == id })
	if idx < 0 {
		return Player{}, false
	}
	return c.state.Players[idx], true
}

func (c *Controller) limiter(playerID string) *rate.Limiter {
	l, ok := c.limiters[playerID]
	if !ok {
		l = rate.NewLimiter(1, 5)
		c.limiters[playerID] = l
	}
	return l
}

func cloneState(s State) State {
	s.Players = slices.Clone(s.Players)
	s.Messages = slices.Clone(s.Messages)
	if s.CurrentWord != nil {
		word := *s.CurrentWord
		s.CurrentWord = &word
	}
	return s
}
