package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/alt25-ops/ESL-Pictionary/internal/words"
)

// --- WordSource ---

type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) Generate(ctx context.Context, level words.Difficulty, category string) words.GameWord {
	args := m.Called(ctx, level, category)
	return args.Get(0).(words.GameWord)
}

// --- Ticker / TickerFactory ---

// fakeTicker is driven by hand from tests. Stop closes stopped so tests can
// observe the countdown releasing its ticker.
type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() { close(t.stopped) }

func (t *fakeTicker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}

type fakeTickerFactory struct {
	locker  sync.Mutex
	tickers []*fakeTicker
}

func (f *fakeTickerFactory) Create(time.Duration) Ticker {
	f.locker.Lock()
	defer f.locker.Unlock()
	t := newFakeTicker()
	f.tickers = append(f.tickers, t)
	return t
}

func (f *fakeTickerFactory) ticker(i int) *fakeTicker {
	f.locker.Lock()
	defer f.locker.Unlock()
	return f.tickers[i]
}

func (f *fakeTickerFactory) count() int {
	f.locker.Lock()
	defer f.locker.Unlock()
	return len(f.tickers)
}

// --- UniqueIdGenerator ---

type MockUniqueIdGenerator struct {
	mock.Mock
}

func (m *MockUniqueIdGenerator) Generate() string {
	args := m.Called()
	return args.String(0)
}

// seqIdGen yields prefix1, prefix2, ... for deterministic ids.
type seqIdGen struct {
	locker sync.Mutex
	prefix string
	n      int
}

func (g *seqIdGen) Generate() string {
	g.locker.Lock()
	defer g.locker.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}
