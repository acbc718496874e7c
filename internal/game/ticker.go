package game

import "time"

// Ticker is a stoppable periodic tick source. Stop must release the
// underlying resources; a countdown that leaves a ticker running is a leak.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates tickers. Injected so tests can drive the countdown
// by hand.
type TickerFactory interface {
	Create(duration time.Duration) Ticker
}

type tickerGen struct{}

func NewTickerGen() TickerFactory {
	return tickerGen{}
}

func (tickerGen) Create(duration time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(duration)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
