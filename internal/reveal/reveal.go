package reveal

import (
	"sync"
	"time"
)

// DefaultInterval matches the original reveal cadence of one character
// every 30ms.
const DefaultInterval = 30 * time.Millisecond

// Emitter turns a complete guidance string into an incrementally
// growing sequence of prefixes, one character per tick. At most one
// reveal is active per Emitter: starting a new one cancels the current.
type Emitter struct {
	interval time.Duration

	mu     sync.Mutex
	cancel chan struct{}
}

// NewEmitter creates an Emitter ticking at the given interval. A
// non-positive interval falls back to DefaultInterval.
func NewEmitter(interval time.Duration) *Emitter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Emitter{interval: interval}
}

// Start begins revealing text and returns the channel of prefixes. The
// channel delivers one prefix per tick, each one character longer,
// ending with the full text, then closes. An earlier reveal still in
// progress is cancelled first (its channel closes without completing).
func (e *Emitter) Start(text string) <-chan string {
	e.mu.Lock()
	if e.cancel != nil {
		close(e.cancel)
	}
	cancel := make(chan struct{})
	e.cancel = cancel
	e.mu.Unlock()

	out := make(chan string)

	go func() {
		defer close(out)

		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		runes := []rune(text)
		for i := 1; i <= len(runes); i++ {
			select {
			case <-ticker.C:
			case <-cancel:
				return
			}

			select {
			case out <- string(runes[:i]):
			case <-cancel:
				return
			}
		}
	}()

	return out
}

// Cancel stops the active reveal, if any. The reveal's channel closes
// without reaching the full text.
func (e *Emitter) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		close(e.cancel)
		e.cancel = nil
	}
}
