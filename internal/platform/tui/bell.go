package tui

import (
	"io"
	"sync"
	"time"
)

// minBellGap keeps bursts of bounces from turning into a continuous beep.
const minBellGap = 60 * time.Millisecond

// Bell is a core.Audio that rings the terminal bell.
type Bell struct {
	mu   sync.Mutex
	w    io.Writer
	now  func() time.Time
	last time.Time
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w, now: time.Now}
}

// Play writes BEL unless the bell rang very recently. Write errors are
// ignored; sound is best-effort.
func (b *Bell) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < minBellGap {
		return
	}
	b.last = now
	_, _ = b.w.Write([]byte{'\a'})
}
