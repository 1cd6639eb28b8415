package vim

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Register is the session-wide yank buffer shared by every editor. The
// dispatch loop processes one event at a time, but paste from the system
// clipboard may arrive off-loop, so access is serialized.
type Register struct {
	mu   sync.Mutex
	text string

	// SyncClipboard mirrors yanks to the system clipboard when set.
	SyncClipboard bool
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Set stores yanked text and, when enabled, mirrors it to the system
// clipboard. Clipboard failures are ignored; the in-process register is
// the source of truth.
func (r *Register) Set(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = text
	if r.SyncClipboard {
		_ = clipboard.WriteAll(text)
	}
}

// Get returns the current register contents.
func (r *Register) Get() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}
