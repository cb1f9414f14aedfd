// Package ssh adapts gliderlabs/ssh sessions to tcell terminals.
package ssh

import (
	"errors"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions that did not request a terminal.
var ErrNoPTY = errors.New("session has no pty")

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session.
type SessionTty struct {
	session gossh.Session
	term    string

	mu       sync.Mutex
	window   gossh.Window
	winCh    <-chan gossh.Window
	cb       func()
	watching bool
}

// NewSessionTty wraps the session's pty as a tcell Tty.
func NewSessionTty(s gossh.Session) (*SessionTty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	return &SessionTty{
		session: s,
		term:    pty.Term,
		window:  pty.Window,
		winCh:   winCh,
	}, nil
}

// Term reports the client's terminal type: the pty request's value, or
// TERM from the session environment when the request left it empty.
func (t *SessionTty) Term() string {
	if t.term != "" {
		return t.term
	}
	for _, env := range t.session.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			return v
		}
	}
	return ""
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH session channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start, Stop and Drain are no-ops: the server handler owns the channel.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that drains window-change requests until the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()
	if start {
		go t.watchResize()
	}
}

func (t *SessionTty) watchResize() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.cb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
