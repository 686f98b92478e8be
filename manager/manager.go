// Package manager composes the two-stage KUI pipeline: a terminal-escape
// translator feeding a user-macro translator (spec §4.5).
package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/forslund/cgdb-kui/key"
	"github.com/forslund/cgdb-kui/kui"
	"github.com/forslund/cgdb-kui/kui/source"
	"github.com/forslund/cgdb-kui/kui/term"
)

// Manager owns the terminal_keys/normal_keys pair from spec §4.5: a
// terminal context pre-loaded with the escape-sequence table, feeding a
// user context that holds caller-registered macros.
type Manager struct {
	terminal *kui.Context
	user     *kui.Context
	raw      source.CharSource
	log      *logrus.Logger
}

// terminalTimeout and userTimeout match spec §3's "terminal_keys (timeout
// ~40 ms, ...)" / "normal_keys (timeout ~1000 ms, ...)".
const (
	terminalTimeout = 40 * time.Millisecond
	userTimeout     = 1000 * time.Millisecond
)

// New builds a Manager reading raw bytes from raw. log may be nil, in which
// case a discarding logger is used.
func New(raw source.CharSource, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	terminal := kui.NewContext(raw, terminalTimeout)
	terminal.AddMapSet(term.TerminalMapSet())

	adapter := &terminalAsSource{terminal: terminal, raw: raw}
	user := kui.NewContext(adapter, userTimeout)

	return &Manager{terminal: terminal, user: user, raw: raw, log: log}
}

// AddMapSet registers a user macro map set. Sets added later take priority
// on a tie (spec §9 Open Question 3).
func (m *Manager) AddMapSet(ms *kui.MapSet) {
	m.user.AddMapSet(ms)
}

// GetMapSets returns the user-layer map sets in insertion order.
func (m *Manager) GetMapSets() []*kui.MapSet {
	return m.user.GetMapSets()
}

// CanGetKey reports whether a resolved key is already buffered.
func (m *Manager) CanGetKey() bool {
	return m.user.CanGetKey()
}

// GetKey returns the next resolved, macro-expanded key token.
func (m *Manager) GetKey(ctx context.Context) (key.Token, error) {
	tok, err := m.user.GetKey(ctx)
	if err != nil {
		m.log.WithError(err).Debug("manager: GetKey failed")
		return 0, err
	}
	if tok != key.Zero {
		m.log.WithField("token", tok).Debug("manager: resolved key")
	}
	return tok, nil
}

type closer interface {
	Close() error
}

type doneWaiter interface {
	Done() <-chan struct{}
}

// Close releases any OS resources the raw source owns (e.g. a TTYSource's
// raw terminal mode) and waits up to two seconds for its background reader
// goroutine to exit, returning an error if it has not.
func (m *Manager) Close() error {
	c, ok := m.raw.(closer)
	if !ok {
		return nil
	}

	var g errgroup.Group
	g.Go(c.Close)
	if dw, ok := m.raw.(doneWaiter); ok {
		g.Go(func() error {
			select {
			case <-dw.Done():
				return nil
			case <-time.After(2 * time.Second):
				return fmt.Errorf("manager: timed out waiting for source shutdown")
			}
		})
	}
	return g.Wait()
}

// terminalAsSource presents the terminal context as a CharSource for the
// user context, per spec §4.5: "its read function asks terminal_keys.
// can_get_key() first (non-blocking) and otherwise blocks up to ~1000 ms on
// the underlying byte source."
type terminalAsSource struct {
	terminal *kui.Context
	raw      source.CharSource
}

func (a *terminalAsSource) Read(ctx context.Context, timeout time.Duration) (key.Token, error) {
	if a.terminal.CanGetKey() {
		return a.terminal.GetKey(ctx)
	}
	if a.raw.DataReady(ctx, timeout) {
		return a.terminal.GetKey(ctx)
	}
	return key.Zero, nil
}

func (a *terminalAsSource) DataReady(ctx context.Context, timeout time.Duration) bool {
	if a.terminal.CanGetKey() {
		return true
	}
	return a.raw.DataReady(ctx, timeout)
}
