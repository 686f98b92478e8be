package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/forslund/cgdb-kui/key"
)

// ErrSourceFailed wraps an unexpected error reading from the underlying
// file (spec §7(e), surfaced verbatim from the read).
var ErrSourceFailed = fmt.Errorf("kui/source: read failed")

// TTYSource reads raw bytes from a terminal file, one byte per token, after
// putting it into raw mode so escape sequences and control characters
// arrive unmangled instead of being line-buffered and echoed by the tty
// driver.
//
// It reads on a dedicated goroutine and delivers bytes over a channel —
// the same scan-in-a-goroutine, deliver-over-a-channel shape as the
// teacher's scanner.scan/Lexer.ch, adapted from "push a DFA match" to
// "push one raw byte" so Read can implement the timeout with a select
// against time.After instead of a blocking read(2) with no escape hatch.
type TTYSource struct {
	f        *os.File
	oldState *term.State
	raw      bool

	ch     chan byte
	errCh  chan error
	cancel context.CancelFunc
	done   chan struct{}

	peeked    byte
	hasPeeked bool
}

// NewTTYSource puts f into raw mode (if it is a terminal) and starts the
// background reader goroutine.
func NewTTYSource(f *os.File) (*TTYSource, error) {
	ts := &TTYSource{
		f:     f,
		ch:    make(chan byte),
		errCh: make(chan error, 1),
		done:  make(chan struct{}),
	}

	if term.IsTerminal(int(f.Fd())) {
		old, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return nil, fmt.Errorf("kui/source: enter raw mode: %w", err)
		}
		ts.oldState = old
		ts.raw = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	ts.cancel = cancel
	go ts.scan(ctx)

	return ts, nil
}

// scan reads one byte at a time off the file and forwards it on ch until
// ctx is canceled or the file hits EOF/an error.
func (ts *TTYSource) scan(ctx context.Context) {
	defer close(ts.done)
	buf := make([]byte, 1)
	for {
		n, err := ts.f.Read(buf)
		if n > 0 {
			select {
			case ts.ch <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			select {
			case ts.errCh <- err:
			case <-ctx.Done():
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// Read implements source.CharSource.
func (ts *TTYSource) Read(ctx context.Context, timeout time.Duration) (key.Token, error) {
	if ts.hasPeeked {
		ts.hasPeeked = false
		return key.FromByte(ts.peeked), nil
	}
	select {
	case b := <-ts.ch:
		return key.FromByte(b), nil
	case err := <-ts.errCh:
		return 0, fmt.Errorf("%w: %v", ErrSourceFailed, err)
	case <-time.After(timeout):
		return key.Zero, nil
	case <-ctx.Done():
		return key.Zero, ctx.Err()
	}
}

// DataReady implements source.CharSource.
func (ts *TTYSource) DataReady(ctx context.Context, timeout time.Duration) bool {
	if ts.hasPeeked {
		return true
	}
	select {
	case b := <-ts.ch:
		// Stash on the struct rather than re-queuing through ts.ch: a
		// goroutine racing scan()'s next send could let a newer byte
		// overtake this one, breaking stream order. TTYSource only ever
		// has one concurrent caller (Manager), so a single-slot stash is
		// sufficient.
		ts.peeked = b
		ts.hasPeeked = true
		return true
	case <-time.After(timeout):
		return false
	case <-ctx.Done():
		return false
	}
}

// Done returns a channel closed once the background reader goroutine has
// exited, letting a caller join it deterministically instead of assuming
// cancellation is instantaneous.
func (ts *TTYSource) Done() <-chan struct{} {
	return ts.done
}

// Close restores the terminal's prior mode and cancels the background
// reader. Cancellation does not interrupt a read already blocked on f: the
// reader goroutine exits (and Done closes) only once that read returns.
func (ts *TTYSource) Close() error {
	ts.cancel()
	if ts.raw && ts.oldState != nil {
		return term.Restore(int(ts.f.Fd()), ts.oldState)
	}
	return nil
}
