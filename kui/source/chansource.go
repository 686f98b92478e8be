package source

import (
	"context"
	"time"

	"github.com/forslund/cgdb-kui/key"
)

// ChanSource is an in-memory CharSource backed by a channel of tokens. It
// lets tests drive the matcher from canned fixtures instead of a live
// terminal, the same role the teacher's test/tacky fixtures play for its
// generated lexers.
type ChanSource struct {
	ch chan key.Token

	peeked    key.Token
	hasPeeked bool
}

// NewChanSource returns a ChanSource pre-loaded with tokens. Once drained,
// further reads behave like a timeout (0, nil) until Feed is called again.
func NewChanSource(tokens ...key.Token) *ChanSource {
	cs := &ChanSource{ch: make(chan key.Token, len(tokens)+64)}
	for _, t := range tokens {
		cs.ch <- t
	}
	return cs
}

// Feed queues additional tokens to be read later.
func (cs *ChanSource) Feed(tokens ...key.Token) {
	for _, t := range tokens {
		cs.ch <- t
	}
}

// Read implements CharSource.
func (cs *ChanSource) Read(ctx context.Context, timeout time.Duration) (key.Token, error) {
	if cs.hasPeeked {
		cs.hasPeeked = false
		return cs.peeked, nil
	}
	select {
	case t := <-cs.ch:
		return t, nil
	case <-time.After(timeout):
		return key.Zero, nil
	case <-ctx.Done():
		return key.Zero, ctx.Err()
	}
}

// DataReady implements CharSource.
func (cs *ChanSource) DataReady(ctx context.Context, timeout time.Duration) bool {
	if cs.hasPeeked {
		return true
	}
	select {
	case t := <-cs.ch:
		// Stash on the struct instead of re-queuing onto cs.ch: a
		// buffered channel send appends to the tail, which would reorder
		// this token behind anything already queued after it.
		cs.peeked = t
		cs.hasPeeked = true
		return true
	case <-time.After(timeout):
		return false
	case <-ctx.Done():
		return false
	}
}
