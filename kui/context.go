package kui

import (
	"context"
	"fmt"
	"time"

	"github.com/forslund/cgdb-kui/key"
	"github.com/forslund/cgdb-kui/kui/source"
)

// PassBound is the hard cap on tokens read speculatively during a single
// findKey pass (spec §4.4 step 2, §9). A pass that would exceed it is a
// defined error, not silent corruption. It is reached only while some map
// set keeps matching for more than PassBound tokens (a registered key
// longer than the bound); recursive macros are bounded separately by
// maxSubstitutionPasses.
const PassBound = 1024

// Context wraps an abstract character source and a pushback buffer behind
// an ordered stack of map sets. It is the unit of GetKey (spec §4.4).
//
// Context is not safe for concurrent use: spec §1 Non-goals rule out
// concurrent readers of a single matcher.
type Context struct {
	mapSets  []*MapSet
	pushback []key.Token
	src      source.CharSource
	timeout  time.Duration
}

// NewContext builds a matcher context reading from src with the given
// per-read timeout.
func NewContext(src source.CharSource, timeout time.Duration) *Context {
	return &Context{src: src, timeout: timeout}
}

// AddMapSet appends ms to the context's map-set list. Map sets added later
// are searched alongside earlier ones and, per spec §9 Open Question 3,
// win ties when multiple sets end Found on the same pass.
func (c *Context) AddMapSet(ms *MapSet) {
	c.mapSets = append(c.mapSets, ms)
}

// GetMapSets returns the context's map sets in insertion order.
func (c *Context) GetMapSets() []*MapSet {
	return c.mapSets
}

// CanGetKey reports whether the pushback buffer already holds a token. It
// never blocks and never reads from the source.
func (c *Context) CanGetKey() bool {
	return len(c.pushback) > 0
}

// findChar returns the next raw token: the pushback buffer's head if
// non-empty, otherwise a read from the source.
func (c *Context) findChar(ctx context.Context) (key.Token, error) {
	if len(c.pushback) > 0 {
		tok := c.pushback[0]
		c.pushback = c.pushback[1:]
		return tok, nil
	}
	return c.src.Read(ctx, c.timeout)
}

// maxSubstitutionPasses bounds the number of recursive macro expansions a
// single GetKey call will perform. PassBound alone only caps tokens read
// within one findKey pass; a macro whose value contains its own key (e.g.
// "a" -> "a", or a cycle through several maps) matches and re-queues on
// every pass without ever consuming new input, so GetKey also needs its own
// bound across passes.
const maxSubstitutionPasses = 1024

// GetKey returns the next resolved key token, expanding macros along the
// way. It returns (0, nil) if no data arrived within the timeout, and a
// non-nil error on source failure, an internal fault (spec §6), or a
// recursive macro that never resolves to a raw token.
func (c *Context) GetKey(ctx context.Context) (key.Token, error) {
	for pass := 0; ; pass++ {
		if pass >= maxSubstitutionPasses {
			return 0, fmt.Errorf("kui: recursive macro exceeded %d substitution passes: %w", maxSubstitutionPasses, ErrPushbackOverflow)
		}
		tok, matched, err := c.findKey(ctx)
		if err != nil {
			return 0, err
		}
		if matched {
			// A macro applied; its substitution is now queued in the
			// pushback buffer. Re-enter findKey so it can participate in
			// further matching.
			continue
		}
		return tok, nil
	}
}

// findKey runs one speculative read-ahead pass (spec §4.4). It returns
// either (token, false, nil) — no macro applied, token is the result — or
// (0, true, nil) — a macro applied and its value was queued for the next
// pass.
func (c *Context) findKey(ctx context.Context) (key.Token, bool, error) {
	for _, ms := range c.mapSets {
		ms.Reset()
	}

	position := -1
	bufmax := make([]key.Token, 0, 16)

	for {
		tok, err := c.findChar(ctx)
		if err != nil {
			return 0, false, err
		}
		if tok == key.Zero {
			break
		}

		position++
		if position >= PassBound {
			return 0, false, fmt.Errorf("kui: pass exceeded %d tokens: %w", PassBound, ErrPushbackOverflow)
		}
		bufmax = append(bufmax, tok)

		for _, ms := range c.mapSets {
			if ms.State() != NotFound {
				if err := ms.Update(tok, position); err != nil {
					return 0, false, err
				}
			}
		}

		stillLooking := false
		for _, ms := range c.mapSets {
			if ms.State() == StillLooking {
				stillLooking = true
				break
			}
		}
		if !stillLooking {
			break
		}
	}

	if position == -1 {
		// No data at all arrived within the timeout.
		return key.Zero, false, nil
	}

	for _, ms := range c.mapSets {
		ms.Finalize()
	}

	// Last map set scanned that ended Found wins (spec §9 Open Question 3).
	var winner *Map
	for _, ms := range c.mapSets {
		if ms.State() == Found {
			winner = ms.FoundMap()
		}
	}

	matchLen := 1
	if winner != nil {
		matchLen = key.Len(winner.LiteralKey())
	}

	c.reconstitutePushback(bufmax, position, matchLen, winner)

	if winner != nil {
		return 0, true, nil
	}
	return bufmax[0], false, nil
}

// reconstitutePushback prepends the unconsumed tail of this pass's buffer,
// and — if a map matched — its substitution value ahead of that tail, onto
// the front of the pushback queue (spec §4.4 "Pushback reconstitution").
func (c *Context) reconstitutePushback(bufmax []key.Token, position, matchLen int, winner *Map) {
	var front []key.Token

	if winner != nil {
		val := winner.LiteralValue()
		n := key.Len(val)
		front = append(front, val[:n]...)
	}
	if matchLen <= position {
		front = append(front, bufmax[matchLen:position+1]...)
	}

	if len(front) == 0 {
		return
	}
	c.pushback = append(front, c.pushback...)
}
