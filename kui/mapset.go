package kui

import (
	"fmt"
	"slices"

	"github.com/forslund/cgdb-kui/key"
)

// State is the incremental matching state of a MapSet during one pass.
type State int

const (
	// StillLooking means a candidate map shares the prefix matched so far
	// and a longer match may still be possible.
	StillLooking State = iota
	// Found means the scan is over and the map at the latched cursor
	// matched.
	Found
	// NotFound means no registered map matches the input consumed so far.
	NotFound
	// ErrorState completes the state set; no MapSet method assigns it.
	// Update returns an error (and leaves the state unchanged) when called
	// on a set that is not StillLooking.
	ErrorState
)

// MapSet is an ordered dictionary of Maps, sorted by LiteralKey, with an
// embedded incremental longest-prefix matcher (spec §4.3).
type MapSet struct {
	sym Symbolizer

	list []*Map // sorted by LiteralKey, no duplicate keys

	cursor      int // index into list; meaningless unless state == StillLooking or Found
	state       State
	isFound     bool
	foundCursor int
}

// NewMapSet creates an empty map set that symbolizes authored strings with
// sym.
func NewMapSet(sym Symbolizer) *MapSet {
	return &MapSet{sym: sym, cursor: -1, foundCursor: -1}
}

func mapCmp(a, b *Map) int {
	return key.Cmp(a.LiteralKey(), b.LiteralKey())
}

// Register builds a Map from keyData/valueData and inserts it so list stays
// sorted by LiteralKey. An existing map with the same LiteralKey is replaced.
func (ms *MapSet) Register(keyData, valueData string) error {
	m, err := NewMap(keyData, valueData, ms.sym)
	if err != nil {
		return err
	}

	idx, found := slices.BinarySearchFunc(ms.list, m, mapCmp)
	if found {
		ms.list = slices.Delete(ms.list, idx, idx+1)
	}
	ms.list = slices.Insert(ms.list, idx, m)
	return nil
}

// Deregister removes the map whose literal key equals the symbolized form
// of key. It returns ErrNotPresent (wrapped) if no such map exists, distinct
// from any other failure (spec §7(d), §9 Open Question 1).
func (ms *MapSet) Deregister(keyData string) error {
	lit, err := ms.sym(keyData)
	if err != nil {
		return fmt.Errorf("kui: deregister %q: %w", keyData, err)
	}
	probe := &Map{literalKey: lit}
	idx, found := slices.BinarySearchFunc(ms.list, probe, mapCmp)
	if !found {
		return fmt.Errorf("kui: deregister %q: %w", keyData, ErrNotPresent)
	}
	ms.list = slices.Delete(ms.list, idx, idx+1)
	return nil
}

// GetMaps returns the current maps, sorted by LiteralKey. The returned
// slice must not be mutated by the caller.
func (ms *MapSet) GetMaps() []*Map { return ms.list }

// Reset prepares the map set for a new incremental scan. Per spec §9 Open
// Question 2, an empty map list resolves directly to NotFound rather than
// leaving StillLooking with no valid cursor.
func (ms *MapSet) Reset() {
	ms.isFound = false
	ms.foundCursor = -1
	if len(ms.list) == 0 {
		ms.cursor = -1
		ms.state = NotFound
		return
	}
	ms.cursor = 0
	ms.state = StillLooking
}

// State returns the map set's current matching state.
func (ms *MapSet) State() State { return ms.state }

// Finalize promotes a match latched during the scan to Found and moves the
// cursor back to it, whether the scan ended still looking for a longer one
// or after the input diverged (NotFound). With no latched match the state
// is left unchanged.
func (ms *MapSet) Finalize() {
	if ms.isFound {
		ms.state = Found
		ms.cursor = ms.foundCursor
	}
}

// FoundMap returns the map the set matched, valid only when State() ==
// Found.
func (ms *MapSet) FoundMap() *Map {
	if ms.cursor < 0 || ms.cursor >= len(ms.list) {
		return nil
	}
	return ms.list[ms.cursor]
}

// tokenAt returns the token at index i in a key sequence, treating any
// index at or past the sequence's stored length as the terminator — this
// keeps Update's bounds-sensitive comparisons safe without duplicating
// key.Cmp's own convention.
func tokenAt(s key.Sequence, i int) key.Token {
	if i < 0 || i >= len(s) {
		return key.Zero
	}
	return s[i]
}

// Update advances the incremental match by one token at the given position.
// This is the heart of the matcher (spec §4.3): it walks forward through the
// contiguous run of maps sharing the prefix matched so far, narrowing the
// cursor or declaring the set NotFound, and latches is_found/found_cursor
// when a complete — but possibly extendable — match appears.
func (ms *MapSet) Update(token key.Token, position int) error {
	if ms.state != StillLooking {
		return fmt.Errorf("kui: update called out of order: %w", ErrInternal)
	}
	if position < 0 {
		return fmt.Errorf("kui: update with negative position: %w", ErrInvalidArgument)
	}
	if token <= key.Zero {
		return fmt.Errorf("kui: update with non-positive token: %w", ErrInvalidArgument)
	}

	anchor := ms.list[ms.cursor].LiteralKey()

	for ; ms.cursor < len(ms.list); ms.cursor++ {
		cur := ms.list[ms.cursor].LiteralKey()

		if key.CmpN(anchor, cur, position) != 0 {
			ms.state = NotFound
			break
		}
		if c := tokenAt(cur, position); c > token {
			ms.state = NotFound
			break
		} else if c == token {
			ms.state = StillLooking
			break
		}
		// c < token: this candidate is shorter than what has been typed
		// at this slot; it cannot match, keep walking the sorted run.
	}

	if ms.state == NotFound {
		return nil
	}
	if ms.cursor == len(ms.list) {
		ms.state = NotFound
		return nil
	}

	cur := ms.list[ms.cursor].LiteralKey()
	if key.Len(cur) != position+1 {
		return nil // still looking for a longer candidate
	}

	ms.isFound = true
	ms.foundCursor = ms.cursor

	next := ms.cursor + 1
	if next >= len(ms.list) {
		ms.state = Found
		return nil
	}
	nextKey := ms.list[next].LiteralKey()
	if key.CmpN(nextKey, cur, position+1) != 0 {
		ms.state = Found
	}
	// else: the next candidate extends the same prefix, keep StillLooking.
	return nil
}
